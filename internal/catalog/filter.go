// Package catalog implements the pure dashboard pipeline: query filtering,
// week grouping and aggregate stats over a catalog of project records.
package catalog

import (
	"strings"

	"github.com/aqibjaved/showcase/internal/domain"
)

// Filter returns the ordered subsequence of records matching query.
// Matching is trimmed, case-insensitive substring containment over the
// record name, description, and every tag and stack element. An empty query
// returns records unchanged. This is a filter, not a ranked search: relative
// catalog order is always preserved.
func Filter(records []*domain.ProjectRecord, query string) []*domain.ProjectRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return records
	}

	var matched []*domain.ProjectRecord
	for _, r := range records {
		if matchesQuery(r, q) {
			matched = append(matched, r)
		}
	}
	return matched
}

func matchesQuery(r *domain.ProjectRecord, q string) bool {
	if strings.Contains(strings.ToLower(r.Name), q) ||
		strings.Contains(strings.ToLower(r.Description), q) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	for _, s := range r.Stack {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}
