package catalog

import (
	"sort"

	"github.com/aqibjaved/showcase/internal/domain"
)

// Grouped is the derived week-keyed view of a (possibly filtered) catalog.
type Grouped struct {
	// ByWeek maps week number to records in catalog-relative order.
	ByWeek map[int][]*domain.ProjectRecord
	// Weeks holds the distinct week numbers present, ascending numerically.
	Weeks []int
}

// GroupByWeek buckets records by week, preserving input order within each
// bucket. Week keys sort as integers, so week 10 lands after week 2.
func GroupByWeek(records []*domain.ProjectRecord) Grouped {
	g := Grouped{ByWeek: make(map[int][]*domain.ProjectRecord)}
	for _, r := range records {
		if _, seen := g.ByWeek[r.Week]; !seen {
			g.Weeks = append(g.Weeks, r.Week)
		}
		g.ByWeek[r.Week] = append(g.ByWeek[r.Week], r)
	}
	sort.Ints(g.Weeks)
	return g
}
