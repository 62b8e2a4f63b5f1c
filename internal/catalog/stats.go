package catalog

import "github.com/aqibjaved/showcase/internal/domain"

// Stats are aggregate counts over the full, unfiltered catalog.
// The search query never changes these numbers.
type Stats struct {
	Total      int
	Live       int
	InProgress int
	Weeks      int
}

// Aggregate computes Stats from records. Pure and cheap enough to recompute
// on every render.
func Aggregate(records []*domain.ProjectRecord) Stats {
	var s Stats
	weeks := make(map[int]bool)
	for _, r := range records {
		s.Total++
		switch r.Status {
		case domain.StatusLive:
			s.Live++
		case domain.StatusInProgress:
			s.InProgress++
		}
		weeks[r.Week] = true
	}
	s.Weeks = len(weeks)
	return s
}
