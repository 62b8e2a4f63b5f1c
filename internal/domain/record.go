package domain

import "fmt"

// URLAbsent is the placeholder value meaning "no URL provided".
// Both it and the empty string are treated as absent.
const URLAbsent = "#"

// HasURL reports whether s is a real URL rather than an absent placeholder.
func HasURL(s string) bool {
	return s != "" && s != URLAbsent
}

// ProjectRecord is one entry of the portfolio catalog.
// Records are immutable for the lifetime of a dashboard session;
// mutation happens only through the import/add tooling.
type ProjectRecord struct {
	ID          int
	Week        int
	Name        string
	Description string
	Tags        []string
	Stack       []string
	Status      Status
	DeployURL   string
	GithubURL   string
}

// Deployed reports whether the record has a real deployment URL.
func (r *ProjectRecord) Deployed() bool {
	return HasURL(r.DeployURL)
}

// Validate checks the catalog-definition invariants for a single record.
func (r *ProjectRecord) Validate() error {
	if r.ID <= 0 {
		return fmt.Errorf("record id must be positive, got %d", r.ID)
	}
	if r.Week <= 0 {
		return fmt.Errorf("record %d: week must be positive, got %d", r.ID, r.Week)
	}
	if r.Name == "" {
		return fmt.Errorf("record %d: name is required", r.ID)
	}
	if r.Description == "" {
		return fmt.Errorf("record %d: description is required", r.ID)
	}
	if !r.Status.Valid() {
		return fmt.Errorf("record %d: unknown status %q", r.ID, r.Status)
	}
	return nil
}
