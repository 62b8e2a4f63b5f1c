package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/aqibjaved/showcase/internal/domain"
)

//go:embed seed.json
var seedJSON []byte

type seedRecord struct {
	ID          int      `json:"id"`
	Week        int      `json:"week"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Stack       []string `json:"stack"`
	Status      string   `json:"status"`
	DeployURL   string   `json:"deploy_url"`
	GithubURL   string   `json:"github_url"`
}

// Seed returns the built-in catalog used when the store holds no records.
// The entries describe the weekly bootcamp assignment projects.
func Seed() ([]*domain.ProjectRecord, error) {
	var file struct {
		Catalog []seedRecord `json:"catalog"`
	}
	if err := json.Unmarshal(seedJSON, &file); err != nil {
		return nil, fmt.Errorf("parsing embedded seed catalog: %w", err)
	}

	records := make([]*domain.ProjectRecord, 0, len(file.Catalog))
	for _, s := range file.Catalog {
		rec := &domain.ProjectRecord{
			ID:          s.ID,
			Week:        s.Week,
			Name:        s.Name,
			Description: s.Description,
			Tags:        s.Tags,
			Stack:       s.Stack,
			Status:      domain.Status(s.Status),
			DeployURL:   s.DeployURL,
			GithubURL:   s.GithubURL,
		}
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("embedded seed catalog: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}
