// Package importer loads catalog JSON files into domain records.
package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// CatalogFile is the top-level JSON structure for catalog import.
type CatalogFile struct {
	Catalog []RecordImport `json:"catalog"`
}

// RecordImport defines one catalog record in the import file.
// deploy_url and github_url may be "", "#" (both meaning absent) or a URL.
type RecordImport struct {
	ID          int      `json:"id"`
	Week        int      `json:"week"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`
	Stack       []string `json:"stack,omitempty"`
	Status      string   `json:"status"`
	DeployURL   string   `json:"deploy_url,omitempty"`
	GithubURL   string   `json:"github_url,omitempty"`
}

// LoadCatalogFile reads and parses a catalog import JSON file.
func LoadCatalogFile(path string) (*CatalogFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file CatalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}
	return &file, nil
}
