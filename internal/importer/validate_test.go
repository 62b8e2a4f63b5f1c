package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFile() *CatalogFile {
	return &CatalogFile{Catalog: []RecordImport{
		{ID: 1, Week: 1, Name: "Drills", Description: "Warm-ups", Status: "completed"},
		{ID: 2, Week: 2, Name: "Movie Agent", Description: "Film agent", Status: "live", DeployURL: "https://example.com"},
	}}
}

func TestValidateCatalogFile_Valid(t *testing.T) {
	assert.Empty(t, ValidateCatalogFile(validFile()))
}

func TestValidateCatalogFile_EmptyCatalog(t *testing.T) {
	errs := ValidateCatalogFile(&CatalogFile{})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "empty")
}

func TestValidateCatalogFile_CollectsAllErrors(t *testing.T) {
	file := &CatalogFile{Catalog: []RecordImport{
		{ID: 0, Week: 0, Name: "", Description: "", Status: "nope"},
	}}
	errs := ValidateCatalogFile(file)
	assert.Len(t, errs, 5)
}

func TestValidateCatalogFile_DuplicateID(t *testing.T) {
	file := validFile()
	file.Catalog[1].ID = file.Catalog[0].ID
	errs := ValidateCatalogFile(file)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "duplicate id")
}

func TestValidateCatalogFile_InvalidStatus(t *testing.T) {
	file := validFile()
	file.Catalog[0].Status = "shipped"
	errs := ValidateCatalogFile(file)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "invalid status")
}
