package importer

import (
	"fmt"

	"github.com/aqibjaved/showcase/internal/domain"
)

// ValidateCatalogFile checks the import file before conversion.
// Returns all validation errors found, not just the first.
func ValidateCatalogFile(file *CatalogFile) []error {
	var errs []error

	if len(file.Catalog) == 0 {
		errs = append(errs, fmt.Errorf("catalog is empty"))
		return errs
	}

	seenIDs := make(map[int]bool)
	for i, rec := range file.Catalog {
		prefix := fmt.Sprintf("catalog[%d]", i)

		if rec.ID <= 0 {
			errs = append(errs, fmt.Errorf("%s: id must be positive, got %d", prefix, rec.ID))
		} else if seenIDs[rec.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate id %d", prefix, rec.ID))
		}
		seenIDs[rec.ID] = true

		if rec.Week <= 0 {
			errs = append(errs, fmt.Errorf("%s: week must be positive, got %d", prefix, rec.Week))
		}
		if rec.Name == "" {
			errs = append(errs, fmt.Errorf("%s: name is required", prefix))
		}
		if rec.Description == "" {
			errs = append(errs, fmt.Errorf("%s: description is required", prefix))
		}
		// The renderer tolerates unknown statuses, but import is where the
		// catalog is authored; reject them here.
		if !domain.ValidStatuses[rec.Status] {
			errs = append(errs, fmt.Errorf("%s: invalid status %q", prefix, rec.Status))
		}
	}

	return errs
}
