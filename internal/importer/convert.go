package importer

import "github.com/aqibjaved/showcase/internal/domain"

// ConvertRecords maps import-file records to domain records in file order.
// Absent URLs normalize to the "#" sentinel so the presence check has a
// single storage representation.
func ConvertRecords(file *CatalogFile) []*domain.ProjectRecord {
	records := make([]*domain.ProjectRecord, 0, len(file.Catalog))
	for _, in := range file.Catalog {
		records = append(records, &domain.ProjectRecord{
			ID:          in.ID,
			Week:        in.Week,
			Name:        in.Name,
			Description: in.Description,
			Tags:        in.Tags,
			Stack:       in.Stack,
			Status:      domain.Status(in.Status),
			DeployURL:   normalizeURL(in.DeployURL),
			GithubURL:   normalizeURL(in.GithubURL),
		})
	}
	return records
}

func normalizeURL(u string) string {
	if !domain.HasURL(u) {
		return domain.URLAbsent
	}
	return u
}
