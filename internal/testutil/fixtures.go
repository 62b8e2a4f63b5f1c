package testutil

import (
	"sync/atomic"

	"github.com/aqibjaved/showcase/internal/domain"
)

var testRecordCounter atomic.Int64

// RecordOption customizes a test record.
type RecordOption func(*domain.ProjectRecord)

func WithWeek(week int) RecordOption {
	return func(r *domain.ProjectRecord) { r.Week = week }
}

func WithStatus(s domain.Status) RecordOption {
	return func(r *domain.ProjectRecord) { r.Status = s }
}

func WithTags(tags ...string) RecordOption {
	return func(r *domain.ProjectRecord) { r.Tags = tags }
}

func WithStack(stack ...string) RecordOption {
	return func(r *domain.ProjectRecord) { r.Stack = stack }
}

func WithDeployURL(url string) RecordOption {
	return func(r *domain.ProjectRecord) { r.DeployURL = url }
}

func WithGithubURL(url string) RecordOption {
	return func(r *domain.ProjectRecord) { r.GithubURL = url }
}

// NewTestRecord builds a valid catalog record with a process-unique id.
func NewTestRecord(name string, opts ...RecordOption) *domain.ProjectRecord {
	r := &domain.ProjectRecord{
		ID:          int(testRecordCounter.Add(1)),
		Week:        1,
		Name:        name,
		Description: name + " description",
		Status:      domain.StatusCompleted,
		DeployURL:   domain.URLAbsent,
		GithubURL:   domain.URLAbsent,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
