package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasURL(t *testing.T) {
	assert.True(t, HasURL("https://example.com"))
	assert.False(t, HasURL(""))
	assert.False(t, HasURL("#"))
}

func TestDeployed_SentinelAndEmptyAreAbsent(t *testing.T) {
	r := &ProjectRecord{DeployURL: "#"}
	assert.False(t, r.Deployed())

	r.DeployURL = ""
	assert.False(t, r.Deployed())

	r.DeployURL = "https://demo.example.com"
	assert.True(t, r.Deployed())
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusCompleted, StatusLive, StatusInProgress, StatusUpcoming} {
		assert.True(t, s.Valid(), "should accept %q", s)
	}
	assert.False(t, Status("deployed").Valid())
	assert.False(t, Status("").Valid())
}

func TestBadgeLabel_KnownStatuses(t *testing.T) {
	assert.Equal(t, "COMPLETED", StatusCompleted.BadgeLabel())
	assert.Equal(t, "LIVE", StatusLive.BadgeLabel())
	assert.Equal(t, "IN PROGRESS", StatusInProgress.BadgeLabel())
	assert.Equal(t, "UPCOMING", StatusUpcoming.BadgeLabel())
}

func TestBadgeLabel_UnknownStatusFallsBack(t *testing.T) {
	// An unrecognized status must not panic; it renders its raw value.
	assert.Equal(t, "ARCHIVED", Status("archived").BadgeLabel())
	assert.Equal(t, "", Status("").BadgeLabel())
}

func TestValidate(t *testing.T) {
	rec := ProjectRecord{
		ID:          1,
		Week:        2,
		Name:        "Movie Agent",
		Description: "Movie management agent with external API lookups.",
		Status:      StatusLive,
	}
	assert.NoError(t, rec.Validate())

	bad := rec
	bad.Week = 0
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "week")

	bad = rec
	bad.Name = ""
	require.Error(t, bad.Validate())

	bad = rec
	bad.Status = "shipped"
	err = bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown status")
}
