package formatter

import (
	"testing"

	"github.com/aqibjaved/showcase/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestPluralize(t *testing.T) {
	assert.Equal(t, "1 project", Pluralize(1, "project"))
	assert.Equal(t, "0 projects", Pluralize(0, "project"))
	assert.Equal(t, "4 projects", Pluralize(4, "project"))
}

func TestResultsCount(t *testing.T) {
	assert.Contains(t, ResultsCount(4), "4 projects found")
	assert.Contains(t, ResultsCount(1), "1 project found")
}

func TestWeekHeading(t *testing.T) {
	got := WeekHeading(3, 2)
	assert.Contains(t, got, "WEEK 3")
	assert.Contains(t, got, "2 projects")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "long…", Truncate("long text here", 5))
	assert.Equal(t, "untouched", Truncate("untouched", 0))
}

func TestURLLabel_AbsentSentinels(t *testing.T) {
	assert.Contains(t, URLLabel(""), "--")
	assert.Contains(t, URLLabel("#"), "--")
	assert.Contains(t, URLLabel("https://example.com"), "https://example.com")
}

func TestStatusBadge(t *testing.T) {
	assert.Contains(t, StatusBadge(domain.StatusLive), "LIVE")
	assert.Contains(t, StatusBadge(domain.StatusInProgress), "IN PROGRESS")
	// Unknown statuses still render, uppercased.
	assert.Contains(t, StatusBadge(domain.Status("beta")), "BETA")
}

func TestChips(t *testing.T) {
	assert.Equal(t, "", Chips(nil))
	got := Chips([]string{"AI", "RAG"})
	assert.Contains(t, got, "[AI]")
	assert.Contains(t, got, "[RAG]")
}
