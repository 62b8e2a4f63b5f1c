package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/aqibjaved/showcase/internal/domain"
	"github.com/aqibjaved/showcase/internal/repository"
	"github.com/aqibjaved/showcase/internal/service"
	"github.com/aqibjaved/showcase/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T) (service.CatalogService, http.Handler) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteRecordRepo(database)
	svc := service.NewCatalogService(repo, nil)
	ctx := context.Background()

	seed := []*domain.ProjectRecord{
		testutil.NewTestRecord("Movie Agent",
			testutil.WithWeek(2),
			testutil.WithStatus(domain.StatusLive),
			testutil.WithTags("AI", "Agents"),
			testutil.WithDeployURL("https://example.com/movies")),
		testutil.NewTestRecord("Document Q&A",
			testutil.WithWeek(3),
			testutil.WithTags("AI", "RAG")),
		testutil.NewTestRecord("Python Drills",
			testutil.WithWeek(1),
			testutil.WithTags("Python")),
	}
	for i, rec := range seed {
		require.NoError(t, repo.Create(ctx, rec, i+1))
	}

	return svc, BuildServer(svc, nil)
}

func doGET(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestListProjects(t *testing.T) {
	_, h := testServer(t)

	rec := doGET(t, h, "/api/projects")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Projects []map[string]any `json:"projects"`
		Count    int              `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Count)
	assert.Equal(t, "Movie Agent", body.Projects[0]["name"])
}

func TestListProjects_Filtered(t *testing.T) {
	_, h := testServer(t)

	rec := doGET(t, h, "/api/projects?q=AI")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Count)
}

func TestGetProject(t *testing.T) {
	svc, h := testServer(t)

	records, err := svc.List(context.Background())
	require.NoError(t, err)
	first := records[0]

	rec := doGET(t, h, "/api/projects/"+strconv.Itoa(first.ID))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, first.Name, body["name"])
	assert.Equal(t, "LIVE", body["status_label"])
	assert.Equal(t, true, body["deployed"])
}

func TestGetProject_NotFound(t *testing.T) {
	_, h := testServer(t)
	rec := doGET(t, h, "/api/projects/99999")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProject_BadID(t *testing.T) {
	_, h := testServer(t)
	rec := doGET(t, h, "/api/projects/abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListWeeks_GroupedAscending(t *testing.T) {
	_, h := testServer(t)

	rec := doGET(t, h, "/api/weeks")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Weeks []struct {
			Week  int `json:"week"`
			Count int `json:"count"`
		} `json:"weeks"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Weeks, 3)
	assert.Equal(t, 1, body.Weeks[0].Week)
	assert.Equal(t, 2, body.Weeks[1].Week)
	assert.Equal(t, 3, body.Weeks[2].Week)
}

func TestGetStats(t *testing.T) {
	_, h := testServer(t)

	rec := doGET(t, h, "/api/stats")
	require.Equal(t, http.StatusOK, rec.Code)

	var body statsJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Total)
	assert.Equal(t, 1, body.Live)
	assert.Equal(t, 3, body.Weeks)
}

func TestStats_UnaffectedByQuery(t *testing.T) {
	// /api/stats has no query parameter at all; a q on the URL is ignored.
	_, h := testServer(t)

	rec := doGET(t, h, "/api/stats?q=AI")
	require.Equal(t, http.StatusOK, rec.Code)

	var body statsJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Total)
}
