package server

import (
	"net/http"
	"strconv"

	"github.com/aqibjaved/showcase/internal/catalog"
	"github.com/aqibjaved/showcase/internal/domain"
	"github.com/aqibjaved/showcase/internal/repository"
	"github.com/aqibjaved/showcase/internal/service"
	"github.com/labstack/echo/v4"
)

type handlers struct {
	catalog service.CatalogService
}

// projectJSON is the wire shape of one record. Field names match the
// import-file schema.
type projectJSON struct {
	ID          int      `json:"id"`
	Week        int      `json:"week"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Stack       []string `json:"stack"`
	Status      string   `json:"status"`
	StatusLabel string   `json:"status_label"`
	DeployURL   string   `json:"deploy_url"`
	GithubURL   string   `json:"github_url"`
	Deployed    bool     `json:"deployed"`
}

type projectListJSON struct {
	Projects []projectJSON `json:"projects"`
	Count    int           `json:"count"`
}

type weekJSON struct {
	Week     int           `json:"week"`
	Count    int           `json:"count"`
	Projects []projectJSON `json:"projects"`
}

type statsJSON struct {
	Total      int `json:"total"`
	Live       int `json:"live"`
	InProgress int `json:"in_progress"`
	Weeks      int `json:"weeks"`
}

func bindProject(r *domain.ProjectRecord) projectJSON {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	stack := r.Stack
	if stack == nil {
		stack = []string{}
	}
	return projectJSON{
		ID:          r.ID,
		Week:        r.Week,
		Name:        r.Name,
		Description: r.Description,
		Tags:        tags,
		Stack:       stack,
		Status:      string(r.Status),
		StatusLabel: r.Status.BadgeLabel(),
		DeployURL:   r.DeployURL,
		GithubURL:   r.GithubURL,
		Deployed:    r.Deployed(),
	}
}

func bindProjects(records []*domain.ProjectRecord) []projectJSON {
	out := make([]projectJSON, 0, len(records))
	for _, r := range records {
		out = append(out, bindProject(r))
	}
	return out
}

// listProjects returns the catalog, optionally filtered by ?q=.
func (h *handlers) listProjects(c echo.Context) error {
	records, err := h.catalog.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	filtered := catalog.Filter(records, c.QueryParam("q"))
	return c.JSON(http.StatusOK, projectListJSON{
		Projects: bindProjects(filtered),
		Count:    len(filtered),
	})
}

func (h *handlers) getProject(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}
	rec, err := h.catalog.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "no such project")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, bindProject(rec))
}

// listWeeks returns the grouped week view, optionally filtered by ?q=.
func (h *handlers) listWeeks(c echo.Context) error {
	records, err := h.catalog.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	grouped := catalog.GroupByWeek(catalog.Filter(records, c.QueryParam("q")))

	weeks := make([]weekJSON, 0, len(grouped.Weeks))
	for _, week := range grouped.Weeks {
		bucket := grouped.ByWeek[week]
		weeks = append(weeks, weekJSON{
			Week:     week,
			Count:    len(bucket),
			Projects: bindProjects(bucket),
		})
	}
	return c.JSON(http.StatusOK, map[string]any{"weeks": weeks})
}

func (h *handlers) getStats(c echo.Context) error {
	stats, err := h.catalog.Stats(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, statsJSON{
		Total:      stats.Total,
		Live:       stats.Live,
		InProgress: stats.InProgress,
		Weeks:      stats.Weeks,
	})
}
