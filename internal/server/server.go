// Package server exposes the catalog as a read-only JSON API.
package server

import (
	"time"

	"github.com/aqibjaved/showcase/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// BuildServer wires the echo instance: middleware, routes, error handling.
func BuildServer(catalogSvc service.CatalogService, logger *zap.Logger) *echo.Echo {
	if logger == nil {
		logger = zap.NewNop()
	}

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())

	// Server-side latency logging.
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			logger.Info("request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)),
				zap.Error(err))
			return err
		}
	})

	h := &handlers{catalog: catalogSvc}

	e.GET("/api/projects", h.listProjects)
	e.GET("/api/projects/:id", h.getProject)
	e.GET("/api/weeks", h.listWeeks)
	e.GET("/api/stats", h.getStats)

	return e
}
