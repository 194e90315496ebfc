package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/jhoicas/directorio-api/internal/application/directory"
	"github.com/jhoicas/directorio-api/internal/application/usecase"
	"github.com/jhoicas/directorio-api/internal/infrastructure/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Engine     *directory.QueryEngine
	BuildingUC *usecase.BuildingUseCase
	Metrics    *metrics.Metrics
	Logger     zerolog.Logger
}

// NewApp crea la aplicación Fiber con middlewares comunes, /health, /metrics y las rutas de la API.
func NewApp(appName string, deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      appName,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler(deps.Logger),
	})
	app.Use(recover.New())
	app.Use(RequestIDMiddleware())
	app.Use(RequestLogger(deps.Logger))
	app.Use(MetricsMiddleware(deps.Metrics))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": appName})
	})
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Metrics.Registry, promhttp.HandlerOpts{})))
	}

	Router(app, deps)
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Organizations: las rutas fijas van antes de /:id
	orgs := api.Group("/organizations")
	orgHandler := NewOrganizationHandler(deps.Engine, deps.BuildingUC, deps.Metrics, deps.Logger)
	orgs.Get("/building/:building_id", orgHandler.ListByBuilding)
	orgs.Get("/activity/:activity_id", orgHandler.ListByActivity)
	orgs.Get("/nearby", orgHandler.Nearby)
	orgs.Get("/area", orgHandler.InArea)
	orgs.Get("/search", orgHandler.Search)
	orgs.Get("/:id", orgHandler.GetByID)

	// Buildings
	buildingHandler := NewBuildingHandler(deps.BuildingUC, deps.Logger)
	api.Get("/buildings", buildingHandler.List)
}
