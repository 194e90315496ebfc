package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	_ "github.com/jhoicas/directorio-api/docs"
	"github.com/jhoicas/directorio-api/internal/application/directory"
	"github.com/jhoicas/directorio-api/internal/application/usecase"
	"github.com/jhoicas/directorio-api/internal/domain/repository"
	"github.com/jhoicas/directorio-api/internal/infrastructure/memory"
	"github.com/jhoicas/directorio-api/internal/infrastructure/metrics"
	"github.com/jhoicas/directorio-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/directorio-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/directorio-api/internal/interfaces/http"
	"github.com/jhoicas/directorio-api/pkg/config"
	"github.com/jhoicas/directorio-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

// @title        Directorio de organizaciones API
// @version      1.0
// @description  Consultas de organizaciones por edificio, actividad, ubicación y nombre.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	m := metrics.New()

	var (
		buildingRepo repository.BuildingRepository
		activityRepo repository.ActivityRepository
		orgRepo      repository.OrganizationRepository
	)
	switch cfg.Store.Driver {
	case "memory":
		store, err := memory.LoadFile(cfg.Store.SnapshotPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Store.SnapshotPath).Msg("cargar snapshot en memoria")
		}
		buildingRepo, activityRepo, orgRepo = store.Buildings(), store.Activities(), store.Organizations()
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		buildingRepo = postgres.NewBuildingRepository(pool)
		activityRepo = postgres.NewActivityRepository(pool)
		orgRepo = postgres.NewOrganizationRepository(pool)
	}

	resolverOpts := []directory.ResolverOption{
		directory.WithResolverLogger(log.Component("activity-resolver")),
	}
	if cfg.Redis.Enabled() {
		client, err := infraredis.Open(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			// Sin caché se sigue resolviendo contra el almacén.
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis no disponible, caché de jerarquía desactivado")
		} else {
			defer client.Close()
			resolverOpts = append(resolverOpts,
				directory.WithHierarchyCache(infraredis.NewHierarchyCache(client, m), cfg.Redis.TTL))
		}
	}

	engineLog := log.Component("query-engine")
	resolver := directory.NewActivityResolver(activityRepo, resolverOpts...)
	engine := directory.NewQueryEngine(orgRepo, resolver, directory.EngineConfig{
		StrictRadius: cfg.Search.StrictRadius,
		Logger:       &engineLog,
	})
	buildingUC := usecase.NewBuildingUseCase(buildingRepo, activityRepo, orgRepo)

	app := httpRouter.NewApp(cfg.App.Name, httpRouter.RouterDeps{
		Engine:     engine,
		BuildingUC: buildingUC,
		Metrics:    m,
		Logger:     log.Component("http"),
	})

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Directorio API",
		}))
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
