package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/domain"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/layout"
	"resume-builder/internal/render"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/ai"
	infra "resume-builder/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// infra setup
	exportsPool, err := infra.NewExportsPool(ctx, cfg.ExportsDSN)
	if err != nil {
		logger.Warn("exports DB not available", "error", err)
	}
	if exportsPool != nil {
		defer exportsPool.Close()
		if err := migration.RunMigrations(ctx, exportsPool); err != nil {
			logger.Warn("migrations failed, export history disabled", "error", err)
			exportsPool.Close()
			exportsPool = nil
		}
	}
	exportsRepo := repo.NewExportsRepo(exportsPool)

	renderer, err := render.New()
	if err != nil {
		log.Fatalf("templates: %v", err)
	}
	typesetter, err := infra.NewCanvasTypesetter()
	if err != nil {
		log.Fatalf("fonts: %v", err)
	}

	var probe layout.Probe = layout.NewMetricsProbe(typesetter)
	if cfg.Probe == config.ProbeChromedp {
		probe = infra.NewChromedpProbe(renderer, cfg.ChromePath)
	}
	var exporter usecase.Exporter = infra.NewChromedpExporter(cfg.ChromePath)
	if cfg.Exporter == config.ExporterCanvas {
		exporter = infra.NewCanvasExporter(typesetter)
	}

	paginator := layout.NewPaginator(probe, layout.DefaultGeometry(), logger)
	sessions := usecase.NewSessions(paginator, usecase.NewEditor(domain.UUIDGenerator{}), logger)
	exports := usecase.NewExportService(sessions, renderer, exporter, exportsRepo, logger)
	aiClient := ai.NewClient(cfg.AIServiceURL, cfg.AITimeout)
	aiClient.Logger = logger
	assistant := usecase.NewAssistant(aiClient, logger)

	app := fiber.New(fiber.Config{AppName: "resume-builder", BodyLimit: 2 * 1024 * 1024})
	httpadapter.NewHandler(sessions, exports, assistant, renderer, exportsRepo, logger).Register(app)

	go func() {
		logger.Info("listening", "port", cfg.Port, "probe", cfg.Probe, "exporter", exporter.Name())
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("shutdown", "error", err)
	}
}
