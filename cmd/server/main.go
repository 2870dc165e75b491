package main

import (
	"context"
	stdlog "log"
	"os"
	"path/filepath"

	httpadapter "github.com/Zamiel01/vitaebot/internal/adapter/http"
	repo "github.com/Zamiel01/vitaebot/internal/adapter/repository"
	"github.com/Zamiel01/vitaebot/internal/infrastructure/migration"
	"github.com/Zamiel01/vitaebot/internal/usecase"
	infra "github.com/Zamiel01/vitaebot/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
	"github.com/phuslu/log"
	"github.com/robfig/cron/v3"
)

func main() {
	ctx := context.Background()

	// infra setup
	pool, err := infra.NewCVPool(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("cv DB not available")
	}
	if pool != nil {
		if err := migration.RunMigrations(ctx, pool); err != nil {
			stdlog.Fatalf("migrations failed: %v", err)
		}
	}

	tplDir := os.Getenv("TEMPLATES_DIR")
	if tplDir == "" {
		tplDir = "templates"
	}

	renderer := usecase.NewTemplateRenderer(tplDir)
	raster := infra.NewChromedpRasterizer()
	exporter := usecase.NewExporter(renderer, raster)
	store := repo.NewCVRepo(pool)

	feed := usecase.NewJobFeed(os.Getenv("JOBS_FEED_URL"))
	go func() {
		if err := feed.Refresh(ctx); err != nil {
			log.Warn().Err(err).Msg("initial job feed fetch failed")
		}
	}()

	// same cadence the dashboard used to poll at
	sched := cron.New()
	if _, err := sched.AddFunc("@every 5m", func() {
		if err := feed.Refresh(ctx); err != nil {
			log.Warn().Err(err).Msg("scheduled job feed refresh failed")
		}
	}); err != nil {
		stdlog.Fatalf("scheduler setup failed: %v", err)
	}
	sched.Start()

	app := fiber.New(fiber.Config{BodyLimit: 16 * 1024 * 1024})

	h := httpadapter.NewHandler(store, exporter, renderer, filepath.Join(tplDir, "cv.schema.json"))
	jh := httpadapter.NewJobsHandler(feed)

	app.Get("/cv/templates", h.Templates)
	app.Post("/cv/preview", h.Preview)
	app.Post("/cv/export", h.ExportPDF)
	app.Get("/cv/:userId", h.GetCV)
	app.Put("/cv/:userId", h.SaveCV)
	app.Delete("/cv/:userId", h.DeleteCV)

	app.Get("/jobs", jh.ListJobs)
	app.Get("/jobs/categories", jh.JobCategories)
	app.Post("/jobs/refresh", jh.RefreshJobs)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Info().Str("port", port).Msg("server starting")
	if err := app.Listen(":" + port); err != nil {
		stdlog.Fatalf("server failed: %v", err)
	}
}
