package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"craftapi/internal/ai"
	"craftapi/internal/config"
	"craftapi/internal/database"
	"craftapi/internal/database/migration"
	handlers "craftapi/internal/http/handler"
	"craftapi/internal/http/middleware"
	"craftapi/internal/otel"
	"craftapi/internal/repository/postgres"
	"craftapi/internal/service"
	"craftapi/internal/storage"
)

func main() {
	ctx := context.Background()

	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	loc := time.UTC

	// Initialize tracing; degrades to a noop provider when the exporter
	// cannot be reached.
	shutdownTracing, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Initialize reusable S3-compatible object storage client (MinIO-supported)
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	// Hosted AI adapters: OpenAI for speech and translation, Gemini for
	// tagging, content generation and image styling.
	openaiClient, err := ai.NewOpenAIClient(cfg.OpenAI, cfg.AI)
	if err != nil {
		log.Fatalf("failed to initialize openai client: %v", err)
	}
	geminiClient, err := ai.NewGeminiClient(ctx, cfg.Gemini, cfg.AI)
	if err != nil {
		log.Fatalf("failed to initialize gemini client: %v", err)
	}
	contentCache := ai.NewContentCache(cfg.AI.ContentCacheTTL)

	// Initialize repositories and services
	artisanRepo := postgres.NewArtisanPostgres(db)
	productRepo := postgres.NewProductPostgres(db)

	svcs := handlers.Services{
		Artisans:       service.NewArtisanService(artisanRepo),
		Products:       service.NewProductService(objStore, productRepo, artisanRepo, geminiClient),
		Transcriptions: service.NewTranscriptionService(openaiClient, openaiClient),
		Content:        service.NewContentService(objStore, productRepo, artisanRepo, geminiClient, contentCache),
		Enhance:        service.NewEnhanceService(objStore, productRepo, geminiClient),
		Export:         service.NewExportService(objStore, productRepo, cfg.Export.LinkExpiry),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    32 * 1024 * 1024, // audio and image uploads
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	promMW, err := middleware.NewPrometheusMiddleware(registry)
	if err != nil {
		log.Fatalf("failed to register prometheus metrics: %v", err)
	}
	app.Use(promMW.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, svcs)

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
