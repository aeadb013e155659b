package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"rentdocs/docs"
	"rentdocs/internal/config"
	"rentdocs/internal/document"
	handlers "rentdocs/internal/http/handler"
	"rentdocs/internal/http/middleware"
	"rentdocs/internal/logger"
	"rentdocs/internal/metrics"
	"rentdocs/internal/otel"
	"rentdocs/internal/publish"
	"rentdocs/internal/reference"
	"rentdocs/internal/schema"
	"rentdocs/internal/service"
	"rentdocs/internal/storage"
	"rentdocs/internal/template"
)

const shutdownTimeout = 10 * time.Second

// @title RentSmart document API
// @version 1.0
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer log.Sync() //nolint:errcheck

	if cfg.AuthToken == "" {
		log.Fatal("RENTSMART_VALID_TOKEN must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal("failed to initialize tracing", zap.Error(err))
	}

	files, err := newStorage(ctx, cfg)
	if err != nil {
		log.Fatal("failed to initialize document storage", zap.String("backend", cfg.Storage.Backend), zap.Error(err))
	}

	// Templates, schemas and reference data are read once and kept for the process lifetime.
	var templateFS fs.FS
	if cfg.TemplatesDir != "" {
		templateFS = os.DirFS(cfg.TemplatesDir)
	}
	templates, err := template.NewStore(templateFS)
	if err != nil {
		log.Fatal("failed to load templates", zap.Error(err))
	}
	schemas, err := schema.NewRegistry(schema.Definitions())
	if err != nil {
		log.Fatal("failed to compile field schemas", zap.Error(err))
	}
	table, err := reference.Load(reference.Options{
		DataFile:           cfg.Reference.DataFile,
		DefaultDescription: cfg.Reference.DefaultDescription,
		DefaultURL:         cfg.Reference.DefaultURL,
	})
	if err != nil {
		log.Fatal("failed to load reference data", zap.Error(err))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	docMetrics, err := metrics.NewDocuments(reg)
	if err != nil {
		log.Fatal("failed to register document metrics", zap.Error(err))
	}
	httpMetrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal("failed to register http metrics", zap.Error(err))
	}

	docSvc := service.NewDocumentService(
		templates,
		document.NewPDFGenerator(document.PDFOptions{Title: "RentSmart document", Author: "RentSmart"}),
		publish.New(files, cfg.PublicBaseURL),
		service.WithMetrics(docMetrics),
		service.WithLogger(log),
	)

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		BodyLimit:             cfg.BodyLimit,
		DisableStartupMessage: true,
	})

	// Register global middleware
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger(log))
	app.Use(httpMetrics.Handler())

	handlers.RegisterRoutes(app, handlers.Dependencies{
		Documents:     docSvc,
		Schemas:       schemas,
		Reference:     table,
		Files:         files,
		AuthToken:     cfg.AuthToken,
		ValidatePhone: cfg.ValidatePhone,
		Log:           log,
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port
	serveErr := make(chan error, 1)
	go func() {
		log.Info("server_started", zap.String("addr", addr), zap.String("storage_backend", cfg.Storage.Backend))
		serveErr <- app.Listen(addr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			log.Fatal("failed to start server", zap.Error(err))
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("server_shutdown_failed", zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("tracing_shutdown_failed", zap.Error(err))
	}
	log.Info("server_stopped")
}

func newStorage(ctx context.Context, cfg *config.AppConfig) (storage.Storage, error) {
	switch cfg.Storage.Backend {
	case "local":
		return storage.NewLocal(cfg.Storage.FilesDir)
	case "minio":
		return storage.NewMinIO(ctx, cfg.MinIO)
	default:
		return nil, errors.New("STORAGE_BACKEND must be local or minio")
	}
}
