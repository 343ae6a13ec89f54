package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gogostanoev/e-commerce-backend-assignment/internal/handler"
	mid "github.com/gogostanoev/e-commerce-backend-assignment/internal/middleware"
	"github.com/gogostanoev/e-commerce-backend-assignment/internal/model"
	"github.com/gogostanoev/e-commerce-backend-assignment/internal/repository"
	"github.com/gogostanoev/e-commerce-backend-assignment/internal/service"
	"github.com/gogostanoev/e-commerce-backend-assignment/pkg/config"
	"github.com/gogostanoev/e-commerce-backend-assignment/pkg/database"
	"github.com/gogostanoev/e-commerce-backend-assignment/pkg/logger"
	"github.com/gogostanoev/e-commerce-backend-assignment/pkg/tracing"
	"github.com/gogostanoev/e-commerce-backend-assignment/prometheus"

	"github.com/labstack/echo/v4"
	clientprom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App holds the dependencies shared by both transports.
type App struct {
	Config   *config.Config
	Log      *zap.Logger
	Echo     *echo.Echo
	Metrics  *prometheus.Metrics
	Products service.ProductOperations
	Images   service.ImageOperations

	db             *gorm.DB
	shutdownTracer func(context.Context) error
}

// New loads configuration and wires logging, tracing, the database, metrics
// and the service layer. The returned Echo instance already serves /health and
// /metrics; callers mount their transport on it.
func New(ctx context.Context, serviceName string, opts ...service.Option) (*App, error) {
	cfg, err := config.Load(serviceName)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := logger.InitLogger(cfg); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	log := logger.GetLogger()
	log.Info("Starting "+serviceName, cfg.LogFields()...)

	shutdownTracer, err := tracing.InitTracer(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	db, err := database.InitDB(&cfg.DB)
	if err != nil {
		_ = shutdownTracer(ctx)
		return nil, fmt.Errorf("init database: %w", err)
	}
	log.Info("Database connection established")

	if err := database.MigrateModels(db, model.Models()...); err != nil {
		_ = database.Close(db)
		_ = shutdownTracer(ctx)
		return nil, fmt.Errorf("migrate models: %w", err)
	}
	log.Info("Database migration completed")

	registry := clientprom.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := prometheus.NewMetrics(registry, cfg.Metrics.Prefix)
	log.Info("Prometheus metrics initialized", zap.String("metrics_prefix", cfg.Metrics.Prefix))

	opts = append(opts, service.WithMetrics(metrics))
	products := repository.NewProductRepository(db, metrics)
	images := repository.NewImageRepository(db, metrics)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	mid.Register(e, metrics)

	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	health := handler.NewHealthHandler(func(ctx context.Context) error { return database.Ping(ctx, db) })
	e.GET("/health", health.HealthCheck)

	return &App{
		Config:         cfg,
		Log:            log,
		Echo:           e,
		Metrics:        metrics,
		Products:       service.NewProductService(products, log, opts...),
		Images:         service.NewImageService(images, products, log, opts...),
		db:             db,
		shutdownTracer: shutdownTracer,
	}, nil
}

// Run serves on port until ctx is canceled, then shuts everything down.
func (a *App) Run(ctx context.Context, port string) error {
	errCh := make(chan error, 1)

	go func() {
		a.Log.Info("Starting server", zap.String("port", port))
		if err := a.Echo.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.Log.Info("Shutdown signal received")
	case err := <-errCh:
		a.Shutdown()
		return err
	}

	a.Shutdown()
	return nil
}

// Shutdown gracefully stops the server and releases resources.
func (a *App) Shutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.Echo.Shutdown(shutdownCtx); err != nil {
		a.Log.Error("Server shutdown error", zap.Error(err))
	}
	if err := a.shutdownTracer(shutdownCtx); err != nil {
		a.Log.Error("Tracer shutdown error", zap.Error(err))
	}
	if err := database.Close(a.db); err != nil {
		a.Log.Error("Database close error", zap.Error(err))
	}

	a.Log.Info("Application stopped")
	_ = a.Log.Sync()
}
