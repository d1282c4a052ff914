package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/storefront-discovery/api/openapi"
	"github.com/donaldgifford/storefront-discovery/internal/api/handlers"
	"github.com/donaldgifford/storefront-discovery/internal/api/middleware"
	"github.com/donaldgifford/storefront-discovery/internal/catalog"
	"github.com/donaldgifford/storefront-discovery/internal/config"
	"github.com/donaldgifford/storefront-discovery/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the catalog API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	source, err := catalog.LoadFile(cfg.Catalog.FixturePath, catalogOptions(&cfg.Catalog, &cfg.Server)...)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	log.Info("catalog loaded",
		"fixture", cfg.Catalog.FixturePath,
		"categories", source.Categories(),
		"latency", cfg.Server.Latency,
	)

	e := newServer(source, log)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	addr := cfg.Server.Addr()
	log.Info("starting server", "addr", addr)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

func catalogOptions(c *config.CatalogConfig, s *config.ServerConfig) []catalog.Option {
	opts := []catalog.Option{
		catalog.WithLimits(c.DefaultLimit, c.MaxLimit),
		catalog.WithLatency(s.Latency),
	}
	if len(c.Categories) > 0 {
		opts = append(opts, catalog.WithCategories(c.Categories))
	}
	return opts
}

// newServer builds the Echo instance with middleware, probes, metrics and
// the catalog API.
func newServer(source catalog.ProductSource, log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(log))
	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())

	health := handlers.NewHealthHandler(source)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("Storefront Catalog API", Version))
	handlers.RegisterProductRoutes(api, handlers.NewProductsHandler(source))
	openapi.RegisterRoutes(e)

	return e
}
