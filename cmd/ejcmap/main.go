// Command ejcmap generates the EJC edition map: an interactive Leaflet HTML
// document and a static raster snapshot, built from the editions CSV and the
// color palette JSON. With PREVIEW_ADDR set it also serves the generated map
// locally until interrupted.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/ejc-map/internal/adapter/csvfile"
	"github.com/couchcryptid/ejc-map/internal/adapter/httpserver"
	"github.com/couchcryptid/ejc-map/internal/adapter/mapbox"
	"github.com/couchcryptid/ejc-map/internal/adapter/output"
	"github.com/couchcryptid/ejc-map/internal/adapter/palettefile"
	"github.com/couchcryptid/ejc-map/internal/config"
	"github.com/couchcryptid/ejc-map/internal/domain"
	"github.com/couchcryptid/ejc-map/internal/observability"
	"github.com/couchcryptid/ejc-map/internal/pipeline"
	"github.com/couchcryptid/ejc-map/internal/render"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	// Geocoding backfill is feature-flagged via MAPBOX_ENABLED / MAPBOX_TOKEN.
	var geocoder domain.Geocoder
	if cfg.MapboxEnabled {
		client := mapbox.NewClient(cfg.MapboxToken, cfg.MapboxTimeout, logger, metrics)
		geocoder = mapbox.NewCachedGeocoder(client, cfg.MapboxCacheSize, metrics)
		logger.Info("mapbox geocoding enabled", "cache_size", cfg.MapboxCacheSize, "timeout", cfg.MapboxTimeout)
	}

	style, err := render.LoadStyle(cfg.StylePath)
	if err != nil {
		logger.Error("failed to load style", "error", err)
		os.Exit(1)
	}

	writer := output.NewWriter(cfg.OutputDir, cfg.BaseName, cfg.IndexPath, logger)

	p := pipeline.New(pipeline.Params{
		Datasets: csvfile.NewReader(cfg.DatasetPath),
		Palettes: palettefile.NewLoader(cfg.PalettePath),
		Geocoder: geocoder,
		HTML:     render.NewLeafletRenderer(style),
		Image:    render.NewStaticRenderer(style),
		Writer:   writer,
		Logger:   logger,
		Metrics:  metrics,

		Width:      cfg.WidthPx,
		Height:     cfg.HeightPx,
		WriteHTML:  cfg.WriteHTML,
		WriteImage: cfg.WriteImage,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := p.Run(ctx); err != nil {
		logger.Error("generation failed", "error", err)
		os.Exit(1)
	}

	if cfg.MetricsTextfile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsTextfile); err != nil {
			logger.Error("metrics textfile export failed", "path", cfg.MetricsTextfile, "error", err)
		}
	}

	if cfg.PreviewAddr == "" {
		return
	}

	srv := httpserver.NewServer(cfg.PreviewAddr, writer.HTMLPath(), p, metrics.Handler(), logger)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("preview server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("preview server shutdown error", "error", err)
	}
	logger.Info("shutdown complete")
}
