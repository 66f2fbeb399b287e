// Package pipeline orchestrates one generator pass: load the dataset and
// palette, prepare annotated records, render the artifacts, write them out.
package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/ejc-map/internal/domain"
	"github.com/couchcryptid/ejc-map/internal/observability"
	"github.com/couchcryptid/ejc-map/internal/render"
)

// DatasetSource loads the edition records.
type DatasetSource interface {
	Load(ctx context.Context) ([]domain.EventRecord, error)
}

// PaletteSource loads the color palette.
type PaletteSource interface {
	Load(ctx context.Context) (domain.Palette, error)
}

// InteractiveRenderer writes the interactive map document.
type InteractiveRenderer interface {
	Render(w io.Writer, view render.MapView) error
}

// ImageRenderer draws the static map snapshot.
type ImageRenderer interface {
	Render(view render.MapView) (image.Image, error)
}

// ArtifactWriter persists rendered artifacts.
type ArtifactWriter interface {
	WriteHTML(data []byte) error
	WriteImage(img image.Image) error
}

// Params wires a Pipeline. Geocoder may be nil (coordinate backfill off).
type Params struct {
	Datasets DatasetSource
	Palettes PaletteSource
	Geocoder domain.Geocoder
	HTML     InteractiveRenderer
	Image    ImageRenderer
	Writer   ArtifactWriter
	Logger   *slog.Logger
	Metrics  *observability.Metrics

	Width      int
	Height     int
	WriteHTML  bool
	WriteImage bool
}

// Pipeline executes the load-prepare-render-write pass.
type Pipeline struct {
	p     Params
	ready atomic.Bool
}

// New creates a Pipeline from its wiring.
func New(p Params) *Pipeline {
	return &Pipeline{p: p}
}

// CheckReadiness returns nil once a run has produced its artifacts, or an
// error describing why the preview has nothing to serve yet.
func (pl *Pipeline) CheckReadiness(_ context.Context) error {
	if !pl.ready.Load() {
		return errors.New("no artifacts generated yet")
	}
	return nil
}

// Run executes one pass. Any failure aborts the run; there are no retries
// and no partial-output recovery.
func (pl *Pipeline) Run(ctx context.Context) error {
	pl.p.Metrics.RunsTotal.Inc()
	if err := pl.run(ctx); err != nil {
		pl.p.Metrics.RunFailures.Inc()
		return err
	}
	pl.ready.Store(true)
	return nil
}

func (pl *Pipeline) run(ctx context.Context) error {
	records, err := pl.p.Datasets.Load(ctx)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	palette, err := pl.p.Palettes.Load(ctx)
	if err != nil {
		return fmt.Errorf("load palette: %w", err)
	}

	records = domain.FillMissingCoordinates(ctx, records, pl.p.Geocoder, pl.p.Logger)

	pl.p.Metrics.DatasetRows.Set(float64(len(records)))
	pl.p.Metrics.DistinctLocations.Set(float64(countDistinctLocations(records)))
	pl.p.Metrics.PaletteSize.Set(float64(len(palette)))

	start := time.Now()
	annotated, err := Prepare(records, palette)
	if err != nil {
		return err
	}
	pl.p.Metrics.PrepareDuration.Observe(time.Since(start).Seconds())

	view := render.MapView{
		Records:     annotated,
		Width:       pl.p.Width,
		Height:      pl.p.Height,
		GeneratedAt: domain.Now(),
	}

	if pl.p.WriteHTML {
		if err := pl.renderHTML(view); err != nil {
			return err
		}
	}
	if pl.p.WriteImage {
		if err := pl.renderImage(view); err != nil {
			return err
		}
	}

	pl.p.Logger.Info("run complete",
		"records", len(records),
		"locations", countDistinctLocations(records),
		"palette", len(palette),
	)
	return nil
}

func (pl *Pipeline) renderHTML(view render.MapView) error {
	start := time.Now()
	var buf bytes.Buffer
	if err := pl.p.HTML.Render(&buf, view); err != nil {
		return fmt.Errorf("render interactive map: %w", err)
	}
	if err := pl.p.Writer.WriteHTML(buf.Bytes()); err != nil {
		return err
	}
	pl.p.Metrics.RenderDuration.WithLabelValues("html").Observe(time.Since(start).Seconds())
	return nil
}

func (pl *Pipeline) renderImage(view render.MapView) error {
	start := time.Now()
	img, err := pl.p.Image.Render(view)
	if err != nil {
		return fmt.Errorf("render static map: %w", err)
	}
	if err := pl.p.Writer.WriteImage(img); err != nil {
		return err
	}
	pl.p.Metrics.RenderDuration.WithLabelValues("image").Observe(time.Since(start).Seconds())
	return nil
}
