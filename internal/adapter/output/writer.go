// Package output persists rendered artifacts to disk.
package output

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
)

// Writer writes the interactive document and the raster snapshot. The
// interactive document is additionally duplicated to a root-level index file
// so the repository can be served as a static site.
type Writer struct {
	outputDir string
	baseName  string
	indexPath string // empty disables the duplicate
	logger    *slog.Logger
}

// NewWriter creates an artifact writer.
func NewWriter(outputDir, baseName, indexPath string, logger *slog.Logger) *Writer {
	return &Writer{
		outputDir: outputDir,
		baseName:  baseName,
		indexPath: indexPath,
		logger:    logger,
	}
}

// HTMLPath returns where the interactive document is written.
func (w *Writer) HTMLPath() string {
	return filepath.Join(w.outputDir, w.baseName+".html")
}

// ImagePath returns where the raster snapshot is written.
func (w *Writer) ImagePath() string {
	return filepath.Join(w.outputDir, w.baseName+".png")
}

// WriteHTML persists the interactive document and its index duplicate.
func (w *Writer) WriteHTML(data []byte) error {
	if err := w.ensureOutputDir(); err != nil {
		return err
	}

	path := w.HTMLPath()
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write interactive map: %w", err)
	}
	w.logger.Info("wrote interactive map", "path", path, "bytes", len(data))

	if w.indexPath == "" {
		return nil
	}
	if err := os.WriteFile(w.indexPath, data, 0o644); err != nil {
		return fmt.Errorf("write index duplicate: %w", err)
	}
	w.logger.Info("wrote index duplicate", "path", w.indexPath)
	return nil
}

// WriteImage encodes the raster snapshot as PNG.
func (w *Writer) WriteImage(img image.Image) error {
	if err := w.ensureOutputDir(); err != nil {
		return err
	}

	path := w.ImagePath()
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode image: %w", err)
	}
	w.logger.Info("wrote static map", "path", path)
	return nil
}

func (w *Writer) ensureOutputDir() error {
	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return nil
}
