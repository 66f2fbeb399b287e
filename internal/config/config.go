package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all generator settings, populated from environment variables.
// The defaults reproduce the canonical run: read resources/, write output/
// at 1000x800, no preview server, no geocoding.
type Config struct {
	DatasetPath string
	PalettePath string
	StylePath   string // optional YAML rendering style; empty means built-in defaults

	OutputDir  string
	BaseName   string
	IndexPath  string // root-level duplicate of the interactive document
	WidthPx    int
	HeightPx   int
	WriteHTML  bool
	WriteImage bool

	PreviewAddr     string // empty disables the preview server
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
	MetricsTextfile string // empty disables textfile export

	// Mapbox geocoding configuration.
	MapboxToken     string
	MapboxEnabled   bool
	MapboxTimeout   time.Duration
	MapboxCacheSize int
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	widthPx, err := parsePositiveInt("WIDTH_PX", 1000)
	if err != nil {
		return nil, err
	}
	heightPx, err := parsePositiveInt("HEIGHT_PX", 800)
	if err != nil {
		return nil, err
	}
	writeHTML, err := parseBool("WRITE_HTML", true)
	if err != nil {
		return nil, err
	}
	writeImage, err := parseBool("WRITE_IMAGE", true)
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := parsePositiveDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	mapboxTimeout, err := parsePositiveDuration("MAPBOX_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}
	mapboxCacheSize, err := parsePositiveInt("MAPBOX_CACHE_SIZE", 1000)
	if err != nil {
		return nil, err
	}

	mapboxToken := os.Getenv("MAPBOX_TOKEN")
	mapboxEnabled := mapboxToken != ""
	if v := os.Getenv("MAPBOX_ENABLED"); v != "" {
		mapboxEnabled = v == "true"
	}

	cfg := &Config{
		DatasetPath: envOrDefault("DATASET_PATH", "resources/list_of_ejcs.csv"),
		PalettePath: envOrDefault("PALETTE_PATH", "resources/colors.json"),
		StylePath:   os.Getenv("STYLE_PATH"),

		OutputDir:  envOrDefault("OUTPUT_DIR", "output"),
		BaseName:   envOrDefault("OUTPUT_BASE_NAME", "ejc_map"),
		IndexPath:  envOrDefault("INDEX_HTML_PATH", "index.html"),
		WidthPx:    widthPx,
		HeightPx:   heightPx,
		WriteHTML:  writeHTML,
		WriteImage: writeImage,

		PreviewAddr:     os.Getenv("PREVIEW_ADDR"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
		MetricsTextfile: os.Getenv("METRICS_TEXTFILE"),

		MapboxToken:     mapboxToken,
		MapboxEnabled:   mapboxEnabled,
		MapboxTimeout:   mapboxTimeout,
		MapboxCacheSize: mapboxCacheSize,
	}

	if cfg.DatasetPath == "" {
		return nil, errors.New("DATASET_PATH is required")
	}
	if cfg.PalettePath == "" {
		return nil, errors.New("PALETTE_PATH is required")
	}
	if cfg.BaseName == "" {
		return nil, errors.New("OUTPUT_BASE_NAME is required")
	}
	if !cfg.WriteHTML && !cfg.WriteImage {
		return nil, errors.New("WRITE_HTML and WRITE_IMAGE are both false; nothing to do")
	}
	if cfg.MapboxEnabled && cfg.MapboxToken == "" {
		return nil, errors.New("MAPBOX_ENABLED is true but MAPBOX_TOKEN is not set")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parsePositiveInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive integer", key, s)
	}
	return n, nil
}

func parseBool(key string, fallback bool) (bool, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	return v, nil
}

func parsePositiveDuration(key string, fallback time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive duration", key, s)
	}
	return d, nil
}
