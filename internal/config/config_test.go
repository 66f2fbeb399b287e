package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMapboxToken = "pk.test-token"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "resources/list_of_ejcs.csv", cfg.DatasetPath)
	assert.Equal(t, "resources/colors.json", cfg.PalettePath)
	assert.Empty(t, cfg.StylePath)
	assert.Equal(t, "output", cfg.OutputDir)
	assert.Equal(t, "ejc_map", cfg.BaseName)
	assert.Equal(t, "index.html", cfg.IndexPath)
	assert.Equal(t, 1000, cfg.WidthPx)
	assert.Equal(t, 800, cfg.HeightPx)
	assert.True(t, cfg.WriteHTML)
	assert.True(t, cfg.WriteImage)
	assert.Empty(t, cfg.PreviewAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.MetricsTextfile)
	assert.False(t, cfg.MapboxEnabled)
	assert.Empty(t, cfg.MapboxToken)
	assert.Equal(t, 5*time.Second, cfg.MapboxTimeout)
	assert.Equal(t, 1000, cfg.MapboxCacheSize)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("DATASET_PATH", "data/editions.csv")
	t.Setenv("PALETTE_PATH", "data/palette.json")
	t.Setenv("STYLE_PATH", "data/style.yaml")
	t.Setenv("OUTPUT_DIR", "dist")
	t.Setenv("OUTPUT_BASE_NAME", "conventions")
	t.Setenv("INDEX_HTML_PATH", "public/index.html")
	t.Setenv("WIDTH_PX", "1600")
	t.Setenv("HEIGHT_PX", "900")
	t.Setenv("WRITE_IMAGE", "false")
	t.Setenv("PREVIEW_ADDR", ":8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("METRICS_TEXTFILE", "output/metrics.prom")
	t.Setenv("MAPBOX_TOKEN", testMapboxToken)
	t.Setenv("MAPBOX_TIMEOUT", "10s")
	t.Setenv("MAPBOX_CACHE_SIZE", "500")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data/editions.csv", cfg.DatasetPath)
	assert.Equal(t, "data/palette.json", cfg.PalettePath)
	assert.Equal(t, "data/style.yaml", cfg.StylePath)
	assert.Equal(t, "dist", cfg.OutputDir)
	assert.Equal(t, "conventions", cfg.BaseName)
	assert.Equal(t, "public/index.html", cfg.IndexPath)
	assert.Equal(t, 1600, cfg.WidthPx)
	assert.Equal(t, 900, cfg.HeightPx)
	assert.True(t, cfg.WriteHTML)
	assert.False(t, cfg.WriteImage)
	assert.Equal(t, ":8080", cfg.PreviewAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "output/metrics.prom", cfg.MetricsTextfile)
	assert.True(t, cfg.MapboxEnabled)
	assert.Equal(t, testMapboxToken, cfg.MapboxToken)
	assert.Equal(t, 10*time.Second, cfg.MapboxTimeout)
	assert.Equal(t, 500, cfg.MapboxCacheSize)
}

func TestLoad_InvalidWidth(t *testing.T) {
	t.Setenv("WIDTH_PX", "zero")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WIDTH_PX")
}

func TestLoad_NegativeHeight(t *testing.T) {
	t.Setenv("HEIGHT_PX", "-100")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HEIGHT_PX")
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_NothingToDo(t *testing.T) {
	t.Setenv("WRITE_HTML", "false")
	t.Setenv("WRITE_IMAGE", "false")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to do")
}

func TestLoad_MapboxEnabledWithoutToken(t *testing.T) {
	t.Setenv("MAPBOX_ENABLED", "true")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MAPBOX_TOKEN")
}

func TestLoad_MapboxDisabledExplicitly(t *testing.T) {
	t.Setenv("MAPBOX_TOKEN", testMapboxToken)
	t.Setenv("MAPBOX_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.MapboxEnabled)
}
