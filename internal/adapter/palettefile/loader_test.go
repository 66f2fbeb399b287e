package palettefile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/couchcryptid/ejc-map/internal/adapter/palettefile"
	"github.com/couchcryptid/ejc-map/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePalette(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "colors.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load(t *testing.T) {
	path := writePalette(t, `[
		{"name": "red", "color": "#d62728"},
		{"name": "green", "color": "#2ca02c"},
		{"color": "#1f77b4"}
	]`)

	palette, err := palettefile.NewLoader(path).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.Palette{"#d62728", "#2ca02c", "#1f77b4"}, palette)
}

func TestLoader_Load_MissingFile(t *testing.T) {
	_, err := palettefile.NewLoader(filepath.Join(t.TempDir(), "absent.json")).Load(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoader_Load_Malformed(t *testing.T) {
	path := writePalette(t, `{"color": "#d62728"}`)

	_, err := palettefile.NewLoader(path).Load(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse palette")
}

func TestLoader_Load_MissingColorField(t *testing.T) {
	path := writePalette(t, `[{"name": "red"}]`)

	_, err := palettefile.NewLoader(path).Load(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry 0: missing color field")
}

func TestLoader_Load_EmptyArray(t *testing.T) {
	path := writePalette(t, `[]`)

	palette, err := palettefile.NewLoader(path).Load(context.Background())

	// An empty palette loads fine; color assignment rejects it later.
	require.NoError(t, err)
	assert.Empty(t, palette)
}
