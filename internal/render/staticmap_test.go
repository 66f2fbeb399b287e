package render

import (
	"image/color"
	"testing"

	"github.com/couchcryptid/ejc-map/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Render itself fetches tiles over the network, so tests cover object
// construction only.

func TestStaticRenderer_BuildObjects(t *testing.T) {
	r := NewStaticRenderer(DefaultStyle())

	path, markers, err := r.buildObjects(testView().Records)

	require.NoError(t, err)
	assert.Len(t, markers, 2)
	require.NotNil(t, path)
	assert.Len(t, path.Positions, 2)
}

func TestStaticRenderer_BuildObjects_SinglePointHasNoPath(t *testing.T) {
	r := NewStaticRenderer(DefaultStyle())
	records := []domain.AnnotatedRecord{
		{EventRecord: domain.EventRecord{Lat: 48.85, Lon: 2.35}, Color: "#d62728"},
	}

	path, markers, err := r.buildObjects(records)

	require.NoError(t, err)
	assert.Nil(t, path)
	assert.Len(t, markers, 1)
}

func TestStaticRenderer_BuildObjects_BadColor(t *testing.T) {
	r := NewStaticRenderer(DefaultStyle())
	records := []domain.AnnotatedRecord{
		{EventRecord: domain.EventRecord{Lat: 48.85, Lon: 2.35}, Color: "not-a-color"},
	}

	_, _, err := r.buildObjects(records)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `parse color "not-a-color"`)
}

func TestParseColor(t *testing.T) {
	t.Run("hex", func(t *testing.T) {
		c, err := parseColor("#d62728")
		require.NoError(t, err)
		assert.Equal(t, color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}, c)
	})

	t.Run("named CSS color", func(t *testing.T) {
		c, err := parseColor("darkgray")
		require.NoError(t, err)
		assert.Equal(t, color.RGBA{R: 0xa9, G: 0xa9, B: 0xa9, A: 0xff}, c)
	})
}
