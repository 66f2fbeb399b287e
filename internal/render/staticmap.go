package render

import (
	"fmt"
	"image"
	"image/color"

	sm "github.com/flopp/go-staticmaps"
	"github.com/golang/geo/s2"
	"github.com/mazznoer/csscolorparser"

	"github.com/couchcryptid/ejc-map/internal/domain"
)

// StaticRenderer produces the raster snapshot of the map. The viewport
// auto-fits the plotted objects; the style's tile URL applies only to the
// interactive document (static tiles come from the library's provider).
type StaticRenderer struct {
	style Style
}

// NewStaticRenderer creates a renderer with the given style.
func NewStaticRenderer(style Style) *StaticRenderer {
	return &StaticRenderer{style: style}
}

// Render draws the path and markers onto map tiles at the view's pixel size.
// Tile fetching happens over the network inside the library.
func (r *StaticRenderer) Render(view MapView) (image.Image, error) {
	path, markers, err := r.buildObjects(view.Records)
	if err != nil {
		return nil, err
	}

	ctx := sm.NewContext()
	ctx.SetSize(view.Width, view.Height)
	if path != nil {
		ctx.AddObject(path)
	}
	for _, m := range markers {
		ctx.AddObject(m)
	}

	img, err := ctx.Render()
	if err != nil {
		return nil, fmt.Errorf("render static map: %w", err)
	}
	return img, nil
}

// buildObjects converts records into map objects: one path through all
// records in dataset order (only when there are at least two points) and one
// colored marker per record.
func (r *StaticRenderer) buildObjects(records []domain.AnnotatedRecord) (*sm.Path, []*sm.Marker, error) {
	positions := make([]s2.LatLng, len(records))
	markers := make([]*sm.Marker, len(records))

	for i, rec := range records {
		positions[i] = s2.LatLngFromDegrees(rec.Lat, rec.Lon)

		col, err := parseColor(rec.Color)
		if err != nil {
			return nil, nil, err
		}
		markers[i] = sm.NewMarker(positions[i], col, r.style.Marker.Size)
	}

	var path *sm.Path
	if len(positions) >= 2 {
		pathColor, err := parseColor(r.style.Path.Color)
		if err != nil {
			return nil, nil, err
		}
		// Sub-pixel widths disappear in the raster; draw at least one pixel.
		weight := max(r.style.Path.Width, 1)
		path = sm.NewPath(positions, pathColor, weight)
	}

	return path, markers, nil
}

// parseColor accepts any CSS color token (hex, rgb(), named).
func parseColor(token string) (color.Color, error) {
	c, err := csscolorparser.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("parse color %q: %w", token, err)
	}
	r, g, b, a := c.RGBA255()
	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}
