// Package render turns prepared edition records into the map artifacts: an
// interactive Leaflet HTML document and a static raster image.
package render

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Style controls map appearance for both artifacts. Zero values in a loaded
// file fall back to the defaults, so a style file only needs the fields it
// wants to override.
type Style struct {
	Marker struct {
		Size float64 `yaml:"size"` // marker diameter in pixels
	} `yaml:"marker"`
	Path struct {
		Width float64 `yaml:"width"`
		Color string  `yaml:"color"` // any CSS color token
	} `yaml:"path"`
	Map struct {
		CenterLat   float64 `yaml:"center_lat"`
		CenterLon   float64 `yaml:"center_lon"`
		Zoom        float64 `yaml:"zoom"`
		TileURL     string  `yaml:"tile_url"`
		Attribution string  `yaml:"attribution"`
	} `yaml:"map"`
}

// DefaultStyle returns the canonical EJC map look: small dark-gray path,
// 16px markers, centered on the North Sea where the editions cluster.
func DefaultStyle() Style {
	var s Style
	s.Marker.Size = 16
	s.Path.Width = 0.6
	s.Path.Color = "darkgray"
	s.Map.CenterLat = 51
	s.Map.CenterLon = 2
	s.Map.Zoom = 3.6
	s.Map.TileURL = "https://{s}.basemaps.cartocdn.com/rastertiles/voyager_nolabels/{z}/{x}/{y}{r}.png"
	s.Map.Attribution = `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors &copy; <a href="https://carto.com/attributions">CARTO</a>`
	return s
}

// LoadStyle reads a YAML style file over the defaults. An empty path returns
// the defaults unchanged.
func LoadStyle(path string) (Style, error) {
	style := DefaultStyle()
	if path == "" {
		return style, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, fmt.Errorf("open style: %w", err)
	}

	var overrides Style
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return Style{}, fmt.Errorf("parse style %s: %w", path, err)
	}
	merge(&style, overrides)

	if style.Marker.Size <= 0 {
		return Style{}, fmt.Errorf("style %s: marker size must be positive", path)
	}
	if style.Path.Width <= 0 {
		return Style{}, fmt.Errorf("style %s: path width must be positive", path)
	}
	return style, nil
}

func merge(base *Style, overrides Style) {
	if overrides.Marker.Size != 0 {
		base.Marker.Size = overrides.Marker.Size
	}
	if overrides.Path.Width != 0 {
		base.Path.Width = overrides.Path.Width
	}
	if overrides.Path.Color != "" {
		base.Path.Color = overrides.Path.Color
	}
	if overrides.Map.CenterLat != 0 {
		base.Map.CenterLat = overrides.Map.CenterLat
	}
	if overrides.Map.CenterLon != 0 {
		base.Map.CenterLon = overrides.Map.CenterLon
	}
	if overrides.Map.Zoom != 0 {
		base.Map.Zoom = overrides.Map.Zoom
	}
	if overrides.Map.TileURL != "" {
		base.Map.TileURL = overrides.Map.TileURL
	}
	if overrides.Map.Attribution != "" {
		base.Map.Attribution = overrides.Map.Attribution
	}
}
