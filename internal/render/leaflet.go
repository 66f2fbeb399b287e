package render

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"time"
)

// LeafletRenderer produces the interactive map document. The page is
// CDN-linked (Leaflet and tiles load from the network), matching how the map
// is published as a static site.
type LeafletRenderer struct {
	style Style
	tmpl  *template.Template
}

// NewLeafletRenderer creates a renderer with the given style.
func NewLeafletRenderer(style Style) *LeafletRenderer {
	return &LeafletRenderer{
		style: style,
		tmpl:  template.Must(template.New("map").Parse(leafletTemplate)),
	}
}

// markerPayload is the per-record data embedded in the page as JSON.
type markerPayload struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Color   string  `json:"color"`
	Issue   string  `json:"issue"`
	Year    int     `json:"year"`
	City    string  `json:"city"`
	Country string  `json:"country"`
	Issues  string  `json:"issues"`
	Years   string  `json:"years"`
}

type leafletData struct {
	Title        string
	Width        int
	Height       int
	CenterLat    float64
	CenterLon    float64
	Zoom         float64
	TileURL      string
	Attribution  string
	PathColor    string
	PathWeight   float64
	MarkerRadius float64
	Markers      template.JS
	GeneratedAt  string
}

// Render writes the complete HTML document for the view.
func (r *LeafletRenderer) Render(w io.Writer, view MapView) error {
	payloads := make([]markerPayload, len(view.Records))
	for i, rec := range view.Records {
		payloads[i] = markerPayload{
			Lat:     rec.Lat,
			Lon:     rec.Lon,
			Color:   rec.Color,
			Issue:   rec.Issue,
			Year:    rec.Year,
			City:    rec.City,
			Country: rec.Country,
			Issues:  rec.Issues,
			Years:   rec.Years,
		}
	}

	markers, err := marshalTemplateJS(payloads)
	if err != nil {
		return fmt.Errorf("encode markers: %w", err)
	}

	data := leafletData{
		Title:        "EJC Map",
		Width:        view.Width,
		Height:       view.Height,
		CenterLat:    r.style.Map.CenterLat,
		CenterLon:    r.style.Map.CenterLon,
		Zoom:         r.style.Map.Zoom,
		TileURL:      r.style.Map.TileURL,
		Attribution:  r.style.Map.Attribution,
		PathColor:    r.style.Path.Color,
		PathWeight:   r.style.Path.Width,
		MarkerRadius: r.style.Marker.Size / 2,
		Markers:      markers,
		GeneratedAt:  view.GeneratedAt.UTC().Format(time.RFC3339),
	}
	return r.tmpl.Execute(w, data)
}

// marshalTemplateJS encodes a value as JSON and tags it as safe JavaScript so
// html/template embeds it verbatim inside the page script.
func marshalTemplateJS(v any) (template.JS, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return template.JS(payload), nil //nolint:gosec // payload is marshaled from typed structs, not user HTML
}

const leafletTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta name="generated" content="{{.GeneratedAt}}">
<title>{{.Title}}</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>
html, body { margin: 0; padding: 0; }
#map { width: {{.Width}}px; height: {{.Height}}px; }
.leaflet-popup-content { font-size: 15px; }
</style>
</head>
<body>
<div id="map"></div>
<script>
var map = L.map('map').setView([{{.CenterLat}}, {{.CenterLon}}], {{.Zoom}});
L.tileLayer({{.TileURL}}, {attribution: {{.Attribution}}}).addTo(map);

var markers = {{.Markers}};

L.polyline(markers.map(function (m) { return [m.lat, m.lon]; }), {
  color: {{.PathColor}},
  weight: {{.PathWeight}}
}).addTo(map);

markers.forEach(function (m) {
  var popup = '<b>EJC ' + m.year + '</b><br>' +
    'Issue: ' + m.issue + '<br>' +
    'Location: ' + m.city + ', ' + m.country;
  if (m.issues !== m.issue) {
    popup += '<br>Editions here: ' + m.issues + ' (' + m.years + ')';
  }
  L.circleMarker([m.lat, m.lon], {
    radius: {{.MarkerRadius}},
    color: m.color,
    fillColor: m.color,
    fillOpacity: 0.9,
    weight: 1
  }).bindPopup(popup).addTo(map);
});
</script>
</body>
</html>
`
