package domain

// EventRecord is one row of the editions dataset, immutable once loaded.
type EventRecord struct {
	Issue   string  `json:"issue"`
	Year    int     `json:"year"`
	City    string  `json:"city"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// LocationKey identifies a unique host location. Matching is exact on all
// four fields, including the float coordinates, with no tolerance.
type LocationKey struct {
	City    string
	Country string
	Lat     float64
	Lon     float64
}

// Key returns the record's grouping and join key.
func (r EventRecord) Key() LocationKey {
	return LocationKey{City: r.City, Country: r.Country, Lat: r.Lat, Lon: r.Lon}
}

// LocationSummary aggregates every edition hosted at one location. Issues and
// Years hold the member rows' labels in original row order, " | "-joined.
type LocationSummary struct {
	LocationKey
	Issues string
	Years  string
}

// AnnotatedRecord is an EventRecord extended with its location's summary
// strings and an assigned color token.
type AnnotatedRecord struct {
	EventRecord
	Issues string `json:"issues"`
	Years  string `json:"years"`
	Color  string `json:"color"`
}

// Palette is an ordered sequence of color tokens.
type Palette []string
