package pipeline

import (
	"fmt"

	"github.com/couchcryptid/ejc-map/internal/domain"
)

// Prepare runs the data-preparation core: group editions by host location,
// left-join the summaries back onto the rows, and assign palette colors
// positionally (row i gets palette[i mod len(palette)]). The result has the
// same length and order as records.
func Prepare(records []domain.EventRecord, palette domain.Palette) ([]domain.AnnotatedRecord, error) {
	summaries := domain.GroupByLocation(records)
	annotated := domain.JoinSummaries(records, summaries)

	colors, err := domain.ExtendPalette(palette, len(records))
	if err != nil {
		return nil, fmt.Errorf("assign colors: %w", err)
	}
	for i := range annotated {
		annotated[i].Color = colors[i]
	}
	return annotated, nil
}

// countDistinctLocations reports how many unique host locations the records span.
func countDistinctLocations(records []domain.EventRecord) int {
	seen := make(map[domain.LocationKey]struct{}, len(records))
	for _, r := range records {
		seen[r.Key()] = struct{}{}
	}
	return len(seen)
}
