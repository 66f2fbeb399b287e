package domain

import (
	"context"
	"log/slog"
)

// FillMissingCoordinates forward-geocodes records whose coordinates are both
// zero, resolving them from city and country. A nil geocoder is a no-op, and
// a failed or empty lookup leaves the record untouched; the map then plots
// that edition at 0,0 as the raw dataset said. The input slice is not
// modified.
func FillMissingCoordinates(ctx context.Context, records []EventRecord, geocoder Geocoder, logger *slog.Logger) []EventRecord {
	if geocoder == nil {
		return records
	}

	filled := make([]EventRecord, len(records))
	copy(filled, records)

	for i := range filled {
		r := &filled[i]
		if r.Lat != 0 || r.Lon != 0 {
			continue
		}
		if r.City == "" && r.Country == "" {
			continue
		}

		result, err := geocoder.ForwardGeocode(ctx, r.City, r.Country)
		if err != nil {
			logger.Warn("forward geocoding failed",
				"issue", r.Issue,
				"city", r.City,
				"country", r.Country,
				"error", err,
			)
			continue
		}
		if result.Lat == 0 && result.Lon == 0 {
			continue
		}

		r.Lat = result.Lat
		r.Lon = result.Lon
		logger.Debug("filled missing coordinates",
			"issue", r.Issue,
			"city", r.City,
			"lat", r.Lat,
			"lon", r.Lon,
			"confidence", result.Confidence,
		)
	}
	return filled
}
