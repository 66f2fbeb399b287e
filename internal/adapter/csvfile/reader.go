// Package csvfile loads the editions dataset from a semicolon-separated CSV file.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/couchcryptid/ejc-map/internal/domain"
)

// Separator is the field delimiter used by the editions dataset.
const Separator = ';'

// requiredColumns are the header names the dataset must provide,
// matched case-insensitively.
var requiredColumns = []string{"issue", "year", "city", "country", "latitude", "longitude"}

// Reader loads edition records from a CSV file.
// It implements pipeline.DatasetSource.
type Reader struct {
	path string
}

// NewReader creates a dataset reader for the given file path.
func NewReader(path string) *Reader {
	return &Reader{path: path}
}

// Load reads the whole dataset into memory, preserving file order. It fails
// on a missing file, missing columns, or fields that do not parse to their
// expected types; errors name the offending line.
func (r *Reader) Load(_ context.Context) ([]domain.EventRecord, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.Comma = Separator
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", r.path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("dataset %s has no header row", r.path)
	}

	colIdx, err := indexColumns(rows[0])
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", r.path, err)
	}

	records := make([]domain.EventRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, err := parseRow(row, colIdx)
		if err != nil {
			// Line numbers are 1-based with the header on line 1.
			return nil, fmt.Errorf("dataset %s line %d: %w", r.path, i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// indexColumns maps lowercased header names to their positions and verifies
// all required columns are present.
func indexColumns(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}
	return idx, nil
}

func parseRow(row []string, colIdx map[string]int) (domain.EventRecord, error) {
	get := func(col string) string {
		i := colIdx[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	year, err := strconv.Atoi(get("year"))
	if err != nil {
		return domain.EventRecord{}, fmt.Errorf("parse year %q: %w", get("year"), err)
	}
	lat, err := strconv.ParseFloat(get("latitude"), 64)
	if err != nil {
		return domain.EventRecord{}, fmt.Errorf("parse latitude %q: %w", get("latitude"), err)
	}
	lon, err := strconv.ParseFloat(get("longitude"), 64)
	if err != nil {
		return domain.EventRecord{}, fmt.Errorf("parse longitude %q: %w", get("longitude"), err)
	}

	return domain.EventRecord{
		Issue:   get("issue"),
		Year:    year,
		City:    get("city"),
		Country: get("country"),
		Lat:     lat,
		Lon:     lon,
	}, nil
}
