// Package domain models European Juggling Convention (EJC) edition data.
//
// # Data Source
//
// The editions dataset is a semicolon-separated CSV maintained by hand in
// resources/list_of_ejcs.csv, one row per convention edition with columns
// issue, year, city, country, latitude, longitude. Row order is chronological
// and is the order the map path follows.
//
// # Host Locations
//
// Several cities have hosted more than one edition. A host location is
// identified by the exact tuple (city, country, latitude, longitude), the
// LocationKey. Equality is exact on all four fields, including the float
// coordinates: two rows describe the same location only when their
// coordinates are byte-for-byte the same in the source CSV. The dataset is
// curated so repeat hosts carry identical coordinates, and no fuzzy matching
// is wanted.
//
// Grouping rows by LocationKey produces one LocationSummary per location,
// whose Issues and Years fields concatenate the member rows' labels in their
// original relative order, joined with " | ":
//
//	Millstreet hosted editions 29 and 37  →  Issues "29 | 37", Years "2006 | 2014"
//
// Left-joining the summaries back onto the rows yields one AnnotatedRecord
// per edition, so every marker on the map can show the full hosting history
// of its location.
//
// # Color Assignment
//
// Colors come from a finite palette and are assigned positionally: row i gets
// palette[i mod len(palette)], repeating from the start when the dataset
// outgrows the palette. An empty palette is an error.
package domain
