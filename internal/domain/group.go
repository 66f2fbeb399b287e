package domain

import (
	"strconv"
	"strings"
)

// summarySeparator joins the issue and year labels of editions sharing a host.
const summarySeparator = " | "

// GroupByLocation partitions records by LocationKey and returns one summary
// per distinct location, in first-appearance order. Every record belongs to
// exactly one summary; member labels keep their original relative order.
func GroupByLocation(records []EventRecord) []LocationSummary {
	type group struct {
		issues []string
		years  []string
	}

	groups := make(map[LocationKey]*group, len(records))
	order := make([]LocationKey, 0, len(records))

	for _, r := range records {
		key := r.Key()
		g, ok := groups[key]
		if !ok {
			g = &group{}
			groups[key] = g
			order = append(order, key)
		}
		g.issues = append(g.issues, r.Issue)
		g.years = append(g.years, strconv.Itoa(r.Year))
	}

	summaries := make([]LocationSummary, 0, len(order))
	for _, key := range order {
		g := groups[key]
		summaries = append(summaries, LocationSummary{
			LocationKey: key,
			Issues:      strings.Join(g.issues, summarySeparator),
			Years:       strings.Join(g.years, summarySeparator),
		})
	}
	return summaries
}

// JoinSummaries left-joins location summaries onto the records. The result
// has the same length and order as records; no rows are dropped, duplicated,
// or reordered. A record whose key has no summary keeps empty Issues/Years;
// this does not occur for summaries produced by GroupByLocation over the
// same records, but is not an error.
func JoinSummaries(records []EventRecord, summaries []LocationSummary) []AnnotatedRecord {
	byKey := make(map[LocationKey]LocationSummary, len(summaries))
	for _, s := range summaries {
		byKey[s.LocationKey] = s
	}

	annotated := make([]AnnotatedRecord, len(records))
	for i, r := range records {
		annotated[i] = AnnotatedRecord{EventRecord: r}
		if s, ok := byKey[r.Key()]; ok {
			annotated[i].Issues = s.Issues
			annotated[i].Years = s.Years
		}
	}
	return annotated
}
