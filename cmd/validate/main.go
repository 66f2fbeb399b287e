// Command validate performs integrity checks over the map's resource files:
// dataset schema and value sanity, grouping/join invariants, and palette
// color assignment. It exits non-zero when any phase fails.
//
// Usage:
//
//	go run ./cmd/validate \
//	  -dataset resources/list_of_ejcs.csv \
//	  -palette resources/colors.json
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/couchcryptid/ejc-map/internal/adapter/csvfile"
	"github.com/couchcryptid/ejc-map/internal/adapter/palettefile"
	"github.com/couchcryptid/ejc-map/internal/domain"
	"github.com/couchcryptid/ejc-map/internal/pipeline"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	datasetPath := flag.String("dataset", "resources/list_of_ejcs.csv", "path to the editions CSV")
	palettePath := flag.String("palette", "resources/colors.json", "path to the palette JSON")
	flag.Parse()

	if code := run(*datasetPath, *palettePath); code != 0 {
		os.Exit(code)
	}
}

func run(datasetPath, palettePath string) int {
	ctx := context.Background()

	fmt.Println("=== EJC Map Resource Validation ===")
	fmt.Println()

	records, err := csvfile.NewReader(datasetPath).Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load dataset: %v\n", err)
		return 1
	}

	palette, err := palettefile.NewLoader(palettePath).Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load palette: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateDataset(records),
		validateGrouping(records),
		validateColors(records, palette),
	}

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Records: %d rows, %d distinct locations, %d palette colors\n",
		len(records), len(domain.GroupByLocation(records)), len(palette))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

// ── Phase 1: Dataset sanity ──
// Field-level checks beyond what parsing enforces.

func validateDataset(records []domain.EventRecord) *phase {
	p := &phase{name: "Phase 1: Dataset sanity"}

	if len(records) == 0 {
		p.errorf("dataset has no rows")
		return p
	}

	for i, r := range records {
		line := i + 2 // header is line 1
		if r.Issue == "" {
			p.errorf("line %d: empty issue", line)
		}
		if r.City == "" {
			p.errorf("line %d: empty city", line)
		}
		if r.Country == "" {
			p.errorf("line %d: empty country", line)
		}
		if r.Year < 1970 || r.Year > 2100 {
			p.errorf("line %d: implausible year %d", line, r.Year)
		}
		if r.Lat < -90 || r.Lat > 90 {
			p.errorf("line %d: latitude %g out of range", line, r.Lat)
		}
		if r.Lon < -180 || r.Lon > 180 {
			p.errorf("line %d: longitude %g out of range", line, r.Lon)
		}
	}
	return p
}

// ── Phase 2: Grouping invariants ──
// Grouping must partition the rows, and the join must preserve them.

func validateGrouping(records []domain.EventRecord) *phase {
	p := &phase{name: "Phase 2: Grouping and join invariants"}

	summaries := domain.GroupByLocation(records)

	members := 0
	for _, s := range summaries {
		members += len(strings.Split(s.Issues, " | "))
	}
	if len(records) > 0 && members != len(records) {
		p.errorf("group members sum to %d, want %d rows", members, len(records))
	}

	annotated := domain.JoinSummaries(records, summaries)
	if len(annotated) != len(records) {
		p.errorf("join produced %d rows, want %d", len(annotated), len(records))
		return p
	}
	for i := range records {
		if annotated[i].EventRecord != records[i] {
			p.errorf("row %d changed identity or order through the join", i)
		}
		if annotated[i].Issues == "" {
			p.errorf("row %d has no location summary", i)
		}
		if !strings.Contains(annotated[i].Issues, records[i].Issue) {
			p.errorf("row %d: summary %q does not contain its own issue %q", i, annotated[i].Issues, records[i].Issue)
		}
	}
	return p
}

// ── Phase 3: Palette and color assignment ──

func validateColors(records []domain.EventRecord, palette domain.Palette) *phase {
	p := &phase{name: "Phase 3: Palette and color assignment"}

	if len(palette) == 0 {
		p.errorf("palette is empty")
		return p
	}
	for i, c := range palette {
		if !strings.HasPrefix(c, "#") && !isCSSWord(c) {
			p.errorf("palette entry %d: suspicious color token %q", i, c)
		}
	}

	annotated, err := pipeline.Prepare(records, palette)
	if err != nil {
		p.errorf("prepare failed: %v", err)
		return p
	}
	for i := range annotated {
		want := palette[i%len(palette)]
		if annotated[i].Color != want {
			p.errorf("row %d: color %q, want %q", i, annotated[i].Color, want)
		}
	}
	return p
}

func isCSSWord(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return s != ""
}
