package report

import (
	"strings"
	"testing"
	"time"

	"curator/internal/classify"
	"curator/internal/fixture"
)

func TestSummary(t *testing.T) {
	_, c, sel := loadTestSelection(t)
	generated := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)

	got := Summary(c, sel, generated)

	wantFragments := []string{
		"# Fixture Curation Summary",
		"Generated: 2026-08-23T12:00:00Z",
		"## Category Counts",
		"### Races",
		"### Training Runs",
		"### Other Activities",
		"### Special Characteristics",
		"## Selected Fixtures",
		"### race_marathon",
		"- **Name:** City Marathon",
		"- **Date:** 2025-04-13",
		"- **Type:** Run (workout_type: 1)",
		"- **Distance:** 42.2 km",
		"- **Duration:** 183 min",
		"- **Photos:** 0, Comments: 0, Kudos: 0",
		"- **Description:** No",
		"- **Best efforts:** 0",
		"### training_easy",
		"- **Type:** Run (workout_type: None)",
	}
	for _, frag := range wantFragments {
		if !strings.Contains(got, frag) {
			t.Errorf("summary missing %q", frag)
		}
	}

	// Fixture subsections follow selection order.
	if strings.Index(got, "### race_marathon") > strings.Index(got, "### training_easy") {
		t.Error("fixture sections out of selection order")
	}
}

func TestSummary_CountTables(t *testing.T) {
	_, c, sel := loadTestSelection(t)
	got := Summary(c, sel, time.Now())

	wantRows := []string{
		"| Marathon | 1 |",
		"| Easy runs | 1 |",
		"| Ultra Marathon (50km+) | 0 |",
		"| Swims | 0 |",
		"| No GPS | 0 |",
	}
	for _, row := range wantRows {
		if !strings.Contains(got, row) {
			t.Errorf("summary missing count row %q", row)
		}
	}
}

func TestSummary_EmptyInput(t *testing.T) {
	c := classify.NewCategories()
	got := Summary(c, fixture.NewSelection(), time.Now())

	if !strings.Contains(got, "## Selected Fixtures") {
		t.Error("summary missing fixtures section")
	}
	if strings.Contains(got, "### race_") {
		t.Error("empty selection must not render fixture subsections")
	}
	if !strings.Contains(got, "| Marathon | 0 |") {
		t.Error("zero counts missing for empty input")
	}
}

func TestFirstN(t *testing.T) {
	if got := firstN("2025-04-13T08:00:00Z", 10); got != "2025-04-13" {
		t.Errorf("firstN = %q", got)
	}
	if got := firstN("short", 10); got != "short" {
		t.Errorf("firstN = %q", got)
	}
}

func TestTrimFloat(t *testing.T) {
	if got := trimFloat(150); got != "150" {
		t.Errorf("trimFloat(150) = %q, want 150", got)
	}
	if got := trimFloat(150.5); got != "150.5" {
		t.Errorf("trimFloat(150.5) = %q, want 150.5", got)
	}
}
