package format

import (
	"strings"
	"testing"
)

func TestTable_Markdown(t *testing.T) {
	tbl := NewTable(Markdown)
	tbl.Header("Category", "Count")
	tbl.Row("Marathon", 2)
	tbl.Row("Easy runs", 0)

	got := tbl.String()
	for _, frag := range []string{
		"| Category | Count |",
		"| Marathon | 2 |",
		"| Easy runs | 0 |",
	} {
		if !strings.Contains(got, frag) {
			t.Errorf("markdown output missing %q in:\n%s", frag, got)
		}
	}
}

func TestTable_ASCII(t *testing.T) {
	tbl := NewTable(ASCII)
	tbl.Header("Fixture", "Score")
	tbl.Row("race_marathon", 7)
	tbl.RightAlign(2)

	got := tbl.String()
	if !strings.Contains(got, "race_marathon") || !strings.Contains(got, "7") {
		t.Errorf("ascii output missing content:\n%s", got)
	}
	if strings.Contains(got, "| race_marathon | 7 |") {
		t.Error("ascii mode should not render markdown rows")
	}
}

func TestTable_RowOrder(t *testing.T) {
	tbl := NewTable(Markdown)
	tbl.Header("K", "V")
	tbl.Row("first", 1)
	tbl.Row("second", 2)

	got := tbl.String()
	if strings.Index(got, "first") > strings.Index(got, "second") {
		t.Error("rows out of insertion order")
	}
}
