package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testExport = `{
	"activities": [
		{"name": "City Marathon", "type": "Run", "workout_type": 1, "distance": 42195, "moving_time": 11000, "start_date_local": "2025-04-13T08:00:00Z", "map": {"summary_polyline": "abc"}},
		{"name": "Lunch Jog", "type": "Run", "distance": 8000, "moving_time": 2400, "map": {"summary_polyline": "def"}}
	]
}`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	curateOut, curateConfig = "", ""
	curateCmd.SilenceUsage = false

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestCurate_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "export.json")
	if err := os.WriteFile(input, []byte(testExport), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	outDir := filepath.Join(dir, "fixtures")

	out, err := execute(t, "curate", input, "--out", outDir)
	if err != nil {
		t.Fatalf("Execute: %v\noutput:\n%s", err, out)
	}

	for _, name := range []string{
		"race_marathon.json",
		"training_easy.json",
		"all-fixtures.json",
		"raw-activities.json",
		"SUMMARY.md",
		"index.ts",
	} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("missing artifact %s: %v", name, err)
		}
	}

	for _, frag := range []string{
		"Loaded 2 activities",
		"Selected 2 diverse fixtures",
		"Written: race_marathon.json",
		"Written: SUMMARY.md",
		"Summary:",
	} {
		if !strings.Contains(out, frag) {
			t.Errorf("output missing %q", frag)
		}
	}
}

func TestCurate_EmptyExport(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "export.json")
	if err := os.WriteFile(input, []byte(`{"activities": []}`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	outDir := filepath.Join(dir, "fixtures")

	out, err := execute(t, "curate", input, "--out", outDir)
	if err != nil {
		t.Fatalf("Execute: %v\noutput:\n%s", err, out)
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	if len(names) != 4 {
		t.Errorf("artifacts = %v, want only the four bulk files", names)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "all-fixtures.json"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var combined map[string]any
	if err := json.Unmarshal(data, &combined); err != nil {
		t.Fatalf("combined not valid JSON: %v", err)
	}
	if len(combined) != 0 {
		t.Errorf("combined has %d keys, want 0", len(combined))
	}

	if !strings.Contains(out, "Selected 0 diverse fixtures") {
		t.Error("output missing zero-selection line")
	}
}

func TestCurate_MissingArg(t *testing.T) {
	out, err := execute(t, "curate")
	if err == nil {
		t.Fatal("expected an argument error")
	}
	if !strings.Contains(out, "Usage:") {
		t.Errorf("usage text missing from output:\n%s", out)
	}
}

func TestCurate_MissingFile(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "fixtures")

	_, err := execute(t, "curate", "/no/such/export.json", "--out", outDir)
	if err == nil {
		t.Fatal("expected a missing-file error")
	}
	if !strings.Contains(err.Error(), "file not found") {
		t.Errorf("err = %v", err)
	}
	if _, statErr := os.Stat(outDir); !os.IsNotExist(statErr) {
		t.Error("output dir must not be created when the input is missing")
	}
}

func TestPreview(t *testing.T) {
	text := "a\nb\nc\nd"
	if got := preview(text, 2); got != "a\nb\n..." {
		t.Errorf("preview = %q", got)
	}
	if got := preview(text, 10); got != "a\nb\nc\nd\n..." {
		t.Errorf("short input keeps the ellipsis line, got %q", got)
	}
}
