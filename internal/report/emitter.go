// Package report renders the curation artifacts: per-fixture JSON
// files, the combined and raw JSON documents, the markdown summary,
// and the TypeScript loader stub.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"curator/internal/activity"
	"curator/internal/fixture"
	"curator/internal/logging"
)

// Artifact file names shared by the emitter and the loader stub.
const (
	AllFixturesFile   = "all-fixtures.json"
	RawActivitiesFile = "raw-activities.json"
	SummaryFile       = "SUMMARY.md"
	LoaderFile        = "index.ts"
)

// Emitter writes curation artifacts into a single output directory.
// Writes are sequential; the first failure aborts the run with no
// cleanup of files already written.
type Emitter struct {
	Dir string
	log *slog.Logger
}

// NewEmitter creates an Emitter rooted at dir, creating it if needed.
func NewEmitter(dir string) (*Emitter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("report: create output dir: %w", err)
	}
	return &Emitter{Dir: dir, log: logging.New("report")}, nil
}

// WriteFixtures writes one pretty-printed JSON file per fixture key and
// returns the written file names in selection order.
func (e *Emitter) WriteFixtures(sel *fixture.Selection) ([]string, error) {
	names := make([]string, 0, sel.Len())
	for _, key := range sel.Keys() {
		a, _ := sel.Get(key)
		pretty, err := indentJSON(a.Raw, "")
		if err != nil {
			return names, fmt.Errorf("report: fixture %q: %w", key, err)
		}
		name := key + ".json"
		if err := e.writeFile(name, pretty); err != nil {
			return names, err
		}
		names = append(names, name)
	}
	return names, nil
}

// WriteCombined writes the key→record mapping for all selections as a
// single JSON object, keys in selection order.
func (e *Emitter) WriteCombined(sel *fixture.Selection) (string, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range sel.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString("\n  ")
		name, err := json.Marshal(key)
		if err != nil {
			return "", fmt.Errorf("report: combined key %q: %w", key, err)
		}
		buf.Write(name)
		buf.WriteString(": ")
		a, _ := sel.Get(key)
		pretty, err := indentJSON(a.Raw, "  ")
		if err != nil {
			return "", fmt.Errorf("report: combined %q: %w", key, err)
		}
		buf.Write(pretty)
	}
	if sel.Len() > 0 {
		buf.WriteByte('\n')
	}
	buf.WriteByte('}')

	if err := e.writeFile(AllFixturesFile, buf.Bytes()); err != nil {
		return "", err
	}
	return AllFixturesFile, nil
}

// WriteRaw re-emits the whole source document, pretty-printed but
// otherwise untouched.
func (e *Emitter) WriteRaw(doc *activity.Document) (string, error) {
	pretty, err := indentJSON(doc.Raw, "")
	if err != nil {
		return "", fmt.Errorf("report: raw document: %w", err)
	}
	if err := e.writeFile(RawActivitiesFile, pretty); err != nil {
		return "", err
	}
	return RawActivitiesFile, nil
}

// WriteSummary writes the markdown summary.
func (e *Emitter) WriteSummary(markdown string) (string, error) {
	if err := e.writeFile(SummaryFile, []byte(markdown)); err != nil {
		return "", err
	}
	return SummaryFile, nil
}

// WriteLoader writes the TypeScript loader stub.
func (e *Emitter) WriteLoader(source string) (string, error) {
	if err := e.writeFile(LoaderFile, []byte(source)); err != nil {
		return "", err
	}
	return LoaderFile, nil
}

func (e *Emitter) writeFile(name string, data []byte) error {
	path := filepath.Join(e.Dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("report: write %q: %w", name, err)
	}
	e.log.Debug("wrote artifact", "file", name, "bytes", len(data))
	return nil
}

// indentJSON pretty-prints raw JSON with two-space indentation. prefix
// is prepended to every line after the first, for nesting inside an
// enclosing object.
func indentJSON(raw []byte, prefix string) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, prefix, "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
