package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"curator/internal/activity"
	"curator/internal/classify"
	"curator/internal/config"
	"curator/internal/fixture"
	"curator/internal/format"
	"curator/internal/logging"
	"curator/internal/report"
)

var (
	curateOut       string
	curateConfig    string
	curateLogLevel  string
	curateLogFormat string
)

var curateCmd = &cobra.Command{
	Use:   "curate <input.json>",
	Short: "Select representative fixtures from a bulk activity export",
	Long: "Curate reads a bulk JSON export ({\"activities\": [...]}), buckets each\n" +
		"activity by type and characteristics, picks the richest record per\n" +
		"bucket, and writes fixture JSON files, a markdown summary, and a\n" +
		"TypeScript loader stub into the output directory.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Arg validation is done; runtime errors should not dump usage.
		cmd.SilenceUsage = true
		logging.Init(curateLogLevel, curateLogFormat, cmd.ErrOrStderr())
		return runCurate(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	curateCmd.Flags().StringVarP(&curateOut, "out", "o", "", "output directory (default "+config.DefaultOutputDir+")")
	curateCmd.Flags().StringVarP(&curateConfig, "config", "c", "", "optional run config file (YAML or JSON)")
	curateCmd.Flags().StringVar(&curateLogLevel, "log-level", "info", "log level: debug, info, warn, error")
	curateCmd.Flags().StringVar(&curateLogFormat, "log-format", "text", "log format: text or json")
}

func runCurate(out io.Writer, inputArg string) error {
	log := logging.New("curate")

	cfg := config.Default()
	if curateConfig != "" {
		loaded, err := config.LoadFromPath(curateConfig)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if curateOut != "" {
		cfg.OutputDir = curateOut
	}

	input, err := filepath.Abs(inputArg)
	if err != nil {
		return fmt.Errorf("resolve input path %q: %w", inputArg, err)
	}
	fmt.Fprintf(out, "Reading: %s\n", input)
	if _, err := os.Stat(input); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", input)
		}
		return fmt.Errorf("stat input: %w", err)
	}

	doc, err := activity.Load(input)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Loaded %d activities\n", len(doc.Activities))
	log.Info("loaded export", "path", input, "activities", len(doc.Activities))

	categories := classify.Categorize(doc.Activities)
	selection := fixture.Select(categories)
	fmt.Fprintf(out, "Selected %d diverse fixtures\n", selection.Len())
	log.Info("selected fixtures", "count", selection.Len())

	if selection.Len() > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, selectionTable(selection))
		fmt.Fprintln(out)
	}

	emitter, err := report.NewEmitter(cfg.OutputDir)
	if err != nil {
		return err
	}

	names, err := emitter.WriteFixtures(selection)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintf(out, "  Written: %s\n", name)
	}

	name, err := emitter.WriteCombined(selection)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "  Written: %s\n", name)

	name, err = emitter.WriteRaw(doc)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "  Written: %s\n", name)

	summary := report.Summary(categories, selection, time.Now())
	name, err = emitter.WriteSummary(summary)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "  Written: %s\n", name)

	stub, err := report.LoaderStub(selection, cfg.LoaderImport, time.Now())
	if err != nil {
		return err
	}
	name, err = emitter.WriteLoader(stub)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "  Written: %s\n", name)

	fmt.Fprintf(out, "\nDone! Fixtures written to:\n  %s\n\n", emitter.Dir)
	fmt.Fprintln(out, "Summary:")
	fmt.Fprintln(out, preview(summary, cfg.PreviewLines))
	return nil
}

// selectionTable renders the picks as a terminal table.
func selectionTable(sel *fixture.Selection) string {
	t := format.NewTable(format.ASCII)
	t.Header("Fixture", "Type", "Distance (km)", "Score")
	t.RightAlign(3, 4)
	for _, key := range sel.Keys() {
		a, _ := sel.Get(key)
		t.Row(key, a.Type, fmt.Sprintf("%.1f", a.DistanceKm()), fixture.Score(a))
	}
	return t.String()
}

// preview returns the first n lines of s with a trailing ellipsis line.
func preview(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n") + "\n..."
}
