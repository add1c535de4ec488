package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "curator",
	Short: "Curate test fixtures from bulk activity exports",
	Long: "Curator reads a bulk JSON export of athletic activities, classifies\n" +
		"each record into category buckets, scores records by data richness,\n" +
		"and writes one representative fixture per category plus reports.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(curateCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
