// Package main provides the cff CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	// Optional .env file for CFF_SCHEMA_DIR and CFF_STYLE.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cff",
	Short: "Create, validate and format CITATION.cff files",
	Long: `cff works with CITATION.cff software citation metadata.

Core features:
  - Create new CITATION.cff files
  - Validate files against the CITATION File Format schema
  - Render citations in BibTeX and APA-like styles`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version
}
