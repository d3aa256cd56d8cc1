package main

import (
	"fmt"

	"github.com/citekit/cff"
	"github.com/spf13/cobra"
)

var (
	validateSchemaDir string
	validateFailFast  bool
	validateAs        string
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a CITATION.cff file against the schema",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := cff.CanonicalFilename
		if len(args) == 1 {
			path = args[0]
		}

		file, err := cff.ReadFile(path)
		if err != nil {
			exitWithError(ExitDataError, "%v", err)
		}

		set, err := loadSchemaSet(schemaDirectory(validateSchemaDir))
		if err != nil {
			exitWithError(ExitConfigError, "%v", err)
		}

		result := file.Validate(set, cff.ValidateOptions{
			FailFast:   validateFailFast,
			ValidateAs: validateAs,
		})
		if !file.ValidFilename() {
			fmt.Printf("warning: %s is not named %s\n", path, cff.CanonicalFilename)
		}
		if result.OK {
			fmt.Printf("%s is valid\n", path)
			return
		}

		for _, failure := range result.Failures {
			fmt.Printf("%s: %s\n", failure.Path, failure.Message)
		}
		exitWithError(ExitDataError, "%s is invalid", path)
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateSchemaDir, "schema-dir", "", "Directory holding <version>.json schema files (default $CFF_SCHEMA_DIR)")
	validateCmd.Flags().BoolVar(&validateFailFast, "fail-fast", false, "Report only the first validation failure")
	validateCmd.Flags().StringVar(&validateAs, "as", "", "Validate against a specific schema version")
	rootCmd.AddCommand(validateCmd)
}
