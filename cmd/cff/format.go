package main

import (
	"fmt"
	"os"

	"github.com/citekit/cff"
	"github.com/citekit/cff/formatters"
	"github.com/spf13/cobra"
)

var (
	formatStyle     string
	formatPreferred bool
)

var formatCmd = &cobra.Command{
	Use:   "format [file]",
	Short: "Render a citation for a CITATION.cff file",
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

		style := formatStyle
		if style == "" {
			style = os.Getenv("CFF_STYLE")
		}
		if style == "" {
			style = "apalike"
		}

		reg := formatters.DefaultRegistry()
		if reg.FormatterFor(style) == nil {
			exitWithError(ExitError, "unknown citation style %q", style)
		}

		citation := file.Index.Citation(reg, style, &cff.CitationOptions{
			PreferredCitation: formatPreferred,
		})
		if citation == "" {
			exitWithError(ExitDataError, "%s has no citable metadata", path)
		}
		fmt.Println(citation)
	},
}

func init() {
	formatCmd.Flags().StringVarP(&formatStyle, "style", "s", "", "Citation style (default $CFF_STYLE, then apalike)")
	formatCmd.Flags().BoolVar(&formatPreferred, "preferred", true, "Use the preferred citation when one is present")
	rootCmd.AddCommand(formatCmd)
}
