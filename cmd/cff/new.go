package main

import (
	"fmt"
	"os"

	"github.com/citekit/cff"
	"github.com/spf13/cobra"
)

var newTitle string

var newCmd = &cobra.Command{
	Use:   "new [path]",
	Short: "Create a minimal CITATION.cff file",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := cff.CanonicalFilename
		if len(args) == 1 {
			path = args[0]
		}

		if _, err := os.Stat(path); err == nil {
			exitWithError(ExitError, "%s already exists", path)
		}

		file := cff.NewFile(path, newTitle)
		if err := file.Write(); err != nil {
			exitWithError(ExitError, "%v", err)
		}
		fmt.Printf("created %s\n", path)
	},
}

func init() {
	newCmd.Flags().StringVar(&newTitle, "title", "My Research Software", "Title of the software being cited")
	rootCmd.AddCommand(newCmd)
}
