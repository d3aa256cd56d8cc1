package main

import (
	"fmt"

	"github.com/citekit/cff/formatters"
	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the available citation styles",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, label := range formatters.DefaultRegistry().Formatters() {
			fmt.Println(label)
		}
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
