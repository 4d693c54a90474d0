package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at build time using -ldflags.
var Version = "0.0.0-dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the stylebridge version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "stylebridge %s\n", Version)
		},
	}
}
