package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/rapport"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of rapport",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "rapport version %s\n", strings.TrimSpace(rapport.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
