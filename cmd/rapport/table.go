package main

import (
	"fmt"
	"os"

	"github.com/aretw0/rapport/internal/presentation/tui"
	"github.com/aretw0/rapport/pkg/domain"
	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the transition table",
	Long:  `Prints every (state, action) pair with the line it produces and the next state, as markdown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		md := tui.TableMarkdown(domain.Transitions(), cfg.Name)
		raw, _ := cmd.Flags().GetBool("raw")
		if raw || !isTerminal(os.Stdout) {
			fmt.Fprint(cmd.OutOrStdout(), md)
			return nil
		}

		render, err := tui.NewRenderer()
		if err != nil {
			return err
		}
		styled, err := render(md)
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), styled)
		return nil
	},
}

func init() {
	tableCmd.Flags().Bool("raw", false, "Print plain markdown even on a terminal")
	rootCmd.AddCommand(tableCmd)
}
