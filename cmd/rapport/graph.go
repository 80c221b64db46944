package main

import (
	"fmt"

	"github.com/aretw0/rapport/internal/presentation/graph"
	"github.com/aretw0/rapport/pkg/domain"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the state machine as a Mermaid diagram",
	Long:  `Outputs a Mermaid stateDiagram-v2 with one edge per (state, action) pair and the reset edges.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var overlay *graph.GraphOverlay
		if current, _ := cmd.Flags().GetString("current"); current != "" {
			s, err := domain.ParseState(current)
			if err != nil {
				return err
			}
			overlay = &graph.GraphOverlay{CurrentState: s}
		}

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(domain.Transitions(), overlay))
		return nil
	},
}

func init() {
	graphCmd.Flags().String("current", "", "Highlight a state (first_meeting or acquainted)")
	rootCmd.AddCommand(graphCmd)
}
