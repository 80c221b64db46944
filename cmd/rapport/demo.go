package main

import (
	"os"

	"github.com/aretw0/rapport/internal/cli"
	"github.com/aretw0/rapport/internal/presentation/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Play the scripted greet/farewell/reset scenario",
	Long: `Creates one person and runs: greet, farewell, greet, reset, farewell, greet.
Each greet or farewell prints one line on stdout; the reset is silent.`,
	RunE: runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if banner, _ := cmd.Flags().GetBool("banner"); banner && isTerminal(os.Stdout) {
		tui.PrintBanner(out)
	}

	final := cli.RunDemo(out, cfg.Name, logger)
	logger.Debug("Demo finished", "state", final.String())
	return nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func init() {
	demoCmd.Flags().Bool("banner", false, "Print the banner before the demo when stdout is a terminal")
	rootCmd.AddCommand(demoCmd)
}
