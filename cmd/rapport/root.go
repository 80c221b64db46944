package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/rapport/internal/config"
	"github.com/aretw0/rapport/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rapport",
	Short: "rapport plays a person who remembers whether you have met",
	Long: `rapport models a person whose greetings and farewells depend on their
relationship state with you. Without a subcommand it plays the canonical demo.`,
	RunE:         runDemo,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "rapport.yaml", "Path to the YAML configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Override the configured log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("name", "", "Override the person's display name")
	rootCmd.Flags().Bool("banner", false, "Print the banner before the demo when stdout is a terminal")
}

// loadConfig reads the config file and applies persistent flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, nil, err
	}

	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}
	if name, _ := cmd.Flags().GetString("name"); name != "" {
		cfg.Name = name
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, logging.New(level), nil
}
