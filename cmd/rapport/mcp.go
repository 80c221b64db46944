package main

import (
	"log"
	"os"

	"github.com/aretw0/rapport/internal/cli"
	"github.com/aretw0/rapport/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server over stdio",
	Long: `Exposes greet, farewell, reset_state and get_state as MCP tools, and the
transition table as the rapport://transitions resource.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		backend, err := cli.NewBackend(cfg.Store)
		if err != nil {
			return err
		}
		defer backend.Close()

		// Stdout carries JSON-RPC.
		log.SetOutput(os.Stderr)

		srv := mcp.NewServer(cli.NewManager(cfg, backend, logger))
		logger.Info("Starting rapport MCP Server (Stdio)")
		if err := srv.ServeStdio(); err != nil {
			logger.Error("MCP Server execution failed", "error", err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
