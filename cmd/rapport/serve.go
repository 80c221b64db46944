package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/rapport/internal/cli"
	"github.com/aretw0/rapport/internal/metrics"
	httpAdapter "github.com/aretw0/rapport/pkg/adapters/http"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Serves many independent people over a JSON API:
  GET  /people, GET /people/{id}
  POST /people/{id}/greet, /people/{id}/farewell, /people/{id}/reset
  GET  /transitions, GET /metrics`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if port, _ := cmd.Flags().GetString("port"); cmd.Flags().Changed("port") {
			cfg.HTTP.Port = port
		}

		backend, err := cli.NewBackend(cfg.Store)
		if err != nil {
			return err
		}
		defer backend.Close()

		col := metrics.New()
		mgr := cli.NewManager(cfg, backend, logger, col.Hooks())

		srv := &http.Server{
			Addr:    ":" + cfg.HTTP.Port,
			Handler: httpAdapter.NewHandler(mgr, logger, col.Handler()),
		}

		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("Starting rapport server", "addr", srv.Addr, "store", cfg.Store.Driver)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			logger.Info("Start shutdown", "signal", sig.String())

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Warn("Graceful shutdown did not complete", "err", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("could not stop server: %w", err)
				}
			}
			logger.Info("rapport server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
}
