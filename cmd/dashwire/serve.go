package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dashwire-dev/dashwire/internal/config"
	"github.com/dashwire-dev/dashwire/pkg/live"
)

func serveCmd() *cobra.Command {
	var configDir string
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo dashboard",
		Long: `Serve the demo dashboard over HTTP with a live websocket session.

Configuration is read from dashwire.yaml in the config directory and can
be overridden with DASHWIRE_* environment variables.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configDir)
			if err != nil {
				return err
			}
			if listen != "" {
				cfg.Listen = listen
			}

			level, err := zerolog.ParseLevel(cfg.LogLevel)
			if err != nil {
				level = zerolog.InfoLevel
			}
			log := zerolog.New(os.Stderr).
				Level(level).
				With().Timestamp().Logger()

			server := live.NewServer(live.ServerConfig{
				Title:         cfg.Title,
				Pretty:        cfg.Pretty,
				MaxSessions:   cfg.MaxSessions,
				EnableMetrics: cfg.Metrics,
			}, demoApp, log)

			httpServer := &http.Server{
				Addr:    cfg.Listen,
				Handler: server.Routes(),
			}

			errCh := make(chan error, 1)
			go func() {
				log.Info().Str("listen", cfg.Listen).Msg("serving dashboard")
				errCh <- httpServer.ListenAndServe()
			}()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

			select {
			case err := <-errCh:
				if err != nil && err != http.ErrServerClosed {
					return err
				}
			case <-stop:
				log.Info().Msg("shutting down")
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				server.Manager().CloseAll()
				if err := httpServer.Shutdown(ctx); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configDir, "config", "c", "", "Directory containing dashwire.yaml")
	cmd.Flags().StringVarP(&listen, "listen", "l", "", "Listen address (overrides config)")

	return cmd
}
