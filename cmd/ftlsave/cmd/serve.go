/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ssargent/ftlsave/pkg/api"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		bind   string
		port   int
		apiKey string
	)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the save inspection API",
		Long: `Start the REST API for decoding and verifying uploaded saves and
listing backups. Requests must carry the X-API-Key header.

Examples:
  ftlsave serve
  ftlsave serve --bind 0.0.0.0 --port 9200 --api-key mysecretkey`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.Server
			if cmd.Flags().Changed("bind") {
				cfg.Bind = bind
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if apiKey != "" {
				cfg.APIKey = apiKey
			}
			if cfg.APIKey == "" || cfg.APIKey == "auto" {
				return errors.New("no API key configured (run 'ftlsave init' or pass --api-key)")
			}

			svc, err := a.service(true)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return api.StartServer(ctx, svc, api.ServerConfig{
				Bind:   cfg.Bind,
				Port:   cfg.Port,
				APIKey: cfg.APIKey,
			}, a.logger)
		},
	}

	serveCmd.Flags().StringVar(&bind, "bind", "", "address to listen on (overrides config)")
	serveCmd.Flags().IntVarP(&port, "port", "p", 0, "port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&apiKey, "api-key", "", "API key (overrides config)")
	return serveCmd
}
