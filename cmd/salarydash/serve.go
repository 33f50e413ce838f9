package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fr4nk3nst1ner/salarydash/internal/metrics"
	"github.com/fr4nk3nst1ner/salarydash/internal/web"
)

//nolint:gochecknoglobals // Cobra boilerplate
var servePort int

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard over HTTP",
	Long: `Serve the dashboard as a web page with a JSON API and Prometheus metrics.

Endpoints:
  GET  /                the dashboard with its filter form
  GET  /api/catalog     selectable filter values and defaults
  GET  /api/dashboard   dashboard JSON for the query's selection
  POST /api/refresh     reload the dataset (basic auth when WEB_USERNAME/WEB_PASSWORD are set)
  GET  /health          liveness with the dataset fingerprint
  GET  /metrics         Prometheus metrics`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config or WEB_PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Web.Port = servePort
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	m, err := metrics.New()
	if err != nil {
		return err
	}

	load := loader(cfg)
	ctx, cancel := withTimeout(cfg)
	ds, err := load(ctx)
	cancel()
	m.ObserveLoad(ds, err)
	if err != nil {
		return err
	}

	srv, err := web.New(cfg, ds, web.Loader(load), m)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.ListenAndServe(ctx)
}
