package main

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/fr4nk3nst1ner/salarydash/internal/client"
	"github.com/fr4nk3nst1ner/salarydash/internal/config"
	"github.com/fr4nk3nst1ner/salarydash/internal/dataset"
	"github.com/fr4nk3nst1ner/salarydash/internal/filter"
	"github.com/fr4nk3nst1ner/salarydash/internal/models"
	"github.com/fr4nk3nst1ner/salarydash/internal/ui"
	"github.com/fr4nk3nst1ner/salarydash/internal/utils"
)

//nolint:gochecknoglobals // Cobra boilerplate
var (
	configFile string
	sourceURL  string
	debug      bool
	silence    bool
)

// noBanner marks commands whose stdout must stay machine readable.
const noBanner = "no-banner"

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "salarydash",
	Short: "Explore salaries in data-related jobs",
	Long: `salarydash loads the public data-jobs salaries dataset and summarizes it:
distributions by company size, residence and work arrangement, the best paid
titles, seniority rankings, country rankings and salary evolution.

The same dashboard is available as a terminal report, an interactive TUI,
a web page with a JSON API, and SVG/text exports.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.SetDebug(debug)
		if _, ok := cmd.Annotations[noBanner]; !ok {
			ui.PrintBanner(silence)
		}
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is ./salarydash.yaml or $HOME/.salarydash/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&sourceURL, "source", "", "dataset URL or local CSV path (overrides the config)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug mode")
	rootCmd.PersistentFlags().BoolVar(&silence, "silence", false, "Silence the banner")
}

// loadConfig reads the configuration and applies the persistent flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return cfg, err
	}
	if sourceURL != "" {
		cfg.Dataset.URL = sourceURL
	}
	return cfg, nil
}

// loader returns a function fetching the configured dataset.
func loader(cfg config.Config) func(ctx context.Context) (*dataset.Dataset, error) {
	httpClient := client.CreateHTTPClient(client.Options{
		ProxyURL: cfg.Dataset.Proxy,
		Timeout:  cfg.Dataset.Timeout,
	})
	return func(ctx context.Context) (*dataset.Dataset, error) {
		return dataset.Load(ctx, cfg.Dataset.URL, dataset.Options{
			Client:   httpClient,
			Progress: cfg.Dataset.Progress,
		})
	}
}

// selectionFlags are the filter flags shared by the one-shot commands.
type selectionFlags struct {
	years, titles, seniorities, sizes, employment, contracts []string
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.years, "year", nil, "Work years to include (repeatable or comma separated)")
	cmd.Flags().StringArrayVar(&f.titles, "title", nil, "Job titles to include (repeatable, taken whole)")
	cmd.Flags().StringArrayVar(&f.seniorities, "seniority", nil, "Seniority codes to include (EN, MI, SE, EX)")
	cmd.Flags().StringArrayVar(&f.sizes, "size", nil, "Company sizes to include (S, M, L)")
	cmd.Flags().StringArrayVar(&f.employment, "employment", nil, "Employment types to include (FT, PT, CT, FL)")
	cmd.Flags().StringArrayVar(&f.contracts, "contract", nil, "Titles to compare by country and year (repeatable); pass an empty value to compare none")
}

// selection overlays the flags that were set on the configured initial
// selection. An explicitly empty flag empties its dimension.
func (f *selectionFlags) selection(cmd *cobra.Command, cfg config.Config, records []models.Record) (models.Selection, error) {
	sel := cfg.InitialSelection(records, filter.BuildCatalog(records))
	changed := cmd.Flags().Changed

	if changed("year") {
		years, err := utils.ParseYears(f.years)
		if err != nil {
			return sel, errors.Wrap(err, "invalid --year")
		}
		sel.Years = years
	}
	if changed("title") {
		sel.Titles = utils.UniqueList(f.titles)
	}
	if changed("seniority") {
		sel.Seniorities = utils.SplitList(f.seniorities)
	}
	if changed("size") {
		sel.CompanySizes = utils.SplitList(f.sizes)
	}
	if changed("employment") {
		sel.EmploymentTypes = utils.SplitList(f.employment)
	}
	if changed("contract") {
		sel.Contracts = utils.UniqueList(f.contracts)
	}
	return sel, nil
}

// withTimeout bounds the initial dataset fetch.
func withTimeout(cfg config.Config) (context.Context, context.CancelFunc) {
	if cfg.Dataset.Timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), cfg.Dataset.Timeout)
}
