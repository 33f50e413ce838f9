package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fr4nk3nst1ner/salarydash/internal/pipeline"
	"github.com/fr4nk3nst1ner/salarydash/internal/ui"
)

//nolint:gochecknoglobals // Cobra boilerplate
var (
	reportFlags   selectionFlags
	reportRecords int
)

//nolint:gochecknoglobals // Cobra boilerplate
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the dashboard to the terminal",
	Long: `Print every dashboard section for the selected filters: summary metrics,
distributions, rankings, country comparisons, salary evolution and a sample
of the filtered records.

Example:
  salarydash report --year 2023 --seniority SE,EX --contract "Data Engineer,Data Scientist"`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(reportCmd)
	reportFlags.register(reportCmd)
	reportCmd.Flags().IntVar(&reportRecords, "records", 0, "Filtered records to list; 0 uses the config, negative lists all")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(cfg)
	defer cancel()
	ds, err := loader(cfg)(ctx)
	if err != nil {
		return err
	}

	sel, err := reportFlags.selection(cmd, cfg, ds.Records)
	if err != nil {
		return err
	}

	start := time.Now()
	d := pipeline.RenderWith(ds.Records, sel, cfg.Limits())
	ui.Logger().Debug("dashboard rendered", ui.Logger().Args("records", len(d.Records), "elapsed", time.Since(start)))

	records := cfg.Display.Records
	if cmd.Flags().Changed("records") && reportRecords != 0 {
		records = reportRecords
	}
	return ui.PrintReport(os.Stdout, d, ui.ReportOptions{Records: records})
}
