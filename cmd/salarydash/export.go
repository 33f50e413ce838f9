package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/fr4nk3nst1ner/salarydash/internal/charts"
	"github.com/fr4nk3nst1ner/salarydash/internal/models"
	"github.com/fr4nk3nst1ner/salarydash/internal/pipeline"
)

// Export formats.
const (
	formatText = "text"
	formatSVG  = "svg"
	formatJSON = "json"
)

//nolint:gochecknoglobals // Cobra boilerplate
var (
	exportFlags  selectionFlags
	exportFormat string
	exportChart  string
	exportOutput string
	exportLimit  int
	exportList   bool
)

//nolint:gochecknoglobals // Cobra boilerplate
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the filtered data, a ranking or a chart",
	Long: `Export one part of the dashboard for the selected filters.

Formats:
  text  the filtered records as an aligned grid, or with --chart a ranking
        (top_paid_titles, seniority_ranking, country_rankings:<title>)
  svg   one chart, chosen with --chart (see --list)
  json  the whole dashboard

Examples:
  salarydash export --year 2023 --limit 50
  salarydash export --format svg --chart salary_evolution -o evolution.svg
  salarydash export --format text --chart "country_rankings:Data Engineer"`,
	Annotations: map[string]string{noBanner: "true"},
	Args:        cobra.NoArgs,
	RunE:        runExport,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(exportCmd)
	exportFlags.register(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", formatText, "Output format: text, svg or json")
	exportCmd.Flags().StringVar(&exportChart, "chart", "", "Chart or ranking to export")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default stdout)")
	exportCmd.Flags().IntVar(&exportLimit, "limit", -1, "Records to export in the text grid; negative exports all")
	exportCmd.Flags().BoolVar(&exportList, "list", false, "List the charts available for the selection")
}

func runExport(cmd *cobra.Command, args []string) (err error) {
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

	sel, err := exportFlags.selection(cmd, cfg, ds.Records)
	if err != nil {
		return err
	}
	d := pipeline.RenderWith(ds.Records, sel, cfg.Limits())

	var w io.Writer = os.Stdout
	if exportOutput != "" {
		f, cerr := os.Create(exportOutput)
		if cerr != nil {
			return errors.Wrapf(cerr, "failed to create %s", exportOutput)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = errors.Wrapf(cerr, "failed to write %s", exportOutput)
			}
		}()
		w = f
	}

	if exportList {
		fmt.Fprintln(w, strings.Join(charts.Keys(d), "\n"))
		return nil
	}
	return export(w, d, exportFormat, exportChart, exportLimit, cfg.ChartSize())
}

// export writes one part of d in format.
func export(w io.Writer, d pipeline.Dashboard, format, chart string, limit int, size charts.Size) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(d), "failed to encode dashboard")

	case formatSVG:
		if chart == "" {
			return errors.New("--chart is required for svg exports")
		}
		err := charts.Section(w, d, chart, size)
		if err == charts.ErrNoData {
			return errors.Errorf("chart %s has no data for the selected filters", chart)
		}
		return err

	case formatText:
		if chart == "" {
			records := d.Records
			if limit >= 0 && len(records) > limit {
				records = records[:limit]
			}
			charts.Grid(w, records)
			return nil
		}
		ms, err := ranking(d, chart)
		if err != nil {
			return err
		}
		charts.MeansGrid(w, ms)
		return nil
	}
	return errors.Errorf("unknown format %q", format)
}

// ranking returns the mean salary ranking behind a chart key.
func ranking(d pipeline.Dashboard, chart string) ([]models.CategoryMean, error) {
	switch chart {
	case pipeline.SectionTopPaidTitles:
		return d.TopPaidTitles, nil
	case pipeline.SectionSeniorityRanking:
		return d.SeniorityRanking, nil
	}
	for _, cr := range d.CountryRankings {
		if chart == charts.CountryKey(cr.Title) {
			return cr.Countries, nil
		}
	}
	return nil, errors.Errorf("%s is not a ranking", chart)
}
