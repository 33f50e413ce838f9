package main

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/fr4nk3nst1ner/salarydash/internal/filter"
	"github.com/fr4nk3nst1ner/salarydash/internal/tui"
	"github.com/fr4nk3nst1ner/salarydash/internal/ui"
)

//nolint:gochecknoglobals // Cobra boilerplate
var tuiFlags selectionFlags

//nolint:gochecknoglobals // Cobra boilerplate
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Explore the dashboard interactively in the terminal",
	Long: `Start the interactive terminal dashboard. Filters are on the left; the
summary and rankings on the right are recomputed on every change.

Keys: tab/shift+tab switch dimension, ↑/↓ move, space toggles, a selects
all, n selects none, / searches, r resets, q quits.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(tuiCmd)
	tuiFlags.register(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
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

	sel, err := tuiFlags.selection(cmd, cfg, ds.Records)
	if err != nil {
		return err
	}

	// The TUI owns the terminal; log lines would corrupt the screen.
	ui.SetLogOutput(io.Discard)

	model := tui.New(ds.Records, filter.BuildCatalog(ds.Records), sel, cfg.Limits())
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "error running TUI")
	}
	return nil
}
