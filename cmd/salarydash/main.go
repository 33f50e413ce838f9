package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/salarydash/internal/dataset"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var loadErr *dataset.DataLoadError
		if errors.As(err, &loadErr) {
			pterm.Error.Println(loadErr.Error())
		} else {
			pterm.Error.Println(err.Error())
		}
		os.Exit(1)
	}
}
