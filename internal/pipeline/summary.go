package pipeline

import (
	"github.com/aclements/go-moremath/stats"

	"github.com/fr4nk3nst1ner/salarydash/internal/filter"
	"github.com/fr4nk3nst1ner/salarydash/internal/models"
)

// NoTitle is the top title reported for an empty view.
const NoTitle = "N/A"

// Summarize computes the headline metrics of a filtered view. An empty view
// yields zero salaries and NoTitle.
func Summarize(records []models.Record) models.Summary {
	if len(records) == 0 {
		return models.Summary{TopTitle: NoTitle}
	}

	salaries := make([]float64, len(records))
	for i, r := range records {
		salaries[i] = r.SalaryUSD
	}
	min, max := stats.Bounds(salaries)

	return models.Summary{
		Records:  len(records),
		MeanUSD:  stats.Mean(salaries),
		MinUSD:   min,
		MaxUSD:   max,
		TopTitle: filter.MostFrequent(records, func(r models.Record) string { return r.Title }, 1)[0],
	}
}
