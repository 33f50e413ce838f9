package pipeline

import (
	"sort"

	"github.com/aclements/go-moremath/stats"

	"github.com/fr4nk3nst1ner/salarydash/internal/filter"
	"github.com/fr4nk3nst1ner/salarydash/internal/models"
)

type yearTitle struct {
	year  int
	title string
}

// SalaryEvolution returns the mean USD salary per year for each contract
// title. Points are ordered by year, then by the order of contracts. A
// title only has points for the years it has records in.
func SalaryEvolution(records []models.Record, contracts []string) []models.YearMean {
	rank := make(map[string]int, len(contracts))
	for i, c := range contracts {
		if _, ok := rank[c]; !ok {
			rank[c] = i
		}
	}

	salaries := make(map[yearTitle][]float64)
	var keys []yearTitle
	for _, r := range filter.ByTitles(records, contracts) {
		k := yearTitle{year: r.Year, title: r.Title}
		if _, ok := salaries[k]; !ok {
			keys = append(keys, k)
		}
		salaries[k] = append(salaries[k], r.SalaryUSD)
	}

	sort.SliceStable(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return rank[keys[i].title] < rank[keys[j].title]
	})

	out := make([]models.YearMean, 0, len(keys))
	for _, k := range keys {
		out = append(out, models.YearMean{
			Year:    k.year,
			Title:   k.title,
			MeanUSD: stats.Mean(salaries[k]),
		})
	}
	return out
}
