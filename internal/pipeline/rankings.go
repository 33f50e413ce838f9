package pipeline

import (
	"github.com/fr4nk3nst1ner/salarydash/internal/filter"
	"github.com/fr4nk3nst1ner/salarydash/internal/models"
)

// Ranking sizes.
const (
	TopPaidLimit = 10
	CountryLimit = 10
)

func byTitle(r models.Record) (string, bool)   { return r.Title, true }
func byCountry(r models.Record) (string, bool) { return r.CompanyLocation, true }

func bySeniority(r models.Record) (string, bool) {
	return SeniorityLabel(r.Seniority)
}

// TopPaidTitles ranks titles by mean USD salary and keeps the n best paid.
// The result is in ascending order of mean, ready for a horizontal bar
// chart.
func TopPaidTitles(records []models.Record, n int) []models.CategoryMean {
	return ascending(topMeans(means(groupBy(records, byTitle)), n))
}

// TopPaidTitleSalaries returns the raw salaries of the n best paid titles,
// best paid first.
func TopPaidTitleSalaries(records []models.Record, n int) []models.SalaryGroup {
	groups := groupBy(records, byTitle)
	index := make(map[string]*group, len(groups))
	for _, g := range groups {
		index[g.key] = g
	}

	top := topMeans(means(groups), n)
	out := make([]models.SalaryGroup, 0, len(top))
	for _, m := range top {
		out = append(out, salaryGroup(index[m.Category]))
	}
	return out
}

// SeniorityRanking returns the mean USD salary per seniority label in
// ascending order. Records with an unknown seniority code are ignored.
func SeniorityRanking(records []models.Record) []models.CategoryMean {
	return ascending(means(groupBy(records, bySeniority)))
}

// SenioritySalaries returns the raw salaries per seniority label, from
// junior to executive. Levels without records are omitted.
func SenioritySalaries(records []models.Record) []models.SalaryGroup {
	groups := groupBy(records, bySeniority)
	index := make(map[string]*group, len(groups))
	for _, g := range groups {
		index[g.key] = g
	}

	out := make([]models.SalaryGroup, 0, len(groups))
	for _, label := range SeniorityOrder {
		if g, ok := index[label]; ok {
			out = append(out, salaryGroup(g))
		}
	}
	return out
}

// CountryRankings returns, for each contract title, the n company locations
// with the highest mean USD salary, in ascending order of mean. A title
// with no records still gets an entry with no countries. Repeated titles
// are reported once.
func CountryRankings(records []models.Record, contracts []string, n int) []models.CountryRanking {
	seen := make(map[string]struct{}, len(contracts))
	out := make([]models.CountryRanking, 0, len(contracts))
	for _, title := range contracts {
		if _, dup := seen[title]; dup {
			continue
		}
		seen[title] = struct{}{}

		subset := filter.ByTitle(records, title)
		out = append(out, models.CountryRanking{
			Title:     title,
			Countries: ascending(topMeans(means(groupBy(subset, byCountry)), n)),
		})
	}
	return out
}
