package pipeline

import (
	"sort"

	"github.com/aclements/go-moremath/stats"

	"github.com/fr4nk3nst1ner/salarydash/internal/models"
)

// group is the set of USD salaries sharing one key, in input order.
type group struct {
	key      string
	salaries []float64
}

// groupBy partitions records by key. Groups are returned in order of first
// occurrence; records for which key reports false are skipped.
func groupBy(records []models.Record, key func(models.Record) (string, bool)) []*group {
	index := make(map[string]*group)
	var groups []*group
	for _, r := range records {
		k, ok := key(r)
		if !ok {
			continue
		}
		g, seen := index[k]
		if !seen {
			g = &group{key: k}
			index[k] = g
			groups = append(groups, g)
		}
		g.salaries = append(g.salaries, r.SalaryUSD)
	}
	return groups
}

func always(f func(models.Record) string) func(models.Record) (string, bool) {
	return func(r models.Record) (string, bool) { return f(r), true }
}

// counts turns groups into a distribution sorted by descending count.
// Equal counts keep first-occurrence order.
func counts(groups []*group) []models.CategoryCount {
	out := make([]models.CategoryCount, 0, len(groups))
	for _, g := range groups {
		out = append(out, models.CategoryCount{Category: g.key, Count: len(g.salaries)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// means turns groups into mean salaries, in group order.
func means(groups []*group) []models.CategoryMean {
	out := make([]models.CategoryMean, 0, len(groups))
	for _, g := range groups {
		out = append(out, models.CategoryMean{
			Category:  g.key,
			MeanUSD:   stats.Mean(g.salaries),
			Responses: len(g.salaries),
		})
	}
	return out
}

// topMeans keeps the n highest means, ordered from highest to lowest.
// Equal means keep first-occurrence order.
func topMeans(ms []models.CategoryMean, n int) []models.CategoryMean {
	top := append([]models.CategoryMean(nil), ms...)
	sort.SliceStable(top, func(i, j int) bool { return top[i].MeanUSD > top[j].MeanUSD })
	if n >= 0 && len(top) > n {
		top = top[:n]
	}
	return top
}

// ascending returns ms sorted by increasing mean, the order horizontal bar
// charts are drawn in.
func ascending(ms []models.CategoryMean) []models.CategoryMean {
	out := append(make([]models.CategoryMean, 0, len(ms)), ms...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].MeanUSD < out[j].MeanUSD })
	return out
}

// BoxSummary computes the five-number summary of salaries. It returns the
// zero value for an empty slice.
func BoxSummary(salaries []float64) models.BoxStats {
	if len(salaries) == 0 {
		return models.BoxStats{}
	}
	xs := append([]float64(nil), salaries...)
	sort.Float64s(xs)
	s := stats.Sample{Xs: xs, Sorted: true}
	min, max := s.Bounds()
	return models.BoxStats{
		Min:    min,
		Q1:     s.Quantile(0.25),
		Median: s.Quantile(0.5),
		Q3:     s.Quantile(0.75),
		Max:    max,
	}
}

func salaryGroup(g *group) models.SalaryGroup {
	return models.SalaryGroup{
		Category: g.key,
		Salaries: append([]float64(nil), g.salaries...),
		Box:      BoxSummary(g.salaries),
	}
}
