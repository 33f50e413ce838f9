// Package filter derives the selectable filter values of a record set and
// applies a selection to it.
package filter

import (
	"sort"

	"github.com/fr4nk3nst1ner/salarydash/internal/models"
)

// TopTitlesLimit is how many of the most frequent titles are offered as
// the default contracts selection.
const TopTitlesLimit = 10

// BuildCatalog lists the distinct values of every dimension over the full
// record set. It must be computed on unfiltered data so the options do not
// shrink as the user narrows the selection.
func BuildCatalog(records []models.Record) models.Catalog {
	years := make(map[int]struct{})
	titles := make(map[string]struct{})
	seniorities := make(map[string]struct{})
	sizes := make(map[string]struct{})
	employment := make(map[string]struct{})

	for _, r := range records {
		years[r.Year] = struct{}{}
		titles[r.Title] = struct{}{}
		seniorities[r.Seniority] = struct{}{}
		sizes[r.CompanySize] = struct{}{}
		employment[r.EmploymentType] = struct{}{}
	}

	sortedYears := make([]int, 0, len(years))
	for y := range years {
		sortedYears = append(sortedYears, y)
	}
	sort.Ints(sortedYears)

	return models.Catalog{
		Years:           sortedYears,
		Titles:          sortedKeys(titles),
		Seniorities:     sortedKeys(seniorities),
		CompanySizes:    sortedKeys(sizes),
		EmploymentTypes: sortedKeys(employment),
		TopTitles:       MostFrequent(records, func(r models.Record) string { return r.Title }, TopTitlesLimit),
	}
}

// MostFrequent returns up to n keys ordered by descending occurrence count.
// Keys with equal counts keep the order in which they first appear.
func MostFrequent(records []models.Record, key func(models.Record) string, n int) []string {
	counts := make(map[string]int)
	var order []string
	for _, r := range records {
		k := key(r)
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if n >= 0 && len(order) > n {
		order = order[:n]
	}
	return order
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
