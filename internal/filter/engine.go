package filter

import (
	"github.com/fr4nk3nst1ner/salarydash/internal/models"
)

// DefaultSelection allows every catalog value and selects the most
// frequent titles as contracts.
func DefaultSelection(c models.Catalog) models.Selection {
	return models.Selection{
		Years:           append([]int(nil), c.Years...),
		Titles:          append([]string(nil), c.Titles...),
		Seniorities:     append([]string(nil), c.Seniorities...),
		CompanySizes:    append([]string(nil), c.CompanySizes...),
		EmploymentTypes: append([]string(nil), c.EmploymentTypes...),
		Contracts:       append([]string(nil), c.TopTitles...),
	}
}

// ContractOptions lists the titles offered for comparison: the most
// frequent titles in frequency order, then any other title sel already
// compares. Hosts present the options in this order so a selection read
// back from them keeps it.
func ContractOptions(c models.Catalog, sel models.Selection) []string {
	out := append([]string(nil), c.TopTitles...)
	offered := setOf(out)
	for _, t := range sel.Contracts {
		if _, ok := offered[t]; !ok {
			offered[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}

// Apply returns the records whose year, title, seniority, company size and
// employment type are all allowed by sel. An empty dimension allows
// nothing. The input slice is never modified.
func Apply(records []models.Record, sel models.Selection) []models.Record {
	years := make(map[int]struct{}, len(sel.Years))
	for _, y := range sel.Years {
		years[y] = struct{}{}
	}
	titles := setOf(sel.Titles)
	seniorities := setOf(sel.Seniorities)
	sizes := setOf(sel.CompanySizes)
	employment := setOf(sel.EmploymentTypes)

	out := make([]models.Record, 0)
	for _, r := range records {
		if _, ok := years[r.Year]; !ok {
			continue
		}
		if _, ok := titles[r.Title]; !ok {
			continue
		}
		if _, ok := seniorities[r.Seniority]; !ok {
			continue
		}
		if _, ok := sizes[r.CompanySize]; !ok {
			continue
		}
		if _, ok := employment[r.EmploymentType]; !ok {
			continue
		}
		out = append(out, r)
	}
	return out
}

// ByTitle returns the records with the given title.
func ByTitle(records []models.Record, title string) []models.Record {
	var out []models.Record
	for _, r := range records {
		if r.Title == title {
			out = append(out, r)
		}
	}
	return out
}

// ByTitles returns the records whose title is one of titles.
func ByTitles(records []models.Record, titles []string) []models.Record {
	allowed := setOf(titles)
	var out []models.Record
	for _, r := range records {
		if _, ok := allowed[r.Title]; ok {
			out = append(out, r)
		}
	}
	return out
}

func setOf(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
