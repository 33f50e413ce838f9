package charts

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/fr4nk3nst1ner/salarydash/internal/pipeline"
)

// CountryKey is the chart key of the country ranking of one title.
func CountryKey(title string) string {
	return pipeline.SectionCountryRankings + ":" + title
}

// Keys lists the chart keys of d in page order. Country rankings have one
// key per compared title.
func Keys(d pipeline.Dashboard) []string {
	keys := []string{
		pipeline.SectionCompanySize,
		pipeline.SectionResidence,
		pipeline.SectionRemote,
		pipeline.SectionTopPaidTitles,
		pipeline.SectionTopPaidSalaries,
		pipeline.SectionSeniorityRanking,
		pipeline.SectionSenioritySalaries,
	}
	for _, cr := range d.CountryRankings {
		keys = append(keys, CountryKey(cr.Title))
	}
	return append(keys, pipeline.SectionSalaryEvolution)
}

// Section draws the chart of one dashboard section. It returns ErrNoData
// when the section is empty.
func Section(w io.Writer, d pipeline.Dashboard, key string, size Size) error {
	switch key {
	case pipeline.SectionCompanySize:
		return Distribution(w, "Responses by company size", d.CompanySizes, size)
	case pipeline.SectionResidence:
		return Distribution(w, "Responses by employee residence", d.Residences, size)
	case pipeline.SectionRemote:
		return Distribution(w, "Responses by work arrangement", d.RemoteTypes, size)
	case pipeline.SectionTopPaidTitles:
		return Ranking(w, "Top paid titles", d.TopPaidTitles, size)
	case pipeline.SectionTopPaidSalaries:
		return Boxes(w, "Salary distribution of the top paid titles", d.TopPaidSalaries, size)
	case pipeline.SectionSeniorityRanking:
		return Ranking(w, "Mean salary by seniority", d.SeniorityRanking, size)
	case pipeline.SectionSenioritySalaries:
		return Boxes(w, "Salary distribution by seniority", d.SenioritySalaries, size)
	case pipeline.SectionSalaryEvolution:
		return Evolution(w, d.SalaryEvolution, size)
	}

	if title := strings.TrimPrefix(key, pipeline.SectionCountryRankings+":"); title != key {
		for _, cr := range d.CountryRankings {
			if cr.Title == title {
				return Ranking(w, cr.Title, cr.Countries, size)
			}
		}
		return ErrNoData
	}
	return errors.Errorf("unknown chart %q", key)
}
