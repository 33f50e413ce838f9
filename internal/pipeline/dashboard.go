// Package pipeline turns a filtered view of salary records into the small
// derived tables behind each dashboard section.
package pipeline

import (
	"fmt"

	"github.com/fr4nk3nst1ner/salarydash/internal/filter"
	"github.com/fr4nk3nst1ner/salarydash/internal/models"
)

// Dashboard sections, as reported in warnings.
const (
	SectionSummary           = "summary"
	SectionCompanySize       = "company_size"
	SectionResidence         = "residence"
	SectionRemote            = "remote"
	SectionTopPaidTitles     = "top_paid_titles"
	SectionTopPaidSalaries   = "top_paid_salaries"
	SectionSeniorityRanking  = "seniority_ranking"
	SectionSenioritySalaries = "seniority_salaries"
	SectionCountryRankings   = "country_rankings"
	SectionSalaryEvolution   = "salary_evolution"
	SectionRecords           = "records"
)

// Messages shown for empty sections.
const (
	MsgNoData          = "No data available for the selected filters."
	MsgSelectContracts = "Select at least one contract to see this chart."
	MsgNoTitleData     = "No data for '%s' with the current filters."
)

// Limits sets the truncation of the ranked sections.
type Limits struct {
	Residences int `json:"residence_top"`
	TopPaid    int `json:"ranking_top"`
	Countries  int `json:"country_top"`
}

// DefaultLimits returns the section sizes of the original dashboard.
func DefaultLimits() Limits {
	return Limits{
		Residences: ResidenceTop,
		TopPaid:    TopPaidLimit,
		Countries:  CountryLimit,
	}
}

// Dashboard is every derived table for one selection.
type Dashboard struct {
	Selection         models.Selection            `json:"selection"`
	Summary           models.Summary              `json:"summary"`
	CompanySizes      []models.CategoryCount      `json:"company_sizes"`
	Residences        []models.CategoryCount      `json:"residences"`
	RemoteTypes       []models.CategoryCount      `json:"remote_types"`
	TopPaidTitles     []models.CategoryMean       `json:"top_paid_titles"`
	TopPaidSalaries   []models.SalaryGroup        `json:"top_paid_salaries"`
	SeniorityRanking  []models.CategoryMean       `json:"seniority_ranking"`
	SenioritySalaries []models.SalaryGroup        `json:"seniority_salaries"`
	CountryRankings   []models.CountryRanking     `json:"country_rankings"`
	SalaryEvolution   []models.YearMean           `json:"salary_evolution"`
	Records           []models.Record             `json:"records"`
	Warnings          []models.EmptyResultWarning `json:"warnings"`
}

// Empty reports whether the selection matched no records.
func (d Dashboard) Empty() bool {
	return len(d.Records) == 0
}

// Warning returns the first warning of a section, if any.
func (d Dashboard) Warning(section string) (models.EmptyResultWarning, bool) {
	for _, w := range d.Warnings {
		if w.Section == section {
			return w, true
		}
	}
	return models.EmptyResultWarning{}, false
}

// Render filters records with sel and computes every section with the
// default limits.
func Render(records []models.Record, sel models.Selection) Dashboard {
	return RenderWith(records, sel, DefaultLimits())
}

// RenderWith is Render with explicit section limits. Sections are computed
// independently from the same filtered view; records is never modified.
func RenderWith(records []models.Record, sel models.Selection, lim Limits) Dashboard {
	view := filter.Apply(records, sel)

	d := Dashboard{
		Selection:         sel,
		Summary:           Summarize(view),
		CompanySizes:      CompanySizeDistribution(view),
		Residences:        ResidenceDistribution(view, lim.Residences),
		RemoteTypes:       RemoteDistribution(view),
		TopPaidTitles:     TopPaidTitles(view, lim.TopPaid),
		TopPaidSalaries:   TopPaidTitleSalaries(view, lim.TopPaid),
		SeniorityRanking:  SeniorityRanking(view),
		SenioritySalaries: SenioritySalaries(view),
		CountryRankings:   CountryRankings(view, sel.Contracts, lim.Countries),
		SalaryEvolution:   SalaryEvolution(view, sel.Contracts),
		Records:           view,
		Warnings:          make([]models.EmptyResultWarning, 0),
	}

	warn := func(section, msg string) {
		d.Warnings = append(d.Warnings, models.EmptyResultWarning{Section: section, Message: msg})
	}

	if len(view) == 0 {
		for _, s := range []string{
			SectionSummary, SectionCompanySize, SectionResidence, SectionRemote,
			SectionTopPaidTitles, SectionTopPaidSalaries, SectionSeniorityRanking,
			SectionSenioritySalaries, SectionCountryRankings, SectionSalaryEvolution,
			SectionRecords,
		} {
			warn(s, MsgNoData)
		}
		return d
	}

	// Records with unknown seniority codes can leave the seniority
	// sections empty on their own.
	if len(d.SeniorityRanking) == 0 {
		warn(SectionSeniorityRanking, MsgNoData)
		warn(SectionSenioritySalaries, MsgNoData)
	}

	if len(sel.Contracts) == 0 {
		warn(SectionCountryRankings, MsgSelectContracts)
		warn(SectionSalaryEvolution, MsgSelectContracts)
		return d
	}
	for _, cr := range d.CountryRankings {
		if len(cr.Countries) == 0 {
			warn(SectionCountryRankings, fmt.Sprintf(MsgNoTitleData, cr.Title))
		}
	}
	if len(d.SalaryEvolution) == 0 {
		warn(SectionSalaryEvolution, MsgNoData)
	}
	return d
}
