package ui

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/salarydash/internal/models"
	"github.com/fr4nk3nst1ner/salarydash/internal/pipeline"
	"github.com/fr4nk3nst1ner/salarydash/internal/utils"
)

const (
	labelWidth = 32
	chartWidth = 50
)

// Page copy shared by every presentation.
const (
	EvolutionNote = "Some titles have no records for every year; their lines only cover the years with data."
	CountryHint   = "Country codes follow ISO 3166-1 alpha-2 (US, GB, BR...)."
)

// ReportOptions controls the optional parts of the terminal report.
type ReportOptions struct {
	// Records is how many rows of the filtered data to print. Zero hides
	// the data grid; a negative value prints every row.
	Records int
}

// PrintReport writes every dashboard section to w.
func PrintReport(w io.Writer, d pipeline.Dashboard, opts ReportOptions) error {
	r := reporter{w: w, d: d}

	r.section("Summary")
	if err := r.summary(); err != nil {
		return err
	}

	r.section("Company size")
	if err := r.counts(pipeline.SectionCompanySize, d.CompanySizes, "Size"); err != nil {
		return err
	}

	r.section(fmt.Sprintf("Top %d employee residences", pipeline.ResidenceTop))
	if err := r.counts(pipeline.SectionResidence, d.Residences, "Residence"); err != nil {
		return err
	}
	r.note(CountryHint)

	r.section("Work arrangement")
	if err := r.counts(pipeline.SectionRemote, d.RemoteTypes, "Arrangement"); err != nil {
		return err
	}

	r.section("Top paid titles")
	if err := r.ranking(pipeline.SectionTopPaidTitles, d.TopPaidTitles, "Title"); err != nil {
		return err
	}

	r.section("Salary distribution of the top paid titles")
	if err := r.boxes(pipeline.SectionTopPaidSalaries, d.TopPaidSalaries, "Title"); err != nil {
		return err
	}

	r.section("Mean salary by seniority")
	if err := r.ranking(pipeline.SectionSeniorityRanking, d.SeniorityRanking, "Seniority"); err != nil {
		return err
	}

	r.section("Salary distribution by seniority")
	if err := r.boxes(pipeline.SectionSenioritySalaries, d.SenioritySalaries, "Seniority"); err != nil {
		return err
	}

	r.section("Best paying company locations per title")
	if err := r.countries(); err != nil {
		return err
	}

	r.section("Salary evolution")
	if err := r.evolution(); err != nil {
		return err
	}

	if opts.Records != 0 {
		r.section("Filtered data")
		if err := r.records(opts.Records); err != nil {
			return err
		}
	}
	return nil
}

type reporter struct {
	w io.Writer
	d pipeline.Dashboard
}

func (r reporter) section(title string) {
	pterm.DefaultSection.WithWriter(r.w).Println(title)
}

func (r reporter) note(msg string) {
	pterm.Info.WithWriter(r.w).Println(msg)
}

// warned prints the warnings of a section and reports whether there were
// any.
func (r reporter) warned(section string) bool {
	found := false
	for _, w := range r.d.Warnings {
		if w.Section == section {
			pterm.Warning.WithWriter(r.w).Println(w.Message)
			found = true
		}
	}
	return found
}

func (r reporter) summary() error {
	if r.warned(pipeline.SectionSummary) {
		return nil
	}
	s := r.d.Summary
	box := func(title, value string) pterm.Panel {
		return pterm.Panel{Data: pterm.DefaultBox.WithTitle(title).Sprint(value)}
	}
	return pterm.DefaultPanel.WithWriter(r.w).WithPanels(pterm.Panels{
		{
			box("Records", utils.FormatCount(s.Records)),
			box("Mean salary", ColorizeSalary(s.MeanUSD)),
			box("Min salary", ColorizeSalary(s.MinUSD)),
			box("Max salary", ColorizeSalary(s.MaxUSD)),
			box("Most frequent title", s.TopTitle),
		},
	}).Render()
}

func (r reporter) counts(section string, cs []models.CategoryCount, header string) error {
	if r.warned(section) {
		return nil
	}
	total := 0
	for _, c := range cs {
		total += c.Count
	}
	data := pterm.TableData{{header, "Responses", "Share"}}
	for _, c := range cs {
		share := 0.0
		if total > 0 {
			share = 100 * float64(c.Count) / float64(total)
		}
		data = append(data, []string{c.Category, utils.FormatCount(c.Count), fmt.Sprintf("%.1f%%", share)})
	}
	return pterm.DefaultTable.WithWriter(r.w).WithHasHeader().WithData(data).Render()
}

func (r reporter) ranking(section string, ms []models.CategoryMean, header string) error {
	if r.warned(section) {
		return nil
	}
	if err := r.bars(ms); err != nil {
		return err
	}
	data := pterm.TableData{{header, "Mean salary", "Responses"}}
	for _, m := range ms {
		data = append(data, []string{m.Category, ColorizeSalary(m.MeanUSD), strconv.Itoa(m.Responses)})
	}
	return pterm.DefaultTable.WithWriter(r.w).WithHasHeader().WithData(data).Render()
}

// bars draws means as a horizontal bar chart. Rankings arrive in ascending
// order and bar charts draw the first bar on top, so they are reversed.
func (r reporter) bars(ms []models.CategoryMean) error {
	bars := make(pterm.Bars, 0, len(ms))
	for i := len(ms) - 1; i >= 0; i-- {
		bars = append(bars, pterm.Bar{
			Label: utils.Truncate(ms[i].Category, labelWidth),
			Value: int(math.Round(ms[i].MeanUSD)),
		})
	}
	return pterm.DefaultBarChart.
		WithWriter(r.w).
		WithHorizontal().
		WithShowValue().
		WithWidth(chartWidth).
		WithBars(bars).
		Render()
}

func (r reporter) boxes(section string, groups []models.SalaryGroup, header string) error {
	if r.warned(section) {
		return nil
	}
	data := pterm.TableData{{header, "Min", "Q1", "Median", "Q3", "Max", "Responses"}}
	for _, g := range groups {
		data = append(data, []string{
			g.Category,
			utils.FormatUSD(g.Box.Min),
			utils.FormatUSD(g.Box.Q1),
			utils.FormatUSD(g.Box.Median),
			utils.FormatUSD(g.Box.Q3),
			utils.FormatUSD(g.Box.Max),
			strconv.Itoa(len(g.Salaries)),
		})
	}
	return pterm.DefaultTable.WithWriter(r.w).WithHasHeader().WithData(data).Render()
}

func (r reporter) countries() error {
	if len(r.d.Selection.Contracts) == 0 || r.d.Empty() {
		r.warned(pipeline.SectionCountryRankings)
		return nil
	}
	for _, cr := range r.d.CountryRankings {
		pterm.DefaultSection.WithWriter(r.w).WithLevel(2).Println(cr.Title)
		if len(cr.Countries) == 0 {
			pterm.Warning.WithWriter(r.w).Printfln(pipeline.MsgNoTitleData, cr.Title)
			continue
		}
		data := pterm.TableData{{"Company location", "Mean salary", "Responses"}}
		for _, c := range cr.Countries {
			data = append(data, []string{c.Category, ColorizeSalary(c.MeanUSD), strconv.Itoa(c.Responses)})
		}
		if err := pterm.DefaultTable.WithWriter(r.w).WithHasHeader().WithData(data).Render(); err != nil {
			return err
		}
	}
	r.note(CountryHint)
	return nil
}

func (r reporter) evolution() error {
	if r.warned(pipeline.SectionSalaryEvolution) {
		return nil
	}
	data := pterm.TableData{{"Year", "Title", "Mean salary"}}
	for _, p := range r.d.SalaryEvolution {
		data = append(data, []string{strconv.Itoa(p.Year), p.Title, ColorizeSalary(p.MeanUSD)})
	}
	if err := pterm.DefaultTable.WithWriter(r.w).WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}
	r.note(EvolutionNote)
	return nil
}

func (r reporter) records(limit int) error {
	if r.warned(pipeline.SectionRecords) {
		return nil
	}
	rows := r.d.Records
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	data := pterm.TableData{{"Year", "Seniority", "Employment", "Title", "Salary", "Currency", "Salary (USD)", "Residence", "Remote", "Location", "Size"}}
	for _, rec := range rows {
		data = append(data, []string{
			strconv.Itoa(rec.Year),
			rec.Seniority,
			rec.EmploymentType,
			utils.Truncate(rec.Title, labelWidth),
			humanizeAmount(rec.Salary),
			rec.SalaryCurrency,
			utils.FormatUSD(rec.SalaryUSD),
			rec.EmployeeResidence,
			pipeline.RemoteLabel(rec.RemoteRatio),
			rec.CompanyLocation,
			rec.CompanySize,
		})
	}
	if err := pterm.DefaultTable.WithWriter(r.w).WithHasHeader().WithBoxed().WithData(data).Render(); err != nil {
		return err
	}
	if len(rows) < len(r.d.Records) {
		r.note(fmt.Sprintf("Showing %s of %s records", utils.FormatCount(len(rows)), utils.FormatCount(len(r.d.Records))))
	}
	return nil
}

func humanizeAmount(v float64) string {
	return utils.FormatCount(int(math.Round(v)))
}
