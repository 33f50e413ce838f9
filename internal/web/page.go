package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/pkg/errors"

	"github.com/fr4nk3nst1ner/salarydash/internal/charts"
	"github.com/fr4nk3nst1ner/salarydash/internal/filter"
	"github.com/fr4nk3nst1ner/salarydash/internal/models"
	"github.com/fr4nk3nst1ner/salarydash/internal/pipeline"
	"github.com/fr4nk3nst1ner/salarydash/internal/ui"
	"github.com/fr4nk3nst1ner/salarydash/internal/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"usd":        utils.FormatUSD,
		"count":      utils.FormatCount,
		"remote":     pipeline.RemoteLabel,
		"seniority":  seniorityName,
		"has":        has,
		"hasYear":    hasYear,
		"dict":       dict,
		"countryKey": charts.CountryKey,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse templates")
	}
	return tmpl, nil
}

type page struct {
	Source      string
	LoadedAt    time.Time
	Fingerprint string
	Catalog     models.Catalog
	Selection   models.Selection
	Contracts   []string
	Dashboard   pipeline.Dashboard
	Charts      map[string]template.HTML
	Rows        []models.Record
	TotalRows   int

	Sections struct {
		Summary, CompanySize, Residence, Remote, TopPaidTitles, TopPaidSalaries,
		SeniorityRanking, SenioritySalaries, CountryRankings, SalaryEvolution, Records string
	}
	CountryHint   string
	EvolutionNote string
	ResidenceTop  int
}

// Notices returns the no-data messages of a section.
func (p page) Notices(section string) []string {
	var out []string
	for _, w := range p.Dashboard.Warnings {
		if w.Section == section {
			out = append(out, w.Message)
		}
	}
	return out
}

func (s *Server) newPage(st *state, d pipeline.Dashboard) page {
	p := page{
		Source:        st.ds.Source,
		LoadedAt:      st.ds.LoadedAt,
		Fingerprint:   fmt.Sprintf("%016x", st.ds.Fingerprint),
		Catalog:       st.catalog,
		Selection:     d.Selection,
		Contracts:     filter.ContractOptions(st.catalog, d.Selection),
		Dashboard:     d,
		Charts:        s.drawCharts(d),
		Rows:          d.Records,
		TotalRows:     len(d.Records),
		CountryHint:   ui.CountryHint,
		EvolutionNote: ui.EvolutionNote,
		ResidenceTop:  s.cfg.Display.ResidenceTop,
	}
	if n := s.cfg.Display.Records; n >= 0 && len(p.Rows) > n {
		p.Rows = p.Rows[:n]
	}

	p.Sections.Summary = pipeline.SectionSummary
	p.Sections.CompanySize = pipeline.SectionCompanySize
	p.Sections.Residence = pipeline.SectionResidence
	p.Sections.Remote = pipeline.SectionRemote
	p.Sections.TopPaidTitles = pipeline.SectionTopPaidTitles
	p.Sections.TopPaidSalaries = pipeline.SectionTopPaidSalaries
	p.Sections.SeniorityRanking = pipeline.SectionSeniorityRanking
	p.Sections.SenioritySalaries = pipeline.SectionSenioritySalaries
	p.Sections.CountryRankings = pipeline.SectionCountryRankings
	p.Sections.SalaryEvolution = pipeline.SectionSalaryEvolution
	p.Sections.Records = pipeline.SectionRecords
	return p
}

// drawCharts renders the SVG charts of d, keyed as charts.Keys. Sections
// with nothing to plot have no chart.
func (s *Server) drawCharts(d pipeline.Dashboard) map[string]template.HTML {
	size := s.cfg.ChartSize()
	out := make(map[string]template.HTML)
	for _, key := range charts.Keys(d) {
		var b bytes.Buffer
		err := charts.Section(&b, d, key, size)
		switch {
		case err == charts.ErrNoData:
		case err != nil:
			ui.Logger().Warn("failed to draw chart", ui.Logger().Args("chart", key, "error", err))
		default:
			out[key] = template.HTML(b.String()) //nolint:gosec // generated SVG
		}
	}
	return out
}

func seniorityName(code string) string {
	if label, ok := pipeline.SeniorityLabel(code); ok {
		return label
	}
	return code
}

func has(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func hasYear(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

// dict builds a map from alternating keys and values so partial templates
// can take more than one argument.
func dict(pairs ...interface{}) (map[string]interface{}, error) {
	if len(pairs)%2 != 0 {
		return nil, errors.New("dict needs an even number of arguments")
	}
	m := make(map[string]interface{}, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		k, ok := pairs[i].(string)
		if !ok {
			return nil, errors.Errorf("dict key %v is not a string", pairs[i])
		}
		m[k] = pairs[i+1]
	}
	return m, nil
}
