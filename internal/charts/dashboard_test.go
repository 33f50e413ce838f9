package charts

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/fr4nk3nst1ner/salarydash/internal/filter"
	"github.com/fr4nk3nst1ner/salarydash/internal/models"
	"github.com/fr4nk3nst1ner/salarydash/internal/pipeline"
)

func dashboard() pipeline.Dashboard {
	records := []models.Record{
		{Year: 2022, Seniority: "SE", EmploymentType: "FT", Title: "Data Scientist", SalaryUSD: 150000, EmployeeResidence: "US", CompanyLocation: "US", CompanySize: "M"},
		{Year: 2023, Seniority: "MI", EmploymentType: "FT", Title: "Data Scientist", SalaryUSD: 110000, EmployeeResidence: "GB", CompanyLocation: "GB", CompanySize: "L", RemoteRatio: 50},
		{Year: 2023, Seniority: "EN", EmploymentType: "FT", Title: "Analyst", SalaryUSD: 60000, EmployeeResidence: "BR", CompanyLocation: "BR", CompanySize: "S", RemoteRatio: 100},
	}
	sel := filter.DefaultSelection(filter.BuildCatalog(records))
	return pipeline.Render(records, sel)
}

func TestKeys(t *testing.T) {
	want := []string{
		pipeline.SectionCompanySize,
		pipeline.SectionResidence,
		pipeline.SectionRemote,
		pipeline.SectionTopPaidTitles,
		pipeline.SectionTopPaidSalaries,
		pipeline.SectionSeniorityRanking,
		pipeline.SectionSenioritySalaries,
		"country_rankings:Data Scientist",
		"country_rankings:Analyst",
		pipeline.SectionSalaryEvolution,
	}
	if got := Keys(dashboard()); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestSection(t *testing.T) {
	d := dashboard()
	size := Size{Width: 320, Height: 200}

	for _, key := range Keys(d) {
		t.Run(key, func(t *testing.T) {
			var b bytes.Buffer
			if err := Section(&b, d, key, size); err != nil {
				t.Fatalf("Section() error = %v", err)
			}
			if !strings.Contains(b.String(), "<svg") {
				t.Errorf("output is not SVG: %.80q", b.String())
			}
		})
	}

	var b bytes.Buffer
	if err := Section(&b, d, CountryKey("Nobody"), size); err != ErrNoData {
		t.Errorf("unknown title error = %v, want ErrNoData", err)
	}
	if err := Section(&b, d, "pie", size); err == nil {
		t.Error("unknown chart returned no error")
	}
	if err := Section(&b, pipeline.Dashboard{}, pipeline.SectionCompanySize, size); err != ErrNoData {
		t.Errorf("empty section error = %v, want ErrNoData", err)
	}
}
