package ui

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/salarydash/internal/filter"
	"github.com/fr4nk3nst1ner/salarydash/internal/models"
	"github.com/fr4nk3nst1ner/salarydash/internal/pipeline"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

func fixture() []models.Record {
	return []models.Record{
		{Year: 2023, Title: "Data Scientist", Seniority: "SE", CompanySize: "M", EmploymentType: "FT", SalaryUSD: 100000, Salary: 100000, SalaryCurrency: "USD", RemoteRatio: 100, EmployeeResidence: "US", CompanyLocation: "US"},
		{Year: 2023, Title: "Data Scientist", Seniority: "EN", CompanySize: "S", EmploymentType: "FT", SalaryUSD: 50000, Salary: 250000, SalaryCurrency: "BRL", RemoteRatio: 0, EmployeeResidence: "BR", CompanyLocation: "BR"},
		{Year: 2022, Title: "Analyst", Seniority: "MI", CompanySize: "M", EmploymentType: "FT", SalaryUSD: 70000, Salary: 70000, SalaryCurrency: "USD", RemoteRatio: 50, EmployeeResidence: "US", CompanyLocation: "US"},
	}
}

func TestPrintReport(t *testing.T) {
	records := fixture()
	sel := filter.DefaultSelection(filter.BuildCatalog(records))
	sel.Years = []int{2023}

	var b bytes.Buffer
	if err := PrintReport(&b, pipeline.Render(records, sel), ReportOptions{Records: -1}); err != nil {
		t.Fatalf("PrintReport() error = %v", err)
	}

	out := b.String()
	for _, want := range []string{
		"Summary",
		"Top paid titles",
		"Data Scientist",
		"$75,000.00",
		"Junior-level",
		"Senior-level",
		"BRL",
		CountryHint,
		// Analyst is a default contract but has no 2023 records.
		"No data for 'Analyst' with the current filters.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report is missing %q", want)
		}
	}
}

func TestPrintReportEmptySelection(t *testing.T) {
	records := fixture()
	sel := filter.DefaultSelection(filter.BuildCatalog(records))
	sel.Titles = nil

	var b bytes.Buffer
	if err := PrintReport(&b, pipeline.Render(records, sel), ReportOptions{}); err != nil {
		t.Fatalf("PrintReport() error = %v", err)
	}

	out := b.String()
	if !strings.Contains(out, pipeline.MsgNoData) {
		t.Errorf("report does not explain the empty selection:\n%s", out)
	}
	if strings.Contains(out, "Filtered data") {
		t.Error("data grid printed although it was not requested")
	}
}

func TestColorizeSalary(t *testing.T) {
	tests := []struct {
		usd  float64
		want string
	}{
		{250000, "$250,000.00"},
		{99999.99, "$99,999.99"},
		{0, "$0.00"},
	}
	for _, tt := range tests {
		if got := ColorizeSalary(tt.usd); got != tt.want {
			t.Errorf("ColorizeSalary(%v) = %q, want %q", tt.usd, got, tt.want)
		}
	}
}
