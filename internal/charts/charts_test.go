package charts

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fr4nk3nst1ner/salarydash/internal/models"
)

func TestPlotsRenderSVG(t *testing.T) {
	size := Size{Width: 320, Height: 200}
	tests := []struct {
		name string
		draw func(*bytes.Buffer) error
	}{
		{"ranking", func(b *bytes.Buffer) error {
			return Ranking(b, "Top paid", []models.CategoryMean{
				{Category: "Analyst", MeanUSD: 70000},
				{Category: "Data Scientist", MeanUSD: 75000},
			}, size)
		}},
		{"distribution", func(b *bytes.Buffer) error {
			return Distribution(b, "Company size", []models.CategoryCount{
				{Category: "M", Count: 2},
				{Category: "S", Count: 1},
			}, size)
		}},
		{"evolution", func(b *bytes.Buffer) error {
			return Evolution(b, []models.YearMean{
				{Year: 2022, Title: "Analyst", MeanUSD: 70000},
				{Year: 2023, Title: "Analyst", MeanUSD: 72000},
				{Year: 2022, Title: "Data Scientist", MeanUSD: 90000},
				{Year: 2023, Title: "Data Scientist", MeanUSD: 75000},
			}, size)
		}},
		{"boxes", func(b *bytes.Buffer) error {
			return Boxes(b, "Seniority", []models.SalaryGroup{
				{Category: "Junior-level", Box: models.BoxStats{Min: 1, Q1: 2, Median: 3, Q3: 4, Max: 5}},
				{Category: "Senior-level", Box: models.BoxStats{Min: 2, Q1: 3, Median: 4, Q3: 5, Max: 6}},
			}, size)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b bytes.Buffer
			if err := tt.draw(&b); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(b.String(), "<svg") {
				t.Errorf("output is not SVG: %.80q", b.String())
			}
		})
	}
}

func TestPlotsRejectEmptyInput(t *testing.T) {
	var b bytes.Buffer
	errs := []error{
		Ranking(&b, "x", nil, Size{}),
		Distribution(&b, "x", nil, Size{}),
		Evolution(&b, nil, Size{}),
		Boxes(&b, "x", nil, Size{}),
	}
	for i, err := range errs {
		if err != ErrNoData {
			t.Errorf("plot %d: got %v, want ErrNoData", i, err)
		}
	}
	if b.Len() != 0 {
		t.Errorf("wrote %d bytes for empty input", b.Len())
	}
}

func TestGrid(t *testing.T) {
	var b bytes.Buffer
	Grid(&b, []models.Record{{
		Year: 2023, Seniority: "SE", EmploymentType: "FT", Title: "Data Scientist",
		Salary: 100000, SalaryCurrency: "USD", SalaryUSD: 100000,
		EmployeeResidence: "US", RemoteRatio: 100, CompanyLocation: "US", CompanySize: "M",
	}})

	out := b.String()
	for _, want := range []string{"salary_usd", "Data Scientist", "100000", "2023"} {
		if !strings.Contains(out, want) {
			t.Errorf("grid is missing %q:\n%s", want, out)
		}
	}
}

func TestMeansGrid(t *testing.T) {
	var b bytes.Buffer
	MeansGrid(&b, []models.CategoryMean{{Category: "Senior-level", MeanUSD: 100000, Responses: 3}})
	if out := b.String(); !strings.Contains(out, "100000.00") || !strings.Contains(out, "Senior-level") {
		t.Errorf("unexpected grid:\n%s", out)
	}
}
