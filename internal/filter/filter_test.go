package filter

import (
	"reflect"
	"testing"

	"github.com/fr4nk3nst1ner/salarydash/internal/models"
)

func rec(year int, title, seniority, size, employment string, usd float64) models.Record {
	return models.Record{
		Year:              year,
		Title:             title,
		Seniority:         seniority,
		CompanySize:       size,
		EmploymentType:    employment,
		SalaryUSD:         usd,
		Salary:            usd,
		SalaryCurrency:    "USD",
		EmployeeResidence: "US",
		CompanyLocation:   "US",
	}
}

func fixture() []models.Record {
	return []models.Record{
		rec(2023, "Data Scientist", "SE", "M", "FT", 100000),
		rec(2023, "Data Scientist", "EN", "S", "FT", 50000),
		rec(2022, "Analyst", "MI", "M", "CT", 70000),
		rec(2021, "Data Engineer", "SE", "L", "FT", 120000),
		rec(2022, "Data Engineer", "EX", "L", "FT", 200000),
		rec(2023, "Analyst", "EN", "S", "PT", 40000),
	}
}

func TestBuildCatalog(t *testing.T) {
	c := BuildCatalog(fixture())

	if want := []int{2021, 2022, 2023}; !reflect.DeepEqual(c.Years, want) {
		t.Errorf("Years = %v, want %v", c.Years, want)
	}
	if want := []string{"Analyst", "Data Engineer", "Data Scientist"}; !reflect.DeepEqual(c.Titles, want) {
		t.Errorf("Titles = %v, want %v", c.Titles, want)
	}
	if want := []string{"EN", "EX", "MI", "SE"}; !reflect.DeepEqual(c.Seniorities, want) {
		t.Errorf("Seniorities = %v, want %v", c.Seniorities, want)
	}
	if want := []string{"L", "M", "S"}; !reflect.DeepEqual(c.CompanySizes, want) {
		t.Errorf("CompanySizes = %v, want %v", c.CompanySizes, want)
	}
	if want := []string{"CT", "FT", "PT"}; !reflect.DeepEqual(c.EmploymentTypes, want) {
		t.Errorf("EmploymentTypes = %v, want %v", c.EmploymentTypes, want)
	}
	// All three titles appear twice; first occurrence decides.
	if want := []string{"Data Scientist", "Analyst", "Data Engineer"}; !reflect.DeepEqual(c.TopTitles, want) {
		t.Errorf("TopTitles = %v, want %v", c.TopTitles, want)
	}
}

func TestMostFrequent(t *testing.T) {
	var records []models.Record
	add := func(title string, n int) {
		for i := 0; i < n; i++ {
			records = append(records, rec(2023, title, "SE", "M", "FT", 1))
		}
	}
	add("c", 1)
	add("a", 3)
	add("b", 3)
	add("d", 5)
	for i := 0; i < 12; i++ {
		add(string(rune('e'+i)), 1)
	}

	got := MostFrequent(records, func(r models.Record) string { return r.Title }, TopTitlesLimit)
	want := []string{"d", "a", "b", "c", "e", "f", "g", "h", "i", "j"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MostFrequent() = %v, want %v", got, want)
	}
}

func TestDefaultSelectionSelectsEverything(t *testing.T) {
	records := fixture()
	sel := DefaultSelection(BuildCatalog(records))

	if got := Apply(records, sel); len(got) != len(records) {
		t.Errorf("default selection kept %d of %d records", len(got), len(records))
	}
	if len(sel.Contracts) != 3 {
		t.Errorf("Contracts = %v, want the 3 most frequent titles", sel.Contracts)
	}
}

func TestContractOptions(t *testing.T) {
	c := BuildCatalog(fixture())

	tests := []struct {
		name      string
		contracts []string
		want      []string
	}{
		{
			name: "most frequent first",
			want: []string{"Data Scientist", "Analyst", "Data Engineer"},
		},
		{
			name:      "selection order does not reorder",
			contracts: []string{"Data Engineer", "Data Scientist"},
			want:      []string{"Data Scientist", "Analyst", "Data Engineer"},
		},
		{
			name:      "other compared titles follow",
			contracts: []string{"Head of Data, EMEA", "Analyst"},
			want:      []string{"Data Scientist", "Analyst", "Data Engineer", "Head of Data, EMEA"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContractOptions(c, models.Selection{Contracts: tt.contracts})
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ContractOptions() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyYear(t *testing.T) {
	records := fixture()
	sel := DefaultSelection(BuildCatalog(records))
	sel.Years = []int{2023}

	got := Apply(records, sel)
	if len(got) != 3 {
		t.Fatalf("got %d records, want 3", len(got))
	}
	for _, r := range got {
		if r.Year != 2023 {
			t.Errorf("unexpected year %d", r.Year)
		}
	}
}

func TestApplyEmptyDimensionYieldsNothing(t *testing.T) {
	records := fixture()
	base := DefaultSelection(BuildCatalog(records))

	tests := []struct {
		name   string
		mutate func(*models.Selection)
	}{
		{name: "years", mutate: func(s *models.Selection) { s.Years = nil }},
		{name: "titles", mutate: func(s *models.Selection) { s.Titles = []string{} }},
		{name: "seniorities", mutate: func(s *models.Selection) { s.Seniorities = nil }},
		{name: "company sizes", mutate: func(s *models.Selection) { s.CompanySizes = nil }},
		{name: "employment types", mutate: func(s *models.Selection) { s.EmploymentTypes = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := base
			tt.mutate(&sel)
			if got := Apply(records, sel); len(got) != 0 {
				t.Errorf("got %d records, want 0", len(got))
			}
		})
	}
}

func TestApplyContractsIsNotABaseFilter(t *testing.T) {
	records := fixture()
	sel := DefaultSelection(BuildCatalog(records))
	sel.Contracts = nil

	if got := Apply(records, sel); len(got) != len(records) {
		t.Errorf("clearing contracts changed the base filter: %d records", len(got))
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	records := fixture()
	sel := DefaultSelection(BuildCatalog(records))
	sel.Seniorities = []string{"SE", "EN"}
	sel.CompanySizes = []string{"M", "S"}

	once := Apply(records, sel)
	twice := Apply(once, sel)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Apply is not idempotent:\n once  %v\n twice %v", once, twice)
	}
}

func TestApplyIsMonotone(t *testing.T) {
	records := fixture()
	sel := DefaultSelection(BuildCatalog(records))
	prev := len(Apply(records, sel))

	// Narrow one dimension at a time; the result must never grow.
	steps := []func(*models.Selection){
		func(s *models.Selection) { s.Years = []int{2022, 2023} },
		func(s *models.Selection) { s.Titles = []string{"Analyst", "Data Scientist"} },
		func(s *models.Selection) { s.CompanySizes = []string{"S"} },
		func(s *models.Selection) { s.Seniorities = []string{"EN"} },
		func(s *models.Selection) { s.EmploymentTypes = []string{"PT"} },
		func(s *models.Selection) { s.Years = nil },
	}
	for i, step := range steps {
		step(&sel)
		n := len(Apply(records, sel))
		if n > prev {
			t.Fatalf("step %d grew the result from %d to %d", i, prev, n)
		}
		prev = n
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	records := fixture()
	orig := append([]models.Record(nil), records...)
	sel := DefaultSelection(BuildCatalog(records))
	sel.Years = []int{2021}

	_ = Apply(records, sel)
	if !reflect.DeepEqual(records, orig) {
		t.Error("Apply modified its input")
	}
}

func TestByTitles(t *testing.T) {
	records := fixture()
	if got := ByTitle(records, "Analyst"); len(got) != 2 {
		t.Errorf("ByTitle() = %d records, want 2", len(got))
	}
	if got := ByTitles(records, []string{"Analyst", "Data Engineer"}); len(got) != 4 {
		t.Errorf("ByTitles() = %d records, want 4", len(got))
	}
	if got := ByTitles(records, nil); len(got) != 0 {
		t.Errorf("ByTitles(nil) = %d records, want 0", len(got))
	}
}
