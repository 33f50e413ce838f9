package models

// RawRecord mirrors one row of the salaries CSV exactly as published.
// Every column is read as text so that missing and malformed values can be
// told apart from legitimate zeroes during normalization.
type RawRecord struct {
	WorkYear          string `csv:"work_year"`
	ExperienceLevel   string `csv:"experience_level"`
	EmploymentType    string `csv:"employment_type"`
	JobTitle          string `csv:"job_title"`
	Salary            string `csv:"salary"`
	SalaryCurrency    string `csv:"salary_currency"`
	SalaryInUSD       string `csv:"salary_in_usd"`
	EmployeeResidence string `csv:"employee_residence"`
	RemoteRatio       string `csv:"remote_ratio"`
	CompanyLocation   string `csv:"company_location"`
	CompanySize       string `csv:"company_size"`
}

// Record is a normalized salary row. Every field is populated.
type Record struct {
	Year              int     `json:"year"`
	Seniority         string  `json:"seniority"`
	EmploymentType    string  `json:"employment_type"`
	Title             string  `json:"title"`
	Salary            float64 `json:"salary"`
	SalaryCurrency    string  `json:"salary_currency"`
	SalaryUSD         float64 `json:"salary_usd"`
	EmployeeResidence string  `json:"employee_residence"`
	RemoteRatio       int     `json:"remote_ratio"`
	CompanyLocation   string  `json:"company_location"`
	CompanySize       string  `json:"company_size"`
}

// Selection holds the allowed values for each filterable dimension.
// An empty slice allows nothing; it is never treated as a wildcard.
type Selection struct {
	Years           []int    `json:"years"`
	Titles          []string `json:"titles"`
	Seniorities     []string `json:"seniorities"`
	CompanySizes    []string `json:"company_sizes"`
	EmploymentTypes []string `json:"employment_types"`

	// Contracts narrows the per-title breakdowns only. It is not part of
	// the base filter.
	Contracts []string `json:"contracts"`
}

// Catalog lists the selectable values of every dimension, computed over the
// full, unfiltered record set.
type Catalog struct {
	Years           []int    `json:"years"`
	Titles          []string `json:"titles"`
	Seniorities     []string `json:"seniorities"`
	CompanySizes    []string `json:"company_sizes"`
	EmploymentTypes []string `json:"employment_types"`
	TopTitles       []string `json:"top_titles"`
}

// CategoryCount is one slice of a distribution chart.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CategoryMean is one bar of a ranking chart.
type CategoryMean struct {
	Category  string  `json:"category"`
	MeanUSD   float64 `json:"mean_salary_usd"`
	Responses int     `json:"responses"`
}

// BoxStats is the five-number summary drawn by a box plot.
type BoxStats struct {
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// SalaryGroup holds the raw USD salaries of one category, for box plots.
type SalaryGroup struct {
	Category string    `json:"category"`
	Salaries []float64 `json:"salaries"`
	Box      BoxStats  `json:"box"`
}

// CountryRanking is the per-title breakdown of mean salary by company
// location.
type CountryRanking struct {
	Title     string         `json:"title"`
	Countries []CategoryMean `json:"countries"`
}

// YearMean is one point of the salary evolution chart.
type YearMean struct {
	Year    int     `json:"year"`
	Title   string  `json:"title"`
	MeanUSD float64 `json:"mean_salary_usd"`
}

// Summary holds the headline metrics of a filtered view.
type Summary struct {
	Records  int     `json:"records"`
	MeanUSD  float64 `json:"mean_salary_usd"`
	MinUSD   float64 `json:"min_salary_usd"`
	MaxUSD   float64 `json:"max_salary_usd"`
	TopTitle string  `json:"top_title"`
}

// EmptyResultWarning signals that a section had nothing to show for the
// current selection. It is informational, not an error.
type EmptyResultWarning struct {
	Section string `json:"section"`
	Message string `json:"message"`
}
