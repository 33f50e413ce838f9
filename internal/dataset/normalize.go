package dataset

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"

	"github.com/fr4nk3nst1ner/salarydash/internal/models"
)

// Column pairs a published CSV column with its normalized field name.
type Column struct {
	Raw   string
	Field string
}

// Columns is the fixed rename mapping, in file order.
var Columns = []Column{
	{Raw: "work_year", Field: "year"},
	{Raw: "experience_level", Field: "seniority"},
	{Raw: "employment_type", Field: "employment_type"},
	{Raw: "job_title", Field: "title"},
	{Raw: "salary", Field: "salary"},
	{Raw: "salary_currency", Field: "salary_currency"},
	{Raw: "salary_in_usd", Field: "salary_usd"},
	{Raw: "employee_residence", Field: "employee_residence"},
	{Raw: "remote_ratio", Field: "remote_ratio"},
	{Raw: "company_location", Field: "company_location"},
	{Raw: "company_size", Field: "company_size"},
}

// missingTokens are the spellings of a missing value accepted by common
// dataframe CSV readers.
var missingTokens = map[string]struct{}{
	"":         {},
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Stats counts the rows seen by Normalize.
type Stats struct {
	Rows    int
	Dropped int
}

// Normalize decodes a salaries CSV and returns the complete records under
// their normalized field names. A row with any missing or unparsable value
// is dropped whole.
func Normalize(r io.Reader) ([]models.Record, Stats, error) {
	var stats Stats

	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	dec, err := csvutil.NewDecoder(csv.NewReader(br))
	if err != nil {
		if err == io.EOF {
			return nil, stats, errors.New("dataset is empty")
		}
		return nil, stats, errors.Wrap(err, "failed to read CSV header")
	}

	if missing := missingColumns(dec.Header()); len(missing) > 0 {
		return nil, stats, errors.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}

	var records []models.Record
	for {
		var raw models.RawRecord
		if err := dec.Decode(&raw); err == io.EOF {
			break
		} else if err != nil {
			return nil, stats, errors.Wrapf(err, "failed to decode row %d", stats.Rows+1)
		}
		stats.Rows++

		rec, ok := normalizeRecord(raw)
		if !ok {
			stats.Dropped++
			continue
		}
		records = append(records, rec)
	}

	return records, stats, nil
}

func missingColumns(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[strings.TrimSpace(h)] = true
	}
	var missing []string
	for _, c := range Columns {
		if !present[c.Raw] {
			missing = append(missing, c.Raw)
		}
	}
	return missing
}

func normalizeRecord(raw models.RawRecord) (models.Record, bool) {
	var rec models.Record
	var ok bool

	texts := []struct {
		dst *string
		src string
	}{
		{&rec.Seniority, raw.ExperienceLevel},
		{&rec.EmploymentType, raw.EmploymentType},
		{&rec.Title, raw.JobTitle},
		{&rec.SalaryCurrency, raw.SalaryCurrency},
		{&rec.EmployeeResidence, raw.EmployeeResidence},
		{&rec.CompanyLocation, raw.CompanyLocation},
		{&rec.CompanySize, raw.CompanySize},
	}
	for _, t := range texts {
		if *t.dst, ok = text(t.src); !ok {
			return rec, false
		}
	}

	if rec.Year, ok = integer(raw.WorkYear); !ok {
		return rec, false
	}
	if rec.RemoteRatio, ok = integer(raw.RemoteRatio); !ok {
		return rec, false
	}
	if rec.Salary, ok = number(raw.Salary); !ok {
		return rec, false
	}
	// A negative USD salary cannot be charted; it counts as unusable.
	if rec.SalaryUSD, ok = number(raw.SalaryInUSD); !ok || rec.SalaryUSD < 0 {
		return rec, false
	}

	return rec, true
}

func isMissing(s string) bool {
	_, ok := missingTokens[s]
	return ok
}

func text(s string) (string, bool) {
	s = norm.NFC.String(strings.TrimSpace(s))
	if isMissing(s) {
		return "", false
	}
	return s, true
}

func number(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if isMissing(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func integer(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		return v, true
	}
	// Columns written by float-typed tools come out as "2023.0".
	f, ok := number(s)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}
