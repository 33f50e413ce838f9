// Package charts draws dashboard sections as SVG plots and plain-text
// grids.
package charts

import (
	"fmt"
	"io"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/pkg/errors"

	"github.com/fr4nk3nst1ner/salarydash/internal/models"
)

// ErrNoData is returned when a section has nothing to plot.
var ErrNoData = errors.New("no data to plot")

// Size is the SVG canvas size in pixels.
type Size struct {
	Width  int
	Height int
}

// DefaultSize is used when a Size has a zero dimension.
var DefaultSize = Size{Width: 640, Height: 400}

func (s Size) orDefault() Size {
	if s.Width <= 0 {
		s.Width = DefaultSize.Width
	}
	if s.Height <= 0 {
		s.Height = DefaultSize.Height
	}
	return s
}

// write renders p as SVG. go-gg reports some layout failures by panicking;
// those are returned as errors.
func write(w io.Writer, p *gg.Plot, size Size) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("failed to render svg: %v", r)
		}
	}()

	size = size.orDefault()
	if err := p.WriteSVG(w, size.Width, size.Height); err != nil {
		return errors.Wrap(err, "failed to render svg")
	}
	return nil
}

// Ranking plots mean salaries, one point per category.
func Ranking(w io.Writer, title string, ms []models.CategoryMean, size Size) error {
	if len(ms) == 0 {
		return ErrNoData
	}
	categories := make([]string, len(ms))
	values := make([]float64, len(ms))
	for i, m := range ms {
		categories[i] = m.Category
		values[i] = m.MeanUSD
	}
	tab := new(table.Builder).
		Add("category", categories).
		Add("mean salary (USD)", values).
		Done()

	p := gg.NewPlot(tab)
	p.SetScale("x", gg.NewLinearScaler().Include(0))
	p.Add(gg.LayerPoints{X: "mean salary (USD)", Y: "category"})
	p.Add(gg.Title(title))
	return write(w, p, size)
}

// Distribution plots record counts, one point per category.
func Distribution(w io.Writer, title string, cs []models.CategoryCount, size Size) error {
	if len(cs) == 0 {
		return ErrNoData
	}
	categories := make([]string, len(cs))
	values := make([]float64, len(cs))
	for i, c := range cs {
		categories[i] = c.Category
		values[i] = float64(c.Count)
	}
	tab := new(table.Builder).
		Add("category", categories).
		Add("responses", values).
		Done()

	p := gg.NewPlot(tab)
	p.SetScale("x", gg.NewLinearScaler().Include(0))
	p.Add(gg.LayerPoints{X: "responses", Y: "category"})
	p.Add(gg.Title(title))
	return write(w, p, size)
}

// Evolution plots mean salary per year, one line per title.
func Evolution(w io.Writer, points []models.YearMean, size Size) error {
	if len(points) == 0 {
		return ErrNoData
	}
	years := make([]float64, len(points))
	titles := make([]string, len(points))
	values := make([]float64, len(points))
	for i, pt := range points {
		years[i] = float64(pt.Year)
		titles[i] = pt.Title
		values[i] = pt.MeanUSD
	}
	tab := new(table.Builder).
		Add("year", years).
		Add("mean salary (USD)", values).
		Add("title", titles).
		Done()

	p := gg.NewPlot(tab)
	p.Add(gg.LayerLines{X: "year", Y: "mean salary (USD)", Color: "title"})
	p.Add(gg.LayerPoints{X: "year", Y: "mean salary (USD)", Color: "title"})
	p.Add(gg.Title("Mean salary per year"))
	return write(w, p, size)
}

// Boxes plots the five-number summary of each salary group as colored
// points on one row per category.
func Boxes(w io.Writer, title string, groups []models.SalaryGroup, size Size) error {
	if len(groups) == 0 {
		return ErrNoData
	}
	var categories, stats []string
	var values []float64
	for _, g := range groups {
		for _, s := range []struct {
			name  string
			value float64
		}{
			{"min", g.Box.Min},
			{"q1", g.Box.Q1},
			{"median", g.Box.Median},
			{"q3", g.Box.Q3},
			{"max", g.Box.Max},
		} {
			categories = append(categories, g.Category)
			stats = append(stats, s.name)
			values = append(values, s.value)
		}
	}
	tab := new(table.Builder).
		Add("category", categories).
		Add("salary (USD)", values).
		Add("stat", stats).
		Done()

	p := gg.NewPlot(tab)
	p.Add(gg.LayerPoints{X: "salary (USD)", Y: "category", Color: "stat"})
	p.Add(gg.Title(title))
	return write(w, p, size)
}

// Grid prints records as an aligned text table.
func Grid(w io.Writer, records []models.Record) {
	n := len(records)
	years := make([]int, n)
	seniority := make([]string, n)
	employment := make([]string, n)
	titles := make([]string, n)
	salary := make([]float64, n)
	currency := make([]string, n)
	usd := make([]float64, n)
	residence := make([]string, n)
	remote := make([]int, n)
	location := make([]string, n)
	size := make([]string, n)
	for i, r := range records {
		years[i] = r.Year
		seniority[i] = r.Seniority
		employment[i] = r.EmploymentType
		titles[i] = r.Title
		salary[i] = r.Salary
		currency[i] = r.SalaryCurrency
		usd[i] = r.SalaryUSD
		residence[i] = r.EmployeeResidence
		remote[i] = r.RemoteRatio
		location[i] = r.CompanyLocation
		size[i] = r.CompanySize
	}
	tab := new(table.Builder).
		Add("year", years).
		Add("seniority", seniority).
		Add("employment", employment).
		Add("title", titles).
		Add("salary", salary).
		Add("currency", currency).
		Add("salary_usd", usd).
		Add("residence", residence).
		Add("remote", remote).
		Add("location", location).
		Add("size", size).
		Done()
	table.Fprint(w, tab, "%d", "%s", "%s", "%s", "%.0f", "%s", "%.0f", "%s", "%d", "%s", "%s")
}

// MeansGrid prints a ranking as an aligned text table.
func MeansGrid(w io.Writer, ms []models.CategoryMean) {
	categories := make([]string, len(ms))
	values := make([]string, len(ms))
	responses := make([]int, len(ms))
	for i, m := range ms {
		categories[i] = m.Category
		values[i] = fmt.Sprintf("%.2f", m.MeanUSD)
		responses[i] = m.Responses
	}
	tab := new(table.Builder).
		Add("category", categories).
		Add("mean_salary_usd", values).
		Add("responses", responses).
		Done()
	table.Fprint(w, tab)
}
