// Package tui is an interactive terminal dashboard: the filters on the left,
// the live summary of the filtered data on the right.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fr4nk3nst1ner/salarydash/internal/filter"
	"github.com/fr4nk3nst1ner/salarydash/internal/models"
	"github.com/fr4nk3nst1ner/salarydash/internal/pipeline"
	"github.com/fr4nk3nst1ner/salarydash/internal/ui"
	"github.com/fr4nk3nst1ner/salarydash/internal/utils"
)

// Dimension names, in tab order.
const (
	DimYear       = "Year"
	DimTitle      = "Title"
	DimSeniority  = "Seniority"
	DimSize       = "Company size"
	DimEmployment = "Employment"
	DimContracts  = "Compare"
)

const (
	defaultRows = 12
	rankingRows = 5
)

type option struct {
	value    string
	label    string
	selected bool
}

type dimension struct {
	name    string
	options []option
	cursor  int
}

// Model is the bubbletea model of the dashboard.
type Model struct {
	records []models.Record
	limits  pipeline.Limits
	initial models.Selection

	dims      []*dimension
	active    int
	search    textinput.Model
	searching bool

	dash     pipeline.Dashboard
	width    int
	height   int
	quitting bool
}

// New builds a model over records with the selectable values of catalog and
// sel preselected.
func New(records []models.Record, catalog models.Catalog, sel models.Selection, limits pipeline.Limits) *Model {
	search := textinput.New()
	search.Placeholder = "search"
	search.Prompt = "/ "
	search.CharLimit = 64

	m := &Model{
		records: records,
		limits:  limits,
		initial: sel,
		search:  search,
	}
	m.dims = []*dimension{
		{name: DimYear},
		{name: DimTitle},
		{name: DimSeniority},
		{name: DimSize},
		{name: DimEmployment},
		{name: DimContracts},
	}
	for _, y := range catalog.Years {
		m.dims[0].options = append(m.dims[0].options, option{value: strconv.Itoa(y), label: strconv.Itoa(y)})
	}
	for _, v := range catalog.Titles {
		m.dims[1].options = append(m.dims[1].options, option{value: v, label: v})
	}
	for _, v := range filter.ContractOptions(catalog, sel) {
		m.dims[5].options = append(m.dims[5].options, option{value: v, label: v})
	}
	for _, v := range catalog.Seniorities {
		label := v
		if l, ok := pipeline.SeniorityLabel(v); ok {
			label = l
		}
		m.dims[2].options = append(m.dims[2].options, option{value: v, label: label})
	}
	for _, v := range catalog.CompanySizes {
		m.dims[3].options = append(m.dims[3].options, option{value: v, label: v})
	}
	for _, v := range catalog.EmploymentTypes {
		m.dims[4].options = append(m.dims[4].options, option{value: v, label: v})
	}

	m.apply(sel)
	return m
}

// apply marks the options allowed by sel and refreshes the dashboard.
func (m *Model) apply(sel models.Selection) {
	years := make([]string, 0, len(sel.Years))
	for _, y := range sel.Years {
		years = append(years, strconv.Itoa(y))
	}
	for i, allowed := range [][]string{years, sel.Titles, sel.Seniorities, sel.CompanySizes, sel.EmploymentTypes, sel.Contracts} {
		set := make(map[string]bool, len(allowed))
		for _, v := range allowed {
			set[v] = true
		}
		d := m.dims[i]
		for j := range d.options {
			d.options[j].selected = set[d.options[j].value]
		}
	}
	m.refresh()
}

// Selection returns the current filter selection.
func (m *Model) Selection() models.Selection {
	picked := func(d *dimension) []string {
		out := make([]string, 0, len(d.options))
		for _, o := range d.options {
			if o.selected {
				out = append(out, o.value)
			}
		}
		return out
	}

	// Year options are built from ints and always parse.
	years := make([]int, 0)
	for _, v := range picked(m.dims[0]) {
		y, _ := strconv.Atoi(v)
		years = append(years, y)
	}
	return models.Selection{
		Years:           years,
		Titles:          picked(m.dims[1]),
		Seniorities:     picked(m.dims[2]),
		CompanySizes:    picked(m.dims[3]),
		EmploymentTypes: picked(m.dims[4]),
		Contracts:       picked(m.dims[5]),
	}
}

// Dashboard returns the dashboard of the current selection.
func (m *Model) Dashboard() pipeline.Dashboard {
	return m.dash
}

func (m *Model) refresh() {
	m.dash = pipeline.RenderWith(m.records, m.Selection(), m.limits)
}

// visible returns the indexes of the active dimension's options matching
// the search text.
func (m *Model) visible() []int {
	d := m.dims[m.active]
	q := strings.ToLower(strings.TrimSpace(m.search.Value()))
	out := make([]int, 0, len(d.options))
	for i, o := range d.options {
		if q == "" || strings.Contains(strings.ToLower(o.label), q) || strings.Contains(strings.ToLower(o.value), q) {
			out = append(out, i)
		}
	}
	return out
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.search.SetValue("")
		fallthrough
	case "enter":
		m.searching = false
		m.search.Blur()
		m.dims[m.active].cursor = 0
		return m, nil
	}

	var cmd tea.Cmd
	before := m.search.Value()
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.dims[m.active].cursor = 0
	}
	return m, cmd
}

func (m *Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := m.dims[m.active]
	vis := m.visible()

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "tab", "right", "l":
		m.switchTo((m.active + 1) % len(m.dims))
	case "shift+tab", "left", "h":
		m.switchTo((m.active + len(m.dims) - 1) % len(m.dims))
	case "up", "k":
		if d.cursor > 0 {
			d.cursor--
		}
	case "down", "j":
		if d.cursor < len(vis)-1 {
			d.cursor++
		}
	case " ", "enter", "x":
		if len(vis) > 0 {
			o := &d.options[vis[d.cursor]]
			o.selected = !o.selected
			m.refresh()
		}
	case "a":
		m.setVisible(vis, true)
	case "n":
		m.setVisible(vis, false)
	case "r":
		m.apply(m.initial)
	case "/":
		m.searching = true
		return m, m.search.Focus()
	}
	return m, nil
}

func (m *Model) switchTo(i int) {
	m.active = i
	m.search.SetValue("")
	m.dims[i].cursor = 0
}

func (m *Model) setVisible(vis []int, selected bool) {
	d := m.dims[m.active]
	for _, i := range vis {
		d.options[i].selected = selected
	}
	m.refresh()
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var tabs []string
	for i, d := range m.dims {
		label := fmt.Sprintf("%s %d/%d", d.name, countSelected(d), len(d.options))
		if i == m.active {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		paneStyle.Render(m.viewOptions()),
		paneStyle.Render(m.viewSummary()),
	)

	help := "tab/shift+tab dimension • ↑/↓ move • space toggle • a all • n none • / search • r reset • q quit"
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Salaries in data-related jobs"),
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		body,
		helpStyle.Render(help),
	)
}

func (m *Model) viewOptions() string {
	d := m.dims[m.active]
	vis := m.visible()

	var b strings.Builder
	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	if len(vis) == 0 {
		b.WriteString(warningStyle.Render("no matching values"))
		return b.String()
	}

	rows := defaultRows
	if m.height > 12 {
		rows = m.height - 10
	}
	start := 0
	if d.cursor >= rows {
		start = d.cursor - rows + 1
	}
	end := start + rows
	if end > len(vis) {
		end = len(vis)
	}

	for pos := start; pos < end; pos++ {
		o := d.options[vis[pos]]
		box := "[ ]"
		if o.selected {
			box = "[x]"
		}
		line := fmt.Sprintf("%s %s", box, utils.Truncate(o.label, 32))
		if pos == d.cursor {
			b.WriteString(cursorStyle.Render("> " + line))
		} else {
			b.WriteString(itemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	if len(vis) > end {
		fmt.Fprintf(&b, "  … %d more", len(vis)-end)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) viewSummary() string {
	var b strings.Builder
	if w, ok := m.dash.Warning(pipeline.SectionSummary); ok {
		return warningStyle.Render(w.Message)
	}

	s := m.dash.Summary
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Records:"), utils.FormatCount(s.Records))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Mean:"), ui.ColorizeSalary(s.MeanUSD))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Min:"), utils.FormatUSD(s.MinUSD))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Max:"), utils.FormatUSD(s.MaxUSD))
	fmt.Fprintf(&b, "%s %s\n\n", labelStyle.Render("Most frequent:"), s.TopTitle)

	b.WriteString(labelStyle.Render("Top paid titles"))
	b.WriteString("\n")
	top := m.dash.TopPaidTitles
	// Charts store the ranking ascending; list it best first.
	for i, n := len(top)-1, 0; i >= 0 && n < rankingRows; i, n = i-1, n+1 {
		fmt.Fprintf(&b, "%d. %s %s\n", n+1, utils.Truncate(top[i].Category, 28), ui.ColorizeSalary(top[i].MeanUSD))
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Mean by seniority"))
	b.WriteString("\n")
	if w, ok := m.dash.Warning(pipeline.SectionSeniorityRanking); ok {
		b.WriteString(warningStyle.Render(w.Message))
		b.WriteString("\n")
	}
	for _, r := range m.dash.SeniorityRanking {
		fmt.Fprintf(&b, "%-16s %s\n", r.Category, ui.ColorizeSalary(r.MeanUSD))
	}

	if w, ok := m.dash.Warning(pipeline.SectionCountryRankings); ok {
		b.WriteString("\n")
		b.WriteString(warningStyle.Render(w.Message))
	}
	return strings.TrimRight(b.String(), "\n")
}

func countSelected(d *dimension) int {
	n := 0
	for _, o := range d.options {
		if o.selected {
			n++
		}
	}
	return n
}
