package web

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/zeebo/xxh3"

	"github.com/fr4nk3nst1ner/salarydash/internal/models"
	"github.com/fr4nk3nst1ner/salarydash/internal/utils"
)

// Query parameters of a selection. Every parameter may be repeated. Code
// and year parameters may also hold a comma separated list; titles are
// free text and taken whole.
const (
	paramYear       = "year"
	paramTitle      = "title"
	paramSeniority  = "seniority"
	paramSize       = "size"
	paramEmployment = "employment"
	paramContract   = "contract"

	// paramFiltered marks a submitted filter form: absent dimensions are
	// then empty instead of defaulted, since browsers omit unchecked boxes.
	paramFiltered = "filtered"
)

// selectionFromQuery overlays the query on the default selection. A
// dimension missing from the query keeps its default unless the query
// comes from the filter form.
func selectionFromQuery(q url.Values, defaults models.Selection) (models.Selection, error) {
	sel := defaults
	form := q.Has(paramFiltered)

	strs := func(param string, dflt []string, parse func([]string) []string) []string {
		if vs, ok := q[param]; ok {
			return parse(vs)
		}
		if form {
			return []string{}
		}
		return dflt
	}

	if vs, ok := q[paramYear]; ok {
		years, err := utils.ParseYears(vs)
		if err != nil {
			return sel, err
		}
		sel.Years = years
	} else if form {
		sel.Years = []int{}
	}
	sel.Titles = strs(paramTitle, defaults.Titles, utils.UniqueList)
	sel.Seniorities = strs(paramSeniority, defaults.Seniorities, utils.SplitList)
	sel.CompanySizes = strs(paramSize, defaults.CompanySizes, utils.SplitList)
	sel.EmploymentTypes = strs(paramEmployment, defaults.EmploymentTypes, utils.SplitList)
	sel.Contracts = strs(paramContract, defaults.Contracts, utils.UniqueList)
	return sel, nil
}

// etag identifies the dashboard of sel over the dataset with the given
// fingerprint.
func etag(fingerprint uint64, sel models.Selection, extra ...string) string {
	canonical, _ := json.Marshal(sel)
	key := fmt.Sprintf("%016x|%s|%s", fingerprint, canonical, strings.Join(extra, "|"))
	return fmt.Sprintf(`"%016x"`, xxh3.HashString(key))
}
