package utils

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// FormatUSD formats an amount of US dollars as "$1,234.56".
func FormatUSD(v float64) string {
	if v < 0 {
		return "-$" + humanize.FormatFloat("#,###.##", -v)
	}
	return "$" + humanize.FormatFloat("#,###.##", v)
}

// FormatCount formats a count with thousands separators.
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// Truncate shortens s to at most n runes, marking the cut with an ellipsis.
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

// SplitList flattens repeated and comma separated values, trimming blanks
// and dropping duplicates while keeping the first occurrence order.
func SplitList(values []string) []string {
	var parts []string
	for _, v := range values {
		parts = append(parts, strings.Split(v, ",")...)
	}
	return UniqueList(parts)
}

// UniqueList trims values and drops blanks and duplicates, keeping the
// first occurrence order. Values are taken whole, so free text such as job
// titles may contain commas.
func UniqueList(values []string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// ParseYears parses a list of years given as in SplitList.
func ParseYears(values []string) ([]int, error) {
	parts := SplitList(values)
	years := make([]int, 0, len(parts))
	for _, p := range parts {
		y, err := strconv.Atoi(p)
		if err != nil {
			return nil, errors.Errorf("invalid year %q", p)
		}
		years = append(years, y)
	}
	return years, nil
}
