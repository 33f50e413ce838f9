package utils

import (
	"reflect"
	"testing"
)

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{75000, "$75,000.00"},
		{1234.567, "$1,234.57"},
		{999.5, "$999.50"},
		{-1500, "-$1,500.00"},
	}
	for _, tt := range tests {
		if got := FormatUSD(tt.in); got != tt.want {
			t.Errorf("FormatUSD(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatCount(t *testing.T) {
	if got := FormatCount(1234567); got != "1,234,567" {
		t.Errorf("FormatCount() = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"Data Scientist", 20, "Data Scientist"},
		{"Data Scientist", 6, "Data …"},
		{"Análise", 3, "An…"},
		{"abc", 0, "abc"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList([]string{"SE, EN", "", "MI,SE", " EX "})
	want := []string{"SE", "EN", "MI", "EX"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitList() = %v, want %v", got, want)
	}
	if got := SplitList(nil); len(got) != 0 {
		t.Errorf("SplitList(nil) = %v", got)
	}
}

func TestParseYears(t *testing.T) {
	got, err := ParseYears([]string{"2023,2022", "2021"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{2023, 2022, 2021}; !reflect.DeepEqual(got, want) {
		t.Errorf("ParseYears() = %v, want %v", got, want)
	}
	if _, err := ParseYears([]string{"twenty"}); err == nil {
		t.Error("expected an error for a non-numeric year")
	}
}

func TestUniqueList(t *testing.T) {
	got := UniqueList([]string{"Head of Data, EMEA", " Analyst ", "", "Analyst"})
	want := []string{"Head of Data, EMEA", "Analyst"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UniqueList() = %v, want %v", got, want)
	}
}
