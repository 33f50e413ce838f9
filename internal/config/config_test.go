package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/fr4nk3nst1ner/salarydash/internal/dataset"
	"github.com/fr4nk3nst1ner/salarydash/internal/filter"
	"github.com/fr4nk3nst1ner/salarydash/internal/models"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config is invalid: %v", err)
	}
	if cfg.Dataset.URL != dataset.DefaultSource {
		t.Errorf("Dataset.URL = %q", cfg.Dataset.URL)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
dataset:
  url: ./salaries.csv
  timeout: 5s
  progress: true
web:
  port: 9090
display:
  residence_top: 5
defaults:
  years: [2023]
  contracts: ["Data Engineer"]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Dataset.URL != "./salaries.csv" || cfg.Dataset.Timeout != 5*time.Second || !cfg.Dataset.Progress {
		t.Errorf("Dataset = %+v", cfg.Dataset)
	}
	if cfg.Web.Port != 9090 {
		t.Errorf("Web.Port = %d", cfg.Web.Port)
	}
	// Unset fields keep their defaults.
	if cfg.Display.ResidenceTop != 5 || cfg.Display.RankingTop != Default().Display.RankingTop {
		t.Errorf("Display = %+v", cfg.Display)
	}
	if lim := cfg.Limits(); lim.Residences != 5 {
		t.Errorf("Limits() = %+v", lim)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "web:\n  port: 9090\n")
	t.Setenv(EnvDatasetURL, "https://example.com/salaries.csv")
	t.Setenv(EnvTimeout, "1m")
	t.Setenv(EnvWebPort, "7070")
	t.Setenv(EnvWebUser, "admin")
	t.Setenv(EnvWebPass, "secret")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Dataset.URL != "https://example.com/salaries.csv" || cfg.Dataset.Timeout != time.Minute {
		t.Errorf("Dataset = %+v", cfg.Dataset)
	}
	if cfg.Web.Port != 7070 || cfg.Web.Username != "admin" || cfg.Web.Password != "secret" {
		t.Errorf("Web = %+v", cfg.Web)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") },
			wantErr: "config file not found",
		},
		{
			name:    "bad yaml",
			path:    func(t *testing.T) string { return writeConfig(t, "dataset: [") },
			wantErr: "failed to parse config file",
		},
		{
			name:    "bad port",
			path:    func(t *testing.T) string { return writeConfig(t, "web:\n  port: 70000\n") },
			wantErr: "web.port out of range",
		},
		{
			name:    "bad env port",
			path:    func(t *testing.T) string { return writeConfig(t, "") },
			env:     map[string]string{EnvWebPort: "http"},
			wantErr: "invalid WEB_PORT",
		},
		{
			name:    "username without password",
			path:    func(t *testing.T) string { return writeConfig(t, "web:\n  username: admin\n") },
			wantErr: "must be set together",
		},
		{
			name:    "zero ranking",
			path:    func(t *testing.T) string { return writeConfig(t, "display:\n  ranking_top: 0\n") },
			wantErr: "display.ranking_top must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(tt.path(t))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestInitialSelection(t *testing.T) {
	records := []models.Record{
		{Year: 2022, Title: "Analyst", Seniority: "MI", CompanySize: "M", EmploymentType: "FT"},
		{Year: 2023, Title: "Data Scientist", Seniority: "SE", CompanySize: "L", EmploymentType: "FT"},
		{Year: 2023, Title: "Data Scientist", Seniority: "EN", CompanySize: "S", EmploymentType: "CT"},
	}
	catalog := filter.BuildCatalog(records)

	cfg := Default()
	if got, want := cfg.InitialSelection(records, catalog), filter.DefaultSelection(catalog); !reflect.DeepEqual(got, want) {
		t.Errorf("InitialSelection() = %+v, want %+v", got, want)
	}

	cfg.Display.TopContracts = 1
	cfg.Defaults.Years = []int{2023}
	sel := cfg.InitialSelection(records, catalog)
	if !reflect.DeepEqual(sel.Contracts, []string{"Data Scientist"}) {
		t.Errorf("Contracts = %v", sel.Contracts)
	}
	if !reflect.DeepEqual(sel.Years, []int{2023}) {
		t.Errorf("Years = %v", sel.Years)
	}
	if !reflect.DeepEqual(sel.Titles, catalog.Titles) {
		t.Errorf("Titles = %v, want every title", sel.Titles)
	}
}
