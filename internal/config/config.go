// Package config loads salarydash settings from a YAML file, a .env file
// and the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/fr4nk3nst1ner/salarydash/internal/charts"
	"github.com/fr4nk3nst1ner/salarydash/internal/dataset"
	"github.com/fr4nk3nst1ner/salarydash/internal/filter"
	"github.com/fr4nk3nst1ner/salarydash/internal/models"
	"github.com/fr4nk3nst1ner/salarydash/internal/pipeline"
)

// Config represents the application configuration.
type Config struct {
	Dataset  DatasetConfig  `yaml:"dataset"`
	Web      WebConfig      `yaml:"web"`
	Display  DisplayConfig  `yaml:"display"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// DatasetConfig describes where the salaries CSV comes from.
type DatasetConfig struct {
	URL      string        `yaml:"url"`
	Timeout  time.Duration `yaml:"timeout"`
	Proxy    string        `yaml:"proxy"`
	Progress bool          `yaml:"progress"`
}

type WebConfig struct {
	Port     int    `yaml:"port"`
	Username string `yaml:"username"` // Prefer WEB_USERNAME env var
	Password string `yaml:"password"` // Prefer WEB_PASSWORD env var
}

type DisplayConfig struct {
	TopContracts int `yaml:"top_contracts"`
	ResidenceTop int `yaml:"residence_top"`
	RankingTop   int `yaml:"ranking_top"`
	CountryTop   int `yaml:"country_top"`
	ChartWidth   int `yaml:"chart_width"`
	ChartHeight  int `yaml:"chart_height"`
	Records      int `yaml:"records"`
}

// DefaultsConfig narrows the initial selection. Empty lists keep every
// value.
type DefaultsConfig struct {
	Years           []int    `yaml:"years"`
	Titles          []string `yaml:"titles"`
	Seniorities     []string `yaml:"seniorities"`
	CompanySizes    []string `yaml:"company_sizes"`
	EmploymentTypes []string `yaml:"employment_types"`
	Contracts       []string `yaml:"contracts"`
}

// Environment variables that override the file.
const (
	EnvDatasetURL = "SALARYDASH_DATASET_URL"
	EnvProxy      = "SALARYDASH_PROXY"
	EnvTimeout    = "SALARYDASH_TIMEOUT"
	EnvWebPort    = "WEB_PORT"
	EnvWebUser    = "WEB_USERNAME"
	EnvWebPass    = "WEB_PASSWORD"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Dataset: DatasetConfig{
			URL:     dataset.DefaultSource,
			Timeout: 30 * time.Second,
		},
		Web: WebConfig{
			Port: 8080,
		},
		Display: DisplayConfig{
			TopContracts: filter.TopTitlesLimit,
			ResidenceTop: pipeline.ResidenceTop,
			RankingTop:   pipeline.TopPaidLimit,
			CountryTop:   pipeline.CountryLimit,
			ChartWidth:   charts.DefaultSize.Width,
			ChartHeight:  charts.DefaultSize.Height,
			Records:      20,
		},
	}
}

// Load reads configuration from path with .env and environment variable
// overrides. An empty path searches the usual locations and falls back to
// the defaults when no file exists.
func Load(path string) (cfg Config, err error) {
	cfg = Default()

	if err = godotenv.Load(); err != nil && !os.IsNotExist(err) {
		err = errors.Wrap(err, "failed to load .env file")
		return cfg, err
	}
	err = nil

	explicit := path != ""
	if !explicit {
		path = findConfigPath()
	}

	if path != "" {
		var data []byte
		data, err = os.ReadFile(path)
		switch {
		case err == nil:
			if err = yaml.Unmarshal(data, &cfg); err != nil {
				err = errors.Wrapf(err, "failed to parse config file: %s", path)
				return cfg, err
			}
		case os.IsNotExist(err) && !explicit:
			err = nil
		case os.IsNotExist(err):
			err = errors.Errorf("config file not found: %s", path)
			return cfg, err
		default:
			err = errors.Wrapf(err, "failed to read config file: %s", path)
			return cfg, err
		}
	}

	if err = cfg.ApplyEnv(); err != nil {
		return cfg, err
	}

	if err = cfg.Validate(); err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}
	return cfg, nil
}

func findConfigPath() string {
	paths := []string{
		"salarydash.yaml",
		"config.yaml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".salarydash", "config.yaml"))
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// ApplyEnv overrides settings with the environment.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvDatasetURL); v != "" {
		c.Dataset.URL = v
	}
	if v := os.Getenv(EnvProxy); v != "" {
		c.Dataset.Proxy = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", EnvTimeout)
		}
		c.Dataset.Timeout = d
	}
	if v := os.Getenv(EnvWebPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", EnvWebPort)
		}
		c.Web.Port = port
	}
	if v := os.Getenv(EnvWebUser); v != "" {
		c.Web.Username = v
	}
	if v := os.Getenv(EnvWebPass); v != "" {
		c.Web.Password = v
	}
	return nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Dataset.URL == "" {
		return errors.New("dataset.url is required")
	}
	if c.Dataset.Timeout <= 0 {
		return errors.New("dataset.timeout must be positive")
	}
	if c.Web.Port <= 0 || c.Web.Port > 65535 {
		return errors.Errorf("web.port out of range: %d", c.Web.Port)
	}
	if (c.Web.Username == "") != (c.Web.Password == "") {
		return errors.New("web.username and web.password must be set together")
	}

	for name, v := range map[string]int{
		"display.top_contracts": c.Display.TopContracts,
		"display.residence_top": c.Display.ResidenceTop,
		"display.ranking_top":   c.Display.RankingTop,
		"display.country_top":   c.Display.CountryTop,
		"display.chart_width":   c.Display.ChartWidth,
		"display.chart_height":  c.Display.ChartHeight,
	} {
		if v <= 0 {
			return errors.Errorf("%s must be positive", name)
		}
	}
	return nil
}

// Limits returns the section sizes used by the pipelines.
func (c Config) Limits() pipeline.Limits {
	return pipeline.Limits{
		Residences: c.Display.ResidenceTop,
		TopPaid:    c.Display.RankingTop,
		Countries:  c.Display.CountryTop,
	}
}

// ChartSize returns the SVG canvas size.
func (c Config) ChartSize() charts.Size {
	return charts.Size{Width: c.Display.ChartWidth, Height: c.Display.ChartHeight}
}

// InitialSelection returns the selection a new session starts with: every
// catalog value, narrowed by the configured defaults.
func (c Config) InitialSelection(records []models.Record, catalog models.Catalog) models.Selection {
	sel := filter.DefaultSelection(catalog)
	if c.Display.TopContracts != filter.TopTitlesLimit {
		sel.Contracts = filter.MostFrequent(records, func(r models.Record) string { return r.Title }, c.Display.TopContracts)
	}

	d := c.Defaults
	if len(d.Years) > 0 {
		sel.Years = append([]int(nil), d.Years...)
	}
	if len(d.Titles) > 0 {
		sel.Titles = append([]string(nil), d.Titles...)
	}
	if len(d.Seniorities) > 0 {
		sel.Seniorities = append([]string(nil), d.Seniorities...)
	}
	if len(d.CompanySizes) > 0 {
		sel.CompanySizes = append([]string(nil), d.CompanySizes...)
	}
	if len(d.EmploymentTypes) > 0 {
		sel.EmploymentTypes = append([]string(nil), d.EmploymentTypes...)
	}
	if len(d.Contracts) > 0 {
		sel.Contracts = append([]string(nil), d.Contracts...)
	}
	return sel
}
