// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ppr-ocean-ia/dcboard/internal/colormap"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// defaultResultsDir holds the JSON result files when none is configured.
	defaultResultsDir = "results"
	// defaultOutputDir receives the generated site.
	defaultOutputDir = "site"
	// defaultReference is the model other models are compared against.
	defaultReference = "glonet"
	// defaultMaxLeadDays caps the lead-day columns per variable.
	defaultMaxLeadDays = 4
	// defaultLogFile is used when logFile is empty.
	defaultLogFile = "dcboard.log"
)

// Config represents the top-level application configuration.
type Config struct {
	ResultsDir        string `json:"resultsDir,omitempty"`
	OutputDir         string `json:"outputDir,omitempty"`
	TemplateDir       string `json:"templateDir,omitempty"`
	BenchmarksDir     string `json:"benchmarksDir,omitempty"`
	IncludeBenchmarks bool   `json:"includeBenchmarks"`
	LabelsFile        string `json:"labelsFile,omitempty"`
	ReferenceModel    string `json:"referenceModel,omitempty"`
	MaxLeadDays       int    `json:"maxLeadDays,omitempty"`
	ColorMap          string `json:"colorMap,omitempty"`
	Title             string `json:"title,omitempty"`
	Debug             bool   `json:"debug"`
	LogFile           string `json:"logFile,omitempty"`
	ConfigPath        string `json:"-"`
}

// Results returns the directory scanned for result files.
func (c Config) Results() string {
	if dir := strings.TrimSpace(c.ResultsDir); dir != "" {
		return dir
	}
	return defaultResultsDir
}

// Output returns the directory the site is written to.
func (c Config) Output() string {
	if dir := strings.TrimSpace(c.OutputDir); dir != "" {
		return dir
	}
	return defaultOutputDir
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return defaultLogFile
}

// LeadDayLimit returns how many lead days a table shows.
func (c Config) LeadDayLimit() int {
	if c.MaxLeadDays <= 0 {
		return defaultMaxLeadDays
	}
	return c.MaxLeadDays
}

// ColorMapName returns the configured colormap or the default one.
func (c Config) ColorMapName() string {
	if name := strings.TrimSpace(c.ColorMap); name != "" {
		return name
	}
	return colormap.DefaultName
}

// Reference returns the preferred reference model.
func (c Config) Reference() string {
	if ref := strings.TrimSpace(c.ReferenceModel); ref != "" {
		return ref
	}
	return defaultReference
}

// Validate reports settings that cannot produce a report.
func (c Config) Validate() error {
	if c.MaxLeadDays < 0 {
		return fmt.Errorf("maxLeadDays must not be negative, got %d", c.MaxLeadDays)
	}
	if _, err := colormap.Get(c.ColorMapName()); err != nil {
		return err
	}
	return nil
}

// Load reads and validates a single JSON configuration file. An empty path
// selects DefaultConfigPath. Flags are not applied.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("no configuration file found at %q", path)
	}
	if err != nil {
		return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
	}
	defer file.Close()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return Config{}, fmt.Errorf("could not parse config file %q: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %q: %w", path, err)
	}
	config.ConfigPath = path
	return config, nil
}
