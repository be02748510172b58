package leaderboard

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultReferenceHeader     = "## Reference dataset: {ref_alias}"
	defaultMetricHeader        = "### Metric: {metric_name}"
	defaultVariableGroupHeader = "#### {var_type} Variables"
	defaultNoData              = "## No data found in the JSON result files"
)

// Labels customizes the display names and section headers of a report.
type Labels struct {
	// MetricNames replaces the built-in metric names when non-nil.
	MetricNames map[string]string `yaml:"metrics_names"`
	// VariableNames renames variable column headers.
	VariableNames map[string]string `yaml:"variables_names"`
	Texts         Texts             `yaml:"texts"`
}

// Texts holds header templates. Placeholders: {ref_alias}, {metric_name}
// and {var_type}. Empty fields fall back to the defaults.
type Texts struct {
	ReferenceHeader     string `yaml:"reference_header"`
	MetricHeader        string `yaml:"metric_header"`
	VariableGroupHeader string `yaml:"variable_group_header"`
	NoData              string `yaml:"no_data"`
}

// DefaultMetricNames are the long names of the challenge metrics.
func DefaultMetricNames() map[string]string {
	return map[string]string{
		"rmse":                      "Root Mean Squared Error",
		"rmsd":                      "Root Mean Squared Deviation",
		"rmsd_geostrophic_currents": "RMSD of Geostrophic Currents",
		"rmsd_mld":                  "RMSD of Mixed Layer Depth",
		"lagrangian":                "Lagrangian analysis",
	}
}

// DefaultLabels returns the built-in metric names and header templates.
func DefaultLabels() Labels {
	return Labels{MetricNames: DefaultMetricNames()}
}

// SiteLabels returns the naming used on the published leaderboard.
func SiteLabels() Labels {
	return Labels{
		MetricNames: map[string]string{
			"rmse":                      "Root Mean Squared Error (RMSE)",
			"rmsd":                      "Standard Deviation (RMSD)",
			"rmsd_geostrophic_currents": "RMSD Geostrophic Currents",
		},
		VariableNames: map[string]string{
			"Surface ssh":   "Sea Surface Height (SSH)",
			"ssh":           "Sea Surface Height (SSH)",
			"sst":           "Sea Surface Temperature (SST)",
			"u":             "Velocity U",
			"v":             "Velocity V",
			"u_geostrophic": "Velocity U (Geo)",
			"v_geostrophic": "Velocity V (Geo)",
		},
		Texts: Texts{
			ReferenceHeader:     "## Reference Dataset: {ref_alias}",
			MetricHeader:        "### Metric: {metric_name}",
			VariableGroupHeader: "#### Variable Type: {var_type}",
		},
	}
}

// LoadLabels reads Labels from a YAML file using the metrics_names,
// variables_names and texts keys.
func LoadLabels(path string) (Labels, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Labels{}, fmt.Errorf("unable to read labels file %s: %w", path, err)
	}
	var labels Labels
	if err := yaml.Unmarshal(data, &labels); err != nil {
		return Labels{}, fmt.Errorf("unable to parse labels file %s: %w", path, err)
	}
	return labels, nil
}

// MetricName returns the display name for a metric key.
func (l Labels) MetricName(metric string) string {
	names := l.MetricNames
	if names == nil {
		names = DefaultMetricNames()
	}
	if name, ok := names[metric]; ok {
		return name
	}
	return metric
}

// VariableName returns the display name for a variable key.
func (l Labels) VariableName(variable string) string {
	if name, ok := l.VariableNames[variable]; ok {
		return name
	}
	return variable
}

func (t Texts) withDefaults() Texts {
	if t.ReferenceHeader == "" {
		t.ReferenceHeader = defaultReferenceHeader
	}
	if t.MetricHeader == "" {
		t.MetricHeader = defaultMetricHeader
	}
	if t.VariableGroupHeader == "" {
		t.VariableGroupHeader = defaultVariableGroupHeader
	}
	if t.NoData == "" {
		t.NoData = defaultNoData
	}
	return t
}

// fillTemplate substitutes {name} placeholders.
func fillTemplate(tmpl string, values map[string]string) string {
	pairs := make([]string, 0, len(values)*2)
	for k, v := range values {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
