package dcboard

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/ppr-ocean-ia/dcboard/internal/appconfig"
	"github.com/ppr-ocean-ia/dcboard/internal/leaderboard"
	"github.com/ppr-ocean-ia/dcboard/internal/results"
)

var (
	successText = color.New(color.FgGreen).SprintFunc()
	failedText  = color.New(color.FgRed).SprintFunc()
	accentText  = color.New(color.FgCyan).SprintFunc()
)

// reportOptions turns the configuration into report generation options.
// fallback is used when no labels file is configured.
func reportOptions(cfg *appconfig.Config, fallback leaderboard.Labels) (leaderboard.Options, error) {
	labels := fallback
	if cfg.LabelsFile != "" {
		loaded, err := leaderboard.LoadLabels(cfg.LabelsFile)
		if err != nil {
			return leaderboard.Options{}, err
		}
		labels = loaded
	}
	return leaderboard.Options{
		Labels:           labels,
		ColorMap:         cfg.ColorMapName(),
		MaxLeadDays:      cfg.LeadDayLimit(),
		DefaultReference: cfg.Reference(),
	}, nil
}

// resultFiles returns args when given, otherwise the result files of the
// configured results directory.
func resultFiles(cfg *appconfig.Config, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	dir := cfg.Results()
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("results directory not found: %s", dir)
	}
	files, err := results.SelectResultFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("unable to list results in %s: %w", dir, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no result files found in %s", dir)
	}
	return files, nil
}

// loadReport loads the result files and generates the report items.
func loadReport(cfg *appconfig.Config, args []string, fallback leaderboard.Labels) (*results.Table, []leaderboard.Item, error) {
	files, err := resultFiles(cfg, args)
	if err != nil {
		return nil, nil, err
	}
	table, err := results.LoadFiles(files)
	if err != nil {
		return nil, nil, err
	}
	opts, err := reportOptions(cfg, fallback)
	if err != nil {
		return nil, nil, err
	}
	items, err := leaderboard.GenerateReportItems(table, opts)
	if err != nil {
		return nil, nil, err
	}
	return table, items, nil
}

// countTables returns how many pivot tables items contains.
func countTables(items []leaderboard.Item) int {
	n := 0
	for _, it := range items {
		if it.Kind == leaderboard.ItemTable {
			n++
		}
	}
	return n
}
