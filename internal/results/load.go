package results

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/ppr-ocean-ia/dcboard/internal/logging"
)

// LoadDir reads every *.json file directly inside dir, in lexical order.
func LoadDir(dir string) (*Table, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("unable to stat results dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("results path is not a directory: %s", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("unable to read results dir %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return LoadFiles(paths)
}

// LoadFiles normalizes the given result files into a single table. Files that
// parse as JSON but are not result documents are skipped; unreadable or
// malformed files are errors.
func LoadFiles(paths []string) (*Table, error) {
	var records []Record
	for _, path := range paths {
		recs, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		records = append(records, recs...)
	}
	logging.LogStage("results", "files", len(paths), "records", len(records))
	return NewTable(records), nil
}

// SelectResultFiles returns the results_*.json files in dir, or every *.json
// file when none follow that naming.
func SelectResultFiles(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "results_*.json"))
	if err != nil {
		return nil, err
	}
	if len(files) > 0 {
		return files, nil
	}
	return filepath.Glob(filepath.Join(dir, "*.json"))
}

func loadFile(path string) ([]Record, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read results file %s: %w", path, err)
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("unable to parse results file %s: %w", path, err)
	}
	doc, ok := decoded.(map[string]any)
	if !ok {
		logging.LogEvent("[RESULTS] skipping %s: not a JSON object", path)
		return nil, nil
	}
	if err := isResultDocument(raw); err != nil {
		logging.LogEvent("[RESULTS] skipping %s: %v", path, err)
		return nil, nil
	}
	recs := parseDocument(doc)
	logging.Debugf("[RESULTS] %s: %d records", path, len(recs))
	return recs, nil
}

// parseDocument flattens one {"dataset", "results"} document.
func parseDocument(doc map[string]any) []Record {
	dataset, _ := doc["dataset"].(string)
	resultsByModel, _ := doc["results"].(map[string]any)

	var out []Record
	for _, modelKey := range sortedKeys(resultsByModel) {
		entries, ok := resultsByModel[modelKey].([]any)
		if !ok {
			continue
		}
		for _, e := range entries {
			entry, ok := e.(map[string]any)
			if !ok {
				continue
			}
			base := Record{
				Model:    stringOr(entry, "model", modelKey),
				RefAlias: stringOr(entry, "ref_alias", UnknownLabel),
				LeadDay:  leadDayLabel(entry["lead_time"]),
				Dataset:  dataset,
			}
			out = append(out, parseResult(base, entry["result"])...)
		}
	}
	return out
}

// parseResult handles both the list form [{Metric, Variable, Value}] and the
// dict form {metric: {variable: score}}.
func parseResult(base Record, result any) []Record {
	var out []Record
	switch v := result.(type) {
	case []any:
		for _, it := range v {
			item, ok := it.(map[string]any)
			if !ok {
				continue
			}
			rec := base
			rec.Metric = stringOr(item, "Metric", UnknownLabel)
			rec.Variable = stringOr(item, "Variable", UnknownLabel)
			rec.Score = 0
			if raw, present := item["Value"]; present {
				rec.Score = toScore(raw)
			}
			out = append(out, rec)
		}
	case map[string]any:
		for _, metric := range sortedKeys(v) {
			variables, ok := v[metric].(map[string]any)
			if !ok {
				continue
			}
			for _, variable := range sortedKeys(variables) {
				rec := base
				rec.Metric = metric
				rec.Variable = variable
				rec.Score = toScore(variables[variable])
				out = append(out, rec)
			}
		}
	}
	return out
}

// leadDayLabel converts a zero-based lead_time into "Lead day N".
func leadDayLabel(v any) string {
	lt, ok := v.(float64)
	if !ok {
		return UnknownLabel
	}
	day := lt + 1
	if day == math.Trunc(day) && math.Abs(day) < 1e15 {
		return fmt.Sprintf("Lead day %d", int64(day))
	}
	return "Lead day " + strconv.FormatFloat(day, 'f', -1, 64)
}

func toScore(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case bool:
		if n {
			return 1
		}
		return 0
	default:
		return math.NaN()
	}
}

func stringOr(m map[string]any, key, fallback string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return fallback
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
