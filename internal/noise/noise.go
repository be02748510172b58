// Package noise derives synthetic result files from real ones by perturbing
// every score with relative Gaussian noise.
package noise

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/ppr-ocean-ia/dcboard/internal/logging"
	"github.com/ppr-ocean-ia/dcboard/internal/util"
)

const (
	// DefaultStdRel is the relative standard deviation used when none is given.
	DefaultStdRel = 0.05
	// DefaultSeed makes generated files reproducible.
	DefaultSeed uint64 = 42

	resultDigits = 8
	legacyDigits = 6
)

// Generator draws normal deviates from a seeded PCG stream.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator whose output depends only on seed.
func NewGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Perturb returns x plus a draw from N(0, |x|*stdRel). A zero or negative
// stdRel returns x unchanged.
func (g *Generator) Perturb(x, stdRel float64) float64 {
	sigma := math.Abs(x) * stdRel
	if sigma <= 0 || math.IsNaN(sigma) {
		return x
	}
	n := distuv.Normal{Mu: 0, Sigma: sigma}
	return x + n.Quantile(g.uniform())
}

// uniform returns a value in the open interval (0, 1).
func (g *Generator) uniform() float64 {
	for {
		if u := g.rng.Float64(); u > 0 {
			return u
		}
	}
}

func round(x float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	return math.Round(x*p) / p
}

// AddNoise walks a decoded JSON value and perturbs every number, rounding
// the result to eight decimals. Other values are returned unchanged.
func AddNoise(v any, stdRel float64, g *Generator) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for _, k := range sortedKeys(t) {
			out[k] = AddNoise(t[k], stdRel, g)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = AddNoise(item, stdRel, g)
		}
		return out
	case float64:
		return round(g.Perturb(t, stdRel), resultDigits)
	default:
		return v
	}
}

// ProcessFile reads a result document, renames its dataset and every entry's
// model to newModel, perturbs each entry's result and writes the document to
// dst. All entries end up under results[newModel].
func ProcessFile(src, dst, newModel string, stdRel float64, seed uint64) error {
	doc, err := readJSON(src)
	if err != nil {
		return err
	}
	g := NewGenerator(seed)

	doc["dataset"] = newModel
	if byModel, ok := doc["results"].(map[string]any); ok {
		var entries []any
		for _, key := range sortedKeys(byModel) {
			list, ok := byModel[key].([]any)
			if !ok {
				continue
			}
			entries = append(entries, list...)
		}
		for _, e := range entries {
			entry, ok := e.(map[string]any)
			if !ok {
				continue
			}
			entry["model"] = newModel
			if result, present := entry["result"]; present {
				entry["result"] = AddNoise(result, stdRel, g)
			}
		}
		if entries == nil {
			entries = []any{}
		}
		doc["results"] = map[string]any{newModel: entries}
	}

	if err := util.WriteJSON(dst, doc); err != nil {
		return err
	}
	logging.LogStage("noise", "src", src, "dst", dst, "model", newModel, "std_rel", stdRel, "seed", seed)
	return nil
}

// ProcessLegacyResult perturbs an older result block: in list form only the
// numbers of each item's "global" map are touched (per_bins and everything
// else is kept); in dict form every metric/variable score is. Values are
// rounded to six decimals.
func ProcessLegacyResult(result any, stdRel float64, g *Generator) any {
	switch t := result.(type) {
	case []any:
		out := make([]any, len(t))
		for i, it := range t {
			item, ok := it.(map[string]any)
			if !ok {
				out[i] = it
				continue
			}
			copied := make(map[string]any, len(item))
			for _, k := range sortedKeys(item) {
				global, isMap := item[k].(map[string]any)
				if k != "global" || !isMap {
					copied[k] = item[k]
					continue
				}
				noisy := make(map[string]any, len(global))
				for _, gk := range sortedKeys(global) {
					noisy[gk] = legacyNoise(global[gk], stdRel, g)
				}
				copied[k] = noisy
			}
			out[i] = copied
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for _, metric := range sortedKeys(t) {
			variables, ok := t[metric].(map[string]any)
			if !ok {
				out[metric] = t[metric]
				continue
			}
			noisy := make(map[string]any, len(variables))
			for _, v := range sortedKeys(variables) {
				noisy[v] = legacyNoise(variables[v], stdRel, g)
			}
			out[metric] = noisy
		}
		return out
	default:
		return result
	}
}

func legacyNoise(v any, stdRel float64, g *Generator) any {
	x, ok := v.(float64)
	if !ok {
		return v
	}
	return round(g.Perturb(x, stdRel), legacyDigits)
}

// ProcessLegacyFile applies ProcessLegacyResult to every entry of an older
// {model: [entries]} file.
func ProcessLegacyFile(src, dst string, stdRel float64, seed uint64) error {
	doc, err := readJSON(src)
	if err != nil {
		return err
	}
	g := NewGenerator(seed)
	for _, key := range sortedKeys(doc) {
		entries, ok := doc[key].([]any)
		if !ok {
			continue
		}
		for _, e := range entries {
			if entry, ok := e.(map[string]any); ok {
				entry["result"] = ProcessLegacyResult(entry["result"], stdRel, g)
			}
		}
	}
	if err := util.WriteJSON(dst, doc); err != nil {
		return err
	}
	logging.LogStage("noise", "src", src, "dst", dst, "legacy", true, "std_rel", stdRel, "seed", seed)
	return nil
}

func readJSON(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", path, err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", path, err)
	}
	return doc, nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
