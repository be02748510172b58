package noise

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPerturbDeterministic(t *testing.T) {
	a, b := NewGenerator(7), NewGenerator(7)
	for i := 0; i < 20; i++ {
		x, y := a.Perturb(10, 0.1), b.Perturb(10, 0.1)
		if x != y {
			t.Fatalf("draw %d differs for the same seed: %v vs %v", i, x, y)
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			t.Fatalf("draw %d is not finite: %v", i, x)
		}
	}
	if NewGenerator(1).Perturb(10, 0.1) == NewGenerator(2).Perturb(10, 0.1) {
		t.Fatal("different seeds should give different draws")
	}
}

func TestPerturbZeroSigma(t *testing.T) {
	g := NewGenerator(DefaultSeed)
	if got := g.Perturb(0, 0.5); got != 0 {
		t.Fatalf("zero stays zero, got %v", got)
	}
	if got := g.Perturb(3.25, 0); got != 3.25 {
		t.Fatalf("zero std keeps the value, got %v", got)
	}
	if got := g.Perturb(3.25, -0.1); got != 3.25 {
		t.Fatalf("negative std keeps the value, got %v", got)
	}
	if got := AddNoise(map[string]any{"rmse": 1.5}, -0.2, g); got.(map[string]any)["rmse"] != 1.5 {
		t.Fatalf("negative std must not perturb nested values, got %v", got)
	}
}

func TestPerturbSpread(t *testing.T) {
	g := NewGenerator(DefaultSeed)
	const n = 2000
	var sum float64
	for i := 0; i < n; i++ {
		sum += g.Perturb(100, 0.05) - 100
	}
	if mean := sum / n; math.Abs(mean) > 0.5 {
		t.Fatalf("noise mean %v is too far from zero", mean)
	}
}

func TestAddNoiseKeepsStructure(t *testing.T) {
	in := map[string]any{
		"rmse":  map[string]any{"zos": 1.0, "sst": nil},
		"label": "keep",
		"flags": []any{true, 2.0},
	}
	out := AddNoise(in, 0.1, NewGenerator(3)).(map[string]any)

	if out["label"] != "keep" {
		t.Fatalf("strings must be kept, got %v", out["label"])
	}
	rmse := out["rmse"].(map[string]any)
	if rmse["sst"] != nil {
		t.Fatalf("nulls must be kept, got %v", rmse["sst"])
	}
	zos := rmse["zos"].(float64)
	if zos == 1.0 {
		t.Fatal("numbers should be perturbed")
	}
	if zos != round(zos, 8) {
		t.Fatalf("value %v not rounded to 8 decimals", zos)
	}
	flags := out["flags"].([]any)
	if flags[0] != true {
		t.Fatalf("booleans must be kept, got %v", flags[0])
	}
	if in["rmse"].(map[string]any)["zos"] != 1.0 {
		t.Fatal("input must not be modified")
	}
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "results_glonet.json")
	content := `{
  "dataset": "glonet",
  "results": {
    "glonet": [{"model": "glonet", "ref_alias": "glorys", "lead_time": 0, "result": {"rmse": {"zos": 1.0}}}],
    "other":  [{"model": "other", "ref_alias": "argo", "lead_time": 1, "result": [{"Metric": "rmse", "Variable": "sst", "Value": 2.0}]}]
  }
}`
	if err := os.WriteFile(src, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	dst := filepath.Join(dir, "out", "results_challenger.json")
	if err := ProcessFile(src, dst, "challenger", 0.08, DefaultSeed); err != nil {
		t.Fatalf("ProcessFile returned error: %v", err)
	}

	raw, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Dataset string `json:"dataset"`
		Results map[string][]struct {
			Model    string  `json:"model"`
			RefAlias string  `json:"ref_alias"`
			LeadTime float64 `json:"lead_time"`
			Result   any     `json:"result"`
		} `json:"results"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if doc.Dataset != "challenger" {
		t.Fatalf("dataset = %q", doc.Dataset)
	}
	if diff := cmp.Diff([]string{"challenger"}, keys(doc.Results)); diff != "" {
		t.Fatalf("results keys mismatch (-want +got):\n%s", diff)
	}
	entries := doc.Results["challenger"]
	if len(entries) != 2 {
		t.Fatalf("expected 2 merged entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Model != "challenger" {
			t.Fatalf("entry model = %q", e.Model)
		}
	}
	if entries[1].RefAlias != "argo" || entries[1].LeadTime != 1 {
		t.Fatalf("metadata must be kept: %+v", entries[1])
	}
	item := entries[1].Result.([]any)[0].(map[string]any)
	if item["Metric"] != "rmse" || item["Value"] == 2.0 {
		t.Fatalf("list result not perturbed as expected: %v", item)
	}

	again := filepath.Join(dir, "again.json")
	if err := ProcessFile(src, again, "challenger", 0.08, DefaultSeed); err != nil {
		t.Fatal(err)
	}
	second, _ := os.ReadFile(again)
	if string(raw) != string(second) {
		t.Fatal("same seed should produce identical files")
	}
}

func TestProcessFileMissing(t *testing.T) {
	if err := ProcessFile(filepath.Join(t.TempDir(), "nope.json"), "x.json", "m", 0.1, 1); err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestProcessLegacyResult(t *testing.T) {
	g := NewGenerator(DefaultSeed)
	list := []any{
		map[string]any{
			"global":   map[string]any{"rmse": 1.0, "name": "x"},
			"per_bins": map[string]any{"rmse": 1.0},
			"variable": "zos",
		},
	}
	out := ProcessLegacyResult(list, 0.09, g).([]any)[0].(map[string]any)
	global := out["global"].(map[string]any)
	if global["rmse"] == 1.0 || global["name"] != "x" {
		t.Fatalf("global block not perturbed as expected: %v", global)
	}
	if v := global["rmse"].(float64); v != round(v, 6) {
		t.Fatalf("value %v not rounded to 6 decimals", v)
	}
	if diff := cmp.Diff(map[string]any{"rmse": 1.0}, out["per_bins"]); diff != "" {
		t.Fatalf("per_bins must be untouched (-want +got):\n%s", diff)
	}
	if out["variable"] != "zos" {
		t.Fatalf("other keys must be kept, got %v", out["variable"])
	}

	dict := ProcessLegacyResult(map[string]any{"rmse": map[string]any{"sst": 2.0}}, 0.09, g).(map[string]any)
	if dict["rmse"].(map[string]any)["sst"] == 2.0 {
		t.Fatal("dict scores should be perturbed")
	}
	if ProcessLegacyResult(nil, 0.09, g) != nil {
		t.Fatal("nil result stays nil")
	}
}

func TestProcessLegacyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "glonet.json")
	if err := os.WriteFile(src, []byte(`{"glonet": [{"lead_time": 0, "result": {"rmse": {"zos": 1.0}}}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	dst := filepath.Join(dir, "glonet_noisy.json")
	if err := ProcessLegacyFile(src, dst, 0.09, DefaultSeed); err != nil {
		t.Fatalf("ProcessLegacyFile returned error: %v", err)
	}
	raw, _ := os.ReadFile(dst)
	var doc map[string][]map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatal(err)
	}
	zos := doc["glonet"][0]["result"].(map[string]any)["rmse"].(map[string]any)["zos"].(float64)
	if zos == 1.0 {
		t.Fatal("legacy file scores should be perturbed")
	}
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
