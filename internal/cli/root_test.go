// internal/cli/root_test.go
package dcboard

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ppr-ocean-ia/dcboard/internal/leaderboard"
)

const sampleResults = `{
  "dataset": "glonet",
  "results": {
    "glonet": [
      {"model": "glonet", "ref_alias": "glorys", "lead_time": 0, "result": {"rmse": {"zos": 1.0}}}
    ]
  }
}`

const challengerResults = `{
  "dataset": "challenger",
  "results": {
    "challenger": [
      {"model": "challenger", "ref_alias": "glorys", "lead_time": 0, "result": [{"Metric": "rmse", "Variable": "zos", "Value": 1.2}]}
    ]
  }
}`

type fixture struct {
	root    string
	results string
	output  string
	logFile string
	config  string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	root := t.TempDir()
	f := fixture{
		root:    root,
		results: filepath.Join(root, "results"),
		output:  filepath.Join(root, "site"),
		logFile: filepath.Join(root, "logs", "dcboard.log"),
		config:  filepath.Join(root, "missing-config.json"),
	}
	if err := os.MkdirAll(f.results, 0o755); err != nil {
		t.Fatal(err)
	}
	for name, content := range map[string]string{
		"results_glonet.json":     sampleResults,
		"results_challenger.json": challengerResults,
	} {
		if err := os.WriteFile(filepath.Join(f.results, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return f
}

// run executes the root command with the fixture's common flags.
func (f fixture) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	full := append([]string{}, args...)
	full = append(full,
		"--config", f.config,
		"--resultsDir", f.results,
		"--outputDir", f.output,
		"--logFile", f.logFile,
	)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(full)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		reportExportPath = ""
		showConfigFile = ""
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestBuildCommand(t *testing.T) {
	f := newFixture(t)
	out, err := f.run(t, "build")
	if err != nil {
		t.Fatalf("build failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Site generated successfully.") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	for _, name := range []string{"leaderboard.html", "about.html", "styles.css"} {
		if _, err := os.Stat(filepath.Join(f.output, name)); err != nil {
			t.Fatalf("expected %s to be written: %v", name, err)
		}
	}
	page, _ := os.ReadFile(filepath.Join(f.output, "leaderboard.html"))
	if !strings.Contains(string(page), "Root Mean Squared Error (RMSE)") {
		t.Fatal("site build should use the site labels by default")
	}
	if _, err := os.Stat(f.logFile); err != nil {
		t.Fatalf("expected log file: %v", err)
	}
}

func TestReportCommandExport(t *testing.T) {
	f := newFixture(t)
	export := filepath.Join(f.root, "records.json")
	out, err := f.run(t, "report", "--export", export)
	if err != nil {
		t.Fatalf("report failed: %v\n%s", err, out)
	}
	for _, want := range []string{"Reference dataset: GLORYS", "Root Mean Squared Error", "1.200", "1 tables from 2 records", "2 records written"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if _, err := os.Stat(export); err != nil {
		t.Fatalf("expected export file: %v", err)
	}
}

func TestValidateCommand(t *testing.T) {
	f := newFixture(t)
	if out, err := f.run(t, "validate"); err != nil {
		t.Fatalf("validate failed on valid files: %v\n%s", err, out)
	}

	bad := filepath.Join(f.root, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"dataset": 3, "results": {}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := f.run(t, "validate", bad)
	if err == nil {
		t.Fatalf("expected validation failure:\n%s", out)
	}
	if !strings.Contains(out, bad) {
		t.Fatalf("output should name the failing file:\n%s", out)
	}
}

func TestNoiseCommand(t *testing.T) {
	f := newFixture(t)
	dst := filepath.Join(f.root, "noisy", "results_noisy.json")
	out, err := f.run(t, "noise", filepath.Join(f.results, "results_glonet.json"), dst, "noisy", "--std-rel", "0.1", "--seed", "7")
	if err != nil {
		t.Fatalf("noise failed: %v\n%s", err, out)
	}
	raw, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("expected output file: %v", err)
	}
	if !strings.Contains(string(raw), `"dataset": "noisy"`) {
		t.Fatalf("dataset not renamed:\n%s", raw)
	}

	if _, err := f.run(t, "noise", filepath.Join(f.results, "results_glonet.json"), dst); err == nil {
		t.Fatal("expected error without a model name")
	}
}

func TestShowConfigCommand(t *testing.T) {
	f := newFixture(t)
	out, err := f.run(t, "show", "config")
	if err != nil {
		t.Fatalf("show config failed: %v", err)
	}
	for _, want := range []string{"No config file loaded", "Results Dir:        " + f.results, "Color Map:          coolwarm"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestShowConfigFile(t *testing.T) {
	f := newFixture(t)
	path := filepath.Join(f.root, "board.json")
	if err := os.WriteFile(path, []byte(`{"resultsDir": "from-file", "colorMap": "bluetan"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := f.run(t, "show", "config", "--file", path)
	if err != nil {
		t.Fatalf("show config --file failed: %v", err)
	}
	for _, want := range []string{"Config file: " + path, "Results Dir:        from-file", "Color Map:          bluetan"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	bad := filepath.Join(f.root, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"colorMap": "rainbow"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := f.run(t, "show", "config", "--file", bad); err == nil {
		t.Fatal("expected error for an invalid config file")
	}
}

func TestReportOptionsLabelsFile(t *testing.T) {
	dir := t.TempDir()
	labelsPath := filepath.Join(dir, "labels.yaml")
	if err := os.WriteFile(labelsPath, []byte("metrics_names:\n  rmse: Custom RMSE\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := GetConfig()
	local := *cfg
	local.LabelsFile = labelsPath
	local.MaxLeadDays = 2

	opts, err := reportOptions(&local, leaderboard.SiteLabels())
	if err != nil {
		t.Fatalf("reportOptions failed: %v", err)
	}
	if opts.Labels.MetricName("rmse") != "Custom RMSE" || opts.MaxLeadDays != 2 {
		t.Fatalf("unexpected options %+v", opts)
	}

	local.LabelsFile = filepath.Join(dir, "missing.yaml")
	if _, err := reportOptions(&local, leaderboard.SiteLabels()); err == nil {
		t.Fatal("expected error for missing labels file")
	}
}
