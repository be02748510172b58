package preview

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/ppr-ocean-ia/dcboard/internal/leaderboard"
	"github.com/ppr-ocean-ia/dcboard/internal/results"
)

func samplePivot() *leaderboard.PivotTable {
	return &leaderboard.PivotTable{
		Reference: "glonet",
		Models:    []string{"glonet", "challenger"},
		Columns: []leaderboard.Column{
			{Variable: "zos", Label: "Sea level", LeadDay: "Lead day 1"},
			{Variable: "zos", Label: "Sea level", LeadDay: "Lead day 3"},
		},
		Cells: [][]leaderboard.Cell{
			{{Value: 1, Color: color.NRGBA{221, 221, 221, 255}, Colored: true}, {Value: 2}},
			{{Value: 1.25, Color: color.NRGBA{180, 4, 38, 255}, Colored: true}, {Value: 2.5}},
		},
		AbsMax: 25,
	}
}

func TestMarkdown(t *testing.T) {
	if got := Markdown(leaderboard.TopSpacer); got != "" {
		t.Fatalf("spacers should be dropped, got %q", got)
	}
	for in, want := range map[string]string{
		"## Reference dataset: GLORYS": "Reference dataset: GLORYS",
		"### Metric: RMSE":             "Metric: RMSE",
		"#### Zos Variables":           "Zos Variables",
		"*No data to display.*":        "No data to display.",
		"plain":                        "plain",
	} {
		got := Markdown(in)
		if !strings.Contains(got, want) || strings.Contains(got, "#") {
			t.Errorf("Markdown(%q) = %q, want it to contain %q", in, got, want)
		}
	}
}

func TestTable(t *testing.T) {
	out := Table(samplePivot())
	for _, want := range []string{"Model", "Sea level", "Lead day 1", "Lead day 3", "glonet", "challenger", "1.250", "2.500"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
	if strings.Count(out, "Sea level") != 1 {
		t.Errorf("variable label should head only its first column:\n%s", out)
	}
	if !strings.Contains(out, "Sea level · Lead day 1") {
		t.Errorf("first column should carry label and lead day on one line:\n%s", out)
	}
	header := strings.Split(out, "\n")[1]
	for _, want := range []string{"Lead day 1", "Lead day 3"} {
		if !strings.Contains(header, want) {
			t.Errorf("header line %q missing %q", header, want)
		}
	}
	if Table(nil) != "" {
		t.Error("nil table renders nothing")
	}
}

func TestCellStyle(t *testing.T) {
	p := samplePivot()
	if _, none := CellStyle(p, 1, 0).GetBackground().(lipgloss.NoColor); none {
		t.Fatal("coloured cell should carry a background")
	}
	if _, none := CellStyle(p, 1, 1).GetBackground().(lipgloss.NoColor); !none {
		t.Fatal("uncoloured cell should have no background")
	}
	if !CellStyle(p, 0, 1).GetBold() {
		t.Fatal("reference row should be bold")
	}
	if CellStyle(p, 1, 1).GetBold() {
		t.Fatal("other rows should not be bold")
	}
	if foregroundFor(221, 221, 221) != "#000000" || foregroundFor(59, 76, 192) != "#ffffff" {
		t.Fatal("foreground should contrast with the background")
	}
}

func TestRender(t *testing.T) {
	table := results.NewTable([]results.Record{
		{Model: "glonet", Dataset: "glonet", RefAlias: "glorys", Metric: "rmse", Variable: "zos", LeadDay: "Lead day 1", Score: 1},
		{Model: "challenger", Dataset: "challenger", RefAlias: "glorys", Metric: "rmse", Variable: "zos", LeadDay: "Lead day 1", Score: 1.1},
	})
	items, err := leaderboard.GenerateReportItems(table, leaderboard.Options{})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Render(&buf, items); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Reference dataset: GLORYS", "Root Mean Squared Error", "Zos Variables", "1.100"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "<div") {
		t.Error("spacers must not be printed")
	}
}
