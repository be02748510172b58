package leaderboard

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/ppr-ocean-ia/dcboard/internal/colormap"
	"github.com/ppr-ocean-ia/dcboard/internal/results"
)

// MinAbsPercent is the smallest half-width of the colour scale, in percent.
const MinAbsPercent = 2.0

// Column is one (variable, lead day) column of a pivot table.
type Column struct {
	Variable string
	Label    string
	LeadDay  string
}

// Cell holds a mean score, its percent deviation from the reference row and
// the derived background colour.
type Cell struct {
	Value   float64
	Percent float64
	Color   color.NRGBA
	Colored bool
}

// Text formats the value with three decimals, "nan" when missing.
func (c Cell) Text() string {
	if math.IsNaN(c.Value) {
		return "nan"
	}
	return fmt.Sprintf("%.3f", c.Value)
}

// Style returns the CSS background declaration, or "" for uncoloured cells.
func (c Cell) Style() string {
	if !c.Colored {
		return ""
	}
	return "background-color: " + colormap.RGBA(c.Color)
}

// Span groups consecutive columns sharing a variable.
type Span struct {
	Variable string
	Label    string
	Start    int
	Count    int
}

// PivotTable is a models x (variable, lead day) table of mean scores. When
// Reference is set it is the first row and percents are relative to it.
type PivotTable struct {
	Reference string
	Models    []string
	Columns   []Column
	Cells     [][]Cell
	AbsMax    float64
}

// Rows returns the number of model rows.
func (p *PivotTable) Rows() int { return len(p.Models) }

// IsReference reports whether row i is the reference model.
func (p *PivotTable) IsReference(i int) bool {
	return p.Reference != "" && i >= 0 && i < len(p.Models) && p.Models[i] == p.Reference
}

// Norm returns the colour normalization used for this table.
func (p *PivotTable) Norm() colormap.Normalize {
	return colormap.Normalize{Min: -p.AbsMax, Max: p.AbsMax}
}

// VariableSpans groups the columns by variable, in column order.
func (p *PivotTable) VariableSpans() []Span {
	var spans []Span
	for i, col := range p.Columns {
		if n := len(spans); n > 0 && spans[n-1].Variable == col.Variable {
			spans[n-1].Count++
			continue
		}
		spans = append(spans, Span{Variable: col.Variable, Label: col.Label, Start: i, Count: 1})
	}
	return spans
}

// StartsVariable reports whether column j begins a new variable after the first.
func (p *PivotTable) StartsVariable(j int) bool {
	return j > 0 && j < len(p.Columns) && p.Columns[j].Variable != p.Columns[j-1].Variable
}

type cellKey struct {
	model, variable, leadDay string
}

// buildPivot aggregates rows into a pivot table. Columns follow variables
// then leadDays order; rows and columns with no finite score are dropped.
// It returns nil when nothing remains.
func buildPivot(rows *results.Table, variables, leadDays []string, reference string, labels Labels, cm *colormap.Map) *PivotTable {
	samples := make(map[cellKey][]float64)
	for _, r := range rows.Records {
		key := cellKey{model: r.Model, variable: r.Variable, leadDay: r.LeadDay}
		if _, ok := samples[key]; !ok {
			samples[key] = nil
		}
		if !math.IsNaN(r.Score) {
			samples[key] = append(samples[key], r.Score)
		}
	}
	mean := func(k cellKey) float64 {
		vals := samples[k]
		if len(vals) == 0 {
			return math.NaN()
		}
		return stat.Mean(vals, nil)
	}

	models := rows.Unique(results.FieldModel)
	sort.Strings(models)

	var columns []Column
	for _, v := range variables {
		for _, ld := range leadDays {
			for _, m := range models {
				if !math.IsNaN(mean(cellKey{m, v, ld})) {
					columns = append(columns, Column{Variable: v, Label: labels.VariableName(v), LeadDay: ld})
					break
				}
			}
		}
	}

	var keptModels []string
	for _, m := range models {
		for _, c := range columns {
			if !math.IsNaN(mean(cellKey{m, c.Variable, c.LeadDay})) {
				keptModels = append(keptModels, m)
				break
			}
		}
	}
	if len(keptModels) == 0 || len(columns) == 0 {
		return nil
	}

	p := &PivotTable{Columns: columns}
	if reference != "" && containsString(keptModels, reference) {
		p.Reference = reference
		p.Models = append([]string{reference}, without(keptModels, reference)...)
	} else {
		p.Models = keptModels
	}

	p.Cells = make([][]Cell, len(p.Models))
	for i, m := range p.Models {
		p.Cells[i] = make([]Cell, len(columns))
		for j, c := range columns {
			p.Cells[i][j].Value = mean(cellKey{m, c.Variable, c.LeadDay})
		}
	}

	p.computePercents()
	p.colorize(cm)
	return p
}

// computePercents fills Percent relative to the reference row and derives
// AbsMax from the non-reference rows. Without a reference every percent is 0.
func (p *PivotTable) computePercents() {
	p.AbsMax = MinAbsPercent
	if p.Reference == "" {
		for i := range p.Cells {
			for j := range p.Cells[i] {
				p.Cells[i][j].Percent = 0
			}
		}
		return
	}

	ref := p.Cells[0]
	absMax := math.NaN()
	for i := range p.Cells {
		for j := range p.Cells[i] {
			refVal := ref[j].Value
			pct := (p.Cells[i][j].Value - refVal) / refVal * 100
			p.Cells[i][j].Percent = pct
			if i == 0 || math.IsNaN(pct) || math.IsInf(pct, 0) {
				continue
			}
			if a := math.Abs(pct); math.IsNaN(absMax) || a > absMax {
				absMax = a
			}
		}
	}
	if !math.IsNaN(absMax) {
		p.AbsMax = math.Max(absMax, MinAbsPercent)
	}
}

func (p *PivotTable) colorize(cm *colormap.Map) {
	if cm == nil {
		return
	}
	norm := p.Norm()
	for i := range p.Cells {
		for j := range p.Cells[i] {
			c, ok := cm.At(norm.Apply(p.Cells[i][j].Percent))
			p.Cells[i][j].Color = c
			p.Cells[i][j].Colored = ok
		}
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func without(list []string, s string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}
