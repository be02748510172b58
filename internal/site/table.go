package site

import (
	"bytes"
	"html/template"

	"github.com/ppr-ocean-ia/dcboard/internal/leaderboard"
)

const variableBorder = "border-left: 3px solid #333;"

type tableHeader struct {
	Label   string
	Colspan int
	Style   template.CSS
}

type tableCell struct {
	Text  string
	Style template.CSS
}

type tableRow struct {
	Model string
	Style template.CSS
	Cells []tableCell
}

type tableView struct {
	Variables []tableHeader
	LeadDays  []tableHeader
	Rows      []tableRow
}

func newTableView(p *leaderboard.PivotTable) tableView {
	var view tableView
	for _, span := range p.VariableSpans() {
		style := "text-align: center; font-weight: bold;"
		if span.Start > 0 {
			style += " " + variableBorder
		}
		view.Variables = append(view.Variables, tableHeader{
			Label:   span.Label,
			Colspan: span.Count,
			Style:   template.CSS(style),
		})
	}
	for j, col := range p.Columns {
		view.LeadDays = append(view.LeadDays, tableHeader{
			Label: col.LeadDay,
			Style: template.CSS("text-align: center; font-size: 0.9em;" + borderFor(p, j)),
		})
	}
	for i, model := range p.Models {
		row := tableRow{Model: model}
		if p.IsReference(i) {
			row.Style = "font-weight: bold;"
		}
		for j, cell := range p.Cells[i] {
			style := "text-align: center;" + borderFor(p, j)
			if s := cell.Style(); s != "" {
				style += " " + s + ";"
			}
			row.Cells = append(row.Cells, tableCell{Text: cell.Text(), Style: template.CSS(style)})
		}
		view.Rows = append(view.Rows, row)
	}
	return view
}

func borderFor(p *leaderboard.PivotTable, col int) string {
	if p.StartsVariable(col) {
		return " " + variableBorder
	}
	return ""
}

// renderTable writes a pivot table as a two-level-header HTML table.
func renderTable(p *leaderboard.PivotTable) (template.HTML, error) {
	var buf bytes.Buffer
	if err := pivotTableTemplate.Execute(&buf, newTableView(p)); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

var pivotTableTemplate = template.Must(template.New("pivot-table").Parse(pivotTableHTML))

const pivotTableHTML = `<table class="dataframe table">
  <thead>
    <tr>
      <th class="index_name level0">Variable</th>
      {{- range .Variables }}
      <th class="col_heading level0" colspan="{{ .Colspan }}" style="{{ .Style }}">{{ .Label }}</th>
      {{- end }}
    </tr>
    <tr>
      <th class="index_name level1">Lead Day</th>
      {{- range .LeadDays }}
      <th class="col_heading level1" style="{{ .Style }}">{{ .Label }}</th>
      {{- end }}
    </tr>
  </thead>
  <tbody>
    {{- range .Rows }}
    <tr>
      <th class="row_heading" style="{{ .Style }}">{{ .Model }}</th>
      {{- range .Cells }}
      <td style="{{ .Style }}">{{ .Text }}</td>
      {{- end }}
    </tr>
    {{- end }}
  </tbody>
</table>`
