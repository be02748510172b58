// Package preview renders report items in the terminal.
package preview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ppr-ocean-ia/dcboard/internal/colormap"
	"github.com/ppr-ocean-ia/dcboard/internal/leaderboard"
)

var (
	referenceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Underline(true)
	metricStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	groupStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	noteStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	headerStyle    = lipgloss.NewStyle().Bold(true).Align(lipgloss.Center).Padding(0, 1)
	modelStyle     = lipgloss.NewStyle().Padding(0, 1)
	cellStyle      = lipgloss.NewStyle().Align(lipgloss.Center).Padding(0, 1)
)

// Render writes every item to w: headers as styled lines and tables as
// bordered grids with the report's cell colours.
func Render(w io.Writer, items []leaderboard.Item) error {
	for _, item := range items {
		var out string
		switch item.Kind {
		case leaderboard.ItemMarkdown:
			out = Markdown(item.Markdown)
		case leaderboard.ItemTable:
			out = Table(item.Table)
		}
		if out == "" {
			continue
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return err
		}
	}
	return nil
}

// Markdown styles one markdown item. Raw HTML such as spacers yields "".
func Markdown(md string) string {
	switch {
	case strings.HasPrefix(strings.TrimSpace(md), "<"):
		return ""
	case strings.HasPrefix(md, "#### "):
		return groupStyle.Render("  " + md[5:])
	case strings.HasPrefix(md, "### "):
		return metricStyle.Render(" " + md[4:])
	case strings.HasPrefix(md, "## "):
		return "\n" + referenceStyle.Render(md[3:])
	case len(md) >= 2 && strings.HasPrefix(md, "*") && strings.HasSuffix(md, "*"):
		return noteStyle.Render("  " + md[1:len(md)-1])
	default:
		return md
	}
}

// Table renders a pivot table. The first column of each variable is headed
// "label · lead day", the others by their lead day; the reference row is bold.
func Table(p *leaderboard.PivotTable) string {
	if p == nil {
		return ""
	}
	headers := make([]string, 0, len(p.Columns)+1)
	headers = append(headers, "Model")
	for j, col := range p.Columns {
		headers = append(headers, columnHeader(p, j, col))
	}

	rows := make([][]string, 0, len(p.Models))
	for i, model := range p.Models {
		row := make([]string, 0, len(p.Columns)+1)
		row = append(row, model)
		for _, cell := range p.Cells[i] {
			row = append(row, cell.Text())
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 0 {
				if p.IsReference(row) {
					return modelStyle.Bold(true)
				}
				return modelStyle
			}
			return CellStyle(p, row, col-1)
		})
	return t.Render()
}

// columnHeader keeps headers on one line; table headers are a single row.
func columnHeader(p *leaderboard.PivotTable, j int, col leaderboard.Column) string {
	if j == 0 || p.StartsVariable(j) {
		return col.Label + " · " + col.LeadDay
	}
	return col.LeadDay
}

// CellStyle returns the style of data cell (row, col), carrying its
// background colour and a contrasting foreground.
func CellStyle(p *leaderboard.PivotTable, row, col int) lipgloss.Style {
	if row < 0 || row >= len(p.Cells) || col < 0 || col >= len(p.Cells[row]) {
		return cellStyle
	}
	cell := p.Cells[row][col]
	style := cellStyle
	if p.IsReference(row) {
		style = style.Bold(true)
	}
	if !cell.Colored {
		return style
	}
	return style.
		Background(lipgloss.Color(colormap.Hex(cell.Color))).
		Foreground(lipgloss.Color(foregroundFor(cell.Color.R, cell.Color.G, cell.Color.B)))
}

// foregroundFor picks black or white text by the background's luminance.
func foregroundFor(r, g, b uint8) string {
	lum := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	if lum > 140 {
		return "#000000"
	}
	return "#ffffff"
}
