package site

import (
	"html/template"
	"strings"
)

// markdownToHTML converts the small markdown subset produced by the report
// engine. Header texts come from trusted label files and are not escaped.
func markdownToHTML(md string) template.HTML {
	switch {
	case strings.HasPrefix(md, "#### "):
		return template.HTML("<h4>" + md[5:] + "</h4>")
	case strings.HasPrefix(md, "### "):
		return template.HTML("<h3>" + md[4:] + "</h3>")
	case strings.HasPrefix(md, "## "):
		return template.HTML("<h2>" + md[3:] + "</h2>")
	case len(md) >= 2 && strings.HasPrefix(md, "*") && strings.HasSuffix(md, "*"):
		return template.HTML("<i>" + md[1:len(md)-1] + "</i>")
	case strings.HasPrefix(strings.TrimSpace(md), "<"):
		return template.HTML(md)
	default:
		return template.HTML("<p>" + md + "</p>")
	}
}
