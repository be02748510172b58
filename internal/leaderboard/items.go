package leaderboard

import (
	"sort"
	"strings"

	"github.com/ppr-ocean-ia/dcboard/internal/colormap"
	"github.com/ppr-ocean-ia/dcboard/internal/logging"
	"github.com/ppr-ocean-ia/dcboard/internal/results"
)

// DefaultReference is the model every other model is compared against when
// it took part in a reference dataset's evaluation.
const DefaultReference = "glonet"

// TopSpacer opens every report.
const TopSpacer = `<div style="height: 90px;"></div>`

// SectionSpacer follows every table and closes a report section.
const SectionSpacer = `<div style="height: 50px;"></div>`

const (
	noGroupData   = "*No data available for these variables and lead days.*"
	noLeadDayData = "*No data available for selected lead days.*"
	noPivotData   = "*No data to display.*"
)

// ItemKind distinguishes report items.
type ItemKind int

const (
	ItemMarkdown ItemKind = iota
	ItemTable
)

func (k ItemKind) String() string {
	switch k {
	case ItemMarkdown:
		return "markdown"
	case ItemTable:
		return "table"
	default:
		return "unknown"
	}
}

// Section locates a table within the report.
type Section struct {
	RefAlias     string
	Metric       string
	MetricName   string
	VariableType string
}

// Title is a one-line description of the section.
func (s Section) Title() string {
	return strings.ToUpper(s.RefAlias) + " / " + s.MetricName + " / " + TitleCase(s.VariableType)
}

// Item is one renderable report element: markdown text or a table.
type Item struct {
	Kind     ItemKind
	Markdown string
	Table    *PivotTable
	Section  Section
}

// Options tune report generation. Zero values select the defaults.
type Options struct {
	Labels           Labels
	ColorMap         string
	MaxLeadDays      int
	DefaultReference string
}

func markdown(text string) Item {
	return Item{Kind: ItemMarkdown, Markdown: text}
}

// GenerateReportItems groups the table by reference dataset, metric and
// variable family and returns the headers and pivot tables to render.
func GenerateReportItems(table *results.Table, opts Options) ([]Item, error) {
	cm, err := colormap.Get(opts.ColorMap)
	if err != nil {
		return nil, err
	}
	texts := opts.Labels.Texts.withDefaults()
	defaultRef := opts.DefaultReference
	if defaultRef == "" {
		defaultRef = DefaultReference
	}
	maxLeadDays := opts.MaxLeadDays
	if maxLeadDays <= 0 {
		maxLeadDays = DefaultMaxLeadDays
	}

	items := []Item{markdown(TopSpacer)}
	if table.Len() == 0 {
		return append(items, markdown(texts.NoData)), nil
	}

	leadDays := LeadDaysForDisplay(table.Unique(results.FieldLeadDay), maxLeadDays)
	logging.Debugf("[REPORT] lead days shown: %v", leadDays)

	refAliases := table.Unique(results.FieldRefAlias)
	sort.Strings(refAliases)

	for _, refAlias := range refAliases {
		items = append(items, markdown(fillTemplate(texts.ReferenceHeader, map[string]string{
			"ref_alias": strings.ToUpper(refAlias),
		})))

		refRows := table.Filter(func(r results.Record) bool { return r.RefAlias == refAlias })
		reference := referenceModel(refRows, defaultRef)
		logging.LogStage("report", "ref_alias", refAlias, "reference", reference)

		metrics := refRows.Unique(results.FieldMetric)
		sort.Strings(metrics)

		for _, metric := range metrics {
			metricName := opts.Labels.MetricName(metric)
			items = append(items, markdown(fillTemplate(texts.MetricHeader, map[string]string{
				"metric_name": metricName,
			})))

			metricRows := refRows.Filter(func(r results.Record) bool { return r.Metric == metric })
			for _, group := range groupVariables(metricRows.Unique(results.FieldVariable)) {
				section := Section{RefAlias: refAlias, Metric: metric, MetricName: metricName, VariableType: group.varType}
				items = append(items, markdown(fillTemplate(texts.VariableGroupHeader, map[string]string{
					"var_type": TitleCase(group.varType),
				})))
				items = append(items, groupItems(metricRows, group.variables, leadDays, maxLeadDays, reference, opts.Labels, cm, section)...)
			}
		}
	}
	return items, nil
}

// groupItems tabulates one variable family.
func groupItems(rows *results.Table, variables, leadDays []string, maxLeadDays int, reference string, labels Labels, cm *colormap.Map, section Section) []Item {
	sub := rows.Filter(func(r results.Record) bool {
		return containsString(variables, r.Variable) && containsString(leadDays, r.LeadDay)
	})
	if sub.Len() == 0 {
		return []Item{markdown(noGroupData)}
	}

	available := sortLeadDays(sub.Unique(results.FieldLeadDay))
	var common []string
	for _, ld := range leadDays {
		if containsString(available, ld) {
			common = append(common, ld)
		}
	}
	if len(common) == 0 {
		common = available
		if len(common) > maxLeadDays {
			common = common[:maxLeadDays]
		}
	}

	sub = sub.Filter(func(r results.Record) bool { return containsString(common, r.LeadDay) })
	if sub.Len() == 0 {
		return []Item{markdown(noLeadDayData)}
	}

	present := sub.Unique(results.FieldVariable)
	var ordered []string
	for _, v := range variables {
		if containsString(present, v) {
			ordered = append(ordered, v)
		}
	}

	pivot := buildPivot(sub, ordered, common, reference, labels, cm)
	if pivot == nil {
		return []Item{markdown(noPivotData)}
	}
	return []Item{
		{Kind: ItemTable, Table: pivot, Section: section},
		markdown(SectionSpacer),
	}
}

// referenceModel picks the default reference when it is among the rows'
// datasets, otherwise the first dataset seen.
func referenceModel(rows *results.Table, defaultRef string) string {
	datasets := rows.Unique(results.FieldDataset)
	if containsString(datasets, defaultRef) {
		return defaultRef
	}
	if len(datasets) > 0 {
		return datasets[0]
	}
	return defaultRef
}

type variableGroup struct {
	varType   string
	variables []string
}

// groupVariables sorts variables and groups them by family, keeping the
// sorted order of both families and members.
func groupVariables(variables []string) []variableGroup {
	var groups []variableGroup
	index := make(map[string]int)
	for _, v := range SortVariables(variables) {
		t := VariableType(v)
		i, ok := index[t]
		if !ok {
			i = len(groups)
			index[t] = i
			groups = append(groups, variableGroup{varType: t})
		}
		groups[i].variables = append(groups[i].variables, v)
	}
	return groups
}
