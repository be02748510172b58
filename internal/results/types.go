// internal/results/types.go
package results

// UnknownLabel is used for any descriptive field missing from a result entry.
const UnknownLabel = "unknown"

// Record is one normalized score: a single model/metric/variable/lead-day value
// evaluated against a reference dataset. Score is NaN when the source value
// was null or not a number.
type Record struct {
	Model    string  `json:"model"`
	Metric   string  `json:"metric"`
	LeadDay  string  `json:"lead_day"`
	Variable string  `json:"variable"`
	Score    float64 `json:"score"`
	RefAlias string  `json:"ref_alias"`
	Dataset  string  `json:"dataset"`
}

// Field names a string column of a Record.
type Field int

const (
	FieldModel Field = iota
	FieldMetric
	FieldLeadDay
	FieldVariable
	FieldRefAlias
	FieldDataset
)

// Value returns the record's value for the given column.
func (r Record) Value(f Field) string {
	switch f {
	case FieldModel:
		return r.Model
	case FieldMetric:
		return r.Metric
	case FieldLeadDay:
		return r.LeadDay
	case FieldVariable:
		return r.Variable
	case FieldRefAlias:
		return r.RefAlias
	case FieldDataset:
		return r.Dataset
	default:
		return ""
	}
}

// Table is the normalized, row-ordered view of every loaded result file.
type Table struct {
	Records []Record
}

// NewTable wraps records in a Table. A nil slice yields an empty table.
func NewTable(records []Record) *Table {
	return &Table{Records: records}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}

// Filter returns a new table holding the rows for which keep returns true.
func (t *Table) Filter(keep func(Record) bool) *Table {
	out := &Table{}
	if t == nil {
		return out
	}
	for _, r := range t.Records {
		if keep(r) {
			out.Records = append(out.Records, r)
		}
	}
	return out
}

// Unique returns the distinct values of a column in order of first appearance.
func (t *Table) Unique(f Field) []string {
	if t == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	for _, r := range t.Records {
		v := r.Value(f)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
