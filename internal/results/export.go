package results

import (
	"math"

	"github.com/ppr-ocean-ia/dcboard/internal/util"
)

type exportRecord struct {
	Model    string   `json:"model"`
	Metric   string   `json:"metric"`
	LeadDay  string   `json:"lead_day"`
	Variable string   `json:"variable"`
	Score    *float64 `json:"score"`
	RefAlias string   `json:"ref_alias"`
	Dataset  string   `json:"dataset"`
}

// WriteRecordsJSON writes the normalized table as an indented JSON array.
// NaN scores are written as null.
func WriteRecordsJSON(path string, t *Table) error {
	rows := make([]exportRecord, 0, t.Len())
	if t != nil {
		for _, r := range t.Records {
			row := exportRecord{
				Model:    r.Model,
				Metric:   r.Metric,
				LeadDay:  r.LeadDay,
				Variable: r.Variable,
				RefAlias: r.RefAlias,
				Dataset:  r.Dataset,
			}
			if !math.IsNaN(r.Score) && !math.IsInf(r.Score, 0) {
				score := r.Score
				row.Score = &score
			}
			rows = append(rows, row)
		}
	}

	return util.WriteJSON(path, rows)
}
