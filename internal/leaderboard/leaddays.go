package leaderboard

import "sort"

// DefaultMaxLeadDays is how many lead-day columns a table shows per variable.
const DefaultMaxLeadDays = 4

type numberedLeadDay struct {
	num   int
	label string
}

func numberedLeadDays(labels []string) []numberedLeadDay {
	out := make([]numberedLeadDay, 0, len(labels))
	for _, label := range labels {
		if n, ok := leadDayNumber(label); ok {
			out = append(out, numberedLeadDay{num: n, label: label})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].num != out[j].num {
			return out[i].num < out[j].num
		}
		return out[i].label < out[j].label
	})
	return out
}

// LeadDaysForDisplay picks a representative subset of lead days: day 1 when
// present, then the following odd days, up to max entries. Labels without a
// number are ignored.
func LeadDaysForDisplay(all []string, max int) []string {
	if max <= 0 {
		max = DefaultMaxLeadDays
	}
	days := numberedLeadDays(all)

	var selected []string
	for _, d := range days {
		if d.num == 1 {
			selected = append(selected, d.label)
			break
		}
	}
	for _, d := range days {
		if d.num%2 == 1 && d.num != 1 && len(selected) < max {
			selected = append(selected, d.label)
		}
	}
	if len(selected) > max {
		selected = selected[:max]
	}
	return selected
}

// sortLeadDays orders labels by their lead-day number.
func sortLeadDays(labels []string) []string {
	days := numberedLeadDays(labels)
	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, d.label)
	}
	return out
}
