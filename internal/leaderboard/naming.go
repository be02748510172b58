package leaderboard

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// noDepth sorts variables without a depth marker after every measured depth.
const noDepth = 999

var (
	surfaceWordRe   = regexp.MustCompile(`\bsurface\b`)
	depthMetersRe   = regexp.MustCompile(`\d+m\b`)
	depthUnderRe    = regexp.MustCompile(`\d+_m\b`)
	surfaceSuffixRe = regexp.MustCompile(`_surface\b`)
	underscoresRe   = regexp.MustCompile(`_+`)
	depthValueRe    = regexp.MustCompile(`(\d+)m`)
	firstNumberRe   = regexp.MustCompile(`\d+`)
)

// VariableType strips depth and surface markers from a variable name, so
// "temperature_50m" and "temperature_200m" share the family "temperature".
func VariableType(name string) string {
	lower := strings.ToLower(name)

	cleaned := surfaceWordRe.ReplaceAllString(lower, "")
	cleaned = depthMetersRe.ReplaceAllString(cleaned, "")
	cleaned = depthUnderRe.ReplaceAllString(cleaned, "")
	cleaned = surfaceSuffixRe.ReplaceAllString(cleaned, "")

	cleaned = underscoresRe.ReplaceAllString(cleaned, "_")
	cleaned = strings.TrimSpace(strings.Trim(cleaned, "_"))

	if cleaned == "" {
		return lower
	}
	return cleaned
}

// DepthOrder returns 0 for surface variables, the depth in metres when the
// name carries one, and noDepth otherwise.
func DepthOrder(name string) int {
	lower := strings.ToLower(name)
	if strings.Contains(lower, "surface") {
		return 0
	}
	if m := depthValueRe.FindStringSubmatch(lower); m != nil {
		if depth, err := strconv.Atoi(m[1]); err == nil {
			return depth
		}
	}
	return noDepth
}

// SortVariables orders names by family, then depth, then name.
func SortVariables(names []string) []string {
	out := append([]string(nil), names...)
	sort.SliceStable(out, func(i, j int) bool {
		ti, tj := VariableType(out[i]), VariableType(out[j])
		if ti != tj {
			return ti < tj
		}
		di, dj := DepthOrder(out[i]), DepthOrder(out[j])
		if di != dj {
			return di < dj
		}
		return out[i] < out[j]
	})
	return out
}

// TitleCase upper-cases the first letter of every letter run and lower-cases
// the rest, so "sea_surface_height" becomes "Sea_Surface_Height".
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToTitle(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}

// leadDayNumber extracts the first integer of a lead-day label.
func leadDayNumber(label string) (int, bool) {
	m := firstNumberRe.FindString(label)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}
