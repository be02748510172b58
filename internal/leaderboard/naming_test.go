package leaderboard

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestVariableType(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Surface ssh", "ssh"},
		{"temperature_50m", "temperature"},
		{"temperature_surface", "temperature"},
		{"salinity_200_m", "salinity"},
		{"sea_surface_height", "sea_surface_height"},
		{"zos", "zos"},
		{"Surface", "surface"},
	}
	for _, tt := range tests {
		if got := VariableType(tt.in); got != tt.want {
			t.Errorf("VariableType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDepthOrder(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"Surface ssh", 0},
		{"sea_surface_height", 0},
		{"temperature_50m", 50},
		{"temperature 1000m", 1000},
		{"zos", noDepth},
	}
	for _, tt := range tests {
		if got := DepthOrder(tt.in); got != tt.want {
			t.Errorf("DepthOrder(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSortVariables(t *testing.T) {
	in := []string{"zos", "temperature_200m", "temperature_50m", "temperature_surface", "salinity_50m"}
	want := []string{"salinity_50m", "temperature_surface", "temperature_50m", "temperature_200m", "zos"}
	got := SortVariables(in)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("SortVariables mismatch (-want +got):\n%s", diff)
	}
	if in[0] != "zos" {
		t.Fatal("SortVariables must not modify its input")
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"ssh", "Ssh"},
		{"sea_surface_height", "Sea_Surface_Height"},
		{"u geostrophic", "U Geostrophic"},
		{"MLD", "Mld"},
		{"t2m", "T2M"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := TitleCase(tt.in); got != tt.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLeadDaysForDisplay(t *testing.T) {
	days := func(nums ...int) []string {
		out := make([]string, 0, len(nums))
		for _, n := range nums {
			out = append(out, leadDay(n))
		}
		return out
	}

	tests := []struct {
		name string
		in   []string
		max  int
		want []string
	}{
		{"first ten days", days(10, 9, 8, 7, 6, 5, 4, 3, 2, 1), 4, days(1, 3, 5, 7)},
		{"no day one", days(2, 3, 5, 7, 9, 11), 4, days(3, 5, 7, 9)},
		{"unknown dropped", []string{"unknown", leadDay(1)}, 4, days(1)},
		{"smaller limit", days(1, 2, 3, 4, 5), 2, days(1, 3)},
		{"default limit", days(1, 3, 5, 7, 9), 0, days(1, 3, 5, 7)},
		{"even only", days(2, 4), 4, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LeadDaysForDisplay(tt.in, tt.max)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("LeadDaysForDisplay mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
