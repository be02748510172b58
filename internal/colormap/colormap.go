// Package colormap maps percent deviations onto diverging colour scales and
// renders the matching legend.
package colormap

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// DefaultName is the colormap used when none is configured.
const DefaultName = "coolwarm"

var constructors = map[string]func() palette.ColorMap{
	"coolwarm":     diverging(moreland.SmoothBlueRed),
	"purpleorange": diverging(moreland.SmoothPurpleOrange),
	"greenpurple":  diverging(moreland.SmoothGreenPurple),
	"bluetan":      diverging(moreland.SmoothBlueTan),
	"greenred":     diverging(moreland.SmoothGreenRed),
	"blackbody":    moreland.BlackBody,
	"kindlmann":    moreland.Kindlmann,
}

func diverging(ctor func() palette.DivergingColorMap) func() palette.ColorMap {
	return func() palette.ColorMap { return ctor() }
}

// Names lists the supported colormap names (without the _r variants).
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Map is a named colormap over the unit interval.
type Map struct {
	name string
	cm   palette.ColorMap
}

// Get returns the named colormap spanning [0, 1]. A "_r" suffix reverses it.
func Get(name string) (*Map, error) {
	cm, err := newColorMap(name, 0, 1)
	if err != nil {
		return nil, err
	}
	return &Map{name: name, cm: cm}, nil
}

// Name returns the name the map was requested with.
func (m *Map) Name() string { return m.name }

// At returns the colour for t in [0, 1]; values outside are clamped. It
// reports false for NaN.
func (m *Map) At(t float64) (color.NRGBA, bool) {
	if math.IsNaN(t) {
		return color.NRGBA{}, false
	}
	t = math.Max(m.cm.Min(), math.Min(m.cm.Max(), t))
	c, err := m.cm.At(t)
	if err != nil {
		return color.NRGBA{}, false
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA), true
}

// CSS returns the background-color declaration for t, or "" for NaN.
func (m *Map) CSS(t float64) string {
	c, ok := m.At(t)
	if !ok {
		return ""
	}
	return "background-color: " + RGBA(c)
}

// RGBA formats a colour as a CSS rgba() value.
func RGBA(c color.NRGBA) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%.2f)", c.R, c.G, c.B, float64(c.A)/255)
}

// Hex formats a colour as #rrggbb, ignoring alpha.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Normalize linearly maps [Min, Max] onto [0, 1].
type Normalize struct {
	Min, Max float64
}

// Apply returns the normalized position of v. NaN stays NaN.
func (n Normalize) Apply(v float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	span := n.Max - n.Min
	if span == 0 {
		return 0.5
	}
	if math.IsInf(v, 1) {
		return 1
	}
	if math.IsInf(v, -1) {
		return 0
	}
	return (v - n.Min) / span
}

func newColorMap(name string, min, max float64) (palette.ColorMap, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultName
	}
	reverse := strings.HasSuffix(key, "_r")
	key = strings.TrimSuffix(key, "_r")

	ctor, ok := constructors[key]
	if !ok {
		return nil, fmt.Errorf("unknown colormap %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	cm := ctor()
	cm.SetMax(max)
	cm.SetMin(min)
	cm.SetAlpha(1)
	if reverse {
		return reversed{cm}, nil
	}
	return cm, nil
}

type reversed struct {
	palette.ColorMap
}

func (r reversed) At(v float64) (color.Color, error) {
	if math.IsNaN(v) {
		return r.ColorMap.At(v)
	}
	v = math.Max(r.Min(), math.Min(r.Max(), v))
	return r.ColorMap.At(r.Max() + r.Min() - v)
}

func (r reversed) Palette(n int) palette.Palette {
	if n < 2 {
		n = 2
	}
	step := (r.Max() - r.Min()) / float64(n-1)
	colors := make(colorList, 0, n)
	for i := 0; i < n; i++ {
		c, err := r.At(r.Min() + step*float64(i))
		if err != nil {
			c = color.Transparent
		}
		colors = append(colors, c)
	}
	return colors
}

type colorList []color.Color

func (c colorList) Colors() []color.Color { return c }
