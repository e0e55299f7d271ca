package types

import (
	"fmt"
	"math"

	"github.com/cityindex-labs/costmap/internal/pipeline"
)

// Chart geometry is computed here so the templ components stay pure
// markup: every field below is a render-ready SVG attribute value.

// Dot is a positioned circle with a hover title.
type Dot struct {
	CX    string
	CY    string
	R     string
	Fill  string
	Title string
}

// Bar is a positioned rectangle with its row label and value label.
type Bar struct {
	X     string
	Y     string
	W     string
	H     string
	Fill  string
	Label string
	Value string
	// LabelY vertically centers the text on the bar.
	LabelY string
}

// Continental-US map bounds; the dataset's cities all fall inside.
const (
	mapW, mapH         = 900.0, 480.0
	mapPad             = 24.0
	latMin, latMax     = 24.0, 50.0
	lonMin, lonMax     = -125.0, -66.0
	scatterW, scatterH = 900.0, 420.0
	barRowH            = 26.0
	barLabelW          = 150.0
	barAreaW           = 720.0
)

// MapSize returns the SVG viewBox dimensions for the map.
func MapSize() (w, h string) { return ftoa(mapW), ftoa(mapH) }

// ScatterSize returns the SVG viewBox dimensions for the scatter chart.
func ScatterSize() (w, h string) { return ftoa(scatterW), ftoa(scatterH) }

// BarChartHeight sizes a horizontal bar chart to its row count.
func BarChartHeight(rows int) string {
	return ftoa(float64(rows)*barRowH + mapPad)
}

// MapDots projects map points onto the SVG plane. Marker size and color
// both encode the cost-of-living index, matching the hover text.
func MapDots(points []pipeline.MapPoint) []Dot {
	lo, hi := indexBounds(points)

	dots := make([]Dot, 0, len(points))
	for _, p := range points {
		x := scale(p.Lon, lonMin, lonMax, mapPad, mapW-mapPad)
		y := scale(p.Lat, latMin, latMax, mapH-mapPad, mapPad)
		t := norm(p.Index, lo, hi)

		dots = append(dots, Dot{
			CX:   ftoa(x),
			CY:   ftoa(y),
			R:    ftoa(5 + 13*t),
			Fill: indexColor(t),
			Title: fmt.Sprintf("%s — CoL Index %s, 1BR Rent %s, Avg Salary %s",
				p.CityState, pipeline.Index(p.Index), pipeline.Dollars(p.Rent), pipeline.Dollars(p.Salary)),
		})
	}
	return dots
}

// ScatterDots places cities by index (x) and salary (y); purchasing power
// drives marker size and color. NaN power renders small and muted.
func ScatterDots(points []pipeline.ScatterPoint) []Dot {
	xLo, xHi := scatterXBounds(points)
	yLo, yHi := scatterYBounds(points)
	pLo, pHi := powerBounds(points)

	dots := make([]Dot, 0, len(points))
	for _, p := range points {
		x := scale(p.Index, xLo, xHi, mapPad+30, scatterW-mapPad)
		y := scale(p.Salary, yLo, yHi, scatterH-mapPad-20, mapPad)

		r, fill := 4.0, "#4b5563"
		if !math.IsNaN(p.Power) {
			t := norm(p.Power, pLo, pHi)
			r = 4 + 10*t
			fill = indexColor(t)
		}

		dots = append(dots, Dot{
			CX:   ftoa(x),
			CY:   ftoa(y),
			R:    ftoa(r),
			Fill: fill,
			Title: fmt.Sprintf("%s — CoL Index %s, Avg Salary %s, Purchasing Power %s",
				p.CityState, pipeline.Index(p.Index), pipeline.Dollars(p.Salary), pipeline.Power(p.Power)),
		})
	}
	return dots
}

// RentBars lays out the paired rent comparison: two bars per city, center
// rent in the accent color and outside rent in the lighter shade.
func RentBars(pairs []pipeline.RentPair) []Bar {
	maxRent := 1.0
	for _, p := range pairs {
		maxRent = math.Max(maxRent, math.Max(p.CenterRent, p.OutsideRent))
	}

	bars := make([]Bar, 0, 2*len(pairs))
	for i, p := range pairs {
		top := float64(i) * barRowH
		bars = append(bars,
			Bar{
				X: ftoa(barLabelW), Y: ftoa(top + 3),
				W: ftoa(barAreaW * p.CenterRent / maxRent), H: ftoa(9),
				Fill: "#6366f1",
				Label: p.City, Value: pipeline.Dollars(p.CenterRent),
				LabelY: ftoa(top + barRowH/2 + 4),
			},
			Bar{
				X: ftoa(barLabelW), Y: ftoa(top + 14),
				W: ftoa(barAreaW * p.OutsideRent / maxRent), H: ftoa(9),
				Fill: "#a5b4fc",
				Value: pipeline.Dollars(p.OutsideRent),
				LabelY: ftoa(top + barRowH/2 + 4),
			},
		)
	}
	return bars
}

// RankBars lays out the purchasing-power ranking. NaN scores draw no bar,
// only the placeholder value.
func RankBars(entries []pipeline.RankEntry) []Bar {
	maxPower := 1.0
	for _, e := range entries {
		if !math.IsNaN(e.Power) {
			maxPower = math.Max(maxPower, e.Power)
		}
	}

	bars := make([]Bar, 0, len(entries))
	for i, e := range entries {
		top := float64(i) * barRowH
		width := 0.0
		if !math.IsNaN(e.Power) {
			width = barAreaW * e.Power / maxPower
		}
		bars = append(bars, Bar{
			X: ftoa(barLabelW), Y: ftoa(top + 5),
			W: ftoa(width), H: ftoa(14),
			Fill: indexColor(width / barAreaW),
			Label: e.City, Value: pipeline.Power(e.Power),
			LabelY: ftoa(top + barRowH/2 + 4),
		})
	}
	return bars
}

// indexColor interpolates the dashboard's indigo ramp for t in [0,1].
func indexColor(t float64) string {
	t = math.Max(0, math.Min(1, t))
	// #312e81 -> #a5b4fc
	r := int(0x31 + t*float64(0xa5-0x31))
	g := int(0x2e + t*float64(0xb4-0x2e))
	b := int(0x81 + t*float64(0xfc-0x81))
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func scale(v, lo, hi, outLo, outHi float64) float64 {
	return outLo + norm(v, lo, hi)*(outHi-outLo)
}

// norm maps v into [0,1] over [lo,hi], clamping and tolerating lo == hi.
func norm(v, lo, hi float64) float64 {
	if hi <= lo {
		return 0.5
	}
	t := (v - lo) / (hi - lo)
	return math.Max(0, math.Min(1, t))
}

func indexBounds(points []pipeline.MapPoint) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range points {
		lo = math.Min(lo, p.Index)
		hi = math.Max(hi, p.Index)
	}
	return lo, hi
}

func scatterXBounds(points []pipeline.ScatterPoint) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range points {
		lo = math.Min(lo, p.Index)
		hi = math.Max(hi, p.Index)
	}
	return lo, hi
}

func scatterYBounds(points []pipeline.ScatterPoint) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range points {
		lo = math.Min(lo, p.Salary)
		hi = math.Max(hi, p.Salary)
	}
	return lo, hi
}

func powerBounds(points []pipeline.ScatterPoint) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range points {
		if math.IsNaN(p.Power) {
			continue
		}
		lo = math.Min(lo, p.Power)
		hi = math.Max(hi, p.Power)
	}
	return lo, hi
}

func ftoa(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
