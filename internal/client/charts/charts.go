// Package charts computes drawable geometry for the dashboard charts. The
// functions are pure; rendering is the caller's concern.
package charts

import "math"

// Canvas defaults shared by the dashboard renderers.
const (
	DefaultWidth  = 400
	DefaultHeight = 200
)

// Padding is the inset between the canvas edge and the plot area.
type Padding struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// DefaultPadding matches the dashboard bar chart inset.
var DefaultPadding = Padding{Left: 40, Right: 20, Top: 20, Bottom: 30}

// Bar is one bar's rectangle in canvas coordinates, y growing downward.
type Bar struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// BarLayout lays out n bars across the plot area. Each slot is 60% bar and
// 40% gap; heights scale linearly so the maximum value fills the plot height.
// All-zero values produce zero-height bars, never NaN.
func BarLayout(values []float64, width, height float64, pad Padding) []Bar {
	n := len(values)
	if n == 0 {
		return nil
	}
	chartW := width - pad.Left - pad.Right
	chartH := height - pad.Top - pad.Bottom
	slot := chartW / float64(n)
	barW := slot * 0.6
	gap := slot * 0.4

	max := 0.0
	for _, v := range values {
		if v > max {
			max = v
		}
	}

	bars := make([]Bar, n)
	for i, v := range values {
		var h float64
		if max > 0 {
			h = v / max * chartH
		}
		bars[i] = Bar{
			X:      pad.Left + float64(i)*slot + gap/2,
			Y:      pad.Top + chartH - h,
			Width:  barW,
			Height: h,
		}
	}
	return bars
}

// Slice is one pie slice's input: a percentage value with display metadata.
type Slice struct {
	Name  string
	Value float64
	Color string
}

// Arc is one pie slice's angular extent in radians, canvas convention
// (angles from the positive x-axis, clockwise positive).
type Arc struct {
	Name  string
	Color string
	Start float64
	End   float64
}

// PieGeometry is the full pie: consecutive arcs plus center and radius.
type PieGeometry struct {
	Arcs    []Arc
	CenterX float64
	CenterY float64
	Radius  float64
}

// PieLayout places slices consecutively from 12 o'clock (−π/2), each spanning
// value/100 of a full turn. Values are trusted as given; a set not summing to
// 100 under- or over-draws the pie.
func PieLayout(slices []Slice, width, height float64) PieGeometry {
	geom := PieGeometry{
		Arcs:    make([]Arc, 0, len(slices)),
		CenterX: width / 2,
		CenterY: height/2 - 10,
		Radius:  math.Min(width, height)/2 - 30,
	}
	angle := -math.Pi / 2
	for _, s := range slices {
		span := s.Value / 100 * 2 * math.Pi
		geom.Arcs = append(geom.Arcs, Arc{
			Name:  s.Name,
			Color: s.Color,
			Start: angle,
			End:   angle + span,
		})
		angle += span
	}
	return geom
}
