/*
Package plot lays out a folded RNA sequence for drawing.

Circular places the bases evenly on a circle, starting at the top and going
clockwise, and joins paired bases with chords. Links lists the edges a
force-directed renderer needs, classified so that the backbone, base pairs
and unpaired runs can be styled differently. WriteSVG draws a circular layout.
*/
package plot

import (
	"math"

	"github.com/abondrn/nussinov/fold"
)

const (
	// radiusRatio is the ratio of the drawing width to the circle radius.
	radiusRatio = 2.4
	// TickSize is the length in pixels of the tick marking each base.
	TickSize = 16
	// labelGap is the distance from the circle to a base label.
	labelGap = 20
)

// Point is a position in drawing coordinates, y growing downwards.
type Point struct {
	X, Y float64
}

// Base is one base placed on the circle.
type Base struct {
	Index  int
	Symbol byte
	// Position is on the circle, Label is outside it.
	Position, Label Point
	// TickStart and TickEnd straddle the circle.
	TickStart, TickEnd Point
}

// Chord joins two paired bases.
type Chord struct {
	Pair     fold.Pair
	From, To Point
}

// Layout is a circular drawing of a folded sequence.
type Layout struct {
	Width  float64
	Center Point
	Radius float64
	// Offset is the angle of the first base in radians.
	Offset float64
	Bases  []Base
	Chords []Chord
}

// OffsetAngle returns the angle of the first of n bases on the circle. The
// first base sits at the top, shifted half a step so that the gap between the
// last and first base is centered.
func OffsetAngle(n int) float64 {
	offset := 2 * math.Pi * 270 / 360
	if n > 1 {
		offset += 2 * math.Pi / float64(n) / 2
	}
	return math.Mod(offset, 2*math.Pi)
}

// unitPoint returns the point at fraction piece of a turn past offset on a
// circle of radius 1.
func unitPoint(piece, offset float64) (float64, float64) {
	angle := offset + piece*2*math.Pi
	return math.Cos(angle), math.Sin(angle)
}

// Circular lays out seq and its pairs on a square drawing of the given width.
// Pairs with an endpoint outside the sequence are skipped.
func Circular(seq string, pairs []fold.Pair, width float64) Layout {
	n := len(seq)
	layout := Layout{
		Width:  width,
		Center: Point{width / 2, width / 2},
		Radius: math.Floor(width / radiusRatio),
		Offset: OffsetAngle(n),
		Bases:  make([]Base, 0, n),
		Chords: make([]Chord, 0, len(pairs)),
	}
	at := func(radius, x, y float64) Point {
		return Point{layout.Center.X + x*radius, layout.Center.Y + y*radius}
	}

	for i := 0; i < n; i++ {
		x, y := unitPoint(float64(i)/float64(n), layout.Offset)
		layout.Bases = append(layout.Bases, Base{
			Index:     i,
			Symbol:    seq[i],
			Position:  at(layout.Radius, x, y),
			Label:     at(layout.Radius+labelGap, x, y),
			TickStart: at(layout.Radius-TickSize/2, x, y),
			TickEnd:   at(layout.Radius+TickSize/2, x, y),
		})
	}
	for _, pair := range pairs {
		if pair.I < 0 || pair.J < 0 || pair.I >= n || pair.J >= n {
			continue
		}
		layout.Chords = append(layout.Chords, Chord{
			Pair: pair,
			From: layout.Bases[pair.I].Position,
			To:   layout.Bases[pair.J].Position,
		})
	}
	return layout
}
