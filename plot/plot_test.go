package plot_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/abondrn/nussinov/fold"
	"github.com/abondrn/nussinov/plot"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffsetAngle(t *testing.T) {
	assert.InDelta(t, 3*math.Pi/2, plot.OffsetAngle(0), 1e-9)
	assert.InDelta(t, 3*math.Pi/2, plot.OffsetAngle(1), 1e-9)
	assert.InDelta(t, 3*math.Pi/2+math.Pi/4, plot.OffsetAngle(4), 1e-9)
}

func TestCircular(t *testing.T) {
	layout := plot.Circular("GGAACC", []fold.Pair{{I: 0, J: 5}, {I: 1, J: 4}, {I: 2, J: 9}}, 240)
	assert.Equal(t, 100.0, layout.Radius)
	assert.Equal(t, plot.Point{X: 120, Y: 120}, layout.Center)
	require.Len(t, layout.Bases, 6)
	require.Len(t, layout.Chords, 2, "out of range pair must be skipped")

	for _, base := range layout.Bases {
		distance := math.Hypot(base.Position.X-layout.Center.X, base.Position.Y-layout.Center.Y)
		assert.InDelta(t, layout.Radius, distance, 1e-9)
	}
	assert.Equal(t, layout.Bases[0].Position, layout.Chords[0].From)
	assert.Equal(t, layout.Bases[5].Position, layout.Chords[0].To)
	assert.Equal(t, byte('G'), layout.Bases[0].Symbol)
}

func TestCircularEmpty(t *testing.T) {
	layout := plot.Circular("", nil, 100)
	assert.Empty(t, layout.Bases)
	assert.Empty(t, layout.Chords)
}

func TestLinks(t *testing.T) {
	links := plot.Links(6, []fold.Pair{{I: 0, J: 3}, {I: 4, J: 8}})
	assert.Equal(t, []plot.Link{
		{Source: 0, Target: 1, Kind: plot.Backbone},
		{Source: 1, Target: 2, Kind: plot.Bulge},
		{Source: 2, Target: 3, Kind: plot.Backbone},
		{Source: 3, Target: 4, Kind: plot.Backbone},
		{Source: 4, Target: 5, Kind: plot.Bulge},
		{Source: 0, Target: 3, Kind: plot.BasePair},
	}, links)
	assert.Equal(t, 0.8, links[5].Strength())
	assert.Equal(t, 30.0, links[5].Distance())
	assert.Equal(t, 8.0, links[0].Distance())
	assert.Equal(t, "bulge", links[1].Kind.String())
}

const twoBaseSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="120" height="120" viewBox="0 0 120 120">
<circle cx="60.00" cy="60.00" r="50.00" fill="none" stroke="black" stroke-width="2"/>
<g stroke="black" stroke-width="1">
<line x1="102.00" y1="60.00" x2="118.00" y2="60.00"/>
<line x1="18.00" y1="60.00" x2="2.00" y2="60.00"/>
</g>
<g font-family="Arial" font-size="20" text-anchor="middle" dominant-baseline="middle">
<text x="130.00" y="60.00">G</text>
<text x="-10.00" y="60.00">C</text>
</g>
<g stroke="blue" stroke-width="3">
<line x1="110.00" y1="60.00" x2="10.00" y2="60.00"/>
</g>
</svg>
`

func TestWriteSVG(t *testing.T) {
	result := fold.Predict("GC")
	var out bytes.Buffer
	require.NoError(t, plot.WriteSVG(&out, plot.Circular(result.Sequence, result.Pairs, 120)))

	if out.String() != twoBaseSVG {
		diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(twoBaseSVG),
			B:        difflib.SplitLines(out.String()),
			FromFile: "want",
			ToFile:   "got",
			Context:  2,
		})
		t.Errorf("unexpected SVG:\n%s", diff)
	}
}
