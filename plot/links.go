package plot

import "github.com/abondrn/nussinov/fold"

// LinkKind tells what a link between two bases represents.
type LinkKind int

const (
	// Backbone joins consecutive bases where at least one is paired.
	Backbone LinkKind = iota
	// Bulge joins consecutive bases that are both unpaired.
	Bulge
	// BasePair joins two paired bases.
	BasePair
)

func (kind LinkKind) String() string {
	switch kind {
	case Backbone:
		return "backbone"
	case Bulge:
		return "bulge"
	case BasePair:
		return "pair"
	}
	return "unknown"
}

// Link is an edge of the force-directed graph of a structure.
type Link struct {
	Source, Target int
	Kind           LinkKind
}

// Strength is the spring strength a force layout should use for the link.
func (link Link) Strength() float64 {
	if link.Kind == BasePair {
		return 0.8
	}
	return 0.5
}

// Distance is the rest length in pixels a force layout should use for the link.
func (link Link) Distance() float64 {
	if link.Kind == BasePair {
		return 30
	}
	return 8
}

// Links returns the backbone links of a sequence of length n followed by one
// link per pair. Pairs reaching outside the sequence are skipped.
func Links(n int, pairs []fold.Pair) []Link {
	paired := make([]bool, n)
	var inRange []fold.Pair
	for _, pair := range pairs {
		if pair.I < 0 || pair.J < 0 || pair.I >= n || pair.J >= n {
			continue
		}
		paired[pair.I], paired[pair.J] = true, true
		inRange = append(inRange, pair)
	}

	links := make([]Link, 0, n+len(inRange))
	for i := 0; i+1 < n; i++ {
		kind := Backbone
		if !paired[i] && !paired[i+1] {
			kind = Bulge
		}
		links = append(links, Link{Source: i, Target: i + 1, Kind: kind})
	}
	for _, pair := range inRange {
		links = append(links, Link{Source: pair.I, Target: pair.J, Kind: BasePair})
	}
	return links
}
