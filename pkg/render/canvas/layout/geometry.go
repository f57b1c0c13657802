package layout

import "fmt"

// BlockID identifies one of the nine canvas blocks.
type BlockID int

const (
	KeyPartnerships BlockID = iota
	KeyActivities
	KeyResources
	ValuePropositions
	CustomerRelationships
	Channels
	CustomerSegments
	CostStructure
	RevenueStreams

	blockCount
)

var blockTitles = [blockCount]string{
	KeyPartnerships:       "Key Partners",
	KeyActivities:         "Key Activities",
	KeyResources:          "Key Resources",
	ValuePropositions:     "Value Propositions",
	CustomerRelationships: "Customer Relationships",
	Channels:              "Channels",
	CustomerSegments:      "Customer Segments",
	CostStructure:         "Cost Structure",
	RevenueStreams:        "Revenue Streams",
}

// Blocks returns every block in drawing order.
func Blocks() []BlockID {
	out := make([]BlockID, blockCount)
	for i := range out {
		out[i] = BlockID(i)
	}
	return out
}

// Valid reports whether b names a canvas block.
func (b BlockID) Valid() bool { return b >= 0 && b < blockCount }

// Title returns the label printed in the block's label band.
func (b BlockID) Title() string {
	if !b.Valid() {
		return ""
	}
	return blockTitles[b]
}

func (b BlockID) String() string {
	if !b.Valid() {
		return fmt.Sprintf("BlockID(%d)", int(b))
	}
	return blockTitles[b]
}

// Column and band fractions of the grid.
const (
	columns      = 5
	topBandShare = 0.75
)

// Frame holds the fixed dimensions the geometry is derived from.
type Frame struct {
	Width, Height float64
	Margin        float64
	HeaderHeight  float64
	FooterHeight  float64
	LabelHeight   float64
	Padding       float64
}

// Region is the geometry of a single block.
type Region struct {
	ID       BlockID
	Bounds   Rect // outline of the block
	Label    Rect // title band at the top of Bounds
	Interior Rect // sticky area: Bounds minus Label, inset by the padding
}

// Geometry is the complete canvas partition.
type Geometry struct {
	Canvas Rect // full coordinate space, origin at 0,0
	Header Rect
	Grid   Rect
	Footer Rect

	regions [blockCount]Region
}

// Region returns the geometry of block id. It panics for invalid ids.
func (g Geometry) Region(id BlockID) Region { return g.regions[id] }

// Regions returns all block regions in [Blocks] order.
func (g Geometry) Regions() []Region { return g.regions[:] }

// Compute partitions the frame into header, footer and the nine blocks.
// Negative or oversized margins collapse to empty rectangles rather than
// failing.
func Compute(f Frame) Geometry {
	g := Geometry{Canvas: Rect{W: f.Width, H: f.Height}}

	outer := g.Canvas.Inset(f.Margin)
	var body Rect
	g.Header, body = outer.SplitTop(f.HeaderHeight)
	g.Grid, g.Footer = body.SplitBottom(f.FooterHeight)

	col := g.Grid.W / columns
	top := g.Grid.H * topBandShare
	half := top / 2
	x := func(i int) float64 { return g.Grid.X + float64(i)*col }
	y0 := g.Grid.Y

	bounds := [blockCount]Rect{
		KeyPartnerships:       {X: x(0), Y: y0, W: col, H: top},
		KeyActivities:         {X: x(1), Y: y0, W: col, H: half},
		KeyResources:          {X: x(1), Y: y0 + half, W: col, H: half},
		ValuePropositions:     {X: x(2), Y: y0, W: col, H: top},
		CustomerRelationships: {X: x(3), Y: y0, W: col, H: half},
		Channels:              {X: x(3), Y: y0 + half, W: col, H: half},
		CustomerSegments:      {X: x(4), Y: y0, W: col, H: top},
		CostStructure:         {X: g.Grid.X, Y: y0 + top, W: g.Grid.W / 2, H: g.Grid.H - top},
		RevenueStreams:        {X: g.Grid.X + g.Grid.W/2, Y: y0 + top, W: g.Grid.W / 2, H: g.Grid.H - top},
	}
	for id, b := range bounds {
		label, rest := b.SplitTop(f.LabelHeight)
		g.regions[id] = Region{
			ID:       BlockID(id),
			Bounds:   b,
			Label:    label,
			Interior: rest.Inset(f.Padding),
		}
	}
	return g
}
