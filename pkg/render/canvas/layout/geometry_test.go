package layout

import (
	"fmt"
	"testing"
)

var testFrame = Frame{
	Width:        1600,
	Height:       1000,
	Margin:       20,
	HeaderHeight: 64,
	FooterHeight: 28,
	LabelHeight:  30,
	Padding:      8,
}

func TestComputeStrips(t *testing.T) {
	g := Compute(testFrame)

	if want := (Rect{X: 20, Y: 20, W: 1560, H: 64}); g.Header != want {
		t.Errorf("Header = %+v, want %+v", g.Header, want)
	}
	if want := (Rect{X: 20, Y: 84, W: 1560, H: 868}); g.Grid != want {
		t.Errorf("Grid = %+v, want %+v", g.Grid, want)
	}
	if want := (Rect{X: 20, Y: 952, W: 1560, H: 28}); g.Footer != want {
		t.Errorf("Footer = %+v, want %+v", g.Footer, want)
	}
}

func TestComputeBlocks(t *testing.T) {
	g := Compute(testFrame)

	tests := []struct {
		id   BlockID
		want Rect
	}{
		{KeyPartnerships, Rect{X: 20, Y: 84, W: 312, H: 651}},
		{KeyActivities, Rect{X: 332, Y: 84, W: 312, H: 325.5}},
		{KeyResources, Rect{X: 332, Y: 409.5, W: 312, H: 325.5}},
		{ValuePropositions, Rect{X: 644, Y: 84, W: 312, H: 651}},
		{CustomerRelationships, Rect{X: 956, Y: 84, W: 312, H: 325.5}},
		{Channels, Rect{X: 956, Y: 409.5, W: 312, H: 325.5}},
		{CustomerSegments, Rect{X: 1268, Y: 84, W: 312, H: 651}},
		{CostStructure, Rect{X: 20, Y: 735, W: 780, H: 217}},
		{RevenueStreams, Rect{X: 800, Y: 735, W: 780, H: 217}},
	}
	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			if got := g.Region(tt.id).Bounds; got != tt.want {
				t.Errorf("Bounds = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComputeTilesGrid(t *testing.T) {
	g := Compute(testFrame)
	regions := g.Regions()

	var area float64
	for i, a := range regions {
		if !g.Grid.Contains(a.Bounds) {
			t.Errorf("%s escapes the grid: %+v", a.ID, a.Bounds)
		}
		area += a.Bounds.Area()
		for _, b := range regions[i+1:] {
			if a.Bounds.Overlaps(b.Bounds) {
				t.Errorf("%s overlaps %s", a.ID, b.ID)
			}
		}
	}
	if area != g.Grid.Area() {
		t.Errorf("blocks cover %v, grid is %v", area, g.Grid.Area())
	}
}

func TestComputeInterior(t *testing.T) {
	g := Compute(testFrame)
	r := g.Region(KeyActivities)

	if want := (Rect{X: 332, Y: 84, W: 312, H: 30}); r.Label != want {
		t.Errorf("Label = %+v, want %+v", r.Label, want)
	}
	if want := (Rect{X: 340, Y: 122, W: 296, H: 279.5}); r.Interior != want {
		t.Errorf("Interior = %+v, want %+v", r.Interior, want)
	}
	for _, r := range g.Regions() {
		if !r.Bounds.Contains(r.Interior) {
			t.Errorf("%s interior escapes bounds", r.ID)
		}
	}
}

func TestComputeDegenerateFrame(t *testing.T) {
	g := Compute(Frame{Width: 10, Height: 10, Margin: 20, HeaderHeight: 64})
	for _, r := range g.Regions() {
		if r.Bounds.W < 0 || r.Bounds.H < 0 || r.Interior.W < 0 || r.Interior.H < 0 {
			t.Errorf("%s has negative size: %+v", r.ID, r)
		}
	}
}

func TestBlockIDString(t *testing.T) {
	if got := ValuePropositions.String(); got != "Value Propositions" {
		t.Errorf("String() = %q", got)
	}
	if got := BlockID(42).String(); got != "BlockID(42)" {
		t.Errorf("String() = %q", got)
	}
	if got := BlockID(-1).Title(); got != "" {
		t.Errorf("Title() = %q, want empty", got)
	}
	if n := len(Blocks()); n != 9 {
		t.Errorf("len(Blocks()) = %d, want 9", n)
	}
}

func ExampleCompute() {
	g := Compute(Frame{Width: 1000, Height: 500, HeaderHeight: 50, FooterHeight: 50, LabelHeight: 20, Padding: 5})
	r := g.Region(ValuePropositions)
	fmt.Printf("%s: %+v\n", r.ID, r.Bounds)
	// Output:
	// Value Propositions: {X:400 Y:50 W:200 H:300}
}
