package canvas

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/matzehuels/bmcanvas/pkg/connect"
	bmerrors "github.com/matzehuels/bmcanvas/pkg/errors"
	"github.com/matzehuels/bmcanvas/pkg/model"
	"github.com/matzehuels/bmcanvas/pkg/render/canvas/layout"
)

// Model is a fully positioned canvas.
type Model struct {
	ID     uuid.UUID // content hash of the document, stable across runs
	Title  string
	Config Config

	Canvas layout.Rect
	Header layout.Rect
	Footer layout.Rect

	Legend []LegendEntry
	Blocks []Block
}

// LegendEntry pairs a segment with its color.
type LegendEntry struct {
	Segment model.SegmentID
	Label   string
	Color   string
}

// Block is one canvas region and the stickies placed in it.
type Block struct {
	ID       layout.BlockID
	Region   layout.Region
	Stickies []Sticky
	Overflow bool // stickies extend below the interior
}

// Sticky is the visual for one entity.
type Sticky struct {
	Ref    model.Ref
	Lines  []string // wrapped label, drawn on Layers[0]
	Layers []Layer  // front to back
}

// Layer is one rectangle of a sticky stack.
type Layer struct {
	Rect    layout.Rect
	Color   string
	Segment model.SegmentID // empty for orphans
}

// Orphan reports whether the sticky reaches no segment.
func (s Sticky) Orphan() bool {
	return len(s.Layers) == 1 && s.Layers[0].Segment == ""
}

// Front returns the top-most layer.
func (s Sticky) Front() Layer { return s.Layers[0] }

// Block returns the block with the given id.
func (m *Model) Block(id layout.BlockID) *Block {
	for i := range m.Blocks {
		if m.Blocks[i].ID == id {
			return &m.Blocks[i]
		}
	}
	return nil
}

// Overflowing returns the blocks whose stickies do not fit.
func (m *Model) Overflowing() []layout.BlockID {
	var out []layout.BlockID
	for _, b := range m.Blocks {
		if b.Overflow {
			out = append(out, b.ID)
		}
	}
	return out
}

// blockOf maps every drawn kind to its block. Fits are join entities and
// have no block.
var blockOf = map[model.Kind]layout.BlockID{
	model.KindSegment:      layout.CustomerSegments,
	model.KindProposition:  layout.ValuePropositions,
	model.KindChannel:      layout.Channels,
	model.KindRelationship: layout.CustomerRelationships,
	model.KindRevenue:      layout.RevenueStreams,
	model.KindResource:     layout.KeyResources,
	model.KindActivity:     layout.KeyActivities,
	model.KindPartnership:  layout.KeyPartnerships,
	model.KindCost:         layout.CostStructure,
}

// BlockOf returns the block entities of kind k are drawn in. The boolean
// is false for kinds that are not drawn.
func BlockOf(k model.Kind) (layout.BlockID, bool) {
	b, ok := blockOf[k]
	return b, ok
}

// Build lays out doc. When g is nil the connection graph is built from
// doc. The returned model is deterministic for a given document and config.
func Build(doc *model.Document, g *connect.Graph, cfg Config) (*Model, error) {
	if doc == nil {
		return nil, bmerrors.New(bmerrors.ErrCodeInvalidDocument, "document is nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if g == nil {
		g = connect.Build(doc)
	}

	id, err := contentID(doc)
	if err != nil {
		return nil, err
	}

	geo := layout.Compute(cfg.Frame())
	colors, legend := segmentColors(doc, cfg)

	m := &Model{
		ID:     id,
		Title:  doc.Title(),
		Config: cfg,
		Canvas: geo.Canvas,
		Header: geo.Header,
		Footer: geo.Footer,
		Legend: legend,
	}

	members := make(map[layout.BlockID][]model.Entity)
	for _, e := range doc.All() {
		if b, ok := blockOf[e.Ref().Kind]; ok {
			members[b] = append(members[b], e)
		}
	}

	for _, region := range geo.Regions() {
		entities := members[region.ID]
		var depth float64
		for _, e := range entities {
			depth = max(depth, cfg.stackDepth(layerCount(g.Segments(e.Ref()), cfg)))
		}
		grid := cfg.grid(region.Interior, depth)
		cells := grid.Place(len(entities))

		blk := Block{
			ID:       region.ID,
			Region:   region,
			Stickies: make([]Sticky, len(entities)),
			Overflow: grid.Overflows(len(entities)),
		}
		for i, e := range entities {
			blk.Stickies[i] = Sticky{
				Ref:    e.Ref(),
				Lines:  layout.WrapLabel(e.Label(), cfg.LineChars, cfg.MaxLines),
				Layers: stack(cells[i], g.Segments(e.Ref()), colors, cfg),
			}
		}
		m.Blocks = append(m.Blocks, blk)
	}
	return m, nil
}

// stack returns the layers for a sticky at cell, front to back.
func stack(cell layout.Rect, segs connect.SegmentSet, colors map[model.SegmentID]string, cfg Config) []Layer {
	if segs.Empty() {
		return []Layer{{Rect: cell, Color: cfg.OrphanColor}}
	}
	layers := make([]Layer, layerCount(segs, cfg))
	for k := range layers {
		d := float64(k) * cfg.StackOffset
		color, ok := colors[segs[k]]
		if !ok {
			color = cfg.OrphanColor
		}
		layers[k] = Layer{Rect: cell.Offset(d, d), Color: color, Segment: segs[k]}
	}
	return layers
}

// layerCount returns how many layers a sticky with segs is drawn with.
func layerCount(segs connect.SegmentSet, cfg Config) int {
	n := max(len(segs), 1)
	if cfg.MaxLayers > 0 {
		n = min(n, cfg.MaxLayers)
	}
	return n
}

// SegmentColors returns the fill color of every declared segment.
func SegmentColors(doc *model.Document, cfg Config) map[model.SegmentID]string {
	colors, _ := segmentColors(doc, cfg)
	return colors
}

// segmentColors assigns palette colors by segment declaration order. A
// repeated segment id keeps the color of its first declaration.
func segmentColors(doc *model.Document, cfg Config) (map[model.SegmentID]string, []LegendEntry) {
	colors := make(map[model.SegmentID]string, len(doc.Segments))
	var legend []LegendEntry
	for _, s := range doc.Segments {
		if _, seen := colors[s.ID]; seen {
			continue
		}
		c := cfg.SegmentColor(len(legend))
		colors[s.ID] = c
		legend = append(legend, LegendEntry{Segment: s.ID, Label: s.Label(), Color: c})
	}
	return colors, legend
}

// namespace scopes content ids of rendered documents.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/matzehuels/bmcanvas"))

// contentID derives a stable identifier from the document's JSON form.
func contentID(doc *model.Document) (uuid.UUID, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return uuid.Nil, bmerrors.Wrap(bmerrors.ErrCodeInternal, err, "hash document")
	}
	return uuid.NewSHA1(namespace, data), nil
}
