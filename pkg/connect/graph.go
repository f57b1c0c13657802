package connect

import (
	"fmt"
	"slices"

	"github.com/matzehuels/bmcanvas/pkg/model"
)

// Graph maps every entity of a document to its connected customer segments.
// A Graph is immutable after [Build] returns and safe for concurrent reads.
type Graph struct {
	sets       map[model.Ref]SegmentSet
	order      []model.Ref
	dangling   []Dangling
	duplicates []model.Ref
}

// Dangling is a reference to an identifier absent from the document.
type Dangling struct {
	From  model.Ref
	Field model.Field
	To    model.Ref
}

func (d Dangling) String() string {
	return fmt.Sprintf("%s.%s -> %s (%s not found)", d.From.ID, d.Field, d.To.ID, d.To.Kind)
}

// Lookup returns the segments connected to ref. The boolean is false when
// ref is not an entity of the document.
func (g *Graph) Lookup(ref model.Ref) (SegmentSet, bool) {
	s, ok := g.sets[ref]
	if !ok {
		return nil, false
	}
	return slices.Clone(s), true
}

// Segments returns the segments connected to ref, or nil if ref is unknown
// or orphaned.
func (g *Graph) Segments(ref model.Ref) SegmentSet {
	s, _ := g.Lookup(ref)
	return s
}

// Refs returns every entity of the document in declaration order.
func (g *Graph) Refs() []model.Ref { return slices.Clone(g.order) }

// Len returns the number of entities in the graph.
func (g *Graph) Len() int { return len(g.order) }

// Orphans returns the entities with no connected segment, in declaration order.
func (g *Graph) Orphans() []model.Ref {
	var out []model.Ref
	for _, ref := range g.order {
		if g.sets[ref].Empty() {
			out = append(out, ref)
		}
	}
	return out
}

// Dangling returns references to missing identifiers in declaration order.
func (g *Graph) Dangling() []Dangling { return slices.Clone(g.dangling) }

// Duplicates returns identifiers declared more than once. Only the first
// declaration contributes to the graph.
func (g *Graph) Duplicates() []model.Ref { return slices.Clone(g.duplicates) }
