package connect

import "github.com/matzehuels/bmcanvas/pkg/model"

type stage int

const (
	stageSeed stage = iota
	stageDirect
	stageProposition
	stagePropositionBridged
	stageResourceBridged

	stageCount
)

// rule describes how entities of one kind derive their set.
type rule struct {
	stage stage
	// seed connects the entity to itself (customer segments only).
	seed bool
	// forward lists kinds the entity links to whose sets flow in.
	forward []model.Kind
	// reverse lists kinds linking to the entity whose sets flow in.
	reverse []model.Kind
}

// rules must have an entry for every model.Kind.
var rules = map[model.Kind]rule{
	model.KindSegment:      {stage: stageSeed, seed: true},
	model.KindFit:          {stage: stageDirect, forward: []model.Kind{model.KindSegment}},
	model.KindChannel:      {stage: stageDirect, forward: []model.Kind{model.KindSegment}},
	model.KindRelationship: {stage: stageDirect, forward: []model.Kind{model.KindSegment}},
	model.KindProposition:  {stage: stageProposition, reverse: []model.Kind{model.KindFit}},
	model.KindRevenue:      {stage: stagePropositionBridged, forward: []model.Kind{model.KindSegment, model.KindProposition}},
	model.KindResource:     {stage: stagePropositionBridged, forward: []model.Kind{model.KindProposition}},
	model.KindActivity:     {stage: stagePropositionBridged, forward: []model.Kind{model.KindProposition}},
	model.KindPartnership:  {stage: stageResourceBridged, forward: []model.Kind{model.KindResource, model.KindActivity}},
	model.KindCost:         {stage: stageResourceBridged, forward: []model.Kind{model.KindResource, model.KindActivity}},
}

// Build computes the connection graph of doc. It never fails: references to
// unknown identifiers are skipped and reported by [Graph.Dangling].
// A nil document yields an empty graph.
func Build(doc *model.Document) *Graph {
	g := &Graph{sets: make(map[model.Ref]SegmentSet)}
	if doc == nil {
		return g
	}

	idx := newIndex(doc)
	for st := stageSeed; st < stageCount; st++ {
		for _, k := range model.Kinds() {
			r := rules[k]
			if r.stage != st {
				continue
			}
			for _, n := range idx.byKind[k] {
				if _, dup := g.sets[n.ref]; dup {
					g.duplicates = append(g.duplicates, n.ref)
					continue
				}
				g.sets[n.ref] = g.derive(idx, n, r)
			}
		}
	}

	present := make(map[model.Ref]bool, len(g.sets))
	for _, e := range doc.All() {
		ref := e.Ref()
		if present[ref] {
			continue
		}
		present[ref] = true
		g.order = append(g.order, ref)
	}
	for _, e := range doc.All() {
		for _, l := range e.Links() {
			if !present[l.To] {
				g.dangling = append(g.dangling, Dangling{From: e.Ref(), Field: l.Relation.Field, To: l.To})
			}
		}
	}
	return g
}

// node is an entity declaration with its link targets resolved once.
type node struct {
	ref     model.Ref
	targets map[model.Ref]bool
}

// index holds the declarations of every kind in document order.
type index struct {
	byKind map[model.Kind][]node
	// incoming lists, per kind and target, the declarations of that kind
	// linking to the target, in document order.
	incoming map[model.Kind]map[model.Ref][]model.Ref
}

func newIndex(doc *model.Document) *index {
	idx := &index{
		byKind:   make(map[model.Kind][]node),
		incoming: make(map[model.Kind]map[model.Ref][]model.Ref),
	}
	for _, k := range model.Kinds() {
		es := doc.Entities(k)
		nodes := make([]node, len(es))
		in := make(map[model.Ref][]model.Ref)
		for i, e := range es {
			nodes[i] = node{ref: e.Ref(), targets: linkTargets(e)}
			for to := range nodes[i].targets {
				in[to] = append(in[to], nodes[i].ref)
			}
		}
		idx.byKind[k] = nodes
		idx.incoming[k] = in
	}
	return idx
}

// derive computes the set of n from sets of earlier stages. Contributing
// entities are visited in document declaration order.
func (g *Graph) derive(idx *index, n node, r rule) SegmentSet {
	set := SegmentSet{}
	if r.seed {
		set = append(set, model.SegmentID(n.ref.ID))
	}

	for _, k := range r.forward {
		for _, c := range idx.byKind[k] {
			if n.targets[c.ref] {
				set = set.union(g.sets[c.ref])
			}
		}
	}
	for _, k := range r.reverse {
		for _, from := range idx.incoming[k][n.ref] {
			set = set.union(g.sets[from])
		}
	}
	return set
}

func linkTargets(e model.Entity) map[model.Ref]bool {
	ls := e.Links()
	out := make(map[model.Ref]bool, len(ls))
	for _, l := range ls {
		out[l.To] = true
	}
	return out
}
