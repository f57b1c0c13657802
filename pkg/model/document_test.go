package model

import (
	"slices"
	"testing"
)

func fullDocument() *Document {
	return &Document{
		Segments:      []Segment{{ID: "cs-1", Name: "Students"}},
		Propositions:  []Proposition{{ID: "vp-1"}},
		Fits:          []Fit{{ID: "fit-1", For: Bundle{Propositions: []PropositionID{"vp-1"}, Segments: []SegmentID{"cs-1"}}}},
		Channels:      []Channel{{ID: "ch-1", For: Bundle{Segments: []SegmentID{"cs-1"}}}},
		Relationships: []Relationship{{ID: "cr-1", For: Bundle{Segments: []SegmentID{"cs-1"}}}},
		Revenues:      []Revenue{{ID: "rs-1", From: Bundle{Segments: []SegmentID{"cs-1"}}, For: Bundle{Propositions: []PropositionID{"vp-1"}}}},
		Resources:     []Resource{{ID: "kr-1", For: Bundle{Propositions: []PropositionID{"vp-1"}}}},
		Activities:    []Activity{{ID: "ka-1", For: Bundle{Propositions: []PropositionID{"vp-1"}}}},
		Partnerships:  []Partnership{{ID: "kp-1", For: Bundle{Resources: []ResourceID{"kr-1"}}}},
		Costs:         []Cost{{ID: "cost-1", For: Bundle{Activities: []ActivityID{"ka-1"}}}},
	}
}

func TestDocumentEntitiesCoverEveryKind(t *testing.T) {
	d := fullDocument()
	for _, k := range Kinds() {
		es := d.Entities(k)
		if len(es) != 1 {
			t.Errorf("Entities(%v) returned %d entities, want 1", k, len(es))
			continue
		}
		if got := es[0].Ref().Kind; got != k {
			t.Errorf("Entities(%v)[0].Ref().Kind = %v", k, got)
		}
		if _, ok := KindOf(es[0].Ref().ID); !ok {
			t.Errorf("Entities(%v)[0] id %q has no known prefix", k, es[0].Ref().ID)
		}
	}
	if d.Len() != len(Kinds()) {
		t.Errorf("Len() = %d, want %d", d.Len(), len(Kinds()))
	}
}

func TestDocumentAllOrder(t *testing.T) {
	d := &Document{
		Segments:     []Segment{{ID: "cs-b"}, {ID: "cs-a"}},
		Propositions: []Proposition{{ID: "vp-1"}},
	}
	var got []string
	for _, e := range d.All() {
		got = append(got, e.Ref().ID)
	}
	want := []string{"cs-b", "cs-a", "vp-1"}
	if !slices.Equal(got, want) {
		t.Errorf("All() = %v, want %v", got, want)
	}
}

func TestNilDocument(t *testing.T) {
	var d *Document
	if d.All() != nil {
		t.Error("nil document should have no entities")
	}
	if d.Title() != DefaultTitle {
		t.Errorf("Title() = %q, want %q", d.Title(), DefaultTitle)
	}
}

func TestLabelFallback(t *testing.T) {
	tests := []struct {
		name   string
		entity Entity
		want   string
	}{
		{"named", Segment{ID: "cs-1", Name: "Students"}, "Students"},
		{"unnamed", Segment{ID: "cs-1"}, "cs-1"},
		{"blank name", Channel{ID: "ch-1", Name: "   "}, "ch-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entity.Label(); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLinksFollowRelationTable(t *testing.T) {
	r := Revenue{
		ID:   "rs-1",
		From: Bundle{Segments: []SegmentID{"cs-1", "cs-2"}, Propositions: []PropositionID{"vp-ignored"}},
		For:  Bundle{Propositions: []PropositionID{"vp-1"}},
	}
	got := r.Links()
	want := []Link{
		{Relation{FieldFrom, KindSegment}, Ref{KindSegment, "cs-1"}},
		{Relation{FieldFrom, KindSegment}, Ref{KindSegment, "cs-2"}},
		{Relation{FieldFor, KindProposition}, Ref{KindProposition, "vp-1"}},
	}
	if !slices.Equal(got, want) {
		t.Errorf("Links() = %v, want %v", got, want)
	}
}

func TestRefsAreKindTagged(t *testing.T) {
	seg := SegmentID("x-1").Ref()
	prop := PropositionID("x-1").Ref()
	if seg == prop {
		t.Error("refs of different kinds with the same id must differ")
	}
}
