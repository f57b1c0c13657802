package model

import "slices"

// Field names a relation bundle on an entity.
type Field string

const (
	// FieldFor holds the entities an entity targets.
	FieldFor Field = "for"
	// FieldFrom holds the entities an entity is sourced from.
	FieldFrom Field = "from"
)

// Relation is one traversable (field, target kind) pair.
type Relation struct {
	Field  Field
	Target Kind
}

// relations must have an entry for every kind, even when empty.
var relations = map[Kind][]Relation{
	KindSegment:      nil,
	KindProposition:  nil,
	KindFit:          {{FieldFor, KindProposition}, {FieldFor, KindSegment}},
	KindChannel:      {{FieldFor, KindProposition}, {FieldFor, KindSegment}},
	KindRelationship: {{FieldFor, KindSegment}},
	KindRevenue:      {{FieldFrom, KindSegment}, {FieldFor, KindProposition}},
	KindResource:     {{FieldFor, KindProposition}},
	KindActivity:     {{FieldFor, KindProposition}},
	KindPartnership:  {{FieldFor, KindResource}, {FieldFor, KindActivity}},
	KindCost:         {{FieldFor, KindResource}, {FieldFor, KindActivity}},
}

// Relations returns the relation fields traversed for entities of kind k.
func Relations(k Kind) []Relation {
	return slices.Clone(relations[k])
}

// Bundle is a set of typed references stored under one relation field.
type Bundle struct {
	Segments     []SegmentID     `yaml:"customer_segments,omitempty" json:"customer_segments,omitempty" validate:"dive,required"`
	Propositions []PropositionID `yaml:"value_propositions,omitempty" json:"value_propositions,omitempty" validate:"dive,required"`
	Resources    []ResourceID    `yaml:"key_resources,omitempty" json:"key_resources,omitempty" validate:"dive,required"`
	Activities   []ActivityID    `yaml:"key_activities,omitempty" json:"key_activities,omitempty" validate:"dive,required"`
}

// Refs returns the bundle's references of kind k in declaration order.
// Kinds a bundle cannot hold yield nil.
func (b Bundle) Refs(k Kind) []Ref {
	switch k {
	case KindSegment:
		return refs(b.Segments)
	case KindProposition:
		return refs(b.Propositions)
	case KindResource:
		return refs(b.Resources)
	case KindActivity:
		return refs(b.Activities)
	}
	return nil
}

func refs[S ~[]E, E Identifier](ids S) []Ref {
	if len(ids) == 0 {
		return nil
	}
	out := make([]Ref, len(ids))
	for i, id := range ids {
		out[i] = id.Ref()
	}
	return out
}

// Link is a single outgoing reference from an entity.
type Link struct {
	Relation Relation
	To       Ref
}

// links flattens the bundles of an entity of kind k following the
// relation table order.
func links(k Kind, bundles map[Field]Bundle) []Link {
	var out []Link
	for _, rel := range relations[k] {
		for _, to := range bundles[rel.Field].Refs(rel.Target) {
			out = append(out, Link{Relation: rel, To: to})
		}
	}
	return out
}
