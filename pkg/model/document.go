package model

// DefaultTitle is used when a document carries no name.
const DefaultTitle = "Business Model Canvas"

// Meta holds descriptive document fields shown in the canvas header.
type Meta struct {
	Name        string `yaml:"name,omitempty" json:"name,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Portfolio   string `yaml:"portfolio,omitempty" json:"portfolio,omitempty"`
	Stage       string `yaml:"stage,omitempty" json:"stage,omitempty"`
}

// Document is a business model: one ordered entity list per [Kind].
// Any list may be nil.
type Document struct {
	Version       string         `yaml:"version,omitempty" json:"version,omitempty"`
	Meta          Meta           `yaml:"meta,omitempty" json:"meta,omitempty"`
	Segments      []Segment      `yaml:"customer_segments,omitempty" json:"customer_segments,omitempty" validate:"dive"`
	Propositions  []Proposition  `yaml:"value_propositions,omitempty" json:"value_propositions,omitempty" validate:"dive"`
	Fits          []Fit          `yaml:"fits,omitempty" json:"fits,omitempty" validate:"dive"`
	Channels      []Channel      `yaml:"channels,omitempty" json:"channels,omitempty" validate:"dive"`
	Relationships []Relationship `yaml:"customer_relationships,omitempty" json:"customer_relationships,omitempty" validate:"dive"`
	Revenues      []Revenue      `yaml:"revenue_streams,omitempty" json:"revenue_streams,omitempty" validate:"dive"`
	Resources     []Resource     `yaml:"key_resources,omitempty" json:"key_resources,omitempty" validate:"dive"`
	Activities    []Activity     `yaml:"key_activities,omitempty" json:"key_activities,omitempty" validate:"dive"`
	Partnerships  []Partnership  `yaml:"key_partnerships,omitempty" json:"key_partnerships,omitempty" validate:"dive"`
	Costs         []Cost         `yaml:"costs,omitempty" json:"costs,omitempty" validate:"dive"`
}

// Title returns the document name, or [DefaultTitle] when unnamed.
func (d *Document) Title() string {
	if d == nil {
		return DefaultTitle
	}
	return label(d.Meta.Name, DefaultTitle)
}

// Entities returns the entities of kind k in declaration order.
func (d *Document) Entities(k Kind) []Entity {
	if d == nil {
		return nil
	}
	switch k {
	case KindSegment:
		return entities(d.Segments)
	case KindProposition:
		return entities(d.Propositions)
	case KindFit:
		return entities(d.Fits)
	case KindChannel:
		return entities(d.Channels)
	case KindRelationship:
		return entities(d.Relationships)
	case KindRevenue:
		return entities(d.Revenues)
	case KindResource:
		return entities(d.Resources)
	case KindActivity:
		return entities(d.Activities)
	case KindPartnership:
		return entities(d.Partnerships)
	case KindCost:
		return entities(d.Costs)
	}
	return nil
}

// All returns every entity, section by section in [Kinds] order.
func (d *Document) All() []Entity {
	var out []Entity
	for _, k := range Kinds() {
		out = append(out, d.Entities(k)...)
	}
	return out
}

// Len returns the total number of entities.
func (d *Document) Len() int {
	n := 0
	for _, k := range Kinds() {
		n += len(d.Entities(k))
	}
	return n
}

func entities[S ~[]E, E Entity](xs S) []Entity {
	if len(xs) == 0 {
		return nil
	}
	out := make([]Entity, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}
