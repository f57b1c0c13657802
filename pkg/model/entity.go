package model

import "strings"

// Entity is implemented by every entity type of a [Document].
type Entity interface {
	// Ref returns the entity's kind-tagged identifier.
	Ref() Ref
	// Label returns the display name, falling back to the identifier.
	Label() string
	// Links returns the entity's outgoing references in declaration order.
	Links() []Link
}

func label(name, id string) string {
	if s := strings.TrimSpace(name); s != "" {
		return s
	}
	return id
}

// Segment is a customer segment.
type Segment struct {
	ID          SegmentID `yaml:"id" json:"id" validate:"required,idprefix"`
	Name        string    `yaml:"name,omitempty" json:"name,omitempty"`
	Description string    `yaml:"description,omitempty" json:"description,omitempty"`
}

func (e Segment) Ref() Ref      { return e.ID.Ref() }
func (e Segment) Label() string { return label(e.Name, string(e.ID)) }
func (e Segment) Links() []Link { return nil }

// Proposition is a value proposition.
type Proposition struct {
	ID          PropositionID `yaml:"id" json:"id" validate:"required,idprefix"`
	Name        string        `yaml:"name,omitempty" json:"name,omitempty"`
	Description string        `yaml:"description,omitempty" json:"description,omitempty"`
}

func (e Proposition) Ref() Ref      { return e.ID.Ref() }
func (e Proposition) Label() string { return label(e.Name, string(e.ID)) }
func (e Proposition) Links() []Link { return nil }

// Fit joins value propositions to the customer segments they serve.
type Fit struct {
	ID          FitID  `yaml:"id" json:"id" validate:"required,idprefix"`
	Name        string `yaml:"name,omitempty" json:"name,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	For         Bundle `yaml:"for,omitempty" json:"for,omitempty"`
}

func (e Fit) Ref() Ref      { return e.ID.Ref() }
func (e Fit) Label() string { return label(e.Name, string(e.ID)) }
func (e Fit) Links() []Link { return links(KindFit, map[Field]Bundle{FieldFor: e.For}) }

// Channel reaches customer segments with value propositions.
type Channel struct {
	ID          ChannelID `yaml:"id" json:"id" validate:"required,idprefix"`
	Name        string    `yaml:"name,omitempty" json:"name,omitempty"`
	Description string    `yaml:"description,omitempty" json:"description,omitempty"`
	For         Bundle    `yaml:"for,omitempty" json:"for,omitempty"`
}

func (e Channel) Ref() Ref      { return e.ID.Ref() }
func (e Channel) Label() string { return label(e.Name, string(e.ID)) }
func (e Channel) Links() []Link { return links(KindChannel, map[Field]Bundle{FieldFor: e.For}) }

// Relationship is a customer relationship.
type Relationship struct {
	ID          RelationshipID `yaml:"id" json:"id" validate:"required,idprefix"`
	Name        string         `yaml:"name,omitempty" json:"name,omitempty"`
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
	For         Bundle         `yaml:"for,omitempty" json:"for,omitempty"`
}

func (e Relationship) Ref() Ref      { return e.ID.Ref() }
func (e Relationship) Label() string { return label(e.Name, string(e.ID)) }
func (e Relationship) Links() []Link {
	return links(KindRelationship, map[Field]Bundle{FieldFor: e.For})
}

// Revenue is a revenue stream paid by segments for value propositions.
type Revenue struct {
	ID          RevenueID `yaml:"id" json:"id" validate:"required,idprefix"`
	Name        string    `yaml:"name,omitempty" json:"name,omitempty"`
	Description string    `yaml:"description,omitempty" json:"description,omitempty"`
	From        Bundle    `yaml:"from,omitempty" json:"from,omitempty"`
	For         Bundle    `yaml:"for,omitempty" json:"for,omitempty"`
}

func (e Revenue) Ref() Ref      { return e.ID.Ref() }
func (e Revenue) Label() string { return label(e.Name, string(e.ID)) }
func (e Revenue) Links() []Link {
	return links(KindRevenue, map[Field]Bundle{FieldFrom: e.From, FieldFor: e.For})
}

// Resource is a key resource.
type Resource struct {
	ID          ResourceID `yaml:"id" json:"id" validate:"required,idprefix"`
	Name        string     `yaml:"name,omitempty" json:"name,omitempty"`
	Description string     `yaml:"description,omitempty" json:"description,omitempty"`
	For         Bundle     `yaml:"for,omitempty" json:"for,omitempty"`
}

func (e Resource) Ref() Ref      { return e.ID.Ref() }
func (e Resource) Label() string { return label(e.Name, string(e.ID)) }
func (e Resource) Links() []Link { return links(KindResource, map[Field]Bundle{FieldFor: e.For}) }

// Activity is a key activity.
type Activity struct {
	ID          ActivityID `yaml:"id" json:"id" validate:"required,idprefix"`
	Name        string     `yaml:"name,omitempty" json:"name,omitempty"`
	Description string     `yaml:"description,omitempty" json:"description,omitempty"`
	For         Bundle     `yaml:"for,omitempty" json:"for,omitempty"`
}

func (e Activity) Ref() Ref      { return e.ID.Ref() }
func (e Activity) Label() string { return label(e.Name, string(e.ID)) }
func (e Activity) Links() []Link { return links(KindActivity, map[Field]Bundle{FieldFor: e.For}) }

// Partnership is a key partnership supporting resources and activities.
type Partnership struct {
	ID          PartnershipID `yaml:"id" json:"id" validate:"required,idprefix"`
	Name        string        `yaml:"name,omitempty" json:"name,omitempty"`
	Description string        `yaml:"description,omitempty" json:"description,omitempty"`
	For         Bundle        `yaml:"for,omitempty" json:"for,omitempty"`
}

func (e Partnership) Ref() Ref      { return e.ID.Ref() }
func (e Partnership) Label() string { return label(e.Name, string(e.ID)) }
func (e Partnership) Links() []Link {
	return links(KindPartnership, map[Field]Bundle{FieldFor: e.For})
}

// Cost is an entry of the cost structure.
type Cost struct {
	ID          CostID `yaml:"id" json:"id" validate:"required,idprefix"`
	Name        string `yaml:"name,omitempty" json:"name,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	For         Bundle `yaml:"for,omitempty" json:"for,omitempty"`
}

func (e Cost) Ref() Ref      { return e.ID.Ref() }
func (e Cost) Label() string { return label(e.Name, string(e.ID)) }
func (e Cost) Links() []Link { return links(KindCost, map[Field]Bundle{FieldFor: e.For}) }
