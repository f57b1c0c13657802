package model

// Ref is a kind-tagged entity identifier. Two refs are equal only when both
// the kind and the identifier match.
type Ref struct {
	Kind Kind
	ID   string
}

// String returns the raw identifier.
func (r Ref) String() string { return r.ID }

// Identifier is implemented by every typed identifier.
type Identifier interface {
	Ref() Ref
}

type (
	SegmentID      string
	PropositionID  string
	FitID          string
	ChannelID      string
	RelationshipID string
	RevenueID      string
	ResourceID     string
	ActivityID     string
	PartnershipID  string
	CostID         string
)

func (id SegmentID) Ref() Ref      { return Ref{KindSegment, string(id)} }
func (id PropositionID) Ref() Ref  { return Ref{KindProposition, string(id)} }
func (id FitID) Ref() Ref          { return Ref{KindFit, string(id)} }
func (id ChannelID) Ref() Ref      { return Ref{KindChannel, string(id)} }
func (id RelationshipID) Ref() Ref { return Ref{KindRelationship, string(id)} }
func (id RevenueID) Ref() Ref      { return Ref{KindRevenue, string(id)} }
func (id ResourceID) Ref() Ref     { return Ref{KindResource, string(id)} }
func (id ActivityID) Ref() Ref     { return Ref{KindActivity, string(id)} }
func (id PartnershipID) Ref() Ref  { return Ref{KindPartnership, string(id)} }
func (id CostID) Ref() Ref         { return Ref{KindCost, string(id)} }
