package connect

import (
	"slices"

	"github.com/matzehuels/bmcanvas/pkg/model"
)

// SegmentSet is an insertion-ordered set of customer segments.
type SegmentSet []model.SegmentID

// Contains reports whether id is in the set.
func (s SegmentSet) Contains(id model.SegmentID) bool { return slices.Contains(s, id) }

// Index returns the position of id in the set, or -1.
func (s SegmentSet) Index(id model.SegmentID) int { return slices.Index(s, id) }

// Empty reports whether the set has no segments (the entity is orphaned).
func (s SegmentSet) Empty() bool { return len(s) == 0 }

// union appends the members of other not already present.
func (s SegmentSet) union(other SegmentSet) SegmentSet {
	for _, id := range other {
		if !s.Contains(id) {
			s = append(s, id)
		}
	}
	return s
}
