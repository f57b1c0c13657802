package model

import (
	"fmt"
	"strings"
)

// Kind identifies the section of a business model an entity belongs to.
// Kinds are declared in canonical section order.
type Kind int

const (
	KindSegment Kind = iota
	KindProposition
	KindFit
	KindChannel
	KindRelationship
	KindRevenue
	KindResource
	KindActivity
	KindPartnership
	KindCost
)

type kindInfo struct {
	name    string
	prefix  string
	section string
}

var kindTable = [...]kindInfo{
	KindSegment:      {"customer segment", "cs-", "customer_segments"},
	KindProposition:  {"value proposition", "vp-", "value_propositions"},
	KindFit:          {"fit", "fit-", "fits"},
	KindChannel:      {"channel", "ch-", "channels"},
	KindRelationship: {"customer relationship", "cr-", "customer_relationships"},
	KindRevenue:      {"revenue stream", "rs-", "revenue_streams"},
	KindResource:     {"key resource", "kr-", "key_resources"},
	KindActivity:     {"key activity", "ka-", "key_activities"},
	KindPartnership:  {"key partnership", "kp-", "key_partnerships"},
	KindCost:         {"cost", "cost-", "costs"},
}

// Kinds returns every kind in canonical section order.
func Kinds() []Kind {
	ks := make([]Kind, len(kindTable))
	for i := range kindTable {
		ks[i] = Kind(i)
	}
	return ks
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return k >= 0 && int(k) < len(kindTable) }

// String returns the human-readable kind name (e.g. "customer segment").
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindTable[k].name
}

// Prefix returns the identifier prefix for the kind (e.g. "cs-").
func (k Kind) Prefix() string {
	if !k.Valid() {
		return ""
	}
	return kindTable[k].prefix
}

// Section returns the document key holding entities of this kind.
func (k Kind) Section() string {
	if !k.Valid() {
		return ""
	}
	return kindTable[k].section
}

// KindOf infers the kind of an identifier from its prefix.
// When several prefixes match, the longest one wins.
func KindOf(id string) (Kind, bool) {
	best, bestLen := Kind(-1), 0
	for i, info := range kindTable {
		if strings.HasPrefix(id, info.prefix) && len(info.prefix) > bestLen {
			best, bestLen = Kind(i), len(info.prefix)
		}
	}
	return best, bestLen > 0
}
