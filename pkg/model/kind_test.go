package model

import "testing"

func TestKindOf(t *testing.T) {
	tests := []struct {
		id     string
		want   Kind
		wantOK bool
	}{
		{"cs-students", KindSegment, true},
		{"vp-cheap-rides", KindProposition, true},
		{"fit-1", KindFit, true},
		{"ch-app", KindChannel, true},
		{"cr-support", KindRelationship, true},
		{"rs-fees", KindRevenue, true},
		{"kr-fleet", KindResource, true},
		{"ka-dispatch", KindActivity, true},
		{"kp-insurer", KindPartnership, true},
		{"cost-fuel", KindCost, true},
		{"unknown", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, ok := KindOf(tt.id)
			if ok != tt.wantOK {
				t.Fatalf("KindOf(%q) ok = %v, want %v", tt.id, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("KindOf(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestKindTableComplete(t *testing.T) {
	seenPrefix := map[string]Kind{}
	seenSection := map[string]Kind{}
	for _, k := range Kinds() {
		if k.Prefix() == "" || k.Section() == "" {
			t.Errorf("kind %d has empty prefix or section", int(k))
		}
		if other, dup := seenPrefix[k.Prefix()]; dup {
			t.Errorf("prefix %q shared by %v and %v", k.Prefix(), other, k)
		}
		if other, dup := seenSection[k.Section()]; dup {
			t.Errorf("section %q shared by %v and %v", k.Section(), other, k)
		}
		seenPrefix[k.Prefix()] = k
		seenSection[k.Section()] = k
	}
}

func TestKindStringInvalid(t *testing.T) {
	if got := Kind(99).String(); got != "Kind(99)" {
		t.Errorf("String() = %q, want %q", got, "Kind(99)")
	}
	if Kind(-1).Valid() {
		t.Error("Kind(-1).Valid() = true, want false")
	}
}

func TestRelationsExhaustive(t *testing.T) {
	for _, k := range Kinds() {
		if _, ok := relations[k]; !ok {
			t.Errorf("relations table has no entry for %v", k)
		}
	}
	if len(relations) != len(Kinds()) {
		t.Errorf("relations has %d entries, want %d", len(relations), len(Kinds()))
	}
}
