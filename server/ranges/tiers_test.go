package ranges

import "testing"

func TestCategory(t *testing.T) {
	tests := []struct {
		label string
		want  Tier
	}{
		{"AA", TierPremium},
		{"KK", TierPremium},
		{"AKs", TierPremium},
		{"AKo", TierPremium},
		{"JJ", TierStrong},
		{"AQo", TierStrong},
		{"99", TierPlayable},
		{"KQo", TierPlayable},
		{"JTs", TierPlayable},
		{"55", TierSpeculative},
		{"A5s", TierSpeculative},
		{"76s", TierSpeculative},
		{"72o", TierOther},
		{"J4o", TierOther},
	}
	for _, tt := range tests {
		if got := Category(tt.label); got != tt.want {
			t.Errorf("Category(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
}

// Every one of the 169 hands maps to exactly one tier and classification
// never changes between calls.
func TestCategoryTotalAndIdempotent(t *testing.T) {
	counts := map[Tier]int{}
	for _, label := range Labels() {
		first := Category(label)
		if Category(label) != first {
			t.Fatalf("Category(%q) is not stable", label)
		}
		counts[first]++
	}
	total := 0
	for _, n := range counts {
		total += n
	}
	if total != 169 {
		t.Fatalf("classified %d hands, want 169", total)
	}
	for _, tier := range []Tier{TierPremium, TierStrong, TierPlayable, TierSpeculative, TierOther} {
		if counts[tier] == 0 {
			t.Errorf("tier %v matched no hands", tier)
		}
	}
}

// The source tier lists are disjoint by convention only; any overlap is a
// data bug.
func TestTierListsDisjoint(t *testing.T) {
	seen := map[string]Tier{}
	for tier, list := range map[Tier][]string{
		TierPremium:     premiumHands,
		TierStrong:      strongHands,
		TierPlayable:    playableHands,
		TierSpeculative: speculativeHands,
	} {
		for _, h := range list {
			if prev, dup := seen[h]; dup {
				t.Errorf("%q appears in both %v and %v", h, prev, tier)
			}
			seen[h] = tier
		}
	}
}

func TestTierListsAreValidLabels(t *testing.T) {
	m := NewMatrix()
	for _, list := range [][]string{premiumHands, strongHands, playableHands, speculativeHands} {
		for _, h := range list {
			if err := m.Set(h, 1); err != nil {
				t.Errorf("tier list entry %q is not a valid label: %v", h, err)
			}
		}
	}
}

func TestSeedTiers(t *testing.T) {
	m := SeedTiers()
	tests := []struct {
		label string
		want  float64
	}{
		{"AA", 1.0},
		{"JJ", 0.9},
		{"99", 0.7},
		{"55", 0.4},
		{"72o", 0},
	}
	for _, tt := range tests {
		if got := m.Get(tt.label); got != tt.want {
			t.Errorf("SeedTiers().Get(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
	s := m.Stats()
	if s.TotalCombos <= 0 || s.RangePercentage >= 100 {
		t.Errorf("implausible seeded stats %+v", s)
	}
}
