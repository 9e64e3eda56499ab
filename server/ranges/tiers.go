package ranges

// Tier buckets a starting hand by preflop strength.
type Tier int

const (
	TierOther Tier = iota
	TierSpeculative
	TierPlayable
	TierStrong
	TierPremium
)

func (t Tier) String() string {
	switch t {
	case TierPremium:
		return "premium"
	case TierStrong:
		return "strong"
	case TierPlayable:
		return "playable"
	case TierSpeculative:
		return "speculative"
	default:
		return "other"
	}
}

// Default play frequency when a tier seeds a matrix.
func (t Tier) Frequency() float64 {
	switch t {
	case TierPremium:
		return 1.0
	case TierStrong:
		return 0.9
	case TierPlayable:
		return 0.7
	case TierSpeculative:
		return 0.4
	default:
		return 0
	}
}

var premiumHands = []string{"AA", "KK", "QQ", "AKs", "AKo"}

var strongHands = []string{"JJ", "TT", "AQs", "AQo", "AJs", "KQs"}

var playableHands = []string{
	"99", "88", "ATs", "AJo", "KQo", "KJs", "QJs", "JTs", "KTs", "QTs",
}

var speculativeHands = []string{
	"77", "66", "55", "44", "33", "22",
	"A9s", "A8s", "A7s", "A6s", "A5s", "A4s", "A3s", "A2s",
	"T9s", "98s", "87s", "76s", "65s", "54s",
	"J9s", "T8s", "97s", "86s", "75s", "K9s", "Q9s",
	"ATo", "KJo", "QJo", "JTo",
}

// Lookup sets, keyed by canonical label.
var tierSets = func() map[Tier]map[string]bool {
	out := map[Tier]map[string]bool{}
	for tier, list := range map[Tier][]string{
		TierPremium:     premiumHands,
		TierStrong:      strongHands,
		TierPlayable:    playableHands,
		TierSpeculative: speculativeHands,
	} {
		set := make(map[string]bool, len(list))
		for _, h := range list {
			set[h] = true
		}
		out[tier] = set
	}
	return out
}()

// Category classifies a canonical hand label, checking tiers strongest
// first so a label listed twice resolves to the higher tier.
func Category(label string) Tier {
	for _, t := range []Tier{TierPremium, TierStrong, TierPlayable, TierSpeculative} {
		if tierSets[t][label] {
			return t
		}
	}
	return TierOther
}

// SeedTiers builds a matrix pre-populated with each tier's default frequency.
func SeedTiers() *Matrix {
	m := NewMatrix()
	for _, label := range Labels() {
		if t := Category(label); t != TierOther {
			// labels from Labels() always resolve
			_ = m.Set(label, t.Frequency())
		}
	}
	return m
}
