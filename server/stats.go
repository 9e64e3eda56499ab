package main

import (
	"math"
	"sort"

	"rangelab/server/scenario"
)

// TierCount tallies drill answers for one hand tier.
type TierCount struct {
	Total   int
	Correct int
}

// SessionStats accumulates one drill session's results.
type SessionStats struct {
	Total      int
	Correct    int
	Streak     int
	BestStreak int
	ByTier     map[string]*TierCount
}

func NewSessionStats() *SessionStats {
	return &SessionStats{ByTier: map[string]*TierCount{}}
}

func (s *SessionStats) Record(res scenario.Result) {
	s.Total++
	tc := s.ByTier[res.TierName]
	if tc == nil {
		tc = &TierCount{}
		s.ByTier[res.TierName] = tc
	}
	tc.Total++
	if res.IsCorrect {
		s.Correct++
		tc.Correct++
		s.Streak++
		if s.Streak > s.BestStreak {
			s.BestStreak = s.Streak
		}
	} else {
		s.Streak = 0
	}
}

func (s *SessionStats) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total)
}

// Tiers returns the tallied tier names in a stable order.
func (s *SessionStats) Tiers() []string {
	out := make([]string, 0, len(s.ByTier))
	for name := range s.ByTier {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// WilsonCI95 for a Bernoulli rate using wins/ties/total.
func WilsonCI95(wins, ties, total int) (low, hi float64) {
	if total <= 0 {
		return 0, 1
	}
	z := 1.96
	n := float64(total)
	p := (float64(wins) + 0.5*float64(ties)) / n
	den := 1 + (z*z)/n
	center := p + (z*z)/(2*n)
	half := z * math.Sqrt((p*(1-p))/n+(z*z)/(4*n*n))
	return (center - half) / den, (center + half) / den
}
