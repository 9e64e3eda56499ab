package main

import (
	"testing"

	"rangelab/server/ranges"
	"rangelab/server/scenario"
)

func result(tier ranges.Tier, correct bool) scenario.Result {
	return scenario.Result{
		Tier:      tier,
		TierName:  tier.String(),
		IsCorrect: correct,
	}
}

func TestSessionStatsRecord(t *testing.T) {
	s := NewSessionStats()
	s.Record(result(ranges.TierPremium, true))
	s.Record(result(ranges.TierPremium, true))
	s.Record(result(ranges.TierOther, false))
	s.Record(result(ranges.TierOther, true))

	if s.Total != 4 || s.Correct != 3 {
		t.Errorf("total/correct = %d/%d, want 4/3", s.Total, s.Correct)
	}
	if s.Accuracy() != 0.75 {
		t.Errorf("accuracy = %v, want 0.75", s.Accuracy())
	}
	if s.BestStreak != 2 {
		t.Errorf("best streak = %d, want 2", s.BestStreak)
	}
	if s.Streak != 1 {
		t.Errorf("current streak = %d, want 1", s.Streak)
	}
	if tc := s.ByTier["premium"]; tc == nil || tc.Total != 2 || tc.Correct != 2 {
		t.Errorf("premium tally = %+v", tc)
	}
	if tc := s.ByTier["other"]; tc == nil || tc.Total != 2 || tc.Correct != 1 {
		t.Errorf("other tally = %+v", tc)
	}
}

func TestSessionStatsEmpty(t *testing.T) {
	s := NewSessionStats()
	if s.Accuracy() != 0 {
		t.Errorf("empty accuracy = %v", s.Accuracy())
	}
	if len(s.Tiers()) != 0 {
		t.Errorf("empty tiers = %v", s.Tiers())
	}
}

func TestWilsonCI95(t *testing.T) {
	lo, hi := WilsonCI95(0, 0, 0)
	if lo != 0 || hi != 1 {
		t.Errorf("degenerate CI = [%v, %v], want [0, 1]", lo, hi)
	}
	lo, hi = WilsonCI95(80, 0, 100)
	if !(lo > 0.70 && lo < 0.80 && hi > 0.80 && hi < 0.90) {
		t.Errorf("CI for 80/100 = [%v, %v]", lo, hi)
	}
	if lo < 0 || hi > 1 {
		t.Errorf("CI escaped [0,1]: [%v, %v]", lo, hi)
	}
}
