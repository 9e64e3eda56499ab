package main

import (
	"math"

	"rangelab/server/ranges"
)

// Skill is an Elo-style trainee rating updated per drill answer against a
// fixed difficulty rating per hand tier.
type Skill struct {
	Rating  float64
	K       float64
	Answers int
}

func NewSkill(start, k float64) Skill { return Skill{Rating: start, K: k} }

// Borderline tiers are the hard ones: premium and trash hands are almost
// free points, playable/speculative hands are where trainees go wrong.
var tierDifficulty = map[ranges.Tier]float64{
	ranges.TierPremium:     1200,
	ranges.TierStrong:      1400,
	ranges.TierPlayable:    1550,
	ranges.TierSpeculative: 1650,
	ranges.TierOther:       1300,
}

func (s *Skill) expect(difficulty float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (difficulty-s.Rating)/400.0))
}

// Update applies one answer and returns the rating delta.
func (s *Skill) Update(tier ranges.Tier, correct bool) float64 {
	e := s.expect(tierDifficulty[tier])
	score := 0.0
	if correct {
		score = 1.0
	}
	d := s.K * decay(s.Answers) * (score - e)
	s.Rating += d
	s.Answers++
	return d
}

func decay(answers int) float64 {
	return 1.0 / (1.0 + 0.01*float64(answers)) // slow anneal over a session
}
