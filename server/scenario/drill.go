package scenario

import (
	"fmt"
	"math/rand"

	"rangelab/server/poker"
	"rangelab/server/ranges"
)

// Position at a 6-max table.
type Position string

const (
	UnderTheGun Position = "UTG"
	MiddlePos   Position = "MP"
	Cutoff      Position = "CO"
	Button      Position = "BTN"
	SmallBlind  Position = "SB"
	BigBlind    Position = "BB"
)

var positions = []Position{UnderTheGun, MiddlePos, Cutoff, Button, SmallBlind, BigBlind}

// Choice is the trainee's answer to a drill question.
type Choice string

const (
	ChoiceFold  Choice = "fold"
	ChoiceCall  Choice = "call"
	ChoiceRaise Choice = "raise"
)

// Scripted correct action per tier and position. Late position opens wider.
var correctAction = map[ranges.Tier]map[Position]Choice{
	ranges.TierPremium: {
		UnderTheGun: ChoiceRaise, MiddlePos: ChoiceRaise, Cutoff: ChoiceRaise,
		Button: ChoiceRaise, SmallBlind: ChoiceRaise, BigBlind: ChoiceRaise,
	},
	ranges.TierStrong: {
		UnderTheGun: ChoiceRaise, MiddlePos: ChoiceRaise, Cutoff: ChoiceRaise,
		Button: ChoiceRaise, SmallBlind: ChoiceRaise, BigBlind: ChoiceRaise,
	},
	ranges.TierPlayable: {
		UnderTheGun: ChoiceFold, MiddlePos: ChoiceCall, Cutoff: ChoiceRaise,
		Button: ChoiceRaise, SmallBlind: ChoiceRaise, BigBlind: ChoiceCall,
	},
	ranges.TierSpeculative: {
		UnderTheGun: ChoiceFold, MiddlePos: ChoiceFold, Cutoff: ChoiceCall,
		Button: ChoiceRaise, SmallBlind: ChoiceCall, BigBlind: ChoiceCall,
	},
	ranges.TierOther: {
		UnderTheGun: ChoiceFold, MiddlePos: ChoiceFold, Cutoff: ChoiceFold,
		Button: ChoiceFold, SmallBlind: ChoiceFold, BigBlind: ChoiceFold,
	},
}

// CorrectAction is the scripted answer for a hand label in a position.
func CorrectAction(label string, pos Position) Choice {
	return correctAction[ranges.Category(label)][pos]
}

// Question is one practice situation: a dealt hand in a random position.
type Question struct {
	Hole     poker.HoleHand `json:"-"`
	Cards    [2]string      `json:"cards"`
	Label    string         `json:"label"`
	Position Position       `json:"position"`
}

// Result grades an answered question.
type Result struct {
	Question
	Tier        ranges.Tier `json:"-"`
	TierName    string      `json:"tier"`
	Chosen      Choice      `json:"chosen"`
	Correct     Choice      `json:"correct"`
	IsCorrect   bool        `json:"is_correct"`
	Explanation string      `json:"explanation"`
}

// Generator deals drill questions from its own RNG.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = rand.Int63()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Next deals two fresh cards and a random position.
func (g *Generator) Next() Question {
	deck := poker.NewDeck(g.rng.Int63())
	hole := poker.HoleHand{deck[0], deck[1]}
	return Question{
		Hole:     hole,
		Cards:    [2]string{deck[0].String(), deck[1].String()},
		Label:    hole.Label(),
		Position: positions[g.rng.Intn(len(positions))],
	}
}

// Grade checks an answer against the scripted action for the hand's tier.
func Grade(q Question, chosen Choice) Result {
	tier := ranges.Category(q.Label)
	correct := correctAction[tier][q.Position]
	return Result{
		Question:  q,
		Tier:      tier,
		TierName:  tier.String(),
		Chosen:    chosen,
		Correct:   correct,
		IsCorrect: chosen == correct,
		Explanation: fmt.Sprintf("%s is a %s hand; from %s the standard play is %s",
			q.Label, tier, q.Position, correct),
	}
}

// ParseChoice validates a trainee answer.
func ParseChoice(s string) (Choice, error) {
	switch Choice(s) {
	case ChoiceFold, ChoiceCall, ChoiceRaise:
		return Choice(s), nil
	}
	return "", fmt.Errorf("unknown choice %q (want fold, call or raise)", s)
}

// ParsePosition validates a table position.
func ParsePosition(s string) (Position, error) {
	for _, p := range positions {
		if Position(s) == p {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown position %q", s)
}
