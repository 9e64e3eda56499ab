package scenario

import (
	"errors"
	"fmt"
	"math"

	"rangelab/server/poker"
)

// Action is the observed preflop action a range estimate is conditioned on.
type Action string

const (
	ActionLimp     Action = "limp"
	ActionMinRaise Action = "minraise"
	ActionRaise    Action = "raise"
	ActionBigRaise Action = "bigraise"
	Action3Bet     Action = "3bet"
	Action4Bet     Action = "4bet"
)

var ErrUnknownAction = errors.New("unknown action type")

// Limpers show up with more hands, re-raisers with far fewer.
var actionMultiplier = map[Action]float64{
	ActionLimp:     1.5,
	ActionMinRaise: 1.2,
	ActionRaise:    1.0,
	ActionBigRaise: 0.7,
	Action3Bet:     0.4,
	Action4Bet:     0.15,
}

// AdjustRange narrows or widens a base range percentage for the observed
// action and light board-texture signals, then clamps to [1,100] and rounds.
// Pure: identical inputs always give the identical output.
func AdjustRange(basePercent int, action Action, board []poker.Card) (int, error) {
	mult, ok := actionMultiplier[action]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	adjusted := float64(basePercent) * mult * boardAdjustment(board)
	out := int(math.Round(adjusted))
	if out < 1 {
		out = 1
	}
	if out > 100 {
		out = 100
	}
	return out, nil
}

// boardAdjustment discounts for boards that hit wide ranges: a monotone
// board and any two board ranks within two of each other.
func boardAdjustment(board []poker.Card) float64 {
	adj := 1.0
	if len(board) >= 3 {
		mono := true
		for _, c := range board[1:] {
			if c.Suit != board[0].Suit {
				mono = false
				break
			}
		}
		if mono {
			adj *= 0.9
		}
	}
	for i := 0; i < len(board); i++ {
		for j := i + 1; j < len(board); j++ {
			d := board[i].Rank - board[j].Rank
			if d < 0 {
				d = -d
			}
			if d >= 1 && d <= 2 {
				adj *= 0.95
				return adj
			}
		}
	}
	return adj
}
