package scenario

import (
	"errors"
	"testing"

	"rangelab/server/poker"
)

func board(t *testing.T, tokens ...string) []poker.Card {
	t.Helper()
	out := make([]poker.Card, 0, len(tokens))
	for _, tok := range tokens {
		c, err := poker.ParseCard(tok)
		if err != nil {
			t.Fatal(err)
		}
		out = append(out, c)
	}
	return out
}

func TestAdjustRange(t *testing.T) {
	tests := []struct {
		name   string
		base   int
		action Action
		board  []string
		want   int
	}{
		{name: "3bet narrows", base: 25, action: Action3Bet, want: 10},
		{name: "limp widens but clamps", base: 100, action: ActionLimp, want: 100},
		{name: "min raise", base: 20, action: ActionMinRaise, want: 24},
		{name: "big raise", base: 20, action: ActionBigRaise, want: 14},
		{name: "4bet floors at 1", base: 1, action: Action4Bet, want: 1},
		{name: "standard raise neutral", base: 30, action: ActionRaise, want: 30},
		{name: "monotone discount", base: 50, action: ActionRaise, board: []string{"Ah", "9h", "4h"}, want: 45},
		{name: "connected discount", base: 40, action: ActionRaise, board: []string{"9h", "8d", "2c"}, want: 38},
		{name: "monotone and connected", base: 50, action: ActionRaise, board: []string{"Ah", "Kh", "Qh"}, want: 43},
		{name: "dry board untouched", base: 40, action: ActionRaise, board: []string{"Ah", "9d", "2c"}, want: 40},
		{name: "paired board not connected", base: 40, action: ActionRaise, board: []string{"9h", "9d", "2c"}, want: 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AdjustRange(tt.base, tt.action, board(t, tt.board...))
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("AdjustRange(%d, %s, %v) = %d, want %d", tt.base, tt.action, tt.board, got, tt.want)
			}
		})
	}
}

func TestAdjustRangeDeterministic(t *testing.T) {
	b := board(t, "Ah", "Kh", "Qh")
	first, err := AdjustRange(50, Action3Bet, b)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := AdjustRange(50, Action3Bet, b)
		if err != nil {
			t.Fatal(err)
		}
		if again != first {
			t.Fatalf("AdjustRange is not deterministic: %d vs %d", first, again)
		}
	}
}

func TestAdjustRangeUnknownAction(t *testing.T) {
	if _, err := AdjustRange(25, Action("shove"), nil); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("got %v, want ErrUnknownAction", err)
	}
}
