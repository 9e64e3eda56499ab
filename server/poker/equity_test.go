package poker

import (
	"errors"
	"math/rand"
	"testing"
)

func mustHand(t *testing.T, s string) HoleHand {
	t.Helper()
	h, err := ParseHoleHand(s)
	if err != nil {
		t.Fatal(err)
	}
	return h
}

func mustBoard(t *testing.T, tokens ...string) []Card {
	t.Helper()
	out := make([]Card, 0, len(tokens))
	for _, tok := range tokens {
		c, err := ParseCard(tok)
		if err != nil {
			t.Fatal(err)
		}
		out = append(out, c)
	}
	return out
}

func TestExactEquityNuts(t *testing.T) {
	// Hero holds a royal flush; no villain combo beats or ties it.
	hole := mustHand(t, "AsKs")
	board := mustBoard(t, "Qs", "Js", "Ts", "2h", "3d")
	eq, err := ExactEquity(hole, board)
	if err != nil {
		t.Fatal(err)
	}
	if eq != 1.0 {
		t.Errorf("royal flush equity = %v, want 1.0", eq)
	}
}

func TestExactEquityBoardPlays(t *testing.T) {
	// Royal flush on the board: every matchup chops.
	hole := mustHand(t, "2c7d")
	board := mustBoard(t, "As", "Ks", "Qs", "Js", "Ts")
	eq, err := ExactEquity(hole, board)
	if err != nil {
		t.Fatal(err)
	}
	if eq != 0.5 {
		t.Errorf("board-plays equity = %v, want 0.5", eq)
	}
}

func TestExactEquityNeedsFullBoard(t *testing.T) {
	hole := mustHand(t, "AsKs")
	if _, err := ExactEquity(hole, mustBoard(t, "Qs", "Js", "Ts")); err == nil {
		t.Fatal("expected error for 3-card board")
	}
}

func TestExactEquityRejectsBoardOverlap(t *testing.T) {
	// Hero's ace is also on the board: not a real deal, must error.
	hole := mustHand(t, "AsKs")
	board := mustBoard(t, "As", "2d", "3d", "4c", "5c")
	if _, err := ExactEquity(hole, board); err == nil {
		t.Fatal("expected error for hole card repeated on board")
	}
}

func TestEquityVsRangeRejectsBoardOverlap(t *testing.T) {
	hole := mustHand(t, "AsKs")
	board := mustBoard(t, "As", "2d", "3d")
	rng := rand.New(rand.NewSource(1))
	_, err := EquityVsRange(hole, board, func(string) float64 { return 1 }, 100, rng)
	if err == nil {
		t.Fatal("expected error for hole card repeated on board")
	}
}

func TestEquityVsRangeDominates(t *testing.T) {
	// AA vs a 72o-only range preflop runs near 88%.
	hole := mustHand(t, "AhAs")
	weight := func(label string) float64 {
		if label == "72o" {
			return 1
		}
		return 0
	}
	rng := rand.New(rand.NewSource(7))
	eq, err := EquityVsRange(hole, nil, weight, 4000, rng)
	if err != nil {
		t.Fatal(err)
	}
	if eq < 0.80 || eq > 0.95 {
		t.Errorf("AA vs 72o equity = %v, want roughly 0.88", eq)
	}
}

func TestEquityVsRangeEmpty(t *testing.T) {
	hole := mustHand(t, "AhAs")
	rng := rand.New(rand.NewSource(1))
	_, err := EquityVsRange(hole, nil, func(string) float64 { return 0 }, 100, rng)
	if !errors.Is(err, ErrEmptyRange) {
		t.Errorf("got %v, want ErrEmptyRange", err)
	}
}
