package poker

import (
	"errors"
	"fmt"
	"math/rand"

	poker "github.com/paulhankin/poker"
)

var ErrEmptyRange = errors.New("opponent range has no combos left")

// checkDistinct rejects any card appearing twice across hole and board.
// Eval7 requires 7 distinct cards; a duplicate corrupts the evaluation.
func checkDistinct(hole HoleHand, board []Card) error {
	seen := map[Card]bool{hole[0]: true}
	if seen[hole[1]] {
		return fmt.Errorf("card %s used twice", hole[1])
	}
	seen[hole[1]] = true
	for _, c := range board {
		if seen[c] {
			return fmt.Errorf("card %s used twice", c)
		}
		seen[c] = true
	}
	return nil
}

// Convert our Card -> library card.
func toPH(c Card) poker.Card {
	var s poker.Suit
	switch c.Suit {
	case 'c':
		s = poker.Club
	case 'd':
		s = poker.Diamond
	case 'h':
		s = poker.Heart
	default:
		s = poker.Spade
	}
	// Our ranks: 2..14 (Ace=14). Library: 1..13 (Ace=1).
	var r poker.Rank
	if c.Rank == 14 {
		r = poker.Rank(1)
	} else {
		r = poker.Rank(c.Rank)
	}
	card, _ := poker.MakeCard(s, r)
	return card
}

func eval7(hole HoleHand, board []Card) int16 {
	var a7 [7]poker.Card
	a7[0] = toPH(hole[0])
	a7[1] = toPH(hole[1])
	for i, c := range board {
		a7[2+i] = toPH(c)
	}
	return poker.Eval7(&a7)
}

func remaining(used ...[]Card) []Card {
	taken := map[Card]bool{}
	for _, cs := range used {
		for _, c := range cs {
			taken[c] = true
		}
	}
	avail := make([]Card, 0, 52)
	for _, su := range []byte{'c', 'd', 'h', 's'} {
		for rnk := 2; rnk <= 14; rnk++ {
			c := Card{Rank: rnk, Suit: su}
			if !taken[c] {
				avail = append(avail, c)
			}
		}
	}
	return avail
}

// ExactEquity enumerates every villain combo on a complete 5-card board and
// returns hero's share: wins plus half of ties. Smaller library score is the
// stronger hand.
func ExactEquity(hole HoleHand, board []Card) (float64, error) {
	if len(board) != 5 {
		return 0, fmt.Errorf("exact equity needs a 5-card board, got %d", len(board))
	}
	if err := checkDistinct(hole, board); err != nil {
		return 0, err
	}
	heroScore := eval7(hole, board)
	avail := remaining(hole[:], board)
	var total, win, tie int64
	for i := 0; i < len(avail); i++ {
		for j := i + 1; j < len(avail); j++ {
			total++
			vScore := eval7(HoleHand{avail[i], avail[j]}, board)
			if heroScore < vScore {
				win++
			} else if heroScore == vScore {
				tie++
			}
		}
	}
	if total == 0 {
		return 0, ErrEmptyRange
	}
	return (float64(win) + 0.5*float64(tie)) / float64(total), nil
}

// EquityVsRange estimates hero equity against a weighted opponent range by
// Monte Carlo sampling. weight maps a canonical hand label ("AKs", "77") to a
// play frequency in [0,1]; combos at weight 0 are never dealt to the villain.
// Boards shorter than 5 cards are completed with random runouts.
func EquityVsRange(hole HoleHand, board []Card, weight func(label string) float64, iters int, rng *rand.Rand) (float64, error) {
	if len(board) > 5 {
		return 0, fmt.Errorf("board has %d cards, max 5", len(board))
	}
	if err := checkDistinct(hole, board); err != nil {
		return 0, err
	}
	if iters <= 0 {
		iters = 5000
	}
	avail := remaining(hole[:], board)

	// Weighted villain combos from what's left in the deck.
	type combo struct {
		hand HoleHand
		w    float64
	}
	var combos []combo
	var wsum float64
	for i := 0; i < len(avail); i++ {
		for j := i + 1; j < len(avail); j++ {
			h := HoleHand{avail[i], avail[j]}
			w := weight(h.Label())
			if w > 0 {
				combos = append(combos, combo{hand: h, w: w})
				wsum += w
			}
		}
	}
	if len(combos) == 0 {
		return 0, ErrEmptyRange
	}

	pick := func() HoleHand {
		x := rng.Float64() * wsum
		for _, c := range combos {
			x -= c.w
			if x <= 0 {
				return c.hand
			}
		}
		return combos[len(combos)-1].hand
	}

	need := 5 - len(board)
	full := make([]Card, 5)
	copy(full, board)
	var score float64
	for n := 0; n < iters; n++ {
		villain := pick()
		if need > 0 {
			// Runout from cards not held by either player.
			run := remaining(hole[:], board, villain[:])
			for k := 0; k < need; k++ {
				idx := k + rng.Intn(len(run)-k)
				run[k], run[idx] = run[idx], run[k]
				full[len(board)+k] = run[k]
			}
		}
		heroScore := eval7(hole, full)
		vScore := eval7(villain, full)
		if heroScore < vScore {
			score += 1
		} else if heroScore == vScore {
			score += 0.5
		}
	}
	return score / float64(iters), nil
}
