package poker

import (
	"fmt"
	"math/rand"
	"time"
)

type Card struct {
	Rank int
	Suit byte
} // e.g. "As" => rank 14, suit 's'

const rankChars = "  23456789TJQKA"

// ParseCard parses a 2-character token like "Ah" or "Td".
// The suit character is accepted in either case; the rank must be uppercase.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q (want 2 characters)", ErrInvalidCardFormat, s)
	}
	var rank int
	switch s[0] {
	case 'A':
		rank = 14
	case 'K':
		rank = 13
	case 'Q':
		rank = 12
	case 'J':
		rank = 11
	case 'T':
		rank = 10
	default:
		if s[0] >= '2' && s[0] <= '9' {
			rank = int(s[0] - '0')
		}
	}
	if rank == 0 {
		return Card{}, fmt.Errorf("%w: %q (bad rank %q)", ErrInvalidCardFormat, s, s[0])
	}
	suit := s[1]
	if suit >= 'A' && suit <= 'Z' {
		suit += 'a' - 'A'
	}
	switch suit {
	case 'c', 'd', 'h', 's':
	default:
		return Card{}, fmt.Errorf("%w: %q (bad suit %q)", ErrInvalidCardFormat, s, s[1])
	}
	return Card{Rank: rank, Suit: suit}, nil
}

func (c Card) String() string {
	return fmt.Sprintf("%c%c", rankChars[c.Rank], c.Suit)
}

func NewDeck(seed int64) []Card {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))
	var deck []Card
	for s := 0; s < 4; s++ {
		for rnk := 2; rnk <= 14; rnk++ {
			deck = append(deck, Card{Rank: rnk, Suit: "cdhs"[s]})
		}
	}
	for i := len(deck) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
	return deck
}
