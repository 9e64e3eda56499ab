package poker

import "fmt"

// HoleHand is an unordered pair of two distinct cards.
type HoleHand [2]Card

// ParseHoleHand parses a 4-character token like "AhKh" into a hole hand.
func ParseHoleHand(s string) (HoleHand, error) {
	if len(s) != 4 {
		return HoleHand{}, fmt.Errorf("%w: %q (want 4 characters)", ErrInvalidHandFormat, s)
	}
	c1, err := ParseCard(s[:2])
	if err != nil {
		return HoleHand{}, fmt.Errorf("%w: %q: %v", ErrInvalidHandFormat, s, err)
	}
	c2, err := ParseCard(s[2:])
	if err != nil {
		return HoleHand{}, fmt.Errorf("%w: %q: %v", ErrInvalidHandFormat, s, err)
	}
	if c1 == c2 {
		return HoleHand{}, fmt.Errorf("%w: %q names the same card twice", ErrInvalidHandFormat, s)
	}
	return HoleHand{c1, c2}, nil
}

// Label returns the canonical range label for the hand: higher rank first,
// "s" for suited, "o" for offsuit, no suffix for pairs. The result does not
// depend on the order the two cards were given in.
func (h HoleHand) Label() string {
	hi, lo := h[0], h[1]
	if lo.Rank > hi.Rank {
		hi, lo = lo, hi
	}
	if hi.Rank == lo.Rank {
		return fmt.Sprintf("%c%c", rankChars[hi.Rank], rankChars[lo.Rank])
	}
	suffix := "o"
	if hi.Suit == lo.Suit {
		suffix = "s"
	}
	return fmt.Sprintf("%c%c%s", rankChars[hi.Rank], rankChars[lo.Rank], suffix)
}

func (h HoleHand) String() string {
	return h[0].String() + h[1].String()
}
