package ranges

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidNotation = errors.New("invalid range notation")

// ParseRange expands textual range notation into a matrix with every named
// hand at frequency 1.0. Supported forms, comma separated:
//
//	AA          a pocket pair
//	AKs / AKo   suited / offsuit
//	AK          both suited and offsuit
//	TT+         that pair and every higher pair
//	ATs+        that kicker and every higher kicker below the top rank
//	22-55       an inclusive pair run
//	A5s-A2s     an inclusive kicker run with a shared top rank
func ParseRange(notation string) (*Matrix, error) {
	m := NewMatrix()
	for _, tok := range strings.Split(notation, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return nil, fmt.Errorf("%w: empty token in %q", ErrInvalidNotation, notation)
		}
		if err := applyToken(m, tok); err != nil {
			return nil, err
		}
	}
	return m, nil
}

type tokenKind int

const (
	kindPair tokenKind = iota
	kindSuited
	kindOffsuit
	kindBoth
)

type simpleToken struct {
	hi, lo int // rank indices, hi < lo except pairs where hi == lo
	kind   tokenKind
}

func parseSimple(tok string) (simpleToken, error) {
	if len(tok) < 2 || len(tok) > 3 {
		return simpleToken{}, fmt.Errorf("%w: %q", ErrInvalidNotation, tok)
	}
	hi, ok1 := rankIdx[tok[0]]
	lo, ok2 := rankIdx[tok[1]]
	if !ok1 || !ok2 {
		return simpleToken{}, fmt.Errorf("%w: %q", ErrInvalidNotation, tok)
	}
	if hi > lo {
		return simpleToken{}, fmt.Errorf("%w: %q (higher rank first)", ErrInvalidNotation, tok)
	}
	if hi == lo {
		if len(tok) != 2 {
			return simpleToken{}, fmt.Errorf("%w: %q (pairs take no modifier)", ErrInvalidNotation, tok)
		}
		return simpleToken{hi: hi, lo: lo, kind: kindPair}, nil
	}
	if len(tok) == 2 {
		return simpleToken{hi: hi, lo: lo, kind: kindBoth}, nil
	}
	switch tok[2] {
	case 's':
		return simpleToken{hi: hi, lo: lo, kind: kindSuited}, nil
	case 'o':
		return simpleToken{hi: hi, lo: lo, kind: kindOffsuit}, nil
	}
	return simpleToken{}, fmt.Errorf("%w: %q (bad modifier %q)", ErrInvalidNotation, tok, tok[2])
}

func (st simpleToken) set(m *Matrix, lo int) {
	switch st.kind {
	case kindPair:
		m.Cells[lo][lo] = 1
	case kindSuited:
		m.Cells[st.hi][lo] = 1
	case kindOffsuit:
		m.Cells[lo][st.hi] = 1
	case kindBoth:
		m.Cells[st.hi][lo] = 1
		m.Cells[lo][st.hi] = 1
	}
}

func applyToken(m *Matrix, tok string) error {
	if from, to, ok := strings.Cut(tok, "-"); ok {
		return applyDash(m, tok, from, to)
	}
	plus := strings.HasSuffix(tok, "+")
	st, err := parseSimple(strings.TrimSuffix(tok, "+"))
	if err != nil {
		return err
	}
	if !plus {
		st.set(m, st.lo)
		return nil
	}
	// "TT+" walks pairs up to AA; "ATs+" walks the kicker up to just below
	// the top rank. Rank index decreases as rank increases.
	stop := 0
	if st.kind != kindPair {
		stop = st.hi + 1
	}
	for lo := st.lo; lo >= stop; lo-- {
		if st.kind == kindPair {
			m.Cells[lo][lo] = 1
		} else {
			st.set(m, lo)
		}
	}
	return nil
}

func applyDash(m *Matrix, tok, from, to string) error {
	a, err := parseSimple(from)
	if err != nil {
		return err
	}
	b, err := parseSimple(to)
	if err != nil {
		return err
	}
	if a.kind != b.kind {
		return fmt.Errorf("%w: %q (mixed hand kinds)", ErrInvalidNotation, tok)
	}
	if a.kind != kindPair && a.hi != b.hi {
		return fmt.Errorf("%w: %q (top rank must match)", ErrInvalidNotation, tok)
	}
	lo, hi := a.lo, b.lo
	if lo > hi {
		lo, hi = hi, lo
	}
	for i := lo; i <= hi; i++ {
		if a.kind == kindPair {
			m.Cells[i][i] = 1
		} else {
			a.set(m, i)
		}
	}
	return nil
}
