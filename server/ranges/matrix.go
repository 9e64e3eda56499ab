package ranges

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidHandLabel = errors.New("invalid hand label")
	ErrInvalidFrequency = errors.New("frequency outside [0,1]")
)

// Ranks is the axis labels of the grid, descending.
var Ranks = [13]string{"A", "K", "Q", "J", "T", "9", "8", "7", "6", "5", "4", "3", "2"}

var rankIdx = map[byte]int{
	'A': 0, 'K': 1, 'Q': 2, 'J': 3, 'T': 4, '9': 5, '8': 6,
	'7': 7, '6': 8, '5': 9, '4': 10, '3': 11, '2': 12,
}

// Matrix is a 13x13 grid of play frequencies indexed by rank descending A..2
// on both axes. The diagonal holds pocket pairs, cells above it suited
// combos, cells below it offsuit combos. Every cell stays in [0,1].
type Matrix struct {
	Cells [13][13]float64
}

// NewMatrix returns a zero-filled grid.
func NewMatrix() *Matrix { return &Matrix{} }

// cellFor resolves a canonical hand label ("AKs", "T9o", "77") to its grid
// position. Rank order within the label is normalized, so "KAs" lands on the
// same cell as "AKs".
func cellFor(label string) (row, col int, err error) {
	if len(label) < 2 || len(label) > 3 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidHandLabel, label)
	}
	hi, ok1 := rankIdx[label[0]]
	lo, ok2 := rankIdx[label[1]]
	if !ok1 || !ok2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidHandLabel, label)
	}
	if hi > lo {
		hi, lo = lo, hi
	}
	if hi == lo {
		if len(label) != 2 {
			return 0, 0, fmt.Errorf("%w: %q (pairs take no suffix)", ErrInvalidHandLabel, label)
		}
		return hi, lo, nil
	}
	if len(label) != 3 {
		return 0, 0, fmt.Errorf("%w: %q (want suited/offsuit suffix)", ErrInvalidHandLabel, label)
	}
	switch label[2] {
	case 's':
		return hi, lo, nil
	case 'o':
		return lo, hi, nil
	}
	return 0, 0, fmt.Errorf("%w: %q (bad suffix %q)", ErrInvalidHandLabel, label, label[2])
}

// labelFor is the inverse of cellFor.
func labelFor(row, col int) string {
	switch {
	case row == col:
		return Ranks[row] + Ranks[col]
	case row < col:
		return Ranks[row] + Ranks[col] + "s"
	default:
		return Ranks[col] + Ranks[row] + "o"
	}
}

// combosFor is the number of two-card combinations a cell stands for.
func combosFor(row, col int) int {
	switch {
	case row == col:
		return 6
	case row < col:
		return 4
	default:
		return 12
	}
}

// Set writes frequency into the single cell the label resolves to. Values
// outside [0,1] are rejected, not clamped.
func (m *Matrix) Set(label string, freq float64) error {
	row, col, err := cellFor(label)
	if err != nil {
		return err
	}
	if freq < 0 || freq > 1 {
		return fmt.Errorf("%w: %v for %q", ErrInvalidFrequency, freq, label)
	}
	m.Cells[row][col] = freq
	return nil
}

// Get returns the frequency for a canonical hand label, 0 for any label that
// does not resolve to a cell.
func (m *Matrix) Get(label string) float64 {
	row, col, err := cellFor(label)
	if err != nil {
		return 0
	}
	return m.Cells[row][col]
}

// TotalHands is the number of two-card combinations from a 52-card deck.
const TotalHands = 1326

// Stats summarizes a range: frequency-weighted combo count and the share of
// the full 1326-combo hand space it covers.
type Stats struct {
	TotalCombos     float64 `json:"total_combos"`
	RangePercentage float64 `json:"range_percentage"`
	TotalHands      int     `json:"total_hands"`
}

// Stats folds over all 169 cells: a pair at full frequency contributes 6
// combos, a suited hand 4, an offsuit hand 12.
func (m *Matrix) Stats() Stats {
	var combos float64
	for row := 0; row < 13; row++ {
		for col := 0; col < 13; col++ {
			combos += m.Cells[row][col] * float64(combosFor(row, col))
		}
	}
	return Stats{
		TotalCombos:     combos,
		RangePercentage: combos / TotalHands * 100,
		TotalHands:      TotalHands,
	}
}

// Labels enumerates all 169 canonical hand labels in grid order.
func Labels() []string {
	out := make([]string, 0, 169)
	for row := 0; row < 13; row++ {
		for col := 0; col < 13; col++ {
			out = append(out, labelFor(row, col))
		}
	}
	return out
}
