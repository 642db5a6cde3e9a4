package lattice

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Pyramid describes an enrichment map peaking at the lattice centre and
// falling off by Penalty per pin step in each direction.
type Pyramid struct {
	Size    int
	Peak    float64
	Penalty float64
	Digits  int
	// Min, when set, is the lowest value written.
	Min *float64
}

// Map returns the Size x Size map. Values are rounded to Digits decimals.
func (p Pyramid) Map() (*mat.Dense, error) {
	if p.Size < 1 {
		return nil, fmt.Errorf("lattice size must be at least 1, got %d", p.Size)
	}
	if p.Digits < 0 {
		return nil, fmt.Errorf("digits must not be negative, got %d", p.Digits)
	}
	out := mat.NewDense(p.Size, p.Size, nil)
	middle := float64(p.Size-1) / 2
	for i := 0; i < p.Size; i++ {
		for j := 0; j < p.Size; j++ {
			// Explicit conversions keep the products unfused.
			di := float64(math.Abs(float64(i)-middle) * p.Penalty)
			dj := float64(math.Abs(float64(j)-middle) * p.Penalty)
			v := roundTo(p.Peak-di-dj, p.Digits)
			if p.Min != nil && v < *p.Min {
				v = *p.Min
			}
			if v == 0 {
				v = 0 // drop the sign of -0
			}
			out.Set(i, j, v)
		}
	}
	return out, nil
}

// roundTo rounds the exact binary value of v to digits decimals, half to
// even, so 2.675 (stored just below) becomes 2.67.
func roundTo(v float64, digits int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', digits, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// Position is a pin location in the lattice, row first.
type Position struct{ Row, Col int }

// BAPinPositions places n burnable absorber pins one step in from the
// lattice edge. n must be a multiple of 4 no larger than 16 and size at
// least 8. The upper-left pattern is repeated in the other three corners by
// rotation.
func BAPinPositions(n, size int) ([]Position, error) {
	switch {
	case size < 8:
		return nil, fmt.Errorf("lattice_size must be at least 8")
	case n > 16:
		return nil, fmt.Errorf("n_ba_pins must be at most 16")
	case n < 0 || n%4 != 0:
		return nil, fmt.Errorf("n_ba_pins must be a multiple of 4")
	}

	var corner []Position
	switch n / 4 {
	case 1:
		corner = []Position{{1, 1}}
	case 2:
		corner = []Position{{1, 3}, {3, 1}}
	case 3:
		corner = []Position{{1, 1}, {3, 1}, {1, 3}}
	case 4:
		corner = []Position{{1, 1}, {3, 1}, {1, 3}, {3, 3}}
	}

	last := size - 1
	out := make([]Position, 0, n)
	for _, p := range corner {
		x, y := p.Row, p.Col
		out = append(out,
			Position{x, y},
			Position{last - y, x},
			Position{y, last - x},
			Position{last - x, last - y},
		)
	}
	return out, nil
}

// BAMap returns a size x size map holding enrichment at the absorber pin
// positions and 0 elsewhere.
func BAMap(n, size int, enrichment float64) (*mat.Dense, error) {
	pos, err := BAPinPositions(n, size)
	if err != nil {
		return nil, err
	}
	out := mat.NewDense(size, size, nil)
	for _, p := range pos {
		out.Set(p.Row, p.Col, enrichment)
	}
	return out, nil
}
