package komodo

import (
	"fmt"
	"strings"

	"nucore/internal/domain"
)

// Geometry is the 3D core geometry the cards describe.
type Geometry = domain.CoreGeometry

// Mode selects the calculation the solver performs.
type Mode int

const (
	ModeForward Mode = iota + 1
	ModeAdjoint
	ModeFixedSource
	ModeBoundarySearch
	ModeRodEjection
)

var modeNames = map[Mode]string{
	ModeForward:        "FORWARD",
	ModeAdjoint:        "ADJOINT",
	ModeFixedSource:    "FIXEDSRC",
	ModeBoundarySearch: "BCSEARCH",
	ModeRodEjection:    "RODEJECT",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode accepts the card spelling of a mode, case-insensitively.
func ParseMode(s string) (Mode, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// BoundaryCondition is the card code of a boundary condition.
type BoundaryCondition int

const (
	ZeroFlux            BoundaryCondition = 0
	ZeroIncomingCurrent BoundaryCondition = 1
	Reflective          BoundaryCondition = 2
)

func (b BoundaryCondition) valid() bool { return b >= ZeroFlux && b <= Reflective }

func (b BoundaryCondition) String() string {
	switch b {
	case ZeroFlux:
		return "zero-flux"
	case ZeroIncomingCurrent:
		return "zero-incoming current"
	case Reflective:
		return "reflective"
	}
	return fmt.Sprintf("BoundaryCondition(%d)", int(b))
}

// Boundaries holds one condition per face.
type Boundaries struct {
	East, West, North, South, Bottom, Top BoundaryCondition
}

// UniformBoundaries applies bc to every face.
func UniformBoundaries(bc BoundaryCondition) Boundaries {
	return Boundaries{East: bc, West: bc, North: bc, South: bc, Bottom: bc, Top: bc}
}

// Faces returns the conditions in card order: east, west, north, south, bottom, top.
func (b Boundaries) Faces() [6]BoundaryCondition {
	return [6]BoundaryCondition{b.East, b.West, b.North, b.South, b.Bottom, b.Top}
}

func boundariesOf(f []BoundaryCondition) Boundaries {
	return Boundaries{East: f[0], West: f[1], North: f[2], South: f[3], Bottom: f[4], Top: f[5]}
}

// Symmetry describes which part of the core the cards model.
type Symmetry int

const (
	SymmetryFull Symmetry = iota
	SymmetryHalfMirror
	SymmetryQuarterMirror
)

func (s Symmetry) String() string {
	switch s {
	case SymmetryFull:
		return "FULL"
	case SymmetryHalfMirror:
		return "HALF_MIRROR"
	case SymmetryQuarterMirror:
		return "QUARTER_MIRROR"
	}
	return fmt.Sprintf("Symmetry(%d)", int(s))
}
