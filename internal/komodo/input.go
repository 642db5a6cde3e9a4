package komodo

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"nucore/internal/core"
	"nucore/internal/domain"
)

// Input is a parsed solver input file.
type Input struct {
	Mode            Mode
	CaseName        string
	CaseDescription string
	XSecFile        string

	NX, NY, NZ          int
	SizeX, SizeY, SizeZ []float64
	DivX, DivY, DivZ    []int

	// PlanarAssignment holds the 1-based planar type of every axial layer,
	// bottom to top.
	PlanarAssignment []int
	// PlanarMaps holds NY rows of NX material indices per planar type.
	PlanarMaps [][][]int
	Boundaries Boundaries

	Iter   *domain.IterationControl
	Output bool
	VTK    bool
}

// LayerMap returns the material map of axial layer k.
func (in *Input) LayerMap(k int) ([][]int, error) {
	if k < 0 || k >= len(in.PlanarAssignment) {
		return nil, fmt.Errorf("layer %d out of range [0, %d)", k, len(in.PlanarAssignment))
	}
	return in.PlanarMaps[in.PlanarAssignment[k]-1], nil
}

// Footprint recovers the core footprint from the first layer's material map,
// treating material 0 as outside the core.
func (in *Input) Footprint(name string) (*core.Core, error) {
	grid, err := in.LayerMap(0)
	if err != nil {
		return nil, err
	}
	rows := make([]int, len(grid))
	for i, row := range grid {
		for _, v := range row {
			if v != 0 {
				rows[i]++
			}
		}
	}
	c, err := core.New(name, in.NX, rows)
	if err != nil {
		return nil, err
	}
	for i, row := range grid {
		for j, v := range row {
			if ok, _ := c.PointIsWithinCore(i, j); ok != (v != 0) {
				return nil, malformedInput("material map row %d is not centred", i)
			}
		}
	}
	return c, nil
}

// ReadInputFile reads a solver input from path.
func ReadInputFile(path string) (*Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadInput(f)
}

// ReadInput parses the cards of a solver input. Comments and blank lines are
// ignored; repeated values may use the "n*v" notation.
func ReadInput(r io.Reader) (*Input, error) {
	cards, err := splitCards(r)
	if err != nil {
		return nil, err
	}
	in := &Input{}
	for _, c := range cards {
		switch c.name {
		case "MODE":
			if len(c.lines) < 1 {
				return nil, malformedInput("%%MODE card is empty")
			}
			if in.Mode, err = ParseMode(c.lines[0]); err != nil {
				return nil, malformedInput("%v", err)
			}
		case "CASE":
			if len(c.lines) < 2 {
				return nil, malformedInput("%%CASE card needs a name and a description")
			}
			in.CaseName, in.CaseDescription = c.lines[0], c.lines[1]
		case "XSEC":
			if len(c.lines) < 1 {
				return nil, malformedInput("%%XSEC card is empty")
			}
			path, ok := strings.CutPrefix(c.lines[0], "FILE ")
			if !ok {
				return nil, malformedInput("%%XSEC card must name a FILE")
			}
			in.XSecFile = strings.TrimSpace(path)
		case "GEOM":
			if err := in.readGeom(c.tokens()); err != nil {
				return nil, err
			}
		case "ITER":
			if err := in.readIter(c.tokens()); err != nil {
				return nil, err
			}
		case "OUTP":
			in.Output = true
		case "VTK":
			in.VTK = true
		default:
			return nil, malformedInput("unknown card %%%s", c.name)
		}
	}
	return in, nil
}

type card struct {
	name  string
	lines []string
}

func (c card) tokens() []string {
	var out []string
	for _, l := range c.lines {
		out = append(out, strings.Fields(l)...)
	}
	return out
}

func splitCards(r io.Reader) ([]card, error) {
	var cards []card
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexByte(line, '!'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if name, ok := strings.CutPrefix(line, "%"); ok {
			cards = append(cards, card{name: strings.ToUpper(strings.TrimSpace(name))})
			continue
		}
		if len(cards) == 0 {
			return nil, malformedInput("value line before the first card: %q", line)
		}
		last := &cards[len(cards)-1]
		last.lines = append(last.lines, line)
	}
	return cards, sc.Err()
}

func (in *Input) readGeom(tokens []string) error {
	next := func(n int) ([]string, error) {
		vals, used, err := expandTokens(tokens, n)
		if err != nil {
			return nil, err
		}
		tokens = tokens[used:]
		return vals, nil
	}

	dims, err := next(3)
	if err != nil {
		return err
	}
	d, err := parseInts(dims)
	if err != nil {
		return err
	}
	in.NX, in.NY, in.NZ = d[0], d[1], d[2]
	if in.NX <= 0 || in.NY <= 0 || in.NZ <= 0 {
		return malformedInput("geometry dimensions must be positive, got %d %d %d", in.NX, in.NY, in.NZ)
	}

	readSizes := func(n int) ([]float64, []int, error) {
		s, err := next(n)
		if err != nil {
			return nil, nil, err
		}
		sizes, err := parseFloats(s)
		if err != nil {
			return nil, nil, err
		}
		v, err := next(n)
		if err != nil {
			return nil, nil, err
		}
		divs, err := parseInts(v)
		return sizes, divs, err
	}
	if in.SizeX, in.DivX, err = readSizes(in.NX); err != nil {
		return err
	}
	if in.SizeY, in.DivY, err = readSizes(in.NY); err != nil {
		return err
	}
	if in.SizeZ, in.DivZ, err = readSizes(in.NZ); err != nil {
		return err
	}

	np, err := next(1)
	if err != nil {
		return err
	}
	nPlanar, err := parseInts(np)
	if err != nil {
		return err
	}
	if nPlanar[0] < 1 {
		return malformedInput("planar type count must be positive")
	}
	assign, err := next(in.NZ)
	if err != nil {
		return err
	}
	if in.PlanarAssignment, err = parseInts(assign); err != nil {
		return err
	}
	for k, p := range in.PlanarAssignment {
		if p < 1 || p > nPlanar[0] {
			return malformedInput("layer %d uses planar type %d of %d", k, p, nPlanar[0])
		}
	}

	in.PlanarMaps = make([][][]int, nPlanar[0])
	for p := range in.PlanarMaps {
		grid := make([][]int, in.NY)
		for i := range grid {
			row, err := next(in.NX)
			if err != nil {
				return err
			}
			if grid[i], err = parseInts(row); err != nil {
				return err
			}
		}
		in.PlanarMaps[p] = grid
	}

	bc, err := next(6)
	if err != nil {
		return err
	}
	codes, err := parseInts(bc)
	if err != nil {
		return err
	}
	faces := make([]BoundaryCondition, 6)
	for i, c := range codes {
		faces[i] = BoundaryCondition(c)
		if !faces[i].valid() {
			return malformedInput("invalid boundary condition %d", c)
		}
	}
	in.Boundaries = boundariesOf(faces)
	if len(tokens) > 0 {
		return malformedInput("%d unexpected values after the boundary conditions", len(tokens))
	}
	return nil
}

func (in *Input) readIter(tokens []string) error {
	if len(tokens) != 8 {
		return malformedInput("%%ITER needs 8 values, got %d", len(tokens))
	}
	ints, err := parseInts([]string{tokens[0], tokens[1], tokens[4], tokens[5], tokens[6], tokens[7]})
	if err != nil {
		return err
	}
	tols, err := parseFloats(tokens[2:4])
	if err != nil {
		return err
	}
	in.Iter = &domain.IterationControl{
		Outer:                 ints[0],
		Inner:                 ints[1],
		FissionTolerance:      tols[0],
		FluxTolerance:         tols[1],
		ExtrapolationInterval: ints[2],
		OuterUpdate:           ints[3],
		THIterations:          ints[4],
		OuterPerTH:            ints[5],
	}
	return nil
}
