package komodo

import (
	"fmt"
	"strconv"
	"strings"

	"nucore/internal/core"
	"nucore/internal/coremap"
	"nucore/internal/domain"
	"nucore/internal/util/numfmt"
)

// Builder accumulates solver cards in call order. Cards are separated by a
// blank line in the built input.
type Builder struct {
	parts      []string
	boundaries Boundaries
}

// NewBuilder returns a Builder whose geometry card uses zero-incoming-current
// conditions on every face.
func NewBuilder() *Builder {
	return &Builder{boundaries: UniformBoundaries(ZeroIncomingCurrent)}
}

// SetBoundaries sets the conditions written by the next SetGeom.
func (b *Builder) SetBoundaries(bounds Boundaries) error {
	for _, f := range bounds.Faces() {
		if !f.valid() {
			return core.Invalid(core.RuleGeometry, fmt.Sprintf("invalid boundary condition %d", int(f)))
		}
	}
	b.boundaries = bounds
	return nil
}

func (b *Builder) SetMode(m Mode) {
	b.parts = append(b.parts, "! Mode card\n%MODE\n"+m.String()+"\n")
}

// SetCase adds the case card. Both name and description are required.
func (b *Builder) SetCase(name, description string) error {
	if name == "" {
		return core.Invalid(core.RuleName, "Case name cannot be empty.")
	}
	if description == "" {
		return core.Invalid(core.RuleName, "Case description cannot be empty.")
	}
	b.parts = append(b.parts, "! Case card\n%CASE\n"+name+"\n"+description+"\n")
	return nil
}

func (b *Builder) SetXSecFile(path string) {
	b.parts = append(b.parts, "! XSEC CARD\n%XSEC\nFILE "+path+"\n")
}

// SetGeom adds the geometry card for geom with one material map per axial
// layer. Layers with identical maps share a planar type; planar types are
// numbered from 1 in order of first appearance, bottom to top. Absent cells
// are written as material 0.
func (b *Builder) SetGeom(geom Geometry, maps []*coremap.Map[int], sym Symmetry) error {
	if sym != SymmetryFull {
		return fmt.Errorf("%w (got %s)", ErrUnsupportedSymmetry, sym)
	}
	if err := geom.Validate(); err != nil {
		return err
	}
	c := geom.Core
	nx, ny, nz := c.Size(), c.Size(), geom.AxialNodes
	if len(maps) != nz {
		return core.Invalid(core.RuleGeometry,
			fmt.Sprintf("Material maps must match axial nodes (len(material_maps)=%d, nz=%d)", len(maps), nz))
	}
	for _, m := range maps {
		if err := m.AssertMapSize(c); err != nil {
			return err
		}
	}

	var planar []*coremap.Map[int]
	assignment := make([]int, nz)
	for k, m := range maps {
		idx := -1
		for p, seen := range planar {
			if seen.Equal(m) {
				idx = p
				break
			}
		}
		if idx < 0 {
			planar = append(planar, m)
			idx = len(planar) - 1
		}
		assignment[k] = idx + 1
	}

	var sb strings.Builder
	sb.WriteString("! Geometry control card\n%GEOM\n")
	fmt.Fprintf(&sb, "%d %d %d\n", nx, ny, nz)
	fmt.Fprintln(&sb, repeat(nx, numfmt.Float(geom.AssemblyRadialSize)))
	fmt.Fprintln(&sb, repeat(nx, "1"))
	fmt.Fprintln(&sb, repeat(ny, numfmt.Float(geom.AssemblyRadialSize)))
	fmt.Fprintln(&sb, repeat(ny, "1"))
	fmt.Fprintln(&sb, repeat(nz, numfmt.Float(geom.AssemblyNodeSize)))
	fmt.Fprintln(&sb, repeat(nz, "1"))
	fmt.Fprintln(&sb, len(planar))
	fmt.Fprintln(&sb, runLength(assignment))
	for p, m := range planar {
		fmt.Fprintf(&sb, "! Material map (planar type) %d\n", p+1)
		writeGrid(&sb, m.Dense(0))
	}
	sb.WriteString("! Boundary conditions\n")
	sb.WriteString("! 0 = zero-flux\n")
	sb.WriteString("! 1 = zero-incoming current\n")
	sb.WriteString("! 2 = reflective\n")
	sb.WriteString("! (east),   (west),  (north),  (south),   (bottom), (top)\n")
	sb.WriteString("  ")
	for _, f := range b.boundaries.Faces() {
		fmt.Fprintf(&sb, "%-10d", int(f))
	}
	sb.WriteString("\n")

	b.parts = append(b.parts, sb.String())
	return nil
}

// writeGrid writes rows of right-aligned integers, each column two wider than
// the longest value.
func writeGrid(sb *strings.Builder, grid [][]int) {
	width := 1
	for _, row := range grid {
		for _, v := range row {
			if n := len(strconv.Itoa(v)); n > width {
				width = n
			}
		}
	}
	for _, row := range grid {
		for _, v := range row {
			fmt.Fprintf(sb, "%*d", width+2, v)
		}
		sb.WriteString("\n")
	}
}

func (b *Builder) SetIter(it domain.IterationControl) {
	b.parts = append(b.parts, fmt.Sprintf("! Iteration control card\n%%ITER\n%d %d %s %s %d %d %d %d\n",
		it.Outer, it.Inner,
		numfmt.Float(it.FissionTolerance), numfmt.Float(it.FluxTolerance),
		it.ExtrapolationInterval, it.OuterUpdate, it.THIterations, it.OuterPerTH))
}

func (b *Builder) SetOutp() { b.parts = append(b.parts, "! Output control card\n%OUTP\n") }

func (b *Builder) SetVTK() { b.parts = append(b.parts, "! VTK control card\n%VTK\n") }

// Build joins the cards added so far.
func (b *Builder) Build() string { return strings.Join(b.parts, "\n") }
