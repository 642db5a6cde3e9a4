package types

import (
	"fmt"

	"nucore/internal/core"
)

// CoreGeometry places a radial Core footprint in 3D: AxialNodes layers of
// AssemblyNodeSize cm each, with square assemblies AssemblyRadialSize cm wide.
type CoreGeometry struct {
	Core               *core.Core `yaml:"core" json:"core"`
	AxialNodes         int        `yaml:"axial_nodes" json:"axial_nodes"`
	AssemblyRadialSize float64    `yaml:"assembly_radial_size" json:"assembly_radial_size"`
	AssemblyNodeSize   float64    `yaml:"assembly_node_size" json:"assembly_node_size"`
}

// Validate checks that every dimension is positive and a core is set.
func (g CoreGeometry) Validate() error {
	switch {
	case g.Core == nil:
		return core.Invalid(core.RuleGeometry, "geometry has no core")
	case g.AxialNodes <= 0:
		return core.Invalid(core.RuleGeometry, fmt.Sprintf("axial nodes must be greater than 0 (got %d)", g.AxialNodes))
	case g.AssemblyRadialSize <= 0:
		return core.Invalid(core.RuleGeometry, fmt.Sprintf("assembly radial size must be greater than 0 (got %g)", g.AssemblyRadialSize))
	case g.AssemblyNodeSize <= 0:
		return core.Invalid(core.RuleGeometry, fmt.Sprintf("assembly node size must be greater than 0 (got %g)", g.AssemblyNodeSize))
	}
	return nil
}

// Size is the radial grid size of the core.
func (g CoreGeometry) Size() int { return g.Core.Size() }
