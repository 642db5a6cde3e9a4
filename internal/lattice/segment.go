package lattice

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"

	"nucore/internal/util/numfmt"
)

// MaterialKind separates fuel from burnable absorber materials.
type MaterialKind string

const (
	KindFuel     MaterialKind = "fuel"
	KindAbsorber MaterialKind = "burnable_absorber"
)

// Material is a pin material.
type Material struct {
	Name string       `yaml:"name" json:"name"`
	Kind MaterialKind `yaml:"kind" json:"kind"`
}

var (
	UO2   = Material{Name: "UO2", Kind: KindFuel}
	GD2O3 = Material{Name: "GD2O3", Kind: KindAbsorber}
)

// FuelGeometry is the pin lattice of a fuel assembly. Lengths are in cm.
type FuelGeometry struct {
	LatticeSize  int     `yaml:"lattice_size" json:"lattice_size"`
	LatticePitch float64 `yaml:"lattice_pitch" json:"lattice_pitch"`
	FuelOR       float64 `yaml:"fuel_or" json:"fuel_or"`
	CladIR       float64 `yaml:"clad_ir" json:"clad_ir"`
	CladOR       float64 `yaml:"clad_or" json:"clad_or"`
}

// MaterialMap assigns a value of Material (enrichment or absorber weight
// percent) to every pin.
type MaterialMap struct {
	Material Material    `yaml:"material" json:"material"`
	Values   [][]float64 `yaml:"map_values" json:"map_values"`
}

// NewMaterialMap copies d into a MaterialMap.
func NewMaterialMap(m Material, d mat.Matrix) MaterialMap {
	r, c := d.Dims()
	values := make([][]float64, r)
	for i := range values {
		values[i] = make([]float64, c)
		for j := range values[i] {
			values[i][j] = d.At(i, j)
		}
	}
	return MaterialMap{Material: m, Values: values}
}

// Dims returns the shape of the map. A ragged map reports the longest row.
func (m MaterialMap) Dims() (rows, cols int) {
	for _, row := range m.Values {
		cols = max(cols, len(row))
	}
	return len(m.Values), cols
}

// Dense returns the map as a matrix. Short rows are padded with zeros.
func (m MaterialMap) Dense() *mat.Dense {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return &mat.Dense{}
	}
	d := mat.NewDense(r, c, nil)
	for i, row := range m.Values {
		for j, v := range row {
			d.Set(i, j, v)
		}
	}
	return d
}

// ValidateAgainst checks that the map covers the lattice of g exactly.
func (m MaterialMap) ValidateAgainst(g FuelGeometry) error {
	r, c := m.Dims()
	ragged := false
	for _, row := range m.Values {
		if len(row) != c {
			ragged = true
		}
	}
	if ragged || r != g.LatticeSize || c != g.LatticeSize {
		return fmt.Errorf("Enrichment map shape (%d, %d) does not match fuel geometry lattice shape ((%d, %d))",
			r, c, g.LatticeSize, g.LatticeSize)
	}
	return nil
}

// Segment is an axial fuel segment: a stack of material maps over one lattice.
type Segment struct {
	Name      string        `yaml:"name" json:"name"`
	Materials []MaterialMap `yaml:"materials" json:"materials"`
}

// Validate checks every material map against g.
func (s Segment) Validate(g FuelGeometry) error {
	for _, m := range s.Materials {
		if err := m.ValidateAgainst(g); err != nil {
			return fmt.Errorf("%s: %w", m.Material.Name, err)
		}
	}
	return nil
}

// BAString summarises the absorber maps of s as
// "<material>:<count>x<value>-<count>x<value>", one entry per absorber map,
// joined with "_". Values are in ascending order; all-zero maps are left out.
func (s Segment) BAString() string {
	var parts []string
	for _, m := range s.Materials {
		if m.Material.Kind != KindAbsorber {
			continue
		}
		counts := map[float64]int{}
		for _, row := range m.Values {
			for _, v := range row {
				counts[v]++
			}
		}
		if len(counts) == 1 && counts[0] > 0 {
			continue
		}
		values := make([]float64, 0, len(counts))
		for v := range counts {
			values = append(values, v)
		}
		sort.Float64s(values)
		uniq := make([]string, len(values))
		for i, v := range values {
			uniq[i] = fmt.Sprintf("%dx%s", counts[v], numfmt.Float(v))
		}
		parts = append(parts, m.Material.Name+":"+strings.Join(uniq, "-"))
	}
	return strings.Join(parts, "_")
}
