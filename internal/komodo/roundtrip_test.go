package komodo_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/mat"

	"nucore/internal/core"
	"nucore/internal/coremap"
	"nucore/internal/domain"
	"nucore/internal/komodo"
)

var _ = Describe("Round trip", func() {
	It("reconstructs the layer maps from a matching power output", func() {
		c, err := core.New("bwr", 20, []int{4, 8, 10, 12, 14, 16, 18, 18, 20, 20, 20, 20, 18, 18, 16, 14, 12, 10, 8, 4})
		Expect(err).NotTo(HaveOccurred())
		geom := komodo.Geometry{Core: c, AxialNodes: 4, AssemblyRadialSize: 12, AssemblyNodeSize: 20}

		var maps []*coremap.Map[int]
		for k := 0; k < geom.AxialNodes; k++ {
			idx := c.IndexMap(-1)
			grid := make([][]int, c.Size())
			for i, row := range idx {
				grid[i] = make([]int, len(row))
				for j, v := range row {
					if v >= 0 {
						grid[i][j] = 1 + (v+k)%7
					}
				}
			}
			maps = append(maps, coremap.Filled(grid))
		}

		b := komodo.NewBuilder()
		b.SetMode(komodo.ModeForward)
		Expect(b.SetCase("RT", "round trip")).To(Succeed())
		b.SetXSecFile("komodo_XSEC.txt")
		Expect(b.SetGeom(geom, maps, komodo.SymmetryFull)).To(Succeed())
		b.SetIter(domain.DefaultIterationControl())
		b.SetOutp()

		in, err := komodo.ReadInput(strings.NewReader(b.Build()))
		Expect(err).NotTo(HaveOccurred())
		Expect(in.NZ).To(Equal(4))
		Expect(in.PlanarMaps).To(HaveLen(4))

		layers := make([]*mat.Dense, in.NZ)
		for k := range layers {
			grid, err := in.LayerMap(k)
			Expect(err).NotTo(HaveOccurred())
			d := mat.NewDense(c.Size(), c.Size(), nil)
			for i, row := range grid {
				for j, v := range row {
					d.Set(i, j, float64(v))
				}
			}
			layers[k] = d
		}

		path := filepath.Join(GinkgoT().TempDir(), "rt.inp")
		Expect(komodo.WritePowerOutputFile(komodo.OutputPath(path), c, layers)).To(Succeed())

		parsed, err := komodo.ParsePowerMapFile(komodo.OutputPath(path), geom)
		Expect(err).NotTo(HaveOccurred())
		Expect(parsed).To(HaveLen(geom.AxialNodes))
		for k, layer := range parsed {
			want := maps[k].Dense(0)
			got := make([][]int, c.Size())
			for i := range got {
				got[i] = make([]int, c.Size())
				for j := range got[i] {
					got[i][j] = int(layer.At(i, j))
				}
			}
			Expect(cmp.Diff(want, got)).To(BeEmpty(), "layer %d", k)
		}
	})

	It("reads back what the builder writes", func() {
		c := plusCore()
		b := komodo.NewBuilder()
		b.SetMode(komodo.ModeAdjoint)
		Expect(b.SetCase("A", "B C")).To(Succeed())
		b.SetXSecFile("/tmp/xs file.txt")
		Expect(b.SetBoundaries(komodo.UniformBoundaries(komodo.Reflective))).To(Succeed())
		Expect(b.SetGeom(geometry(c, 2), repeatMaps(coremap.FromCore(c, 3), 2), komodo.SymmetryFull)).To(Succeed())
		it := domain.DefaultIterationControl()
		it.FluxTolerance = 2.5e-6
		b.SetIter(it)
		b.SetVTK()

		in, err := komodo.ReadInput(strings.NewReader(b.Build()))
		Expect(err).NotTo(HaveOccurred())
		Expect(in.Mode).To(Equal(komodo.ModeAdjoint))
		Expect(in.CaseName).To(Equal("A"))
		Expect(in.CaseDescription).To(Equal("B C"))
		Expect(in.XSecFile).To(Equal("/tmp/xs file.txt"))
		Expect(in.SizeX).To(Equal([]float64{12, 12, 12}))
		Expect(in.SizeZ).To(Equal([]float64{20, 20}))
		Expect(in.DivY).To(Equal([]int{1, 1, 1}))
		Expect(in.PlanarAssignment).To(Equal([]int{1, 1}))
		Expect(in.Boundaries).To(Equal(komodo.UniformBoundaries(komodo.Reflective)))
		Expect(*in.Iter).To(Equal(it))
		Expect(in.VTK).To(BeTrue())
		Expect(in.Output).To(BeFalse())

		fp, err := in.Footprint("recovered")
		Expect(err).NotTo(HaveOccurred())
		Expect(fp.ElementsByRow()).To(Equal([]int{1, 3, 1}))
	})

	It("reads hand-written inputs with trailing comments", func() {
		data, err := os.ReadFile(filepath.Join("testdata", "handwritten.inp"))
		Expect(err).NotTo(HaveOccurred())
		in, err := komodo.ReadInput(bytes.NewReader(data))
		Expect(err).NotTo(HaveOccurred())
		Expect(in.NX).To(Equal(5))
		Expect(in.SizeX).To(Equal([]float64{10, 20, 20, 20, 10}))
		Expect(in.DivX).To(Equal([]int{1, 8, 8, 8, 1}))
		Expect(in.PlanarAssignment).To(Equal([]int{1, 2, 2, 2, 3}))
		Expect(in.Boundaries.East).To(Equal(komodo.ZeroIncomingCurrent))
		Expect(in.Boundaries.West).To(Equal(komodo.Reflective))
		Expect(in.Iter.FissionTolerance).To(Equal(1e-5))

		grid, err := in.LayerMap(4)
		Expect(err).NotTo(HaveOccurred())
		Expect(grid[2]).To(Equal([]int{5, 4, 5, 4, 5}))
	})

	It("rejects inputs that end early", func() {
		_, err := komodo.ReadInput(strings.NewReader("%GEOM\n3 3 1\n3*12.0\n"))
		Expect(err).To(MatchError(komodo.ErrMalformedInput))

		_, err = komodo.ReadInput(strings.NewReader("FORWARD\n"))
		Expect(err).To(MatchError(komodo.ErrMalformedInput))
	})
})
