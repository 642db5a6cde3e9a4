package komodo_test

import (
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"nucore/internal/core"
	"nucore/internal/coremap"
	"nucore/internal/domain"
	"nucore/internal/komodo"
)

var _ = Describe("Builder", func() {
	var (
		c *core.Core
		b *komodo.Builder
	)

	BeforeEach(func() {
		c = plusCore()
		b = komodo.NewBuilder()
	})

	It("writes every card in order", func() {
		b.SetMode(komodo.ModeForward)
		Expect(b.SetCase("TEST", "CASE TEST, STEP 0, ITERATION 0")).To(Succeed())
		b.SetXSecFile("xs/komodo_XSEC.txt")
		Expect(b.SetGeom(geometry(c, 2), repeatMaps(coremap.FromCore(c, 1), 2), komodo.SymmetryFull)).To(Succeed())
		b.SetIter(domain.DefaultIterationControl())
		b.SetOutp()

		want := strings.Join([]string{
			"! Mode card\n%MODE\nFORWARD\n",
			"! Case card\n%CASE\nTEST\nCASE TEST, STEP 0, ITERATION 0\n",
			"! XSEC CARD\n%XSEC\nFILE xs/komodo_XSEC.txt\n",
			"! Geometry control card\n%GEOM\n" +
				"3 3 2\n3*12.0\n3*1\n3*12.0\n3*1\n2*20.0\n2*1\n1\n2*1\n" +
				"! Material map (planar type) 1\n" +
				"  0  1  0\n  1  1  1\n  0  1  0\n" +
				"! Boundary conditions\n! 0 = zero-flux\n! 1 = zero-incoming current\n! 2 = reflective\n" +
				"! (east),   (west),  (north),  (south),   (bottom), (top)\n" +
				"  " + strings.Repeat("1         ", 6) + "\n",
			"! Iteration control card\n%ITER\n1200 5 1e-05 1e-05 15 40 20 80\n",
			"! Output control card\n%OUTP\n",
		}, "\n")
		Expect(b.Build()).To(Equal(want))
	})

	It("shares planar types between identical layers", func() {
		fuel := coremap.FromCore(c, 1)
		rodded := coremap.Filled([][]int{{0, 1, 0}, {1, 12, 1}, {0, 1, 0}})
		maps := []*coremap.Map[int]{fuel, fuel, rodded, rodded, rodded, fuel}
		Expect(b.SetGeom(geometry(c, 6), maps, komodo.SymmetryFull)).To(Succeed())

		card := b.Build()
		Expect(card).To(ContainSubstring("\n2\n2*1 3*2 1\n"))
		Expect(card).To(ContainSubstring("! Material map (planar type) 2\n   0   1   0\n   1  12   1\n"))
		Expect(card).NotTo(ContainSubstring("planar type) 3"))
	})

	It("writes custom boundary conditions", func() {
		Expect(b.SetBoundaries(komodo.Boundaries{
			East: komodo.ZeroIncomingCurrent, West: komodo.Reflective, North: komodo.Reflective,
			South: komodo.ZeroIncomingCurrent, Bottom: komodo.ZeroFlux, Top: komodo.ZeroFlux,
		})).To(Succeed())
		Expect(b.SetGeom(geometry(c, 1), repeatMaps(coremap.FromCore(c, 1), 1), komodo.SymmetryFull)).To(Succeed())
		Expect(b.Build()).To(HaveSuffix("  1         2         2         1         0         0         \n"))

		Expect(b.SetBoundaries(komodo.UniformBoundaries(komodo.BoundaryCondition(3)))).NotTo(Succeed())
	})

	It("rejects empty case names and descriptions", func() {
		err := b.SetCase("", "desc")
		Expect(err).To(MatchError("Case name cannot be empty."))
		Expect(errors.Is(err, core.ErrValidation)).To(BeTrue())
		Expect(b.SetCase("name", "")).To(MatchError("Case description cannot be empty."))
		Expect(b.Build()).To(BeEmpty())
	})

	It("rejects symmetries other than full core", func() {
		err := b.SetGeom(geometry(c, 1), repeatMaps(coremap.FromCore(c, 1), 1), komodo.SymmetryQuarterMirror)
		Expect(err).To(MatchError(komodo.ErrUnsupportedSymmetry))
	})

	It("requires one map per axial layer", func() {
		err := b.SetGeom(geometry(c, 3), repeatMaps(coremap.FromCore(c, 1), 2), komodo.SymmetryFull)
		Expect(err).To(MatchError("Material maps must match axial nodes (len(material_maps)=2, nz=3)"))
		Expect(errors.Is(err, core.ErrValidation)).To(BeTrue())
	})

	It("checks every map against the core size", func() {
		short := coremap.Filled([][]int{{0, 1, 0}, {1, 1, 1}})
		err := b.SetGeom(geometry(c, 2), []*coremap.Map[int]{coremap.FromCore(c, 1), short}, komodo.SymmetryFull)
		Expect(err).To(MatchError("map has 2 rows, core size is 3"))
	})

	It("rejects non-positive dimensions", func() {
		g := geometry(c, 1)
		g.AssemblyNodeSize = 0
		Expect(b.SetGeom(g, repeatMaps(coremap.FromCore(c, 1), 1), komodo.SymmetryFull)).To(
			MatchError(ContainSubstring("assembly node size must be greater than 0")))
	})
})
