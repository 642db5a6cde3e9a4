package komodo_test

import (
	"bytes"
	"strings"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"nucore/internal/domain"
	"nucore/internal/komodo"
)

func twoGroupSet(scale float64) domain.CrossSectionSet {
	return domain.CrossSectionSet{Groups: []domain.GroupConstants{
		{Transport: 0.2 * scale, Absorption: 0.01, NuFission: 0.007, Fission: 0.003, Chi: 1, Scatter: []float64{0.18, 0.017}},
		{Transport: 0.8 * scale, Absorption: 0.09, NuFission: 0.13, Fission: 0.05, Chi: 0, Scatter: []float64{0.0015, 0.7}},
	}}
}

func depletionRun(name string, alpha float64, dt []float64) domain.DepletionRun {
	run := domain.DepletionRun{Name: name, VoidFraction: alpha, Power: 25000, TimeSteps: dt, TimeUnit: "MWd/kg", NGroups: 2}
	for i := 0; i <= len(dt); i++ {
		run.Steps = append(run.Steps, twoGroupSet(1+float64(i)/10))
	}
	return run
}

var _ = Describe("Cross-section library", func() {
	It("writes the header, group lines and material comments", func() {
		var buf bytes.Buffer
		n, err := komodo.WriteLibrary(&buf, []domain.DepletionRun{depletionRun("a", 0.4, []float64{5})}, komodo.DefaultLibraryOptions())
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(2))

		lines := strings.Split(buf.String(), "\n")
		Expect(lines[0]).To(Equal("2  2    ! Number of groups and number of materials"))
		Expect(lines[1]).To(Equal("! sigtr    siga    nu*sigf   sigf     chi     sigs_g1  sigs_g2"))
		Expect(lines[2]).To(Equal("0.200000 0.010000 0.007000 0.003000 1.000000 0.180000 0.017000"))
		Expect(lines[3]).To(Equal("0.800000 0.090000 0.130000 0.050000 0.000000 0.001500 0.700000 ! MAT 1: 0.4 void, exposure: 0.0 MWd/kg, power: 25000.0 W"))
		Expect(lines[5]).To(HaveSuffix("! MAT 2: 0.4 void, exposure: 5.0 MWd/kg, power: 25000.0 W"))
		Expect(lines).To(HaveLen(6))
	})

	It("skips exposures above the burnup limit", func() {
		opts := komodo.DefaultLibraryOptions()
		opts.Log = logr.Discard()
		runs := []domain.DepletionRun{
			depletionRun("low", 0, []float64{40, 40, 40}),
			depletionRun("high", 0.8, []float64{50, 50}),
		}
		var buf bytes.Buffer
		n, err := komodo.WriteLibrary(&buf, runs, opts)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(5))
		Expect(buf.String()).To(ContainSubstring("! MAT 3: 0.0 void, exposure: 80.0 MWd/kg"))
		Expect(buf.String()).To(ContainSubstring("! MAT 5: 0.8 void, exposure: 50.0 MWd/kg"))
		Expect(buf.String()).NotTo(ContainSubstring("exposure: 120.0"))

		lib, err := komodo.ReadLibrary(&buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(lib.NGroups).To(Equal(2))
		Expect(lib.Materials).To(HaveLen(5))
		Expect(lib.Materials[4].Index).To(Equal(5))
		Expect(lib.Materials[4].Comment).To(HavePrefix("MAT 5:"))
		Expect(lib.Materials[1].Groups[0].Transport).To(BeNumerically("~", 0.22, 1e-9))
		Expect(lib.Materials[0].Groups[1].Scatter).To(Equal([]float64{0.0015, 0.7}))
	})

	It("rejects runs with the wrong group structure", func() {
		run := depletionRun("bad", 0, []float64{1})
		run.Steps[1].Groups[0].Scatter = []float64{0.1}
		_, err := komodo.WriteLibrary(&bytes.Buffer{}, []domain.DepletionRun{run}, komodo.DefaultLibraryOptions())
		Expect(err).To(MatchError(ContainSubstring("scatter terms")))

		run = depletionRun("short", 0, []float64{1, 2})
		run.Steps = run.Steps[:2]
		_, err = komodo.WriteLibrary(&bytes.Buffer{}, []domain.DepletionRun{run}, komodo.DefaultLibraryOptions())
		Expect(err).To(MatchError(ContainSubstring("2 steps for 3 exposures")))
	})

	It("rejects libraries whose header disagrees with the body", func() {
		_, err := komodo.ReadLibrary(strings.NewReader("2  3\n" +
			"0.1 0.1 0.1 0.1 1.0 0.1 0.1\n0.1 0.1 0.1 0.1 0.0 0.1 0.1 ! MAT 1\n"))
		Expect(err).To(MatchError(komodo.ErrMalformedInput))
	})
})
