package komodo_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"nucore/internal/komodo"
)

const plusOutput = `
 KOMODO 3D POWER DISTRIBUTION

  z =   1
           relative power
  row 1     1.10000
  row 2     0.90000   1.20000   0.90000
  row 3     1.00000

  z =   2
           relative power
  row 1     0.50000
  row 2     0.40000   0.60000   0.40000
  row 3     0.50000
`

var _ = Describe("ParsePowerMap", func() {
	It("expands occupied values onto the full grid", func() {
		layers, err := komodo.ParsePowerMap(strings.NewReader(plusOutput), geometry(plusCore(), 2))
		Expect(err).NotTo(HaveOccurred())
		Expect(layers).To(HaveLen(2))

		want := mat.NewDense(3, 3, []float64{
			0, 1.1, 0,
			0.9, 1.2, 0.9,
			0, 1.0, 0,
		})
		Expect(mat.EqualApprox(layers[0], want, 1e-12)).To(BeTrue())
		Expect(floats.Sum(layers[1].RawMatrix().Data)).To(BeNumerically("~", 2.4, 1e-9))
	})

	It("fills cells outside the footprint with the parser's empty value", func() {
		layers, err := komodo.Parser{Empty: -1}.ParsePowerMap(strings.NewReader(plusOutput), geometry(plusCore(), 2))
		Expect(err).NotTo(HaveOccurred())
		Expect(layers[1].At(0, 0)).To(Equal(-1.0))
		Expect(layers[1].At(0, 1)).To(Equal(0.5))
	})

	It("requires one block per axial node", func() {
		_, err := komodo.ParsePowerMap(strings.NewReader(plusOutput), geometry(plusCore(), 3))
		Expect(err).To(MatchError(komodo.ErrLayerCount))
	})

	It("rejects blocks with the wrong number of values", func() {
		bad := strings.Replace(plusOutput, "  row 3     0.50000\n", "  row 3     0.50000   0.1\n", 1)
		_, err := komodo.ParsePowerMap(strings.NewReader(bad), geometry(plusCore(), 2))
		Expect(err).To(MatchError(komodo.ErrMalformedOutput))
	})

	It("rejects non-numeric values", func() {
		bad := strings.Replace(plusOutput, "1.20000", "1.2O000", 1)
		_, err := komodo.ParsePowerMap(strings.NewReader(bad), geometry(plusCore(), 2))
		Expect(err).To(MatchError(komodo.ErrMalformedOutput))
	})

	It("reports a missing file", func() {
		_, err := komodo.ParsePowerMapFile("/does/not/exist", geometry(plusCore(), 1))
		Expect(err).To(HaveOccurred())
	})
})
