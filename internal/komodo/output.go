package komodo

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"gonum.org/v1/gonum/mat"

	"nucore/internal/core"
)

// OutputPath is where the solver writes the 3D power distribution for the
// input at inputPath.
func OutputPath(inputPath string) string { return inputPath + "_3d_power.out" }

// WritePowerOutput writes layers in the solver's 3D power layout: for each
// layer a "z = <n>" marker, a header line, then one labelled row per core row
// holding the values of its occupied cells.
func WritePowerOutput(w io.Writer, c *core.Core, layers []*mat.Dense) error {
	bw := bufio.NewWriter(w)
	for k, layer := range layers {
		if r, cols := layer.Dims(); r != c.Size() || cols != c.Size() {
			return fmt.Errorf("layer %d is %dx%d, core size is %d", k+1, r, cols, c.Size())
		}
		fmt.Fprintf(bw, "  z = %d\n", k+1)
		fmt.Fprintf(bw, "%s%s\n", strings.Repeat(" ", rowLabelWidth), "relative power of occupied assemblies, west to east")
		for i := 0; i < c.Size(); i++ {
			fmt.Fprintf(bw, "%6d  ", i+1)
			lo, hi := c.RowSpan(i)
			for j := lo; j < hi; j++ {
				fmt.Fprintf(bw, " %10.5f", layer.At(i, j))
			}
			bw.WriteString("\n")
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// WritePowerOutputFile writes layers to path.
func WritePowerOutputFile(path string, c *core.Core, layers []*mat.Dense) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePowerOutput(f, c, layers); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
