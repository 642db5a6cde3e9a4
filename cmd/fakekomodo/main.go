package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"gonum.org/v1/gonum/mat"

	"nucore/internal/core"
	"nucore/internal/komodo"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "fakekomodo:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: fakekomodo <input>")
	}
	in, err := komodo.ReadInputFile(args[0])
	if err != nil {
		return err
	}
	c, err := in.Footprint(in.CaseName)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, " %s\n %s\n", in.CaseName, in.CaseDescription)
	fmt.Fprintf(stdout, " MODE %s, %d x %d x %d nodes, %d assemblies\n", in.Mode, in.NX, in.NY, in.NZ, c.AssemblyCount())

	layers := powerShape(c, in.NZ)
	if err := komodo.WritePowerOutputFile(komodo.OutputPath(args[0]), c, layers); err != nil {
		return err
	}
	fmt.Fprintln(stdout, " "+komodo.ExitMarker)
	return nil
}

// powerShape returns nz layers of relative power with a core average of 1.
func powerShape(c *core.Core, nz int) []*mat.Dense {
	n := c.Size()
	centre := float64(n-1) / 2
	radius := math.Hypot(centre, centre) + 1
	in := c.MembershipMap()

	layers := make([]*mat.Dense, nz)
	var total float64
	for k := range layers {
		axial := math.Sin(math.Pi * (float64(k) + 0.5) / float64(nz))
		layers[k] = mat.NewDense(n, n, nil)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if !in[i][j] {
					continue
				}
				r := math.Hypot(float64(i)-centre, float64(j)-centre)
				p := axial * math.Cos(math.Pi/2*r/radius)
				layers[k].Set(i, j, p)
				total += p
			}
		}
	}
	if total > 0 {
		scale := float64(nz*c.AssemblyCount()) / total
		for _, l := range layers {
			l.Scale(scale, l)
		}
	}
	return layers
}
