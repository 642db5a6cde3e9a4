package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"nucore/internal/domain"
	"nucore/internal/komodo"
	"nucore/internal/services/cycle"
	"nucore/internal/services/xseclib"
)

// geomFlags are the flags that describe the core geometry of a solver case.
type geomFlags struct {
	core       string
	axialNodes int
	radialSize float64
	nodeSize   float64
}

func (g *geomFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&g.core, "core", "", "core file")
	cmd.Flags().IntVar(&g.axialNodes, "axial-nodes", 25, "number of axial layers")
	cmd.Flags().Float64Var(&g.radialSize, "radial-size", 15.24, "assembly pitch (cm)")
	cmd.Flags().Float64Var(&g.nodeSize, "node-size", 15.24, "axial node height (cm)")
	_ = cmd.MarkFlagRequired("core")
}

func (g *geomFlags) geometry() (domain.CoreGeometry, error) {
	c, err := loadCore(g.core)
	if err != nil {
		return domain.CoreGeometry{}, err
	}
	geom := domain.CoreGeometry{
		Core:               c,
		AxialNodes:         g.axialNodes,
		AssemblyRadialSize: g.radialSize,
		AssemblyNodeSize:   g.nodeSize,
	}
	return geom, geom.Validate()
}

// caseFlags select one void iteration of a cycle case.
type caseFlags struct {
	geomFlags
	xsec      string
	step      int
	iteration int
}

func (f *caseFlags) bind(cmd *cobra.Command) {
	f.geomFlags.bind(cmd)
	cmd.Flags().StringVar(&f.xsec, "xsec", "", "cross-section library (default <mgxs-dir>/komodo_XSEC.txt)")
	cmd.Flags().IntVar(&f.step, "step", 0, "depletion step")
	cmd.Flags().IntVar(&f.iteration, "iteration", 0, "void iteration")
}

func (f *caseFlags) resolve(name string) (domain.CoreGeometry, string, domain.Case, error) {
	geom, err := f.geometry()
	if err != nil {
		return geom, "", domain.Case{}, err
	}
	xsec := f.xsec
	if xsec == "" {
		xsec = filepath.Join(appCtx.Config.MGXSDir, xseclib.LibraryFileName)
	}
	return geom, xsec, domain.Case{Name: name, Step: f.step, Iteration: f.iteration}, nil
}

func komodoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "komodo",
		Short: "Build, run and read KOMODO solver files",
	}
	cmd.AddCommand(komodoBuildCmd(), komodoRunCmd(), komodoParseCmd(), komodoDiffCmd())
	return cmd
}

func komodoBuildCmd() *cobra.Command {
	var f caseFlags
	cmd := &cobra.Command{
		Use:   "build <case>",
		Short: "Write the solver input of one void iteration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			geom, xsec, c, err := f.resolve(args[0])
			if err != nil {
				return err
			}
			path, err := appCtx.Cycle.VoidIteration(geom, xsec, c)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	f.bind(cmd)
	return cmd
}

func komodoRunCmd() *cobra.Command {
	var f caseFlags
	cmd := &cobra.Command{
		Use:   "run <case>",
		Short: "Build the input, run the solver and print layer power sums",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			geom, xsec, c, err := f.resolve(args[0])
			if err != nil {
				return err
			}
			appCtx.Log.Info("Running solver", "case", c.Description(), "executable", appCtx.Config.KomodoExecutable)
			layers, err := appCtx.Cycle.Run(cmd.Context(), geom, xsec, c)
			if err != nil {
				return err
			}
			printLayerSums(cmd.OutOrStdout(), layers)
			return nil
		},
	}
	f.bind(cmd)
	return cmd
}

func komodoParseCmd() *cobra.Command {
	var g geomFlags
	cmd := &cobra.Command{
		Use:   "parse <output>",
		Short: "Parse a 3D power output and print layer power sums",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			geom, err := g.geometry()
			if err != nil {
				return err
			}
			layers, err := appCtx.Parser.ParsePowerMapFile(args[0], geom)
			if err != nil {
				return err
			}
			printLayerSums(cmd.OutOrStdout(), layers)
			return nil
		},
	}
	g.bind(cmd)
	return cmd
}

func komodoDiffCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "diff <a.inp> <b.inp>",
		Short: "Line diff of two solver inputs",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			b, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}
			d := komodo.Diff(string(a), string(b))
			out := cmd.OutOrStdout()
			for _, l := range d {
				if all || l.Op != komodo.DiffEqual {
					fmt.Fprintln(out, l)
				}
			}
			if !komodo.Changed(d) {
				fmt.Fprintln(out, "inputs are identical")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "print unchanged lines too")
	return cmd
}

func printLayerSums(w io.Writer, layers []*mat.Dense) {
	var total float64
	for k, s := range cycle.LayerSums(layers) {
		fmt.Fprintf(w, "z = %3d  %12.5f\n", k+1, s)
		total += s
	}
	fmt.Fprintf(w, "total    %12.5f\n", total)
}
