package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"nucore/internal/lattice"
)

func latticeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lattice",
		Short: "Generate assembly lattice maps",
	}
	cmd.AddCommand(latticePyramidCmd(), latticeBACmd())
	return cmd
}

func latticePyramidCmd() *cobra.Command {
	var p lattice.Pyramid
	var floor float64
	cmd := &cobra.Command{
		Use:   "pyramid",
		Short: "Print an enrichment map peaking at the lattice centre",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("min") {
				p.Min = &floor
			}
			m, err := p.Map()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v\n", mat.Formatted(m, mat.Squeeze()))
			return nil
		},
	}
	cmd.Flags().IntVar(&p.Size, "size", 10, "lattice size")
	cmd.Flags().Float64Var(&p.Peak, "peak", 4.9, "enrichment at the centre")
	cmd.Flags().Float64Var(&p.Penalty, "penalty", 0.1, "enrichment drop per pin step")
	cmd.Flags().IntVar(&p.Digits, "digits", 2, "decimals kept")
	cmd.Flags().Float64Var(&floor, "min", 0, "lowest enrichment written")
	return cmd
}

func latticeBACmd() *cobra.Command {
	var size, pins int
	var enrichment float64
	cmd := &cobra.Command{
		Use:   "ba",
		Short: "Print a burnable-absorber map",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := lattice.BAMap(pins, size, enrichment)
			if err != nil {
				return err
			}
			positions, err := lattice.BAPinPositions(pins, size)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%v\n", mat.Formatted(m, mat.Squeeze()))
			for _, pos := range positions {
				fmt.Fprintf(w, "pin (%d, %d)\n", pos.Row, pos.Col)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", 10, "lattice size")
	cmd.Flags().IntVar(&pins, "pins", 8, "number of BA pins (0, 4, 8, 12 or 16)")
	cmd.Flags().Float64Var(&enrichment, "enrichment", 5.0, "Gd2O3 weight percent")
	return cmd
}
