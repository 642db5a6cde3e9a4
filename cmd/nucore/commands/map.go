package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"nucore/internal/coremap"
)

func mapCmd() *cobra.Command {
	var corePath, kind, layout string

	check := &cobra.Command{
		Use:   "check <map.yaml>",
		Short: "Validate a typed map and check it against a core",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := coremap.ParseKind(kind)
			if err != nil {
				return err
			}
			var raw any
			if err := loadDoc(args[0], &raw); err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if layout == "axial" {
				n, err := coremap.DecodeAxialLen(k, raw)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "axial %s map with %d nodes\n", k, n)
				return nil
			}
			if layout != "map" && layout != "list" {
				return fmt.Errorf("unknown layout %q (want map, list or axial)", layout)
			}
			m, err := coremap.DecodeOverlay(k, layout == "list", raw)
			if err != nil {
				return err
			}
			if corePath == "" {
				return fmt.Errorf("--core required for layout %s", layout)
			}
			c, err := loadCore(corePath)
			if err != nil {
				return err
			}
			if err := m.AssertMapSize(c); err != nil {
				return err
			}
			fmt.Fprintf(out, "%s %s map fits core %s: %d populated cells\n", k, layout, c.Name(), m.Populated())
			return nil
		},
	}
	check.Flags().StringVar(&corePath, "core", "", "core file the map overlays")
	check.Flags().StringVar(&kind, "kind", "float", "element kind: float, int, str or bool")
	check.Flags().StringVar(&layout, "layout", "map", "map, list or axial")

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Validate core maps",
	}
	cmd.AddCommand(check)
	return cmd
}
