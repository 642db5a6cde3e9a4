package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"nucore/internal/core"
)

func coreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "core",
		Short: "Inspect core footprints",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show <core.yaml>",
		Short: "Validate a core file and print its membership map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCore(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), c.String())
			return nil
		},
	})
	return cmd
}

func loadCore(path string) (*core.Core, error) {
	var c core.Core
	if err := loadDoc(path, &c); err != nil {
		return nil, err
	}
	return &c, nil
}
