package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"nucore/internal/komodo"
)

func xsecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xsec",
		Short: "Assemble and inspect cross-section libraries",
	}

	var out string
	build := &cobra.Command{
		Use:   "build [results-dir]",
		Short: "Collect depletion results into the solver cross-section library",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := appCtx.Config.MGXSDir
			if len(args) == 1 {
				abs, err := filepath.Abs(args[0])
				if err != nil {
					return err
				}
				results = abs
			}
			dir := out
			if dir == "" {
				dir = appCtx.Config.MGXSDir
			}
			path, n, err := appCtx.XSec.Build(results, dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d materials to %s\n", n, path)
			return nil
		},
	}
	build.Flags().StringVar(&out, "out", "", "output dir (default <mgxs-dir>)")

	show := &cobra.Command{
		Use:   "show <library>",
		Short: "List the materials of a cross-section library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			lib, err := komodo.ReadLibrary(f)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%d groups, %d materials\n", lib.NGroups, len(lib.Materials))
			for _, m := range lib.Materials {
				fmt.Fprintf(w, "%4d  %s\n", m.Index, m.Comment)
			}
			return nil
		},
	}

	cmd.AddCommand(build, show)
	return cmd
}
