package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"nucore/internal/app"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or persist the resolved configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := yaml.Marshal(appCtx.Config)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# home: %s\n%s", appCtx.Config.Home, b)
			return nil
		},
	}, &cobra.Command{
		Use:   "save",
		Short: "Write the resolved configuration to <home>/nucore.yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.SaveConfig(appCtx.Docs, appCtx.Config); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", filepath.Join(appCtx.Config.Home, app.ConfigFileName))
			return nil
		},
	})
	return cmd
}
