package commands

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"nucore/internal/app"
)

var (
	home       string
	configFile string
	logLevel   string
	logJSON    bool
	komodoExe  string
	appCtx     *app.App
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "nucore",
		Short:        "Core map, KOMODO input and cross-section library toolkit",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v, err := app.NewViper(cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			cfg, err := app.Load(v, configFile)
			if err != nil {
				return err
			}
			appCtx, err = app.New(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.nucore)")
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (default <home>/nucore.yaml)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "error, warn, info, debug or trace")
	root.PersistentFlags().BoolVar(&logJSON, "log-json", false, "log as JSON")
	root.PersistentFlags().StringVar(&komodoExe, "komodo", "komodo", "KOMODO executable")

	root.AddCommand(configCmd(), coreCmd(), mapCmd(), komodoCmd(), xsecCmd(), latticeCmd())
	return root
}

// loadDoc reads a YAML or JSON document named on the command line. Relative
// paths are taken from the working directory, not the home dir.
func loadDoc(path string, v any) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	return appCtx.Docs.Load(abs, v)
}
