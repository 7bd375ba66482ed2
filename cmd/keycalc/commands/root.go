package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"keycalc/internal/app"
	"keycalc/internal/logger"
)

var (
	home      string
	noHistory bool
	noColor   bool
	logLevel  string
	appCtx    *app.App
)

func Execute() error {
	defer logger.Stop()
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "keycalc",
		Short:         "Keypad calculator with live preview and history",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := app.DefaultHome()
				if err != nil {
					return err
				}
				home = dir
			}

			cfg, err := app.LoadConfig(app.ConfigPath(home))
			if err != nil {
				return err
			}
			cfg.Home = home
			if noHistory {
				cfg.History.Enabled = false
			}
			if logLevel != "" {
				cfg.Logging.Level = logLevel
			}
			if noColor {
				color.NoColor = true
			}

			appCtx, err = app.NewWire(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.keycalc)")
	root.PersistentFlags().BoolVar(&noHistory, "no-history", false, "do not record commits")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured output")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")

	root.AddCommand(initCmd(), evalCmd(), pressCmd(), replCmd())
	return root
}
