package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jakechorley/ward-rota/cmd/cli/commands"
	"github.com/jakechorley/ward-rota/pkg/utils/logging"
)

var (
	env        string
	configPath string
	verbose    bool
	app        *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ward-rota",
		Short: "ward-rota - generate monthly day/night duty rosters",
		Long: `A CLI tool that assigns employees to day and night shifts across a
calendar month, balancing preferences, fairness, rest, and coverage.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "prod", "Environment name used for log files")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging on the console")

	rootCmd.AddCommand(commands.GenerateCmd(appRef()))
	rootCmd.AddCommand(commands.ValidateCmd(appRef()))
	rootCmd.AddCommand(commands.EmployeesCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns the shared context; commands resolve its fields only
// at run time, after initApp has populated them.
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

func initApp() error {
	logger, err := logging.InitLogger(env, verbose)
	if err != nil {
		return err
	}

	ref := appRef()
	ref.Logger = logger
	ref.ConfigPath = configPath
	return nil
}
