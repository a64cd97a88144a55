package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/ward-rota/pkg/core/services"
)

// EmployeesCmd creates the employees command: list the loaded roster
// with preferences, targets, and reserve status.
func EmployeesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "employees",
		Short: "List the configured employee roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}

			fmt.Print(services.RenderEmployees(services.BuildEmployees(cfg)))
			return nil
		},
	}
}
