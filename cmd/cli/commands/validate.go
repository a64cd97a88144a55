package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ValidateCmd creates the validate command: load the configuration and
// report whether it would be accepted for a generation run.
func ValidateCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration and roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}

			fmt.Printf("Config OK: %d-%02d, %d employees\n", cfg.Year, cfg.Month, len(cfg.Employees))
			return nil
		},
	}
}
