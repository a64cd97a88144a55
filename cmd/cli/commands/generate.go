package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/ward-rota/pkg/core/services"
)

// GenerateCmd creates the generate command: run the engine over the
// configured month and print the roster.
func GenerateCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the month's duty roster",
		Long: `Generate a duty roster for the configured month: a strict weighted
pass over every day, then (when hardFill is on) a relaxation pass over
seats left open. Pin --seed to reproduce a roster exactly.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}

			var seedOverride *uint32
			if cmd.Flags().Changed("seed") {
				seed, err := cmd.Flags().GetUint32("seed")
				if err != nil {
					return err
				}
				seedOverride = &seed
			}

			result, err := services.GenerateRoster(cfg, app.Logger, seedOverride)
			if err != nil {
				return fmt.Errorf("failed to generate roster: %w", err)
			}

			fmt.Print(services.RenderSchedule(result))

			if !result.SeedPinned {
				app.Logger.Info("Re-run with --seed to reproduce this roster",
					zap.Uint32("seed", result.Schedule.Seed))
			}
			return nil
		},
	}

	cmd.Flags().Uint32("seed", 0, "Pin the random sequence for a reproducible roster")

	return cmd
}
