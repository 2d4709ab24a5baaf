package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/SscSPs/factory_ops_app/pkg/database"
)

// NewMigrateCommand creates the `migrate [up|down]` command.
func NewMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Apply or roll back database migrations",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(database.MigrateUp), string(database.MigrateDown)},
		RunE: func(cmd *cobra.Command, args []string) error {
			direction := database.MigrateUp
			if len(args) == 1 {
				direction = database.MigrationDirection(args[0])
			}
			if direction != database.MigrateUp && direction != database.MigrateDown {
				return fmt.Errorf("invalid direction %q: must be up or down", args[0])
			}

			logger := newLogger()
			cfg, err := loadConfig(logger)
			if err != nil {
				return err
			}
			logger.Info("Running database migrations...", slog.String("direction", string(direction)))
			return database.RunMigrations(logger, cfg.DatabaseURL, cfg.MigrationsPath, direction)
		},
	}
}
