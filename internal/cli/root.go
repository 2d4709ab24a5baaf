package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/SscSPs/factory_ops_app/internal/platform/config"
)

// NewRootCommand creates the factory_ops command. Running it without a
// subcommand starts the server.
func NewRootCommand() *cobra.Command {
	serve := NewServeCommand()

	cmd := &cobra.Command{
		Use:           "factory_ops",
		Short:         "Factory operations backend",
		Long:          "Factories, workers, daily piecework logs and reports for a factory owner and their managers.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}

	cmd.AddCommand(serve)
	cmd.AddCommand(NewMigrateCommand())
	return cmd
}

// newLogger builds the process logger and installs it as the slog default.
func newLogger() *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)
	return logger
}

func loadConfig(logger *slog.Logger) (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		return nil, err
	}
	return cfg, nil
}
