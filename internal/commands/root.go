package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/SscSPs/sitebooks_ledger/internal/buildinfo"
	portssvc "github.com/SscSPs/sitebooks_ledger/internal/core/ports/services"
	"github.com/SscSPs/sitebooks_ledger/internal/core/services"
	"github.com/SscSPs/sitebooks_ledger/internal/platform/config"
	"github.com/SscSPs/sitebooks_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/sitebooks_ledger/pkg/database"
)

// Environment supplies the commands with services and migrations.
// Services returns a release func that must be called when the command is done.
type Environment struct {
	Logger    *slog.Logger
	JWTSecret string
	Now       func() time.Time
	Services  func(ctx context.Context) (*portssvc.ServiceContainer, func(), error)
	Migrate   func(ctx context.Context) (bool, error)
}

// NewEnvironment wires the commands to the configured database.
func NewEnvironment(cfg *config.Config, logger *slog.Logger) Environment {
	return Environment{
		Logger:    logger,
		JWTSecret: cfg.JWTSecret,
		Now:       time.Now,
		Services: func(ctx context.Context) (*portssvc.ServiceContainer, func(), error) {
			pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
			if err != nil {
				return nil, nil, fmt.Errorf("connecting to database: %w", err)
			}
			container := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(pool))
			return container, func() { database.ClosePgxPool(pool) }, nil
		},
		Migrate: func(ctx context.Context) (bool, error) {
			return database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger)
		},
	}
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand(env Environment) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "sitebooksctl",
		Short:   "Operate the sitebooks ledger from the command line",
		Version: fmt.Sprintf("%s (commit: %s)", buildinfo.Version, buildinfo.Commit),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newImportCommand(env),
		newBackfillCommand(env),
		newReconcileCommand(env),
		newMigrateCommand(env),
		newTokenCommand(env),
	)

	return rootCmd
}

// withServices opens the services for one command run.
func withServices(ctx context.Context, env Environment, run func(*portssvc.ServiceContainer) error) error {
	container, release, err := env.Services(ctx)
	if err != nil {
		return err
	}
	defer release()
	return run(container)
}
