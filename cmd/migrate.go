package main

import (
	"context"
	"database/sql"
	"fmt"
	root "presell"
	"presell/internal/config"
	"presell/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateSchema applies the presell tables migrations.
func migrateSchema(ctx context.Context, db *sql.DB, dryRun bool) error {
	goose.SetBaseFS(root.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set goose dialect to postgres: %w", err)
	}

	if dryRun {
		return goose.StatusContext(ctx, db, "migrations")
	}

	return goose.UpContext(ctx, db, "migrations")
}

// migrateQueue brings the River tables to the latest version.
func migrateQueue(ctx context.Context, db *sql.DB, dryRun bool) error {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create river queue migrator: %w", err)
	}

	res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{DryRun: dryRun})
	if err != nil {
		return fmt.Errorf("could not migrate river queue: %w", err)
	}
	for _, version := range res.Versions {
		logger.Info(ctx, "river queue migration",
			zap.Int("version", version.Version),
			zap.Bool("dryRun", dryRun),
			zap.Duration("duration", version.Duration))
	}

	return nil
}

// migrateCommand constructs the 'migrate' subcommand that applies database
// migrations to the latest version using goose and rivermigrate.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			db, ok := strg.DB.(*sql.DB)
			if !ok {
				logger.Fatal(ctx, "postgres storage is not backed by *sql.DB")
			}

			if err := migrateSchema(ctx, db, dryRun); err != nil {
				logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err))
			}
			if err := migrateQueue(ctx, db, dryRun); err != nil {
				logger.Fatal(ctx, "could not migrate river queue", zap.Error(err))
			}

			logger.Info(ctx, "database is up to date", zap.Bool("dryRun", dryRun))
		},
	}

	cmd.Flags().Bool("dry-run", false, "Print pending migrations without applying them")

	return cmd
}
