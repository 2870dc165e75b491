package migration

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/phuslu/log"
)

// RunMigrations executes all necessary database migrations on startup
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	log.Info().Msg("starting database migrations")

	migrations := []Migration{
		{
			Name: "create_user_cvs",
			Up: func(ctx context.Context, pool *pgxpool.Pool) error {
				return createUserCVs(ctx, pool)
			},
		},
	}

	for _, m := range migrations {
		if err := m.Up(ctx, pool); err != nil {
			log.Error().Err(err).Str("name", m.Name).Msg("migration failed")
			return err
		}
		log.Info().Str("name", m.Name).Msg("migration completed")
	}

	return nil
}

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

// createUserCVs creates the single-record-per-user CV table.
func createUserCVs(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE TABLE IF NOT EXISTS user_cvs (
			user_id UUID PRIMARY KEY,
			cv_data JSONB NOT NULL DEFAULT '{}'::jsonb,
			selected_template TEXT NOT NULL DEFAULT 'james-watson',
			last_updated TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`

	_, err := pool.Exec(ctx, query)
	return err
}
