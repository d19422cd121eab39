package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ds124wfegd/club-events/config"
	"github.com/sirupsen/logrus"

	_ "github.com/lib/pq"
)

func NewPostgresDB(ctx context.Context, cfg *config.DatabaseConfig) (*sql.DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logrus.Info("Successfully connected to PostgreSQL")
	return db, nil
}

// RunMigrations creates the schema if it does not exist yet. Rows written
// before min/max team sizes existed keep NULL bounds and a legacy team_size.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS events (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			event_date TIMESTAMPTZ NOT NULL,
			coordinators JSONB NOT NULL DEFAULT '[]',
			whatsapp_link TEXT NOT NULL,
			is_team_based BOOLEAN NOT NULL DEFAULT FALSE,
			min_team_size INTEGER,
			max_team_size INTEGER,
			team_size INTEGER,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS participants (
			seq BIGSERIAL,
			id UUID PRIMARY KEY,
			event_id UUID NOT NULL REFERENCES events(id) ON DELETE CASCADE,
			is_team_registration BOOLEAN NOT NULL DEFAULT FALSE,
			team_size INTEGER NOT NULL DEFAULT 1,
			name TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			reg_no TEXT NOT NULL DEFAULT '',
			team_name TEXT NOT NULL DEFAULT '',
			team_members JSONB,
			submitted_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,

		// Indexes
		`CREATE INDEX IF NOT EXISTS idx_events_event_date ON events(event_date)`,
		`CREATE INDEX IF NOT EXISTS idx_participants_event_seq ON participants(event_id, seq)`,
	}

	for _, migration := range migrations {
		if _, err := db.ExecContext(ctx, migration); err != nil {
			return fmt.Errorf("failed to execute migration: %w", err)
		}
	}

	logrus.Info("Database migrations completed successfully")
	return nil
}
