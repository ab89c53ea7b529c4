// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/huddle/internal/dbx"
	"github.com/dmitrijs2005/huddle/internal/server/migrations"
	"github.com/dmitrijs2005/huddle/internal/server/repositories/appopens"
	"github.com/dmitrijs2005/huddle/internal/server/repositories/authusers"
	"github.com/dmitrijs2005/huddle/internal/server/repositories/events"
	"github.com/dmitrijs2005/huddle/internal/server/repositories/profiles"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// Profiles returns a profiles.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Profiles(db dbx.DBTX) profiles.Repository {
	return profiles.NewPostgresRepository(db)
}

// Events returns an events.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Events(db dbx.DBTX) events.Repository {
	return events.NewPostgresRepository(db)
}

// AppOpens returns an appopens.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) AppOpens(db dbx.DBTX) appopens.Repository {
	return appopens.NewPostgresRepository(db)
}

// AuthUsers returns an authusers.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) AuthUsers(db dbx.DBTX) authusers.Repository {
	return authusers.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
