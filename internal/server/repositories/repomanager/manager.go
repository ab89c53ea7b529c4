package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/huddle/internal/dbx"
	"github.com/dmitrijs2005/huddle/internal/server/repositories/appopens"
	"github.com/dmitrijs2005/huddle/internal/server/repositories/authusers"
	"github.com/dmitrijs2005/huddle/internal/server/repositories/events"
	"github.com/dmitrijs2005/huddle/internal/server/repositories/profiles"
)

// RepositoryManager vends repositories bound to a connection or transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Profiles(db dbx.DBTX) profiles.Repository
	Events(db dbx.DBTX) events.Repository
	AppOpens(db dbx.DBTX) appopens.Repository
	AuthUsers(db dbx.DBTX) authusers.Repository
}
