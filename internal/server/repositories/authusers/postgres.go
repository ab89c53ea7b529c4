// Package authusers removes identity records from the auth schema. Only the
// privileged server connection may use it.
package authusers

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/huddle/internal/common"
	"github.com/dmitrijs2005/huddle/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Delete removes the auth record; dependent rows (profiles, events,
// app_open_events) go with it through ON DELETE CASCADE.
// Exactly one row must be affected, otherwise common.ErrorNotFound.
func (r *PostgresRepository) Delete(ctx context.Context, userID string) error {
	query := `DELETE FROM auth.users WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	ra, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrorNotFound
	}
	return nil
}
