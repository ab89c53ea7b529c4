// Package appopens appends rows to the app_open_events audit log.
package appopens

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/huddle/internal/dbx"
	"github.com/dmitrijs2005/huddle/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, userID string, openedAt time.Time) (*models.AppOpenEvent, error) {
	query :=
		`INSERT INTO app_open_events (user_id, opened_at)
         VALUES ($1, $2)
		 RETURNING id
		 `

	e := &models.AppOpenEvent{UserID: userID, OpenedAt: openedAt}
	if err := r.db.QueryRowContext(ctx, query, userID, openedAt).Scan(&e.ID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return e, nil
}
