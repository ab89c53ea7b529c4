// Package events reads the events table.
package events

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/huddle/internal/dbx"
	"github.com/dmitrijs2005/huddle/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListByOwner returns every event owned by ownerID, in no particular order.
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Event, error) {
	query := `SELECT id, owner_id, image_url FROM events
		WHERE owner_id = $1
		`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to select events: %w", err)
	}
	defer rows.Close()

	var result []*models.Event
	for rows.Next() {
		var item models.Event
		if err := rows.Scan(&item.ID, &item.OwnerID, &item.ImageURL); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
