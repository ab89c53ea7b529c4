// Package profiles reads and updates rows of the profiles table.
package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/huddle/internal/common"
	"github.com/dmitrijs2005/huddle/internal/dbx"
	"github.com/dmitrijs2005/huddle/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetByID returns the profile with the given id or common.ErrorNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	query :=
		`SELECT id, username, role, avatar_url, last_app_open_at, last_seen_at, last_known_lat, last_known_lng
		 FROM profiles
		 WHERE id = $1
		 `

	p := &models.Profile{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Username, &p.Role, &p.AvatarURL,
		&p.LastAppOpenAt, &p.LastSeenAt, &p.LastKnownLat, &p.LastKnownLng)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

// TouchActivity stamps last_app_open_at and last_seen_at with at. The stored
// coordinates are replaced only when loc is non-nil.
func (r *PostgresRepository) TouchActivity(ctx context.Context, userID string, at time.Time, loc *models.Location) error {
	var err error

	if loc == nil {
		query :=
			`UPDATE profiles SET last_app_open_at = $2, last_seen_at = $2
			 WHERE id = $1
			 `
		_, err = r.db.ExecContext(ctx, query, userID, at)
	} else {
		query :=
			`UPDATE profiles SET last_app_open_at = $2, last_seen_at = $2, last_known_lat = $3, last_known_lng = $4
			 WHERE id = $1
			 `
		_, err = r.db.ExecContext(ctx, query, userID, at, loc.Latitude, loc.Longitude)
	}

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
