package profiles

import (
	"context"
	"time"

	"github.com/dmitrijs2005/huddle/internal/server/models"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*models.Profile, error)
	TouchActivity(ctx context.Context, userID string, at time.Time, loc *models.Location) error
}
