package appopens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/huddle/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, userID string, openedAt time.Time) (*models.AppOpenEvent, error)
}
