package events

import (
	"context"

	"github.com/dmitrijs2005/huddle/internal/server/models"
)

type Repository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Event, error)
}
