package authusers

import "context"

type Repository interface {
	Delete(ctx context.Context, userID string) error
}
