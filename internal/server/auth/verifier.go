package auth

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/huddle/internal/common"
	"github.com/dmitrijs2005/huddle/internal/server/models"
)

// Verifier turns an Authorization header into the caller's identity.
type Verifier struct {
	secret []byte
}

func NewVerifier(secretKey string) *Verifier {
	return &Verifier{secret: []byte(secretKey)}
}

// Verify returns the identity behind a "Bearer <token>" header. A missing
// header, another scheme, a malformed, forged or expired token all produce
// the same common.ErrorUnauthorized so callers learn nothing about why a token failed.
func (v *Verifier) Verify(_ context.Context, authorization string) (*models.Identity, error) {
	token, ok := BearerToken(authorization)
	if !ok {
		return nil, common.ErrorUnauthorized
	}

	userID, err := GetUserIDFromToken(token, v.secret)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	return &models.Identity{ID: userID}, nil
}

// BearerToken extracts the token from an Authorization header value.
// The scheme is matched case-insensitively.
func BearerToken(authorization string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorization), " ")
	if !found || !strings.EqualFold(scheme, common.BearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}
