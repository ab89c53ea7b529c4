// Package models defines server-side data models persisted in the database.
package models

import (
	"strings"
	"time"
)

// Identity is the authenticated caller, derived from the bearer token of
// the current request.
type Identity struct {
	ID string
}

// Profile is the public profile row attached to an auth user.
type Profile struct {
	ID            string
	Username      *string
	Role          *string
	AvatarURL     *string
	LastAppOpenAt *time.Time
	LastSeenAt    *time.Time
	LastKnownLat  *float64
	LastKnownLng  *float64
}

// IsAdmin reports whether the profile carries the admin role.
func (p *Profile) IsAdmin(adminRole string) bool {
	return p != nil && p.Role != nil && *p.Role == adminRole
}

// NormalizedUsername returns the trimmed, lowercased username and whether
// a non-empty username is set at all.
func (p *Profile) NormalizedUsername() (string, bool) {
	if p == nil || p.Username == nil {
		return "", false
	}
	u := NormalizeUsername(*p.Username)
	return u, u != ""
}

// NormalizeUsername is the canonical form used to compare usernames.
func NormalizeUsername(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
