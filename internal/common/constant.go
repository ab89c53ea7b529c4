// Package common contains shared constants and sentinel errors used across
// Huddle components.
package common

// AuthorizationHeaderName is the HTTP header carrying the caller's bearer token.
const AuthorizationHeaderName = "Authorization"

// BearerScheme is the only authorization scheme the functions accept.
const BearerScheme = "Bearer"

// AdminRole is the profile role value that unlocks admin-only functions.
const AdminRole = "admin"

// Storage buckets holding user-uploaded images.
const (
	ProfileImagesBucket = "profile-images"
	EventImagesBucket   = "event-images"
)
