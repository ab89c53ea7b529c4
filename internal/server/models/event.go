package models

import "time"

// Event is the subset of an event row the server functions care about:
// who owns it and where its cover image lives.
type Event struct {
	ID       string
	OwnerID  string
	ImageURL *string
}

// AppOpenEvent is one audit row written every time a client reports activity.
type AppOpenEvent struct {
	ID       string
	UserID   string
	OpenedAt time.Time
}
