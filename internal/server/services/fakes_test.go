package services

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/huddle/internal/common"
	"github.com/dmitrijs2005/huddle/internal/dbx"
	"github.com/dmitrijs2005/huddle/internal/server/models"
	"github.com/dmitrijs2005/huddle/internal/server/repositories/appopens"
	"github.com/dmitrijs2005/huddle/internal/server/repositories/authusers"
	"github.com/dmitrijs2005/huddle/internal/server/repositories/events"
	"github.com/dmitrijs2005/huddle/internal/server/repositories/profiles"
	"github.com/stretchr/testify/require"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func strPtr(s string) *string { return &s }

// --- fake repositories ---

type touchCall struct {
	userID string
	at     time.Time
	loc    *models.Location
}

type fakeProfiles struct {
	rows     map[string]*models.Profile
	getErr   error
	touchErr error
	touches  []touchCall
}

func (f *fakeProfiles) GetByID(_ context.Context, id string) (*models.Profile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	p, ok := f.rows[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return p, nil
}

func (f *fakeProfiles) TouchActivity(_ context.Context, userID string, at time.Time, loc *models.Location) error {
	f.touches = append(f.touches, touchCall{userID: userID, at: at, loc: loc})
	return f.touchErr
}

type fakeEvents struct {
	byOwner map[string][]*models.Event
	err     error
}

func (f *fakeEvents) ListByOwner(_ context.Context, ownerID string) ([]*models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byOwner[ownerID], nil
}

type fakeAppOpens struct {
	created []string
	err     error
}

func (f *fakeAppOpens) Create(_ context.Context, userID string, openedAt time.Time) (*models.AppOpenEvent, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, userID)
	return &models.AppOpenEvent{ID: "ao-1", UserID: userID, OpenedAt: openedAt}, nil
}

type fakeAuthUsers struct {
	deleted []string
	err     error
}

func (f *fakeAuthUsers) Delete(_ context.Context, userID string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, userID)
	return nil
}

type fakeRepoManager struct {
	profiles  *fakeProfiles
	events    *fakeEvents
	appOpens  *fakeAppOpens
	authUsers *fakeAuthUsers
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		profiles:  &fakeProfiles{rows: map[string]*models.Profile{}},
		events:    &fakeEvents{byOwner: map[string][]*models.Event{}},
		appOpens:  &fakeAppOpens{},
		authUsers: &fakeAuthUsers{},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Profiles(dbx.DBTX) profiles.Repository       { return m.profiles }
func (m *fakeRepoManager) Events(dbx.DBTX) events.Repository           { return m.events }
func (m *fakeRepoManager) AppOpens(dbx.DBTX) appopens.Repository       { return m.appOpens }
func (m *fakeRepoManager) AuthUsers(dbx.DBTX) authusers.Repository     { return m.authUsers }

// --- fake object store ---

type deleteCall struct {
	bucket string
	key    string
}

type fakeStore struct {
	mu    sync.Mutex
	calls []deleteCall
	err   error
}

func (f *fakeStore) DeleteObject(_ context.Context, bucket, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, deleteCall{bucket: bucket, key: key})
	return f.err
}

// --- fake locator ---

type fakeLocator struct {
	calls []string
	loc   *models.Location
	err   error
}

func (f *fakeLocator) Locate(_ context.Context, ip string) (*models.Location, error) {
	f.calls = append(f.calls, ip)
	if f.err != nil {
		return nil, f.err
	}
	return f.loc, nil
}
