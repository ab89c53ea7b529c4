package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/huddle/internal/common"
	"github.com/dmitrijs2005/huddle/internal/dbx"
	"github.com/dmitrijs2005/huddle/internal/logging"
	"github.com/dmitrijs2005/huddle/internal/netx"
	"github.com/dmitrijs2005/huddle/internal/server/geo"
	"github.com/dmitrijs2005/huddle/internal/server/models"
	"github.com/dmitrijs2005/huddle/internal/server/repositories/repomanager"
)

// ActivityInput is what the transport knows about an app-open report.
// Location, when set, came from the device and wins over ClientIP.
type ActivityInput struct {
	Location *models.Location
	ClientIP string
}

// ActivityService records that a user opened the app.
type ActivityService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	locator     geo.Locator
	now         func() time.Time
	logger      logging.Logger
}

func NewActivityService(db *sql.DB, m repomanager.RepositoryManager, locator geo.Locator, l logging.Logger) *ActivityService {
	return &ActivityService{
		db:          db,
		repomanager: m,
		locator:     locator,
		now:         time.Now,
		logger:      l.With("module", "activity_service"),
	}
}

// Report stamps the caller's profile with the current time (and location,
// when one is known) and appends an app-open row, in one transaction.
func (s *ActivityService) Report(ctx context.Context, caller *models.Identity, in ActivityInput) error {
	if caller == nil || caller.ID == "" {
		return common.Unauthorized()
	}

	loc := in.Location
	if loc == nil {
		loc = s.locate(ctx, in.ClientIP)
	}

	now := s.now().UTC()

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Profiles(tx).TouchActivity(ctx, caller.ID, now, loc); err != nil {
			return fmt.Errorf("update profile: %w", err)
		}
		if _, err := s.repomanager.AppOpens(tx).Create(ctx, caller.ID, now); err != nil {
			return fmt.Errorf("record app open: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error(ctx, "activity report failed", "user_id", caller.ID, "error", err)
		return common.NewWorkflowError(common.KindInternal, common.CodeInternal, err)
	}

	return nil
}

// locate returns nil for any address it cannot or should not look up.
func (s *ActivityService) locate(ctx context.Context, ip string) *models.Location {
	if s.locator == nil || ip == "" || netx.IsPrivateIP(ip) {
		return nil
	}
	loc, err := s.locator.Locate(ctx, ip)
	if err != nil {
		s.logger.Debug(ctx, "ip geolocation failed", "ip", ip, "error", err)
		return nil
	}
	return loc
}
