// Package services contains the privileged server-side workflows. This file
// implements AccountService, which removes a user together with the storage
// objects they own, either on their own request or on an admin's.
package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/dmitrijs2005/huddle/internal/common"
	"github.com/dmitrijs2005/huddle/internal/logging"
	"github.com/dmitrijs2005/huddle/internal/server/config"
	"github.com/dmitrijs2005/huddle/internal/server/models"
	"github.com/dmitrijs2005/huddle/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/huddle/internal/server/storage"
	"github.com/google/uuid"
)

// AdminDeleteRequest is the body of an admin delete call. ExpectedUsername
// is a confirmation the admin types in; it must match the target's username.
type AdminDeleteRequest struct {
	TargetUserID     string `json:"targetUserId"`
	ExpectedUsername string `json:"expectedUsername"`
}

// AccountService deletes accounts.
type AccountService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	store         storage.ObjectStore
	profileBucket string
	eventBucket   string
	logger        logging.Logger
}

func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, store storage.ObjectStore, cfg *config.Config, l logging.Logger) *AccountService {
	return &AccountService{
		db:            db,
		repomanager:   m,
		store:         store,
		profileBucket: cfg.ProfileImagesBucket,
		eventBucket:   cfg.EventImagesBucket,
		logger:        l.With("module", "account_service"),
	}
}

// DeleteOwnAccount removes the caller's avatar, the covers of events they
// own and finally their auth record. Storage cleanup is best-effort; the
// call only fails when the auth record cannot be deleted.
func (s *AccountService) DeleteOwnAccount(ctx context.Context, caller *models.Identity) error {
	if caller == nil || caller.ID == "" {
		return common.Unauthorized()
	}

	profile, err := s.repomanager.Profiles(s.db).GetByID(ctx, caller.ID)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.logger.Warn(ctx, "profile lookup failed, skipping avatar cleanup", "user_id", caller.ID, "error", err)
		}
		profile = nil
	}

	return s.deleteUser(ctx, caller.ID, profile)
}

// AdminDeleteUser deletes the target account on behalf of an admin once the
// confirmation username matches. Checks run in this order: caller role,
// required fields, target existence, target username, username match.
func (s *AccountService) AdminDeleteUser(ctx context.Context, caller *models.Identity, req AdminDeleteRequest) error {
	if caller == nil || caller.ID == "" {
		return common.Unauthorized()
	}

	profiles := s.repomanager.Profiles(s.db)

	callerProfile, err := profiles.GetByID(ctx, caller.ID)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return common.NewWorkflowError(common.KindInternal, common.CodeInternal, err)
	}
	if !callerProfile.IsAdmin(common.AdminRole) {
		s.logger.Warn(ctx, "non-admin attempted user deletion", "caller_id", caller.ID)
		return common.NewWorkflowError(common.KindForbidden, common.CodeForbidden, nil)
	}

	targetID := strings.TrimSpace(req.TargetUserID)
	expected := models.NormalizeUsername(req.ExpectedUsername)
	if targetID == "" || expected == "" {
		return common.NewWorkflowError(common.KindBadRequest, common.CodeMissingFields, nil)
	}

	// ids are uuids; anything else cannot name a user
	if _, err := uuid.Parse(targetID); err != nil {
		return common.NewWorkflowError(common.KindNotFound, common.CodeTargetNotFound, nil)
	}

	target, err := profiles.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.NewWorkflowError(common.KindNotFound, common.CodeTargetNotFound, nil)
		}
		return common.NewWorkflowError(common.KindInternal, common.CodeInternal, err)
	}

	actual, ok := target.NormalizedUsername()
	if !ok {
		return common.NewWorkflowError(common.KindConflict, common.CodeMissingUsername, nil)
	}
	if actual != expected {
		return common.NewWorkflowError(common.KindConflict, common.CodeUsernameMismatch, nil)
	}

	s.logger.Info(ctx, "admin deleting user", "caller_id", caller.ID, "target_id", targetID)

	return s.deleteUser(ctx, targetID, target)
}

// deleteUser runs the cleanup shared by both flows: avatar, event covers,
// then the auth record. profile may be nil.
func (s *AccountService) deleteUser(ctx context.Context, userID string, profile *models.Profile) error {
	if profile != nil && profile.AvatarURL != nil {
		s.removeObject(ctx, s.profileBucket, *profile.AvatarURL, "user_id", userID)
	}

	events, err := s.repomanager.Events(s.db).ListByOwner(ctx, userID)
	if err != nil {
		s.logger.Warn(ctx, "listing owned events failed, skipping cover cleanup", "user_id", userID, "error", err)
	}
	for _, e := range events {
		if e.ImageURL == nil {
			continue
		}
		s.removeObject(ctx, s.eventBucket, *e.ImageURL, "event_id", e.ID)
	}

	if err := s.repomanager.AuthUsers(s.db).Delete(ctx, userID); err != nil {
		s.logger.Error(ctx, "auth record deletion failed", "user_id", userID, "error", err)
		return common.NewWorkflowError(common.KindInternal, common.CodeInternal, err)
	}

	s.logger.Info(ctx, "user deleted", "user_id", userID)
	return nil
}

func (s *AccountService) removeObject(ctx context.Context, bucket, publicURL string, args ...any) {
	path, ok := storage.ResolveObjectPath(publicURL, bucket)
	if !ok {
		return
	}
	if err := s.store.DeleteObject(ctx, bucket, path); err != nil {
		s.logger.Warn(ctx, "object cleanup failed", append([]any{"bucket", bucket, "path", path, "error", err}, args...)...)
	}
}
