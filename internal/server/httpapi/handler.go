package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/dmitrijs2005/huddle/internal/common"
	"github.com/dmitrijs2005/huddle/internal/netx"
	"github.com/dmitrijs2005/huddle/internal/server/models"
	"github.com/dmitrijs2005/huddle/internal/server/services"
	"github.com/dmitrijs2005/huddle/internal/server/statuspage"
	"github.com/gin-gonic/gin"
)

const maxBodyBytes = 64 << 10

type IdentityVerifier interface {
	Verify(ctx context.Context, authorization string) (*models.Identity, error)
}

type AccountWorkflows interface {
	DeleteOwnAccount(ctx context.Context, caller *models.Identity) error
	AdminDeleteUser(ctx context.Context, caller *models.Identity, req services.AdminDeleteRequest) error
}

type ActivityReporter interface {
	Report(ctx context.Context, caller *models.Identity, in services.ActivityInput) error
}

type StatusProvider interface {
	Status(ctx context.Context) statuspage.NormalizedStatus
}

// Handler holds the collaborators of the function endpoints.
type Handler struct {
	verifier IdentityVerifier
	accounts AccountWorkflows
	activity ActivityReporter
	status   StatusProvider
}

func NewHandler(v IdentityVerifier, a AccountWorkflows, r ActivityReporter, s StatusProvider) *Handler {
	return &Handler{verifier: v, accounts: a, activity: r, status: s}
}

func (h *Handler) identify(c *gin.Context) (*models.Identity, error) {
	id, err := h.verifier.Verify(c.Request.Context(), c.GetHeader(common.AuthorizationHeaderName))
	if err != nil {
		return nil, common.Unauthorized()
	}
	return id, nil
}

// DeleteAccount handles POST /functions/v1/delete-account. Failures use the
// {error: message} body the mobile client expects.
func (h *Handler) DeleteAccount(c *gin.Context) {
	caller, err := h.identify(c)
	if err == nil {
		err = h.accounts.DeleteOwnAccount(c.Request.Context(), caller)
	}
	if err != nil {
		we := common.AsWorkflowError(err)
		_ = c.Error(err)
		c.JSON(we.Kind.HTTPStatus(), gin.H{"error": we.Message()})
		return
	}

	requestLogger(c).Info(c.Request.Context(), "account deleted", "user_id", caller.ID)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AdminDeleteUser handles POST /functions/v1/admin-delete-user. The body is
// parsed before the caller is identified.
func (h *Handler) AdminDeleteUser(c *gin.Context) {
	var req services.AdminDeleteRequest
	if err := json.NewDecoder(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(c, common.NewWorkflowError(common.KindBadRequest, common.CodeBadRequest, err))
		return
	}

	caller, err := h.identify(c)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := h.accounts.AdminDeleteUser(c.Request.Context(), caller, req); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ReportAppActivity handles GET and POST /functions/v1/report-app-activity.
func (h *Handler) ReportAppActivity(c *gin.Context) {
	caller, err := h.identify(c)
	if err != nil {
		writeError(c, err)
		return
	}

	in := services.ActivityInput{ClientIP: netx.ClientIP(c.Request.Header)}
	if c.Request.Method == http.MethodPost {
		raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
		if err == nil {
			in.Location = coordinatesFromBody(raw)
		}
	}

	if err := h.activity.Report(c.Request.Context(), caller, in); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Status handles GET /functions/v1/supabase-status. It always answers 200.
func (h *Handler) Status(c *gin.Context) {
	payload := h.status.Status(c.Request.Context())
	c.Header("Cache-Control", statuspage.CacheControl)
	c.JSON(http.StatusOK, payload)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func preflight(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func methodNotAllowed(c *gin.Context) {
	writeError(c, common.NewWorkflowError(common.KindMethodNotAllowed, common.CodeMethodNotAllowed, nil))
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "not_found"})
}

func writeError(c *gin.Context, err error) {
	we := common.AsWorkflowError(err)
	_ = c.Error(err)
	if we.Kind == common.KindInternal {
		requestLogger(c).Error(c.Request.Context(), "request failed", "error", err)
	}
	c.JSON(we.Kind.HTTPStatus(), gin.H{"success": false, "error": we.Code})
}

// coordinatesFromBody returns a location only when both latitude and
// longitude are JSON numbers.
func coordinatesFromBody(raw []byte) *models.Location {
	var body struct {
		Latitude  any `json:"latitude"`
		Longitude any `json:"longitude"`
	}
	if len(raw) == 0 || json.Unmarshal(raw, &body) != nil {
		return nil
	}
	lat, ok1 := body.Latitude.(float64)
	lng, ok2 := body.Longitude.(float64)
	if !ok1 || !ok2 {
		return nil
	}
	return &models.Location{Latitude: lat, Longitude: lng}
}
