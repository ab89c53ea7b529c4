package httpapi

import (
	"errors"

	"github.com/dmitrijs2005/huddle/internal/logging"
	"github.com/gin-gonic/gin"
)

// FunctionsPrefix is where the edge functions are mounted.
const FunctionsPrefix = "/functions/v1"

var errNilHandler = errors.New("httpapi: nil handler")

// NewRouter wires middleware and routes. Unsupported methods on a known
// path answer 405 method_not_allowed.
func NewRouter(h *Handler, l logging.Logger) (*gin.Engine, error) {
	if h == nil {
		return nil, errNilHandler
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(requestIDMiddleware(l), accessLogMiddleware(), gin.Recovery(), corsHeadersMiddleware(), corsMiddleware())
	r.NoMethod(methodNotAllowed)
	r.NoRoute(notFound)

	r.GET("/healthz", h.Health)

	fn := r.Group(FunctionsPrefix)
	{
		fn.POST("/delete-account", h.DeleteAccount)
		fn.OPTIONS("/delete-account", preflight)

		fn.POST("/admin-delete-user", h.AdminDeleteUser)
		fn.OPTIONS("/admin-delete-user", preflight)

		fn.GET("/report-app-activity", h.ReportAppActivity)
		fn.POST("/report-app-activity", h.ReportAppActivity)
		fn.OPTIONS("/report-app-activity", preflight)

		fn.GET("/supabase-status", h.Status)
		fn.OPTIONS("/supabase-status", preflight)
	}

	return r, nil
}
