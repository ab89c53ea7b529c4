package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/huddle/internal/common"
	"github.com/dmitrijs2005/huddle/internal/logging"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-ID"
	loggerKey       = "logger"
)

var allowedHeaders = []string{
	strings.ToLower(common.AuthorizationHeaderName), "x-client-info", "apikey", "content-type",
}

// corsHeadersMiddleware stamps the CORS headers on every response, including
// ones to callers that send no Origin. Shared caches may store those and hand
// them to browsers later.
func corsHeadersMiddleware() gin.HandlerFunc {
	headers := strings.Join(allowedHeaders, ", ")
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", headers)
		c.Next()
	}
}

// corsMiddleware answers browser preflights from any origin.
func corsMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:    allowedHeaders,
		ExposeHeaders: []string{HeaderRequestID},
		MaxAge:        24 * time.Hour,
	})
}

// requestIDMiddleware tags every request with an id, reusing the caller's
// when it is a valid UUID, and stores a logger carrying it.
func requestIDMiddleware(l logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Set(loggerKey, l.With("request_id", id))
		c.Next()
	}
}

// accessLogMiddleware logs one line per request after it completes.
func accessLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		l := requestLogger(c)
		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		}
		if last := c.Errors.Last(); last != nil {
			args = append(args, "error", last.Error())
		}
		l.Info(c.Request.Context(), "request", args...)
	}
}

func requestLogger(c *gin.Context) logging.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if l, ok := v.(logging.Logger); ok {
			return l
		}
	}
	return logging.NopLogger{}
}
