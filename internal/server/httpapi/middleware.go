package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/articlegate/internal/common"
	"github.com/dmitrijs2005/articlegate/internal/server/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// currentUserKey is the gin context key under which requireAuth stores the
// authenticated principal.
const currentUserKey = "currentUser"

// requestLogger tags every request with a generated id and logs a summary
// line once the handler chain has finished.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Writer.Header().Set("X-Request-Id", requestID)

		c.Next()

		s.logger.Info(c.Request.Context(), "request handled",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

// abortUnauthorized writes the uniform 401 response. The body and the
// WWW-Authenticate challenge are identical for every authentication failure
// so the response does not leak which check rejected the request.
func abortUnauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", common.BearerChallenge)
	c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Detail: "Not authenticated"})
}

// requireAuth extracts the bearer token from the Authorization header,
// resolves it to a stored user and places that user into the request
// context. Requests without a valid token never reach the handler.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(common.AuthorizationHeaderName)
		if !strings.HasPrefix(header, common.BearerSchemePrefix) {
			abortUnauthorized(c)
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(header, common.BearerSchemePrefix))
		if tokenString == "" {
			abortUnauthorized(c)
			return
		}

		user, err := s.users.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			if errors.Is(err, common.ErrorUnauthorized) {
				abortUnauthorized(c)
				return
			}
			s.logger.Error(c.Request.Context(), "error authenticating request", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Detail: "Internal server error"})
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// userFromContext returns the principal stored by requireAuth.
func userFromContext(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*models.User)
	return u, ok
}
