package handler

import (
	"log/slog"
	"net/http"

	"travelbooking/internal/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"

	requestIDKey = "request_id"
)

var errNotAuthenticated = apperror.Unauthorized("Not authenticated")

// RequestID присваивает запросу идентификатор, если клиент его не передал.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequireBasicAuth проверяет учетные данные basic-авторизации на каждом запросе.
func (h *Handler) RequireBasicAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok {
			c.Header("WWW-Authenticate", "Basic")
			h.abortWithError(c, errNotAuthenticated)
			return
		}
		if _, err := h.AuthService.CheckCredentials(username, password); err != nil {
			if appErr, ok := apperror.From(err); ok && appErr.Status == http.StatusUnauthorized {
				h.requestLogger(c).Debug("basic auth rejected", "username", username, "reason", appErr.Message)
				c.Header("WWW-Authenticate", "Basic")
			}
			h.abortWithError(c, err)
			return
		}
		c.Next()
	}
}

func (h *Handler) requestLogger(c *gin.Context) *slog.Logger {
	return h.logger.With(requestIDKey, c.GetString(requestIDKey))
}
