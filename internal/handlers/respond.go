package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto the failure envelope.
// Server-side failures are logged with their cause; the client only sees the safe message.
func respondError(c *gin.Context, err error) {
	status, code, message := apperrors.ToHTTP(err)
	logger := middleware.GetLoggerFromContext(c)
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", slog.String("error", err.Error()), slog.Int("status", status))
	} else {
		logger.Info("Request rejected", slog.String("code", code), slog.Int("status", status))
	}
	c.JSON(status, dto.Fail(code, message))
}

// bindJSON decodes the body into req, answering 400 itself on failure.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.GetLoggerFromContext(c).Warn("Failed to bind JSON body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail(apperrors.CodeValidation, "invalid request body"))
		return false
	}
	return true
}

// bindQuery decodes query parameters into req, answering 400 itself on failure.
func bindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		middleware.GetLoggerFromContext(c).Warn("Failed to bind query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail(apperrors.CodeValidation, "invalid query parameters"))
		return false
	}
	return true
}
