package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/cbr_loader/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondServiceError maps a service error onto an HTTP status and logs it.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, what string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn(what+" not found")
		c.JSON(http.StatusNotFound, gin.H{"error": what + " not found"})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("Service call failed", slog.String("resource", what), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve " + what})
	}
}
