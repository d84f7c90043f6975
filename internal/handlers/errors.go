package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/sitebooks_ledger/internal/apperrors"
	"github.com/SscSPs/sitebooks_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto a status code and writes the JSON body.
// fallback is the message returned for unexpected failures so storage details stay in the log.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	var resolution *apperrors.AccountResolutionError
	var protected *apperrors.ProtectedDeletionError
	var unbalanced *apperrors.UnbalancedEntryError

	switch {
	case errors.As(err, &resolution):
		logger.Warn("Account resolution failed", slog.String("role", resolution.Role), slog.String("subject_id", resolution.SubjectID))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": resolution.Error()})
	case errors.As(err, &protected):
		logger.Warn("Deletion blocked", slog.String("entry_id", protected.EntryID), slog.String("reason", protected.Reason))
		body := gin.H{"error": protected.Error(), "reason": protected.Reason}
		if protected.PaymentID != "" {
			body["paymentID"] = protected.PaymentID
		}
		c.JSON(http.StatusConflict, body)
	case errors.As(err, &unbalanced):
		logger.Warn("Unbalanced journal entry", slog.String("debits", unbalanced.Debits.String()), slog.String("credits", unbalanced.Credits.String()))
		c.JSON(http.StatusBadRequest, gin.H{"error": unbalanced.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Conflicting request", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// actorFromContext returns the acting user id or writes a 401.
func actorFromContext(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}
