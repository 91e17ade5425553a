package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/course"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/duration"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/profile"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/syncer"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func respondError(c *gin.Context, status int, errType, message string) {
	c.JSON(status, ErrorResponse{
		Error:   errType,
		Message: message,
	})
}

// respondServiceError maps a service error to its HTTP status. Server-side
// failures are logged and answered with a generic message.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrMedicineNotFound):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, course.ErrInvalidInput),
		errors.Is(err, profile.ErrInvalidProfile),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrInvalidClockTime),
		errors.Is(err, domain.ErrInvalidSlot),
		errors.Is(err, duration.ErrInvalidUnit),
		errors.Is(err, duration.ErrInvalidValue):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, syncer.ErrRemindersPending):
		slog.WarnContext(c.Request.Context(), "request blocked by pending reminders",
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusServiceUnavailable, "reminders_pending", "reminders could not be cancelled, retry later")
	default:
		slog.ErrorContext(c.Request.Context(), "request failed",
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "processing_error", "internal error")
	}
}

// nowFromQuery reads the optional "now" override. A supplied time keeps its
// own offset, which decides the calendar date it falls on.
func nowFromQuery(c *gin.Context, loc *time.Location) (time.Time, bool) {
	raw := c.Query("now")
	if raw == "" {
		return time.Now().In(loc), true
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid now time format, expected RFC3339")
		return time.Time{}, false
	}

	slog.InfoContext(c.Request.Context(), "using virtual time",
		slog.Time("virtual_now", parsed),
	)
	return parsed, true
}
