package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/syncer"
)

type PlanResponse struct {
	Date      string                    `json:"date"`
	Instances []domain.ReminderInstance `json:"instances"`
	Invalid   []domain.InvalidMedicine  `json:"invalid"`
}

type ReminderHandler struct {
	sync  *syncer.Service
	users domain.UserRepository
}

func NewReminderHandler(sync *syncer.Service, users domain.UserRepository) *ReminderHandler {
	return &ReminderHandler{sync: sync, users: users}
}

func (h *ReminderHandler) Register(r gin.IRoutes) {
	r.GET("/users/:userID/reminders", h.HandlePreview)
	r.POST("/users/:userID/reminders/sync", h.HandleSync)
}

// HandlePreview returns the reminders that would be registered now without
// touching the notifier.
func (h *ReminderHandler) HandlePreview(c *gin.Context) {
	userID, now, ok := h.prepare(c)
	if !ok {
		return
	}

	plan, err := h.sync.Preview(c.Request.Context(), userID, now)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, PlanResponse{
		Date:      plan.Date.String(),
		Instances: nonNilInstances(plan.Instances),
		Invalid:   plan.Invalid,
	})
}

func (h *ReminderHandler) HandleSync(c *gin.Context) {
	force := false
	if raw := c.Query("force"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "validation_error", "invalid force flag, expected a boolean")
			return
		}
		force = parsed
	}

	userID, now, ok := h.prepare(c)
	if !ok {
		return
	}

	result, err := h.sync.Sync(c.Request.Context(), userID, now, force)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	result.Instances = nonNilInstances(result.Instances)
	c.JSON(http.StatusOK, result)
}

func (h *ReminderHandler) prepare(c *gin.Context) (string, time.Time, bool) {
	now, ok := nowFromQuery(c, h.sync.Location())
	if !ok {
		return "", time.Time{}, false
	}

	userID := c.Param("userID")
	if _, err := h.users.GetUser(c.Request.Context(), userID); err != nil {
		respondServiceError(c, err)
		return "", time.Time{}, false
	}
	return userID, now, true
}

func nonNilInstances(in []domain.ReminderInstance) []domain.ReminderInstance {
	if in == nil {
		return []domain.ReminderInstance{}
	}
	return in
}
