package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/course"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/duration"
)

type DurationRequest struct {
	Value int    `json:"value"`
	Unit  string `json:"unit"`
}

type MedicineRequest struct {
	Name      string          `json:"name"`
	StartDate string          `json:"start_date"`
	Duration  DurationRequest `json:"duration"`
	EveryDay  bool            `json:"every_day"`
	Days      []int           `json:"days"`
	Slots     []string        `json:"slots"`
}

func (r MedicineRequest) toInput() (course.Input, error) {
	unit, err := duration.ParseUnit(r.Duration.Unit)
	if err != nil {
		return course.Input{}, err
	}

	days := make([]domain.Weekday, 0, len(r.Days))
	for _, d := range r.Days {
		days = append(days, domain.Weekday(d))
	}

	slots := make([]domain.Slot, 0, len(r.Slots))
	for _, raw := range r.Slots {
		slot, err := domain.ParseSlot(raw)
		if err != nil {
			return course.Input{}, err
		}
		slots = append(slots, slot)
	}

	return course.Input{
		Name:      r.Name,
		StartDate: r.StartDate,
		Duration:  duration.Duration{Value: r.Duration.Value, Unit: unit},
		EveryDay:  r.EveryDay,
		Days:      days,
		Slots:     slots,
	}, nil
}

type MedicineResponse struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	Name      string            `json:"name"`
	StartDate string            `json:"start_date"`
	EndDate   string            `json:"end_date"`
	Days      []int             `json:"days"`
	TimeSlots map[string]string `json:"time_slots"`
	*duration.Status
	Invalid string `json:"invalid,omitempty"`
}

func medicineResponseFrom(m domain.Medicine) MedicineResponse {
	days := make([]int, 0, 7)
	for _, d := range m.ActiveDays.Days() {
		days = append(days, int(d))
	}

	slots := make(map[string]string, len(m.TimeSlots))
	for slot, t := range m.TimeSlots {
		if t != "" {
			slots[slot.String()] = t
		}
	}

	return MedicineResponse{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		Days:      days,
		TimeSlots: slots,
	}
}

type MedicineListResponse struct {
	Medicines []MedicineResponse `json:"medicines"`
}

type DueResponse struct {
	Date      string                   `json:"date"`
	Medicines []MedicineResponse       `json:"medicines"`
	Invalid   []domain.InvalidMedicine `json:"invalid"`
}

type MedicineHandler struct {
	courses *course.Service
	loc     *time.Location
}

func NewMedicineHandler(courses *course.Service, loc *time.Location) *MedicineHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &MedicineHandler{courses: courses, loc: loc}
}

func (h *MedicineHandler) Register(r gin.IRoutes) {
	r.GET("/users/:userID/medicines", h.HandleList)
	r.POST("/users/:userID/medicines", h.HandleCreate)
	r.GET("/users/:userID/medicines/due", h.HandleDue)
	r.PUT("/users/:userID/medicines/:medicineID", h.HandleUpdate)
	r.DELETE("/users/:userID/medicines/:medicineID", h.HandleDelete)
}

func (h *MedicineHandler) HandleList(c *gin.Context) {
	courses, err := h.courses.List(c.Request.Context(), c.Param("userID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := MedicineListResponse{Medicines: make([]MedicineResponse, 0, len(courses))}
	for _, crs := range courses {
		item := medicineResponseFrom(crs.Medicine)
		item.Status = crs.Summary
		item.Invalid = crs.Invalid
		resp.Medicines = append(resp.Medicines, item)
	}

	c.JSON(http.StatusOK, resp)
}

func (h *MedicineHandler) HandleCreate(c *gin.Context) {
	in, ok := bindMedicineInput(c)
	if !ok {
		return
	}

	med, err := h.courses.Create(c.Request.Context(), c.Param("userID"), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, medicineResponseFrom(*med))
}

func (h *MedicineHandler) HandleUpdate(c *gin.Context) {
	in, ok := bindMedicineInput(c)
	if !ok {
		return
	}

	med, err := h.courses.Update(c.Request.Context(), c.Param("userID"), c.Param("medicineID"), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, medicineResponseFrom(*med))
}

func (h *MedicineHandler) HandleDelete(c *gin.Context) {
	if err := h.courses.Delete(c.Request.Context(), c.Param("userID"), c.Param("medicineID")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *MedicineHandler) HandleDue(c *gin.Context) {
	now, ok := nowFromQuery(c, h.loc)
	if !ok {
		return
	}

	date := domain.DateOf(now)
	result, err := h.courses.Due(c.Request.Context(), c.Param("userID"), date)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := DueResponse{
		Date:      date.String(),
		Medicines: make([]MedicineResponse, 0, len(result.Due)),
		Invalid:   result.Invalid,
	}
	for _, m := range result.Medicines() {
		resp.Medicines = append(resp.Medicines, medicineResponseFrom(m))
	}

	c.JSON(http.StatusOK, resp)
}

func bindMedicineInput(c *gin.Context) (course.Input, bool) {
	var req MedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return course.Input{}, false
	}

	in, err := req.toInput()
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", fmt.Sprintf("invalid medicine: %v", err))
		return course.Input{}, false
	}
	return in, true
}
