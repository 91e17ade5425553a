package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/profile"
)

type UserRequest struct {
	Name      string `json:"name"`
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
}

func userResponseFrom(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Breakfast: u.Breakfast,
		Lunch:     u.Lunch,
		Dinner:    u.Dinner,
	}
}

type UserHandler struct {
	profiles *profile.Service
}

func NewUserHandler(profiles *profile.Service) *UserHandler {
	return &UserHandler{profiles: profiles}
}

func (h *UserHandler) Register(r gin.IRoutes) {
	r.POST("/users", h.HandleCreate)
	r.GET("/users/:userID", h.HandleGet)
	r.DELETE("/users/:userID", h.HandleDelete)
}

func (h *UserHandler) HandleCreate(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	user, err := h.profiles.Create(c.Request.Context(), domain.User{
		Name:      req.Name,
		Breakfast: req.Breakfast,
		Lunch:     req.Lunch,
		Dinner:    req.Dinner,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, userResponseFrom(user))
}

func (h *UserHandler) HandleGet(c *gin.Context) {
	user, err := h.profiles.Get(c.Request.Context(), c.Param("userID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, userResponseFrom(user))
}

func (h *UserHandler) HandleDelete(c *gin.Context) {
	if err := h.profiles.Delete(c.Request.Context(), c.Param("userID")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
