package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/gravadigital/eventi-api/internal/middleware"
	"github.com/gravadigital/eventi-api/internal/response"
	"github.com/gravadigital/eventi-api/internal/services"
)

type ActivityHandler struct {
	activityService *services.ActivityService
}

func NewActivityHandler(activityService *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

type CreateActivityRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdateActivityRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CreateActivity handles POST /api/events/:event_id/activities
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	eventID, ok := parseUUIDParam(c, "event_id")
	if !ok {
		return
	}

	var req CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload: "+err.Error())
		return
	}

	a, err := h.activityService.CreateActivity(eventID, services.CreateActivityRequest{
		Name:        req.Name,
		Description: req.Description,
	}, middleware.CurrentUser(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, a)
}

// GetActivitiesByEvent handles GET /api/events/:event_id/activities
func (h *ActivityHandler) GetActivitiesByEvent(c *gin.Context) {
	eventID, ok := parseUUIDParam(c, "event_id")
	if !ok {
		return
	}

	as, err := h.activityService.GetActivitiesByEvent(eventID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, as)
}

// GetActivity handles GET /api/activities/:activity_id
func (h *ActivityHandler) GetActivity(c *gin.Context) {
	id, ok := parseUUIDParam(c, "activity_id")
	if !ok {
		return
	}

	a, err := h.activityService.GetByID(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, a)
}

// UpdateActivity handles PUT /api/activities/:activity_id
func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	id, ok := parseUUIDParam(c, "activity_id")
	if !ok {
		return
	}

	var req UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload: "+err.Error())
		return
	}

	a, err := h.activityService.UpdateActivity(id, services.UpdateActivityRequest{
		Name:        req.Name,
		Description: req.Description,
	}, middleware.CurrentUser(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, a)
}

// DeleteActivity handles DELETE /api/activities/:activity_id
func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	id, ok := parseUUIDParam(c, "activity_id")
	if !ok {
		return
	}

	if err := h.activityService.DeleteActivity(id, middleware.CurrentUser(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
