package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gravadigital/eventi-api/internal/middleware"
	"github.com/gravadigital/eventi-api/internal/response"
	"github.com/gravadigital/eventi-api/internal/services"
)

type PartecipationHandler struct {
	partecipationService *services.PartecipationService
}

func NewPartecipationHandler(partecipationService *services.PartecipationService) *PartecipationHandler {
	return &PartecipationHandler{partecipationService: partecipationService}
}

type CreatePartecipationsRequest struct {
	EventID uuid.UUID   `json:"event_id" binding:"required"`
	UserIDs []uuid.UUID `json:"user_ids" binding:"required"`
}

type UpdatePartecipationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreatePartecipations handles POST /api/partecipations
func (h *PartecipationHandler) CreatePartecipations(c *gin.Context) {
	var req CreatePartecipationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload: "+err.Error())
		return
	}

	created, err := h.partecipationService.CreatePartecipations(req.EventID, req.UserIDs)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, created)
}

// UpdateStatus handles PATCH /api/partecipations/:partecipation_id/status
func (h *PartecipationHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseUUIDParam(c, "partecipation_id")
	if !ok {
		return
	}

	var req UpdatePartecipationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "status is required")
		return
	}

	p, err := h.partecipationService.UpdateStatus(id, req.Status, middleware.CurrentUser(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, p)
}

// GetPartecipation handles GET /api/partecipations/:partecipation_id
func (h *PartecipationHandler) GetPartecipation(c *gin.Context) {
	id, ok := parseUUIDParam(c, "partecipation_id")
	if !ok {
		return
	}

	p, err := h.partecipationService.GetByID(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, p)
}

// GetAllPartecipations handles GET /api/partecipations
func (h *PartecipationHandler) GetAllPartecipations(c *gin.Context) {
	ps, err := h.partecipationService.GetAll()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, ps)
}

// GetByEvent handles GET /api/events/:event_id/partecipations
func (h *PartecipationHandler) GetByEvent(c *gin.Context) {
	eventID, ok := parseUUIDParam(c, "event_id")
	if !ok {
		return
	}

	ps, err := h.partecipationService.GetByEvent(eventID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, ps)
}

// GetMine handles GET /api/partecipations/me
func (h *PartecipationHandler) GetMine(c *gin.Context) {
	u := middleware.CurrentUser(c)

	ps, err := h.partecipationService.GetByUser(u.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, ps)
}

// DeletePartecipation handles DELETE /api/partecipations/:partecipation_id
func (h *PartecipationHandler) DeletePartecipation(c *gin.Context) {
	id, ok := parseUUIDParam(c, "partecipation_id")
	if !ok {
		return
	}

	if err := h.partecipationService.Delete(id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
