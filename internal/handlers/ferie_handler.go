package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gravadigital/eventi-api/internal/middleware"
	"github.com/gravadigital/eventi-api/internal/response"
	"github.com/gravadigital/eventi-api/internal/services"
)

type FerieHandler struct {
	ferieService *services.FerieService
}

func NewFerieHandler(ferieService *services.FerieService) *FerieHandler {
	return &FerieHandler{ferieService: ferieService}
}

type CreateFerieRequest struct {
	Title     string     `json:"title"`
	StartDate string     `json:"start_date" binding:"required"`
	EndDate   string     `json:"end_date" binding:"required"`
	EventID   *uuid.UUID `json:"event_id"`
}

type UpdateFerieRequest struct {
	Title     *string `json:"title"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

type UpdateFerieStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateFerie handles POST /api/ferie
func (h *FerieHandler) CreateFerie(c *gin.Context) {
	var req CreateFerieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload: "+err.Error())
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		response.BadRequest(c, "invalid start_date format, expected YYYY-MM-DD")
		return
	}

	endDate, err := parseDate(req.EndDate)
	if err != nil {
		response.BadRequest(c, "invalid end_date format, expected YYYY-MM-DD")
		return
	}

	f, err := h.ferieService.CreateFerie(services.CreateFerieRequest{
		Title:     req.Title,
		StartDate: startDate,
		EndDate:   endDate,
		EventID:   req.EventID,
	}, middleware.CurrentUser(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, f)
}

// UpdateFerie handles PUT /api/ferie/:ferie_id
func (h *FerieHandler) UpdateFerie(c *gin.Context) {
	id, ok := parseUUIDParam(c, "ferie_id")
	if !ok {
		return
	}

	var req UpdateFerieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload: "+err.Error())
		return
	}

	startDate, ok := parseOptionalDate(c, req.StartDate, "start_date")
	if !ok {
		return
	}
	endDate, ok := parseOptionalDate(c, req.EndDate, "end_date")
	if !ok {
		return
	}

	f, err := h.ferieService.UpdateFerie(id, services.UpdateFerieRequest{
		Title:     req.Title,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, f)
}

// UpdateStatus handles PATCH /api/ferie/:ferie_id/status
func (h *FerieHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseUUIDParam(c, "ferie_id")
	if !ok {
		return
	}

	var req UpdateFerieStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "status is required")
		return
	}

	f, err := h.ferieService.UpdateStatus(id, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, f)
}

// GetMyFerie handles GET /api/ferie/me
func (h *FerieHandler) GetMyFerie(c *gin.Context) {
	fs, err := h.ferieService.GetMyFerie(middleware.CurrentUser(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, fs)
}

// GetAllFerie handles GET /api/ferie
func (h *FerieHandler) GetAllFerie(c *gin.Context) {
	fs, err := h.ferieService.GetAllFerie()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, fs)
}

// DeleteFerie handles DELETE /api/ferie/:ferie_id
func (h *FerieHandler) DeleteFerie(c *gin.Context) {
	id, ok := parseUUIDParam(c, "ferie_id")
	if !ok {
		return
	}

	if err := h.ferieService.Delete(id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
