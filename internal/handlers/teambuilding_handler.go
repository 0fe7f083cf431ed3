package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gravadigital/eventi-api/internal/middleware"
	"github.com/gravadigital/eventi-api/internal/response"
	"github.com/gravadigital/eventi-api/internal/services"
)

type TeamBuildingHandler struct {
	teamBuildingService *services.TeamBuildingService
}

func NewTeamBuildingHandler(teamBuildingService *services.TeamBuildingService) *TeamBuildingHandler {
	return &TeamBuildingHandler{teamBuildingService: teamBuildingService}
}

type CreateSignUpRequest struct {
	ActivityIDs []uuid.UUID `json:"activity_ids"`
	StartDate   string      `json:"start_date" binding:"required"`
	EndDate     string      `json:"end_date" binding:"required"`
}

// CreateSignUp handles POST /api/events/:event_id/teambuilding
func (h *TeamBuildingHandler) CreateSignUp(c *gin.Context) {
	eventID, ok := parseUUIDParam(c, "event_id")
	if !ok {
		return
	}

	var req CreateSignUpRequest
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

	p, err := h.teamBuildingService.CreatePartecipation(eventID, services.CreatePartecipationRequest{
		ActivityIDs: req.ActivityIDs,
		StartDate:   startDate,
		EndDate:     endDate,
	}, middleware.CurrentUser(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, p)
}

// GetSignUps handles GET /api/events/:event_id/teambuilding
func (h *TeamBuildingHandler) GetSignUps(c *gin.Context) {
	eventID, ok := parseUUIDParam(c, "event_id")
	if !ok {
		return
	}

	ps, err := h.teamBuildingService.GetPartecipationsForEvent(eventID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, ps)
}

// GetActivityPopularity handles GET /api/events/:event_id/teambuilding/popularity
func (h *TeamBuildingHandler) GetActivityPopularity(c *gin.Context) {
	eventID, ok := parseUUIDParam(c, "event_id")
	if !ok {
		return
	}

	counts, err := h.teamBuildingService.GetActivityPopularity(eventID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, counts)
}

// DeleteSignUp handles DELETE /api/events/:event_id/teambuilding
func (h *TeamBuildingHandler) DeleteSignUp(c *gin.Context) {
	eventID, ok := parseUUIDParam(c, "event_id")
	if !ok {
		return
	}

	if err := h.teamBuildingService.DeletePartecipation(eventID, middleware.CurrentUser(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
