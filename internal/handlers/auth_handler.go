package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/gravadigital/eventi-api/internal/middleware"
	"github.com/gravadigital/eventi-api/internal/response"
	"github.com/gravadigital/eventi-api/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type LoginRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "id_token is required")
		return
	}

	pair, err := h.authService.Login(c.Request.Context(), req.IDToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, pair)
}

// Refresh handles POST /api/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "refresh_token is required")
		return
	}

	pair, err := h.authService.Refresh(req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, pair)
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	u := middleware.CurrentUser(c)
	if u == nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	response.OK(c, u)
}
