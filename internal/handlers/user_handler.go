package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/gravadigital/eventi-api/internal/response"
	"github.com/gravadigital/eventi-api/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type CreateGroupRequest struct {
	Name         string   `json:"name" binding:"required"`
	MemberEmails []string `json:"member_emails"`
}

type UpdateGroupRequest struct {
	Name         *string   `json:"name"`
	MemberEmails *[]string `json:"member_emails"`
}

// GetAllUsers handles GET /api/users
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.userService.GetAllUsers()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, users)
}

// GetUser handles GET /api/users/:user_id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseUUIDParam(c, "user_id")
	if !ok {
		return
	}

	u, err := h.userService.GetUserByID(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, u)
}

// UpdateRole handles PATCH /api/users/:user_id/role
func (h *UserHandler) UpdateRole(c *gin.Context) {
	id, ok := parseUUIDParam(c, "user_id")
	if !ok {
		return
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "role is required")
		return
	}

	u, err := h.userService.UpdateUserRole(id, req.Role)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, u)
}

// CreateGroup handles POST /api/groups
func (h *UserHandler) CreateGroup(c *gin.Context) {
	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload: "+err.Error())
		return
	}

	g, err := h.userService.CreateGroup(services.CreateGroupRequest{
		Name:         req.Name,
		MemberEmails: req.MemberEmails,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, g)
}

// UpdateGroup handles PUT /api/groups/:group_id
func (h *UserHandler) UpdateGroup(c *gin.Context) {
	id, ok := parseUUIDParam(c, "group_id")
	if !ok {
		return
	}

	var req UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload: "+err.Error())
		return
	}

	g, err := h.userService.UpdateGroup(id, services.UpdateGroupRequest{
		Name:         req.Name,
		MemberEmails: req.MemberEmails,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, g)
}

// DeleteGroup handles DELETE /api/groups/:group_id
func (h *UserHandler) DeleteGroup(c *gin.Context) {
	id, ok := parseUUIDParam(c, "group_id")
	if !ok {
		return
	}

	if err := h.userService.DeleteGroup(id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// GetAllGroups handles GET /api/groups
func (h *UserHandler) GetAllGroups(c *gin.Context) {
	groups, err := h.userService.GetAllGroups()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, groups)
}

// GetGroup handles GET /api/groups/:group_id
func (h *UserHandler) GetGroup(c *gin.Context) {
	id, ok := parseUUIDParam(c, "group_id")
	if !ok {
		return
	}

	g, err := h.userService.GetGroupByID(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, g)
}
