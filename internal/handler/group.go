package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hisaab/hisaab/internal/middleware"
	"github.com/hisaab/hisaab/internal/service"
)

// GroupHandler serves group management endpoints.
type GroupHandler struct {
	groups *service.GroupService
}

func NewGroupHandler(groupService *service.GroupService) *GroupHandler {
	return &GroupHandler{groups: groupService}
}

type createGroupRequest struct {
	Name string `json:"name" binding:"required,max=64"`
}

// Create handles POST /api/groups.
func (h *GroupHandler) Create(c *gin.Context) {
	var req createGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := h.groups.CreateGroup(c.Request.Context(), middleware.GetUserID(c), req.Name)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toGroupResponse(group))
}

// List handles GET /api/groups.
func (h *GroupHandler) List(c *gin.Context) {
	groups, err := h.groups.ListMyGroups(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp := make([]groupResponse, 0, len(groups))
	for _, g := range groups {
		resp = append(resp, toGroupResponse(g))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/groups/:id.
func (h *GroupHandler) Get(c *gin.Context) {
	group, err := h.groups.GetGroupDetails(c.Request.Context(), c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toGroupResponse(group))
}

// Join handles POST /api/groups/:id/join.
func (h *GroupHandler) Join(c *gin.Context) {
	group, err := h.groups.JoinGroup(c.Request.Context(), c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toGroupResponse(group))
}
