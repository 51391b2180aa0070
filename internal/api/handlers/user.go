package handlers

import (
	"net/http"
	"strconv"

	"duty-assignment-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for the cached CRM staff list
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers handles GET /users
// @Summary List CRM users
// @Description Get the cached CRM staff list
// @Tags users
// @Accept json
// @Produce json
// @Param active_only query bool false "Only active users" default(false)
// @Success 200 {array} service.UserResponse "Users retrieved"
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	activeOnly := c.Query("active_only") == "true"

	resp, err := h.userService.List(activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetUser handles GET /users/:id
// @Summary Get a CRM user
// @Description Get one cached CRM user
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "CRM user ID"
// @Success 200 {object} service.UserResponse "User retrieved"
// @Failure 400 {object} ErrorResponse "Invalid user ID"
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid user ID"})
		return
	}

	resp, err := h.userService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SyncUsers handles POST /users/sync
// @Summary Sync CRM users
// @Description Refresh the cached staff list from the CRM
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Sync result"
// @Failure 502 {object} ErrorResponse "CRM unreachable"
// @Router /users/sync [post]
func (h *UserHandler) SyncUsers(c *gin.Context) {
	count, err := h.userService.Sync(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"synced": count})
}
