package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserHandler handles user-related HTTP requests.
type UserHandler struct {
	networkService NetworkServiceInterface
}

// NewUserHandler creates a new user handler.
func NewUserHandler(networkService NetworkServiceInterface) *UserHandler {
	return &UserHandler{networkService: networkService}
}

// AddUser handles POST /users/add.
func (h *UserHandler) AddUser(c *gin.Context) {
	var req AddUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	user, err := h.networkService.AddUser(req.Name)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{User: toUserResponse(user)})
}

// GetUser handles GET /users/get.
func (h *UserHandler) GetUser(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		BadRequest(c, "name parameter is required")
		return
	}

	user, err := h.networkService.GetUser(name)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{User: toUserResponse(user)})
}

// ListUsers handles GET /users/list.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users := h.networkService.ListUsers()

	resp := UserListResponse{Users: make([]UserResponse, len(users))}
	for i := range users {
		resp.Users[i] = *toUserResponse(&users[i])
	}

	c.JSON(http.StatusOK, resp)
}

// RemoveUser handles POST /users/remove.
func (h *UserHandler) RemoveUser(c *gin.Context) {
	var req RemoveUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	if err := h.networkService.RemoveUser(req.Name); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "user removed successfully"})
}

// GetFollowers handles GET /users/followers.
func (h *UserHandler) GetFollowers(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		BadRequest(c, "name parameter is required")
		return
	}

	count, err := h.networkService.FollowerCount(name)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, FollowersResponse{Name: name, Followers: count})
}
