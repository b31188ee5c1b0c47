package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// FollowHandler handles follow-related HTTP requests.
type FollowHandler struct {
	networkService NetworkServiceInterface
}

// NewFollowHandler creates a new follow handler.
func NewFollowHandler(networkService NetworkServiceInterface) *FollowHandler {
	return &FollowHandler{networkService: networkService}
}

// Follow handles POST /follows/add.
func (h *FollowHandler) Follow(c *gin.Context) {
	var req FollowRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	user, err := h.networkService.Follow(req.Follower, req.Followee)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{User: toUserResponse(user)})
}

// Unfollow handles POST /follows/remove.
func (h *FollowHandler) Unfollow(c *gin.Context) {
	var req FollowRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	user, err := h.networkService.Unfollow(req.Follower, req.Followee)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{User: toUserResponse(user)})
}

// GetMutual handles GET /follows/mutual.
func (h *FollowHandler) GetMutual(c *gin.Context) {
	name1, name2, ok := pairQuery(c)
	if !ok {
		return
	}

	mutual, err := h.networkService.CountMutual(name1, name2)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, MutualResponse{Name1: name1, Name2: name2, Mutual: mutual})
}

// GetFriends handles GET /follows/friends.
func (h *FollowHandler) GetFriends(c *gin.Context) {
	name1, name2, ok := pairQuery(c)
	if !ok {
		return
	}

	friends, err := h.networkService.AreFriends(name1, name2)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, FriendsResponse{Name1: name1, Name2: name2, Friends: friends})
}

func pairQuery(c *gin.Context) (string, string, bool) {
	name1, name2 := c.Query("name1"), c.Query("name2")
	if name1 == "" || name2 == "" {
		BadRequest(c, "name1 and name2 parameters are required")
		return "", "", false
	}
	return name1, name2, true
}
