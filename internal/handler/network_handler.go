package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NetworkHandler handles network-wide queries.
type NetworkHandler struct {
	networkService NetworkServiceInterface
}

// NewNetworkHandler creates a new network handler.
func NewNetworkHandler(networkService NetworkServiceInterface) *NetworkHandler {
	return &NetworkHandler{networkService: networkService}
}

// Recommend handles GET /network/recommend.
func (h *NetworkHandler) Recommend(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		BadRequest(c, "name parameter is required")
		return
	}

	rec, err := h.networkService.Recommend(name)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, RecommendResponse{Name: name, Recommendation: rec})
}

// MostPopular handles GET /network/popular.
func (h *NetworkHandler) MostPopular(c *gin.Context) {
	name, followers, err := h.networkService.MostPopular()
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, FollowersResponse{Name: name, Followers: followers})
}

// Render handles GET /network/render.
func (h *NetworkHandler) Render(c *gin.Context) {
	c.String(http.StatusOK, h.networkService.Render())
}

// GetStats handles GET /network/stats.
func (h *NetworkHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.networkService.Stats())
}
