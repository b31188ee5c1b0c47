// Package router wires HTTP routes to handlers.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/mishasvintus/social_network/internal/handler"
)

// SetupRoutes configures all API routes.
func SetupRoutes(
	userHandler *handler.UserHandler,
	followHandler *handler.FollowHandler,
	networkHandler *handler.NetworkHandler,
) *gin.Engine {
	r := gin.Default()
	r.Use(RequestID())

	// User endpoints
	r.POST("/users/add", userHandler.AddUser)
	r.GET("/users/get", userHandler.GetUser)
	r.GET("/users/list", userHandler.ListUsers)
	r.POST("/users/remove", userHandler.RemoveUser)
	r.GET("/users/followers", userHandler.GetFollowers)

	// Follow endpoints
	r.POST("/follows/add", followHandler.Follow)
	r.POST("/follows/remove", followHandler.Unfollow)
	r.GET("/follows/mutual", followHandler.GetMutual)
	r.GET("/follows/friends", followHandler.GetFriends)

	// Network endpoints
	r.GET("/network/recommend", networkHandler.Recommend)
	r.GET("/network/popular", networkHandler.MostPopular)
	r.GET("/network/render", networkHandler.Render)
	r.GET("/network/stats", networkHandler.GetStats)

	return r
}
