package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mishasvintus/social_network/internal/service"
)

// writeServiceError maps service errors to HTTP responses.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidName):
		BadRequest(c, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, service.ErrNetworkEmpty):
		NotFound(c, err.Error())
	case errors.Is(err, service.ErrNoRecommendation):
		Error(c, ErrorNoRecommendation, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrUserExists):
		Conflict(c, ErrorUserExists, "user name already exists")
	case errors.Is(err, service.ErrNetworkFull):
		Conflict(c, ErrorNetworkFull, err.Error())
	case errors.Is(err, service.ErrSelfFollow):
		Conflict(c, ErrorSelfFollow, err.Error())
	case errors.Is(err, service.ErrAlreadyFollowing):
		Conflict(c, ErrorAlreadyFollowing, err.Error())
	case errors.Is(err, service.ErrFolloweeLimit):
		Conflict(c, ErrorFolloweeLimit, err.Error())
	case errors.Is(err, service.ErrNotFollowing):
		Conflict(c, ErrorNotFollowing, err.Error())
	default:
		InternalError(c, err.Error())
	}
}
