package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mishasvintus/social_network/internal/domain"
)

// ErrorCode represents API error codes.
type ErrorCode string

const (
	ErrorUserExists       ErrorCode = "USER_EXISTS"
	ErrorNetworkFull      ErrorCode = "NETWORK_FULL"
	ErrorNotFound         ErrorCode = "NOT_FOUND"
	ErrorSelfFollow       ErrorCode = "SELF_FOLLOW"
	ErrorAlreadyFollowing ErrorCode = "ALREADY_FOLLOWING"
	ErrorFolloweeLimit    ErrorCode = "FOLLOWEE_LIMIT"
	ErrorNotFollowing     ErrorCode = "NOT_FOLLOWING"
	ErrorNoRecommendation ErrorCode = "NO_RECOMMENDATION"
)

// ErrorBody is the payload of an error response.
type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResponse represents error response structure.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// UserResponse wraps user data.
type UserResponse struct {
	Name          string   `json:"name"`
	Followees     []string `json:"followees"`
	FollowerCount int      `json:"follower_count"`
}

// SuccessResponse represents success response structure.
type SuccessResponse struct {
	User *UserResponse `json:"user,omitempty"`
}

// UserListResponse wraps the user list.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// FollowersResponse wraps a follower count.
type FollowersResponse struct {
	Name      string `json:"name"`
	Followers int    `json:"followers"`
}

// MutualResponse wraps a mutual followee count.
type MutualResponse struct {
	Name1  string `json:"name1"`
	Name2  string `json:"name2"`
	Mutual int    `json:"mutual"`
}

// FriendsResponse wraps a friendship check.
type FriendsResponse struct {
	Name1   string `json:"name1"`
	Name2   string `json:"name2"`
	Friends bool   `json:"friends"`
}

// RecommendResponse wraps a follow recommendation.
type RecommendResponse struct {
	Name           string `json:"name"`
	Recommendation string `json:"recommendation"`
}

// MessageResponse wraps a plain message.
type MessageResponse struct {
	Message string `json:"message"`
}

func toUserResponse(u *domain.UserProfile) *UserResponse {
	followees := u.Followees
	if followees == nil {
		followees = []string{}
	}
	return &UserResponse{
		Name:          u.Name,
		Followees:     followees,
		FollowerCount: u.FollowerCount,
	}
}

// Error sends error response.
func Error(c *gin.Context, code ErrorCode, message string, statusCode int) {
	c.JSON(statusCode, ErrorResponse{
		Error: ErrorBody{
			Code:    code,
			Message: message,
		},
	})
}

// NotFound sends 404 error.
func NotFound(c *gin.Context, message string) {
	Error(c, ErrorNotFound, message, http.StatusNotFound)
}

// Conflict sends 409 error.
func Conflict(c *gin.Context, code ErrorCode, message string) {
	Error(c, code, message, http.StatusConflict)
}

// BadRequest sends 400 error.
func BadRequest(c *gin.Context, message string) {
	Error(c, "", message, http.StatusBadRequest)
}

// InternalError sends 500 error.
func InternalError(c *gin.Context, message string) {
	Error(c, "", message, http.StatusInternalServerError)
}
