package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mishasvintus/social_network/internal/domain"
	"github.com/mishasvintus/social_network/internal/handler"
	"github.com/mishasvintus/social_network/internal/handler/mocks"
	"github.com/mishasvintus/social_network/internal/service"
)

func TestFollowHandler_Follow(t *testing.T) {
	gin.SetMode(gin.TestMode)

	body := map[string]interface{}{"follower": "alice", "followee": "bob"}

	tests := []struct {
		name           string
		requestBody    interface{}
		serviceErr     error
		expectCall     bool
		expectedStatus int
		expectedCode   handler.ErrorCode
	}{
		{
			name:           "success - follow added",
			requestBody:    body,
			expectCall:     true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "error - missing followee",
			requestBody:    map[string]interface{}{"follower": "alice"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "error - user not found",
			requestBody:    body,
			serviceErr:     fmt.Errorf("%w: bob", service.ErrUserNotFound),
			expectCall:     true,
			expectedStatus: http.StatusNotFound,
			expectedCode:   handler.ErrorNotFound,
		},
		{
			name:           "error - self follow",
			requestBody:    body,
			serviceErr:     service.ErrSelfFollow,
			expectCall:     true,
			expectedStatus: http.StatusConflict,
			expectedCode:   handler.ErrorSelfFollow,
		},
		{
			name:           "error - already following",
			requestBody:    body,
			serviceErr:     service.ErrAlreadyFollowing,
			expectCall:     true,
			expectedStatus: http.StatusConflict,
			expectedCode:   handler.ErrorAlreadyFollowing,
		},
		{
			name:           "error - followee limit",
			requestBody:    body,
			serviceErr:     service.ErrFolloweeLimit,
			expectCall:     true,
			expectedStatus: http.StatusConflict,
			expectedCode:   handler.ErrorFolloweeLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mocks.NewMockNetworkServiceInterface(ctrl)
			if tt.expectCall {
				var profile *domain.UserProfile
				if tt.serviceErr == nil {
					profile = &domain.UserProfile{Name: "Alice", Followees: []string{"Bob"}}
				}
				mockService.EXPECT().Follow("alice", "bob").Return(profile, tt.serviceErr)
			}

			h := handler.NewFollowHandler(mockService)
			c, w := newJSONContext(t, http.MethodPost, "/follows/add", tt.requestBody)

			h.Follow(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var response handler.SuccessResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				require.NotNil(t, response.User)
				assert.Equal(t, []string{"Bob"}, response.User.Followees)
				return
			}
			assert.Equal(t, tt.expectedCode, decodeError(t, w).Error.Code)
		})
	}
}

func TestFollowHandler_Unfollow(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		mockSetup      func(*mocks.MockNetworkServiceInterface)
		expectedStatus int
	}{
		{
			name: "success - follow removed",
			mockSetup: func(m *mocks.MockNetworkServiceInterface) {
				m.EXPECT().Unfollow("alice", "bob").Return(&domain.UserProfile{Name: "Alice"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "error - not following",
			mockSetup: func(m *mocks.MockNetworkServiceInterface) {
				m.EXPECT().Unfollow("alice", "bob").Return(nil, service.ErrNotFollowing)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mocks.NewMockNetworkServiceInterface(ctrl)
			tt.mockSetup(mockService)

			h := handler.NewFollowHandler(mockService)
			c, w := newJSONContext(t, http.MethodPost, "/follows/remove",
				map[string]interface{}{"follower": "alice", "followee": "bob"})

			h.Unfollow(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestFollowHandler_PairQueries(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("mutual success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockNetworkServiceInterface(ctrl)
		mockService.EXPECT().CountMutual("alice", "bob").Return(2, nil)

		h := handler.NewFollowHandler(mockService)
		c, w := newJSONContext(t, http.MethodGet, "/follows/mutual?name1=alice&name2=bob", nil)

		h.GetMutual(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var response handler.MutualResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, handler.MutualResponse{Name1: "alice", Name2: "bob", Mutual: 2}, response)
	})

	t.Run("friends success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockNetworkServiceInterface(ctrl)
		mockService.EXPECT().AreFriends("alice", "bob").Return(true, nil)

		h := handler.NewFollowHandler(mockService)
		c, w := newJSONContext(t, http.MethodGet, "/follows/friends?name1=alice&name2=bob", nil)

		h.GetFriends(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var response handler.FriendsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.Friends)
	})

	t.Run("friends unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockNetworkServiceInterface(ctrl)
		mockService.EXPECT().AreFriends("alice", "zed").Return(false, service.ErrUserNotFound)

		h := handler.NewFollowHandler(mockService)
		c, w := newJSONContext(t, http.MethodGet, "/follows/friends?name1=alice&name2=zed", nil)

		h.GetFriends(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing parameter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := handler.NewFollowHandler(mocks.NewMockNetworkServiceInterface(ctrl))
		c, w := newJSONContext(t, http.MethodGet, "/follows/mutual?name1=alice", nil)

		h.GetMutual(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "name1 and name2 parameters are required", decodeError(t, w).Error.Message)
	})
}
