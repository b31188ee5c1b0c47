package handler_test

import (
	"encoding/json"
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

func TestNetworkHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("recommend success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockNetworkServiceInterface(ctrl)
		mockService.EXPECT().Recommend("alice").Return("Carol", nil)

		h := handler.NewNetworkHandler(mockService)
		c, w := newJSONContext(t, http.MethodGet, "/network/recommend?name=alice", nil)

		h.Recommend(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var response handler.RecommendResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Carol", response.Recommendation)
	})

	t.Run("recommend nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockNetworkServiceInterface(ctrl)
		mockService.EXPECT().Recommend("alice").Return("", service.ErrNoRecommendation)

		h := handler.NewNetworkHandler(mockService)
		c, w := newJSONContext(t, http.MethodGet, "/network/recommend?name=alice", nil)

		h.Recommend(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, handler.ErrorNoRecommendation, decodeError(t, w).Error.Code)
	})

	t.Run("recommend missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := handler.NewNetworkHandler(mocks.NewMockNetworkServiceInterface(ctrl))
		c, w := newJSONContext(t, http.MethodGet, "/network/recommend", nil)

		h.Recommend(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("most popular", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockNetworkServiceInterface(ctrl)
		mockService.EXPECT().MostPopular().Return("Bob", 2, nil)

		h := handler.NewNetworkHandler(mockService)
		c, w := newJSONContext(t, http.MethodGet, "/network/popular", nil)

		h.MostPopular(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var response handler.FollowersResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, handler.FollowersResponse{Name: "Bob", Followers: 2}, response)
	})

	t.Run("most popular on empty network", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockNetworkServiceInterface(ctrl)
		mockService.EXPECT().MostPopular().Return("", 0, service.ErrNetworkEmpty)

		h := handler.NewNetworkHandler(mockService)
		c, w := newJSONContext(t, http.MethodGet, "/network/popular", nil)

		h.MostPopular(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("render", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockNetworkServiceInterface(ctrl)
		mockService.EXPECT().Render().Return("Network:\nAlice -> Bob")

		h := handler.NewNetworkHandler(mockService)
		c, w := newJSONContext(t, http.MethodGet, "/network/render", nil)

		h.Render(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Network:\nAlice -> Bob", w.Body.String())
		assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	})

	t.Run("stats", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockNetworkServiceInterface(ctrl)
		stats := domain.NetworkStats{UserCount: 2, MaxUsers: 10, MaxFollowees: 5, FollowCount: 1}
		mockService.EXPECT().Stats().Return(stats)

		h := handler.NewNetworkHandler(mockService)
		c, w := newJSONContext(t, http.MethodGet, "/network/stats", nil)

		h.GetStats(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var response domain.NetworkStats
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, stats, response)
	})
}

