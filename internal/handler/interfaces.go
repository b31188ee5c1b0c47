package handler

import (
	"github.com/mishasvintus/social_network/internal/domain"
	"github.com/mishasvintus/social_network/internal/service"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// NetworkServiceInterface defines the interface for social network operations.
type NetworkServiceInterface interface {
	AddUser(name string) (*domain.UserProfile, error)
	GetUser(name string) (*domain.UserProfile, error)
	ListUsers() []domain.UserProfile
	RemoveUser(name string) error
	Follow(follower, followee string) (*domain.UserProfile, error)
	Unfollow(follower, followee string) (*domain.UserProfile, error)
	CountMutual(name1, name2 string) (int, error)
	AreFriends(name1, name2 string) (bool, error)
	FollowerCount(name string) (int, error)
	Recommend(name string) (string, error)
	MostPopular() (string, int, error)
	Render() string
	Stats() domain.NetworkStats
}

var _ NetworkServiceInterface = (*service.NetworkService)(nil)
