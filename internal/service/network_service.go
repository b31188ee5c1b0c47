// Package service exposes the social network to concurrent callers.
package service

import (
	"fmt"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/mishasvintus/social_network/internal/domain"
)

// DefaultRecommendationCacheSize is used when no cache size is given.
const DefaultRecommendationCacheSize = 128

type recommendation struct {
	name  string
	found bool
}

// NetworkService handles social network business logic.
// All access to the underlying network goes through mu.
type NetworkService struct {
	mu      sync.RWMutex
	network *domain.Network
	recs    *lru.Cache[string, recommendation]
}

// NewNetworkService creates a service owning network.
func NewNetworkService(network *domain.Network, cacheSize int) (*NetworkService, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultRecommendationCacheSize
	}
	recs, err := lru.New[string, recommendation](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create recommendation cache: %w", err)
	}
	return &NetworkService{
		network: network,
		recs:    recs,
	}, nil
}

// AddUser adds a new user to the network.
func (s *NetworkService) AddUser(name string) (*domain.UserProfile, error) {
	if domain.NormalizeName(name) == "" {
		return nil, ErrInvalidName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.network.GetUser(name) != nil {
		return nil, ErrUserExists
	}
	if s.network.IsFull() {
		return nil, ErrNetworkFull
	}
	if !s.network.AddUser(name) {
		return nil, fmt.Errorf("failed to add user %q", name)
	}
	s.recs.Purge()

	return s.profile(s.network.GetUser(name)), nil
}

// GetUser returns a snapshot of the named user.
func (s *NetworkService) GetUser(name string) (*domain.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u := s.network.GetUser(name)
	if u == nil {
		return nil, ErrUserNotFound
	}
	return s.profile(u), nil
}

// ListUsers returns snapshots of all users in insertion order.
func (s *NetworkService) ListUsers() []domain.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := s.network.Names()
	users := make([]domain.UserProfile, 0, len(names))
	for _, name := range names {
		users = append(users, *s.profile(s.network.GetUser(name)))
	}
	return users
}

// RemoveUser deletes a user and every follow edge pointing at it.
func (s *NetworkService) RemoveUser(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.network.RemoveUser(name) {
		return ErrUserNotFound
	}
	s.recs.Purge()
	return nil
}

// Follow makes follower follow followee and returns the updated follower.
func (s *NetworkService) Follow(follower, followee string) (*domain.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	from, to, err := s.pair(follower, followee)
	if err != nil {
		return nil, err
	}
	if from == to {
		return nil, ErrSelfFollow
	}
	if from.Follows(to.Name()) {
		return nil, ErrAlreadyFollowing
	}
	if from.FolloweeCount() >= from.MaxFollowees() {
		return nil, ErrFolloweeLimit
	}
	if !s.network.AddFollowee(from.Name(), to.Name()) {
		return nil, fmt.Errorf("failed to follow %q from %q", to.Name(), from.Name())
	}
	s.recs.Purge()

	return s.profile(from), nil
}

// Unfollow makes follower stop following followee and returns the updated follower.
func (s *NetworkService) Unfollow(follower, followee string) (*domain.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	from := s.network.GetUser(follower)
	if from == nil {
		return nil, ErrUserNotFound
	}
	if !s.network.RemoveFollowee(from.Name(), followee) {
		return nil, ErrNotFollowing
	}
	s.recs.Purge()

	return s.profile(from), nil
}

// CountMutual returns how many followees the two users share.
func (s *NetworkService) CountMutual(name1, name2 string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, b, err := s.pair(name1, name2)
	if err != nil {
		return 0, err
	}
	return a.CountMutual(b), nil
}

// AreFriends reports whether the two users follow each other.
func (s *NetworkService) AreFriends(name1, name2 string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, b, err := s.pair(name1, name2)
	if err != nil {
		return false, err
	}
	return a.IsFriendOf(b), nil
}

// FollowerCount returns how many users follow the named user.
func (s *NetworkService) FollowerCount(name string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u := s.network.GetUser(name)
	if u == nil {
		return 0, ErrUserNotFound
	}
	return s.network.FollowerCount(u.Name()), nil
}

// Recommend returns the user the named user should follow next.
func (s *NetworkService) Recommend(name string) (string, error) {
	key := strings.ToLower(domain.NormalizeName(name))

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.network.GetUser(name) == nil {
		return "", ErrUserNotFound
	}

	rec, ok := s.recs.Get(key)
	if !ok {
		rec.name, rec.found = s.network.RecommendWhoToFollow(name)
		s.recs.Add(key, rec)
	}
	if !rec.found {
		return "", ErrNoRecommendation
	}
	return rec.name, nil
}

// MostPopular returns the name and follower count of the most followed user.
func (s *NetworkService) MostPopular() (string, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	name, ok := s.network.MostPopularUser()
	if !ok {
		return "", 0, ErrNetworkEmpty
	}
	return name, s.network.FollowerCount(name), nil
}

// Render returns the textual description of the network.
func (s *NetworkService) Render() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.network.String()
}

// Stats returns size counters of the network.
func (s *NetworkService) Stats() domain.NetworkStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.NetworkStats{
		UserCount:    s.network.UserCount(),
		MaxUsers:     s.network.MaxUsers(),
		MaxFollowees: s.network.MaxFollowees(),
		FollowCount:  s.network.FollowCount(),
	}
}

// pair looks up both users; callers must hold mu.
func (s *NetworkService) pair(name1, name2 string) (*domain.User, *domain.User, error) {
	a := s.network.GetUser(name1)
	if a == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrUserNotFound, name1)
	}
	b := s.network.GetUser(name2)
	if b == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrUserNotFound, name2)
	}
	return a, b, nil
}

// profile snapshots u; callers must hold mu.
func (s *NetworkService) profile(u *domain.User) *domain.UserProfile {
	return &domain.UserProfile{
		Name:          u.Name(),
		Followees:     u.Followees(),
		FollowerCount: s.network.FollowerCount(u.Name()),
	}
}
