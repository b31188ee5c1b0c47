package service

import "errors"

var (
	ErrInvalidName      = errors.New("user name must not be empty")
	ErrUserExists       = errors.New("user already exists")
	ErrNetworkFull      = errors.New("network is full")
	ErrUserNotFound     = errors.New("user not found")
	ErrSelfFollow       = errors.New("user cannot follow itself")
	ErrAlreadyFollowing = errors.New("user already follows this user")
	ErrFolloweeLimit    = errors.New("followee limit reached")
	ErrNotFollowing     = errors.New("user does not follow this user")
	ErrNoRecommendation = errors.New("no user to recommend")
	ErrNetworkEmpty     = errors.New("network has no users")
)
