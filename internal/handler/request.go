package handler

// AddUserRequest represents request body for POST /users/add.
type AddUserRequest struct {
	Name string `json:"name" binding:"required,max=64"`
}

// RemoveUserRequest represents request body for POST /users/remove.
type RemoveUserRequest struct {
	Name string `json:"name" binding:"required"`
}

// FollowRequest represents request body for POST /follows/add and POST /follows/remove.
type FollowRequest struct {
	Follower string `json:"follower" binding:"required"`
	Followee string `json:"followee" binding:"required"`
}
