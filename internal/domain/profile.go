package domain

// Follow is a directed edge: Follower follows Followee.
type Follow struct {
	Follower string `json:"follower" yaml:"follower"`
	Followee string `json:"followee" yaml:"followee"`
}

// UserProfile is a read-only snapshot of a user and its popularity.
type UserProfile struct {
	Name          string   `json:"name"`
	Followees     []string `json:"followees"`
	FollowerCount int      `json:"follower_count"`
}

// NetworkStats summarizes the size of a network.
type NetworkStats struct {
	UserCount    int `json:"user_count"`
	MaxUsers     int `json:"max_users"`
	MaxFollowees int `json:"max_followees"`
	FollowCount  int `json:"follow_count"`
}
