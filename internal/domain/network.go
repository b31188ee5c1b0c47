package domain

import "strings"

// DefaultMaxUsers is the network capacity used when no limit is given.
const DefaultMaxUsers = 100

// Network is a bounded collection of users with unique names.
// Users keep their insertion order. Network is not safe for concurrent use.
type Network struct {
	users        []*User
	maxUsers     int
	maxFollowees int
}

// NewNetwork creates an empty network. Non-positive limits fall back to
// DefaultMaxUsers and DefaultMaxFollowees.
func NewNetwork(maxUsers, maxFollowees int) *Network {
	if maxUsers <= 0 {
		maxUsers = DefaultMaxUsers
	}
	if maxFollowees <= 0 {
		maxFollowees = DefaultMaxFollowees
	}
	return &Network{
		users:        make([]*User, 0, maxUsers),
		maxUsers:     maxUsers,
		maxFollowees: maxFollowees,
	}
}

// UserCount returns the number of users in the network.
func (n *Network) UserCount() int {
	return len(n.users)
}

// MaxUsers returns the network capacity.
func (n *Network) MaxUsers() int {
	return n.maxUsers
}

// MaxFollowees returns the followee capacity given to new users.
func (n *Network) MaxFollowees() int {
	return n.maxFollowees
}

// IsFull reports whether no more users can be added.
func (n *Network) IsFull() bool {
	return len(n.users) >= n.maxUsers
}

// Names returns user names in insertion order.
func (n *Network) Names() []string {
	names := make([]string, len(n.users))
	for i, u := range n.users {
		names[i] = u.Name()
	}
	return names
}

// FollowCount returns the total number of follow edges.
func (n *Network) FollowCount() int {
	total := 0
	for _, u := range n.users {
		total += u.FolloweeCount()
	}
	return total
}

// GetUser finds a user by name, ignoring case. Returns nil if absent.
func (n *Network) GetUser(name string) *User {
	if i := n.indexOf(name); i >= 0 {
		return n.users[i]
	}
	return nil
}

// AddUser adds a user with the given name.
// Returns false if the name is empty, taken, or the network is full.
func (n *Network) AddUser(name string) bool {
	if NormalizeName(name) == "" || n.GetUser(name) != nil || n.IsFull() {
		return false
	}
	n.users = append(n.users, NewUser(name, n.maxFollowees))
	return true
}

// RemoveUser deletes a user and removes it from every followee list.
// Returns false if the user does not exist.
func (n *Network) RemoveUser(name string) bool {
	i := n.indexOf(name)
	if i < 0 {
		return false
	}
	removed := n.users[i].Name()
	n.users = append(n.users[:i], n.users[i+1:]...)
	for _, u := range n.users {
		u.RemoveFollowee(removed)
	}
	return true
}

// AddFollowee makes name1 follow name2.
// Returns false if either user is missing, both names are the same user,
// name1 already follows name2, or name1's followee list is full.
func (n *Network) AddFollowee(name1, name2 string) bool {
	follower, followee := n.GetUser(name1), n.GetUser(name2)
	if follower == nil || followee == nil || follower == followee {
		return false
	}
	if follower.Follows(followee.Name()) {
		return false
	}
	return follower.AddFollowee(followee.Name())
}

// RemoveFollowee makes name1 stop following name2.
func (n *Network) RemoveFollowee(name1, name2 string) bool {
	follower := n.GetUser(name1)
	if follower == nil {
		return false
	}
	return follower.RemoveFollowee(name2)
}

// RecommendWhoToFollow picks, among users that name does not follow yet, the
// one sharing the most followees with name. The first user in insertion order
// wins ties. A candidate needs at least one mutual followee.
func (n *Network) RecommendWhoToFollow(name string) (string, bool) {
	user := n.GetUser(name)
	if user == nil {
		return "", false
	}

	var best *User
	bestMutual := 0
	for _, candidate := range n.users {
		if candidate == user || user.Follows(candidate.Name()) {
			continue
		}
		if mutual := user.CountMutual(candidate); mutual > bestMutual {
			best, bestMutual = candidate, mutual
		}
	}
	if best == nil {
		return "", false
	}
	return best.Name(), true
}

// MostPopularUser returns the user with the most followers. The first user in
// insertion order wins ties. Returns false for an empty network.
func (n *Network) MostPopularUser() (string, bool) {
	if len(n.users) == 0 {
		return "", false
	}
	best := n.users[0]
	bestCount := n.FollowerCount(best.Name())
	for _, u := range n.users[1:] {
		if count := n.FollowerCount(u.Name()); count > bestCount {
			best, bestCount = u, count
		}
	}
	return best.Name(), true
}

// FollowerCount returns how many users follow name.
func (n *Network) FollowerCount(name string) int {
	count := 0
	for _, u := range n.users {
		if u.Follows(name) {
			count++
		}
	}
	return count
}

// String renders the network, one user per line:
//
//	Network:
//	Alice -> Bob Carol
//	Bob -> Alice
func (n *Network) String() string {
	var sb strings.Builder
	sb.WriteString("Network:")
	for _, u := range n.users {
		sb.WriteString("\n")
		sb.WriteString(u.String())
	}
	return sb.String()
}

func (n *Network) indexOf(name string) int {
	if NormalizeName(name) == "" {
		return -1
	}
	for i, u := range n.users {
		if SameName(u.Name(), name) {
			return i
		}
	}
	return -1
}
