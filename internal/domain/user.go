package domain

import "strings"

// DefaultMaxFollowees is the number of users a user may follow when no limit is given.
const DefaultMaxFollowees = 10

// User is a member of a network with a bounded, ordered list of followee names.
type User struct {
	name         string
	followees    []string
	maxFollowees int
}

// NewUser creates a user with an empty followee list.
// A non-positive maxFollowees falls back to DefaultMaxFollowees.
func NewUser(name string, maxFollowees int) *User {
	if maxFollowees <= 0 {
		maxFollowees = DefaultMaxFollowees
	}
	return &User{
		name:         NormalizeName(name),
		followees:    make([]string, 0, maxFollowees),
		maxFollowees: maxFollowees,
	}
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// Followees returns a copy of the followee names in follow order.
func (u *User) Followees() []string {
	out := make([]string, len(u.followees))
	copy(out, u.followees)
	return out
}

// FolloweeCount returns the number of users this user follows.
func (u *User) FolloweeCount() int {
	return len(u.followees)
}

// MaxFollowees returns the followee list capacity.
func (u *User) MaxFollowees() int {
	return u.maxFollowees
}

// Follows reports whether name is in the followee list.
func (u *User) Follows(name string) bool {
	return u.indexOf(name) >= 0
}

// AddFollowee appends name to the followee list.
// Returns false if the name is empty, already followed, or the list is full.
func (u *User) AddFollowee(name string) bool {
	name = NormalizeName(name)
	if name == "" || u.Follows(name) {
		return false
	}
	if len(u.followees) >= u.maxFollowees {
		return false
	}
	u.followees = append(u.followees, name)
	return true
}

// RemoveFollowee drops name from the followee list, keeping the order of the
// remaining entries. Returns false if name is empty or not followed.
func (u *User) RemoveFollowee(name string) bool {
	i := u.indexOf(name)
	if i < 0 {
		return false
	}
	u.followees = append(u.followees[:i], u.followees[i+1:]...)
	return true
}

// CountMutual counts followee pairs shared with other. Every matching pair is
// counted, so repeated entries are not collapsed.
func (u *User) CountMutual(other *User) int {
	if other == nil {
		return 0
	}
	count := 0
	for _, mine := range u.followees {
		for _, theirs := range other.followees {
			if SameName(mine, theirs) {
				count++
			}
		}
	}
	return count
}

// IsFriendOf reports whether u and other follow each other.
func (u *User) IsFriendOf(other *User) bool {
	if other == nil {
		return false
	}
	return u.Follows(other.name) && other.Follows(u.name)
}

// String renders the user as "<name> -> <followee> <followee> ...".
func (u *User) String() string {
	return u.name + " -> " + strings.Join(u.followees, " ")
}

func (u *User) indexOf(name string) int {
	if NormalizeName(name) == "" {
		return -1
	}
	for i, f := range u.followees {
		if SameName(f, name) {
			return i
		}
	}
	return -1
}
