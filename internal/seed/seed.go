// Package seed imports an initial network from a YAML fixture or PostgreSQL.
package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mishasvintus/social_network/internal/domain"
	"github.com/mishasvintus/social_network/internal/repository"
	"github.com/mishasvintus/social_network/internal/repository/follow"
	"github.com/mishasvintus/social_network/internal/repository/user"
)

// Fixture is the initial content of a network.
type Fixture struct {
	Users   []string        `yaml:"users"`
	Follows []domain.Follow `yaml:"follows"`
}

// Target receives the imported users and follows.
type Target interface {
	AddUser(name string) (*domain.UserProfile, error)
	Follow(follower, followee string) (*domain.UserProfile, error)
}

// LoadFile parses a YAML fixture.
func LoadFile(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return &f, nil
}

// LoadPostgres reads the users and follows tables.
func LoadPostgres(exec repository.DBTX) (*Fixture, error) {
	names, err := user.ListNames(exec)
	if err != nil {
		if repository.IsUndefinedTable(err) {
			return nil, fmt.Errorf("seed tables are missing, apply migrations first: %w", err)
		}
		return nil, err
	}
	follows, err := follow.List(exec)
	if err != nil {
		return nil, err
	}
	return &Fixture{Users: names, Follows: follows}, nil
}

// Apply adds every user, then every follow, to t. It stops at the first failure.
func Apply(f *Fixture, t Target) error {
	for _, name := range f.Users {
		if _, err := t.AddUser(name); err != nil {
			return fmt.Errorf("failed to add user %q: %w", name, err)
		}
	}
	for _, fl := range f.Follows {
		if _, err := t.Follow(fl.Follower, fl.Followee); err != nil {
			return fmt.Errorf("failed to add follow %q -> %q: %w", fl.Follower, fl.Followee, err)
		}
	}
	return nil
}
