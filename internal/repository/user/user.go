package user

import (
	"fmt"

	"github.com/mishasvintus/social_network/internal/repository"
)

// Create inserts a user name.
func Create(exec repository.DBTX, name string) error {
	query := `INSERT INTO users (name) VALUES ($1)`
	if _, err := exec.Exec(query, name); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// ListNames returns all user names in insertion order.
func ListNames(exec repository.DBTX) ([]string, error) {
	query := `
		SELECT name
		FROM users
		ORDER BY id
	`
	rows, err := exec.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer func() { _ = rows.Close() }()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return names, nil
}
