package follow

import (
	"fmt"

	"github.com/mishasvintus/social_network/internal/domain"
	"github.com/mishasvintus/social_network/internal/repository"
)

// Create inserts a follow edge at the given position in the follower's list.
func Create(exec repository.DBTX, f domain.Follow, position int) error {
	query := `
		INSERT INTO follows (follower, followee, position)
		VALUES ($1, $2, $3)
	`
	if _, err := exec.Exec(query, f.Follower, f.Followee, position); err != nil {
		return fmt.Errorf("failed to create follow: %w", err)
	}
	return nil
}

// List returns all follow edges grouped by follower, in follow order.
func List(exec repository.DBTX) ([]domain.Follow, error) {
	query := `
		SELECT f.follower, f.followee
		FROM follows f
		JOIN users u ON u.name = f.follower
		ORDER BY u.id, f.position
	`
	rows, err := exec.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list follows: %w", err)
	}
	defer func() { _ = rows.Close() }()

	follows := make([]domain.Follow, 0)
	for rows.Next() {
		var f domain.Follow
		if err := rows.Scan(&f.Follower, &f.Followee); err != nil {
			return nil, fmt.Errorf("failed to scan follow: %w", err)
		}
		follows = append(follows, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return follows, nil
}
