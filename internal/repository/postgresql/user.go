package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/domain/user"
	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

// FindUnlinkedByName implements user.UserRepository. Only accounts without a
// materialized employee profile qualify; linked accounts already resolve
// through the employee directory.
func (r *userRepository) FindUnlinkedByName(ctx context.Context, name string) (*user.User, error) {
	query := `
		SELECT u.id, u.name, u.email, u.created_at, u.updated_at
		FROM users u
		LEFT JOIN employees e ON e.user_id = u.id
		WHERE e.id IS NULL
		  AND LOWER(u.name) = LOWER($1)
		ORDER BY u.created_at ASC
		LIMIT 1
	`

	var u user.User
	err := r.db.QueryRow(ctx, query, name).Scan(
		&u.ID, &u.Name, &u.Email, &u.CreatedAt, &u.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find unlinked user: %w", err)
	}

	return &u, nil
}
