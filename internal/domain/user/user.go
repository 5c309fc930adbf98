package user

import (
	"context"
	"time"
)

// User is an account record. Accounts can exist before an employee profile
// is materialized for them.
type User struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type UserRepository interface {
	// FindUnlinkedByName matches an account by display name among accounts
	// that have no employee profile yet. Returns nil when none matches.
	FindUnlinkedByName(ctx context.Context, name string) (*User, error)
}
