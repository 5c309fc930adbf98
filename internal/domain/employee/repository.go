package employee

import "context"

// EmployeeRepository is the employee directory consumed by the import
// pipeline. Lookup methods that can legitimately miss return nil instead of
// an error so the resolver chain can fall through.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByCode matches the directory's employee-code field exactly.
	GetByCode(ctx context.Context, code string) (*Employee, error)

	// GetByLegacyID resolves legacy person/biometric identifiers: exact
	// employee-code match, or a partial match on the legacy identifier field.
	GetByLegacyID(ctx context.Context, legacyID string) (*Employee, error)

	// GetByUserID returns the profile already materialized for a user
	// account, keeping profile creation idempotent.
	GetByUserID(ctx context.Context, userID string) (*Employee, error)

	// FindByName runs the strict-equality name query. Capped at two rows;
	// the caller accepts the match only when exactly one row came back.
	FindByName(ctx context.Context, q NameQuery) ([]Employee, error)

	// Create inserts a minimal employee profile. The name-fallback path is
	// the only writer outside attendance data.
	Create(ctx context.Context, emp Employee) (Employee, error)

	// ListActive returns employees eligible for the absence backfill:
	// active employment status, applicant role excluded.
	ListActive(ctx context.Context) ([]Employee, error)
}
