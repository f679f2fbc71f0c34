package repositories

import (
	"context"

	"it-short.backend/internal/domain/entities"
)

// SystemUserRepository defines system-user data operations.
// Every lookup excludes soft-deleted rows.
type SystemUserRepository interface {
	Create(ctx context.Context, user *entities.SystemUser) error
	// GetByID returns ErrNotFound if the user is absent or soft-deleted
	GetByID(ctx context.Context, id string) (*entities.SystemUser, error)
	// GetByEmail returns ErrNotFound for an absent live user; callers
	// treat that as a normal absence result
	GetByEmail(ctx context.Context, email string) (*entities.SystemUser, error)
	// ListBrief returns all live users ordered by (first_name, last_name)
	ListBrief(ctx context.Context) ([]entities.SystemUserBrief, error)
	// List returns a page of live users plus the count of the full
	// filtered set (counted before pagination)
	List(ctx context.Context, params entities.ListParams) (*entities.SystemUserList, error)
	// Update overwrites the profile fields and stamps updated_at;
	// password hash and id are never touched
	Update(ctx context.Context, user *entities.SystemUser) error
	// SoftDelete marks the user deleted; it is a one-way transition
	SoftDelete(ctx context.Context, id string) error
}
