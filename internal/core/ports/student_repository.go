package ports

import (
	"context"

	"github.com/taskhive/taskhive/internal/core/domain"
)

// StudentRepository defines persistence for portal profiles.
// Profiles are keyed by username, matching the credential records.
type StudentRepository interface {
	// Upsert inserts or replaces the profile for student.Username.
	Upsert(ctx context.Context, student *domain.Student) error
	FindByUsername(ctx context.Context, username string) (*domain.Student, error)
	List(ctx context.Context) ([]*domain.Student, error)
	Delete(ctx context.Context, username string) error
}
