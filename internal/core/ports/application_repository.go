package ports

import (
	"context"

	"github.com/taskhive/taskhive/internal/core/domain"
)

// ApplicationRepository defines persistence for per-user job applications.
type ApplicationRepository interface {
	Append(ctx context.Context, username string, application *domain.JobApplication) error
	// ListByUsername returns the user's applications, oldest first.
	// A user with no applications gets an empty slice, not an error.
	ListByUsername(ctx context.Context, username string) ([]*domain.JobApplication, error)
}
