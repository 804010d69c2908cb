package ports

import (
	"context"

	"github.com/taskhive/taskhive/internal/core/domain"
)

// JobApplicationInput is the DTO passed from the transport layer.
type JobApplicationInput struct {
	JobTitle    string
	Company     string
	DateApplied string
	Status      string
}

// ApplicationService tracks job applications per user.
type ApplicationService interface {
	Add(ctx context.Context, username string, input JobApplicationInput) error
	List(ctx context.Context, username string) ([]*domain.JobApplication, error)
}
