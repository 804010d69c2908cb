package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/taskhive/taskhive/internal/core/domain"
	"github.com/taskhive/taskhive/internal/core/ports"
)

// ApplicationService tracks job applications per user.
type ApplicationService struct {
	applications ports.ApplicationRepository
	logger       zerolog.Logger
}

func NewApplicationService(applications ports.ApplicationRepository, logger zerolog.Logger) *ApplicationService {
	return &ApplicationService{applications: applications, logger: logger}
}

func (s *ApplicationService) Add(ctx context.Context, username string, input ports.JobApplicationInput) error {
	application := &domain.JobApplication{
		JobTitle:    input.JobTitle,
		Company:     input.Company,
		DateApplied: input.DateApplied,
		Status:      input.Status,
	}

	if err := s.applications.Append(ctx, username, application); err != nil {
		return err
	}

	s.logger.Info().Str("username", username).Str("company", input.Company).Msg("application added")
	return nil
}

func (s *ApplicationService) List(ctx context.Context, username string) ([]*domain.JobApplication, error) {
	return s.applications.ListByUsername(ctx, username)
}
