package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/taskhive/taskhive/internal/core/domain"
	"github.com/taskhive/taskhive/internal/core/ports"
)

// StudentService layers portal profiles on top of the shared auth flow. It
// satisfies both ports.AuthService and ports.StudentService: registering
// through it creates the credential record and an empty profile together.
type StudentService struct {
	auth     ports.AuthService
	accounts ports.AccountRepository
	students ports.StudentRepository
	logger   zerolog.Logger
}

func NewStudentService(auth ports.AuthService, accounts ports.AccountRepository, students ports.StudentRepository, logger zerolog.Logger) *StudentService {
	return &StudentService{
		auth:     auth,
		accounts: accounts,
		students: students,
		logger:   logger,
	}
}

func (s *StudentService) Register(ctx context.Context, username, password string) (*domain.Account, error) {
	account, err := s.auth.Register(ctx, username, password)
	if err != nil {
		return nil, err
	}

	// The account is durable at this point. A failed profile write is
	// logged and healed by the next grade update instead of failing the
	// registration.
	if err := s.ensureProfile(ctx, account.Username); err != nil {
		s.logger.Error().Err(err).Str("username", account.Username).Msg("failed to create student profile")
	}
	return account, nil
}

func (s *StudentService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	return s.auth.Login(ctx, username, password)
}

func (s *StudentService) ChangePassword(ctx context.Context, target, newPassword string) error {
	return s.auth.ChangePassword(ctx, target, newPassword)
}

func (s *StudentService) ensureProfile(ctx context.Context, username string) error {
	_, err := s.students.FindByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrStudentNotFound) {
		return err
	}

	student := &domain.Student{
		Username:      username,
		Name:          username,
		SubjectScores: make(map[string]float64),
	}
	student.Recalculate()
	return s.students.Upsert(ctx, student)
}

// UpdateGrades merges scores into the student's record and recomputes the
// average and letter grade. An account that lost its profile gets a fresh
// one here; a username with no account at all is a not-found.
func (s *StudentService) UpdateGrades(ctx context.Context, username string, scores map[string]float64) (*domain.Student, error) {
	student, err := s.students.FindByUsername(ctx, username)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrStudentNotFound):
		if _, accErr := s.accounts.FindByUsername(ctx, username); accErr != nil {
			if errors.Is(accErr, domain.ErrUserNotFound) {
				return nil, domain.ErrStudentNotFound
			}
			return nil, accErr
		}
		student = &domain.Student{
			Username:      username,
			Name:          username,
			SubjectScores: make(map[string]float64),
		}
	default:
		return nil, err
	}

	if student.SubjectScores == nil {
		student.SubjectScores = make(map[string]float64)
	}
	for subject, score := range scores {
		student.SubjectScores[subject] = score
	}
	student.Recalculate()

	if err := s.students.Upsert(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", username).Float64("average", student.AverageScore).Str("grade", student.Grade).Msg("grades updated")
	return student, nil
}

func (s *StudentService) GetRecord(ctx context.Context, username string) (*domain.Student, error) {
	return s.students.FindByUsername(ctx, username)
}

func (s *StudentService) List(ctx context.Context) ([]*domain.Student, error) {
	return s.students.List(ctx)
}

// Update replaces the student's name and full score map.
func (s *StudentService) Update(ctx context.Context, username string, input ports.UpdateStudentInput) (*domain.Student, error) {
	student, err := s.students.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	student.Name = input.Name
	student.SubjectScores = input.SubjectScores
	if student.SubjectScores == nil {
		student.SubjectScores = make(map[string]float64)
	}
	student.Recalculate()

	if err := s.students.Upsert(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *StudentService) Delete(ctx context.Context, username string) error {
	return s.students.Delete(ctx, username)
}
