package ports

import (
	"context"

	"github.com/taskhive/taskhive/internal/core/domain"
)

// UpdateStudentInput replaces a student's editable profile fields wholesale.
// Unlike a grade update, the score map is not merged.
type UpdateStudentInput struct {
	Name          string
	SubjectScores map[string]float64
}

// StudentService defines use-case operations for the student portal.
type StudentService interface {
	// UpdateGrades merges scores into the student's record and recomputes
	// the average and letter grade.
	UpdateGrades(ctx context.Context, username string, scores map[string]float64) (*domain.Student, error)
	GetRecord(ctx context.Context, username string) (*domain.Student, error)
	List(ctx context.Context) ([]*domain.Student, error)
	Update(ctx context.Context, username string, input UpdateStudentInput) (*domain.Student, error)
	Delete(ctx context.Context, username string) error
}
