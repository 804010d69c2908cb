package jsonfile

import (
	"context"
	"sort"
	"sync"

	"github.com/taskhive/taskhive/internal/core/domain"
)

// StudentRepository stores portal profiles in one JSON file keyed by
// username. Records are deep-copied on the way in and out so callers can
// never mutate the store through a returned pointer.
type StudentRepository struct {
	path     string
	mu       sync.RWMutex
	students map[string]*domain.Student
}

func NewStudentRepository(path string) (*StudentRepository, error) {
	r := &StudentRepository{
		path:     path,
		students: make(map[string]*domain.Student),
	}
	if err := readFile(path, &r.students); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *StudentRepository) Upsert(_ context.Context, student *domain.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	previous, existed := r.students[student.Username]
	r.students[student.Username] = copyStudent(student)

	if err := r.persistLocked(); err != nil {
		if existed {
			r.students[student.Username] = previous
		} else {
			delete(r.students, student.Username)
		}
		return err
	}
	return nil
}

func (r *StudentRepository) FindByUsername(_ context.Context, username string) (*domain.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	student, ok := r.students[username]
	if !ok {
		return nil, domain.ErrStudentNotFound
	}
	return copyStudent(student), nil
}

func (r *StudentRepository) List(_ context.Context) ([]*domain.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Student, 0, len(r.students))
	for _, student := range r.students {
		out = append(out, copyStudent(student))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (r *StudentRepository) Delete(_ context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	previous, ok := r.students[username]
	if !ok {
		return domain.ErrStudentNotFound
	}
	delete(r.students, username)

	if err := r.persistLocked(); err != nil {
		r.students[username] = previous
		return err
	}
	return nil
}

func (r *StudentRepository) Ping(context.Context) error {
	return pingDir(r.path)
}

func (r *StudentRepository) persistLocked() error {
	return writeFile(r.path, r.students, 0o644)
}

func copyStudent(s *domain.Student) *domain.Student {
	clone := *s
	clone.SubjectScores = make(map[string]float64, len(s.SubjectScores))
	for subject, score := range s.SubjectScores {
		clone.SubjectScores[subject] = score
	}
	return &clone
}
