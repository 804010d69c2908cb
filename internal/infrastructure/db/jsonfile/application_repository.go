package jsonfile

import (
	"context"
	"sync"

	"github.com/taskhive/taskhive/internal/core/domain"
)

// ApplicationRepository stores job applications in one JSON file keyed by
// username, each value an ordered list.
type ApplicationRepository struct {
	path         string
	mu           sync.RWMutex
	applications map[string][]*domain.JobApplication
}

func NewApplicationRepository(path string) (*ApplicationRepository, error) {
	r := &ApplicationRepository{
		path:         path,
		applications: make(map[string][]*domain.JobApplication),
	}
	if err := readFile(path, &r.applications); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ApplicationRepository) Append(_ context.Context, username string, application *domain.JobApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *application
	previous := r.applications[username]
	r.applications[username] = append(previous, &clone)

	if err := r.persistLocked(); err != nil {
		r.applications[username] = previous
		return err
	}
	return nil
}

func (r *ApplicationRepository) ListByUsername(_ context.Context, username string) ([]*domain.JobApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.applications[username]
	out := make([]*domain.JobApplication, 0, len(stored))
	for _, application := range stored {
		clone := *application
		out = append(out, &clone)
	}
	return out, nil
}

func (r *ApplicationRepository) Ping(context.Context) error {
	return pingDir(r.path)
}

func (r *ApplicationRepository) persistLocked() error {
	return writeFile(r.path, r.applications, 0o644)
}
