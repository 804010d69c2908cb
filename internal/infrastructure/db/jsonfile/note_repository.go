package jsonfile

import (
	"context"
	"sync"

	"github.com/taskhive/taskhive/internal/core/domain"
)

// NoteRepository stores notes in one JSON file keyed by username, each
// value an ordered list.
type NoteRepository struct {
	path  string
	mu    sync.RWMutex
	notes map[string][]*domain.Note
}

func NewNoteRepository(path string) (*NoteRepository, error) {
	r := &NoteRepository{
		path:  path,
		notes: make(map[string][]*domain.Note),
	}
	if err := readFile(path, &r.notes); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *NoteRepository) Append(_ context.Context, username string, note *domain.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *note
	previous := r.notes[username]
	r.notes[username] = append(previous, &clone)

	if err := r.persistLocked(); err != nil {
		r.notes[username] = previous
		return err
	}
	return nil
}

func (r *NoteRepository) ListByUsername(_ context.Context, username string) ([]*domain.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.notes[username]
	out := make([]*domain.Note, 0, len(stored))
	for _, note := range stored {
		clone := *note
		out = append(out, &clone)
	}
	return out, nil
}

func (r *NoteRepository) Ping(context.Context) error {
	return pingDir(r.path)
}

func (r *NoteRepository) persistLocked() error {
	return writeFile(r.path, r.notes, 0o644)
}
