package ports

import (
	"context"

	"github.com/taskhive/taskhive/internal/core/domain"
)

// NoteRepository defines persistence for per-user notes.
type NoteRepository interface {
	Append(ctx context.Context, username string, note *domain.Note) error
	// ListByUsername returns the user's notes, oldest first. A user with no
	// notes gets an empty slice, not an error.
	ListByUsername(ctx context.Context, username string) ([]*domain.Note, error)
}
