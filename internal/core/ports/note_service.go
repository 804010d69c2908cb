package ports

import (
	"context"

	"github.com/taskhive/taskhive/internal/core/domain"
)

// NoteService manages personal notes per user.
type NoteService interface {
	// Add stores a new note and returns it with its generated ID and
	// creation timestamp.
	Add(ctx context.Context, username, title, content string) (*domain.Note, error)
	List(ctx context.Context, username string) ([]*domain.Note, error)
}
