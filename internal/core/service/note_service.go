package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/taskhive/taskhive/internal/core/domain"
	"github.com/taskhive/taskhive/internal/core/ports"
)

// NoteService manages personal notes per user.
type NoteService struct {
	notes ports.NoteRepository
}

func NewNoteService(notes ports.NoteRepository) *NoteService {
	return &NoteService{notes: notes}
}

func (s *NoteService) Add(ctx context.Context, username, title, content string) (*domain.Note, error) {
	note := &domain.Note{
		NoteID:  uuid.NewString(),
		Title:   title,
		Content: content,
		Date:    time.Now().UTC(),
	}

	if err := s.notes.Append(ctx, username, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) List(ctx context.Context, username string) ([]*domain.Note, error) {
	return s.notes.ListByUsername(ctx, username)
}
