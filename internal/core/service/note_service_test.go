package service

import (
	"context"
	"testing"
	"time"

	"github.com/taskhive/taskhive/internal/core/domain"
)

type stubNoteRepo struct {
	notes map[string][]*domain.Note
}

func newStubNoteRepo() *stubNoteRepo {
	return &stubNoteRepo{notes: make(map[string][]*domain.Note)}
}

func (r *stubNoteRepo) Append(_ context.Context, username string, note *domain.Note) error {
	clone := *note
	r.notes[username] = append(r.notes[username], &clone)
	return nil
}

func (r *stubNoteRepo) ListByUsername(_ context.Context, username string) ([]*domain.Note, error) {
	return append([]*domain.Note(nil), r.notes[username]...), nil
}

func TestNoteService_Add(t *testing.T) {
	svc := NewNoteService(newStubNoteRepo())

	before := time.Now().UTC()
	note, err := svc.Add(context.Background(), "alice", "groceries", "milk, eggs")
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	if note.NoteID == "" {
		t.Errorf("note must get a generated ID")
	}
	if note.Title != "groceries" || note.Content != "milk, eggs" {
		t.Errorf("unexpected note fields: %+v", note)
	}
	if note.Date.Before(before) || note.Date.After(time.Now().UTC()) {
		t.Errorf("date not stamped at creation: %v", note.Date)
	}

	second, _ := svc.Add(context.Background(), "alice", "todo", "laundry")
	if second.NoteID == note.NoteID {
		t.Errorf("note IDs must be unique")
	}
}

func TestNoteService_List_ScopedToUser(t *testing.T) {
	svc := NewNoteService(newStubNoteRepo())

	_, _ = svc.Add(context.Background(), "alice", "a", "1")
	_, _ = svc.Add(context.Background(), "bob", "b", "2")

	notes, err := svc.List(context.Background(), "alice")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(notes) != 1 || notes[0].Title != "a" {
		t.Errorf("expected only alice's note, got %+v", notes)
	}

	empty, err := svc.List(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected no notes for unknown user, got %d", len(empty))
	}
}
