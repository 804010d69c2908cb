package domain

import (
	"errors"
	"time"
)

var ErrNoteNotFound = errors.New("note not found")

// Note is a personal note, stored per user and timestamped at creation.
type Note struct {
	NoteID  string    `json:"note_id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Date    time.Time `json:"date"`
}
