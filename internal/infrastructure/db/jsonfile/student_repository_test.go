package jsonfile

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/taskhive/taskhive/internal/core/domain"
)

func TestStudentRepository_UpsertAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.json")

	repo, err := NewStudentRepository(path)
	if err != nil {
		t.Fatalf("NewStudentRepository returned error: %v", err)
	}

	student := &domain.Student{
		Username:      "alice",
		Name:          "alice",
		SubjectScores: map[string]float64{"math": 92.5},
	}
	student.Recalculate()
	if err := repo.Upsert(context.Background(), student); err != nil {
		t.Fatalf("Upsert returned error: %v", err)
	}

	reopened, err := NewStudentRepository(path)
	if err != nil {
		t.Fatalf("reopen returned error: %v", err)
	}
	got, err := reopened.FindByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("FindByUsername after reload: %v", err)
	}
	if got.SubjectScores["math"] != 92.5 || got.Grade != "A" {
		t.Errorf("record did not survive reload: %+v", got)
	}
}

func TestStudentRepository_ReturnsCopies(t *testing.T) {
	repo, err := NewStudentRepository(filepath.Join(t.TempDir(), "students.json"))
	if err != nil {
		t.Fatalf("NewStudentRepository returned error: %v", err)
	}

	student := &domain.Student{Username: "bob", Name: "bob", SubjectScores: map[string]float64{"math": 50}}
	_ = repo.Upsert(context.Background(), student)

	got, _ := repo.FindByUsername(context.Background(), "bob")
	got.SubjectScores["math"] = 0

	fresh, _ := repo.FindByUsername(context.Background(), "bob")
	if fresh.SubjectScores["math"] != 50 {
		t.Errorf("mutating a returned record leaked into the store")
	}
}

func TestStudentRepository_ListSorted(t *testing.T) {
	repo, err := NewStudentRepository(filepath.Join(t.TempDir(), "students.json"))
	if err != nil {
		t.Fatalf("NewStudentRepository returned error: %v", err)
	}

	for _, name := range []string{"zoe", "adam", "mia"} {
		_ = repo.Upsert(context.Background(), &domain.Student{Username: name, Name: name, SubjectScores: map[string]float64{}})
	}

	students, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(students) != 3 {
		t.Fatalf("expected 3 students, got %d", len(students))
	}
	if students[0].Username != "adam" || students[2].Username != "zoe" {
		t.Errorf("list not sorted by username: %s, %s, %s", students[0].Username, students[1].Username, students[2].Username)
	}
}

func TestStudentRepository_Delete(t *testing.T) {
	repo, err := NewStudentRepository(filepath.Join(t.TempDir(), "students.json"))
	if err != nil {
		t.Fatalf("NewStudentRepository returned error: %v", err)
	}

	if err := repo.Delete(context.Background(), "ghost"); err != domain.ErrStudentNotFound {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}

	_ = repo.Upsert(context.Background(), &domain.Student{Username: "carol", Name: "carol", SubjectScores: map[string]float64{}})
	if err := repo.Delete(context.Background(), "carol"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := repo.FindByUsername(context.Background(), "carol"); err != domain.ErrStudentNotFound {
		t.Fatalf("expected ErrStudentNotFound after delete, got %v", err)
	}
}
