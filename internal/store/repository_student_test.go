package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Grihladin/42Connect/internal/logger"
	"github.com/Grihladin/42Connect/models"
)

func newTestStudentRepo(t *testing.T) (*studentRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &studentRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func strPtr(s string) *string { return &s }

func TestUpsertStudent_Insert(t *testing.T) {
	repo, mock, db := newTestStudentRepo(t)
	defer db.Close()

	ctx := context.Background()
	student := models.Student{
		RemoteID:    42,
		Login:       "jdoe",
		DisplayName: strPtr("John Doe"),
		Email:       strPtr("jdoe@student.42.fr"),
		Campus:      strPtr("Paris"),
	}

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"id", "forty_two_id", "login", "display_name", "email", "image_url", "campus", "created_at", "updated_at"}).
		AddRow(1, student.RemoteID, student.Login, student.DisplayName, student.Email, nil, student.Campus, now, now)

	mock.ExpectQuery("INSERT INTO students").
		WithArgs(student.RemoteID, student.Login, student.DisplayName, student.Email, student.ImageURL, student.Campus).
		WillReturnRows(rows)

	saved, err := repo.UpsertStudent(ctx, student)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID != 1 {
		t.Errorf("expected ID=1, got %d", saved.ID)
	}
	if saved.RemoteID != 42 {
		t.Errorf("expected RemoteID=42, got %d", saved.RemoteID)
	}
	if saved.ImageURL != nil {
		t.Errorf("expected nil ImageURL, got %v", *saved.ImageURL)
	}
}

func TestFindStudentByRemoteID_NotFound(t *testing.T) {
	repo, mock, db := newTestStudentRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM students").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindStudentByRemoteID(context.Background(), 404)
	if !errors.Is(err, ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}

func TestFindStudentByRemoteID_Success(t *testing.T) {
	repo, mock, db := newTestStudentRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"id", "forty_two_id", "login", "display_name", "email", "image_url", "campus", "created_at", "updated_at"}).
		AddRow(7, 42, "jdoe", "John Doe", nil, nil, "Paris", now, now)

	mock.ExpectQuery("SELECT (.+) FROM students").
		WithArgs(int64(42)).
		WillReturnRows(rows)

	found, err := repo.FindStudentByRemoteID(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Login != "jdoe" {
		t.Errorf("expected login jdoe, got %s", found.Login)
	}
	if found.Campus == nil || *found.Campus != "Paris" {
		t.Errorf("expected campus Paris, got %v", found.Campus)
	}
}

func TestDeleteStudentsNotSyncedSince(t *testing.T) {
	repo, mock, db := newTestStudentRepo(t)
	defer db.Close()

	cutoff := time.Now().Add(-30 * 24 * time.Hour)
	mock.ExpectExec("DELETE FROM students").
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 3))

	deleted, err := repo.DeleteStudentsNotSyncedSince(context.Background(), cutoff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 3 {
		t.Errorf("expected 3 deleted, got %d", deleted)
	}
}
