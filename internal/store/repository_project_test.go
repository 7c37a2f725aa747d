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
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestProjectRepo(t *testing.T) (*projectRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &projectRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestGetProjectsByStudent(t *testing.T) {
	repo, mock, db := newTestProjectRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{
			"id", "student_id", "forty_two_project_user_id", "forty_two_project_id",
			"slug", "name", "status", "validated", "final_mark", "progress_percent", "marked_at", "synced_at",
		}).
		AddRow(1, 7, 1001, 55, "libft", "Libft", "finished", true, 115, nil, now, now).
		AddRow(2, 7, 1002, 56, "ft_printf", "ft_printf", "in_progress", nil, nil, 42, nil, now)

	mock.ExpectQuery("SELECT (.+) FROM projects").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	projects, err := repo.GetProjectsByStudent(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}
	if projects[0].RemoteProjectUserID != 1001 {
		t.Errorf("expected remote id 1001, got %d", projects[0].RemoteProjectUserID)
	}
	if projects[1].ProgressPercent == nil || *projects[1].ProgressPercent != 42 {
		t.Errorf("expected progress 42, got %v", projects[1].ProgressPercent)
	}
	if projects[1].MarkedAt != nil {
		t.Errorf("expected nil MarkedAt, got %v", projects[1].MarkedAt)
	}
}

func TestSaveProject_DuplicateRemoteID(t *testing.T) {
	repo, mock, db := newTestProjectRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO projects").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.SaveProject(context.Background(), models.Project{StudentID: 7, RemoteProjectUserID: 1001})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestUpdateProject(t *testing.T) {
	repo, mock, db := newTestProjectRepo(t)
	defer db.Close()

	name := "Libft"
	project := models.Project{
		StudentID:           7,
		RemoteProjectUserID: 1001,
		Name:                &name,
		SyncedAt:            time.Now(),
	}

	mock.ExpectExec("UPDATE projects").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateProject(context.Background(), project); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteProjectsByRemoteIDs_EmptyList(t *testing.T) {
	repo, mock, db := newTestProjectRepo(t)
	defer db.Close()

	// No SQL must run for an empty id list.
	if err := repo.DeleteProjectsByRemoteIDs(context.Background(), 7, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteProjectsByRemoteIDs(t *testing.T) {
	repo, mock, db := newTestProjectRepo(t)
	defer db.Close()

	// squirrel orders Eq map keys alphabetically, so the id list binds
	// before student_id.
	mock.ExpectExec("DELETE FROM projects").
		WithArgs(int64(1001), int64(1002), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.DeleteProjectsByRemoteIDs(context.Background(), 7, []int64{1001, 1002})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
