package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Grihladin/42Connect/internal/logger"
	"github.com/Grihladin/42Connect/models"
)

// studentRepository is the PostgreSQL-backed implementation of
// [StudentRepository]. It manages the "students" table, keyed by the
// stable intra user id.
//
// All methods obtain a context-scoped logger via [logger.FromContext]
// for structured, request-level tracing of database interactions.
type studentRepository struct {
	logger *logger.Logger
	db     querier
}

// NewStudentRepository constructs a [StudentRepository] backed by the
// provided database connection.
func NewStudentRepository(db *DB) StudentRepository {
	db.logger.Debug().Msg("creating student repository")
	return &studentRepository{
		db:     db,
		logger: db.logger,
	}
}

// UpsertStudent inserts or fully overwrites the student row keyed by
// RemoteID and returns the canonical database representation with
// server-assigned fields (ID, CreatedAt, UpdatedAt).
//
// The row is created on first sync and updated in place afterwards;
// every profile field is overwritten, including fields that became NULL
// upstream.
func (r *studentRepository) UpsertStudent(ctx context.Context, student models.Student) (models.Student, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, upsertStudent,
		student.RemoteID, student.Login, student.DisplayName, student.Email, student.ImageURL, student.Campus)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*studentRepository.UpsertStudent").Msg("error: row is nil")
		return models.Student{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var saved models.Student
	if err := scanStudent(row.Scan, &saved); err != nil {
		log.Err(err).Str("func", "*studentRepository.UpsertStudent").Msg("error: scanning error")
		return models.Student{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}

// FindStudentByRemoteID retrieves the student whose intra user id is
// remoteID.
//
// Error handling:
//   - sql.ErrNoRows → [ErrStudentNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *studentRepository) FindStudentByRemoteID(ctx context.Context, remoteID int64) (models.Student, error) {
	log := logger.FromContext(ctx)

	query, args, err := findStudentByRemoteIDQuery(remoteID).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*studentRepository.FindStudentByRemoteID").Msg("error building query")
		return models.Student{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Student
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = scanStudent(row.Scan, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Student{}, ErrStudentNotFound
		}
		log.Err(err).Str("func", "*studentRepository.FindStudentByRemoteID").Msg("error: scanning error")
		return models.Student{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// DeleteStudentsNotSyncedSince removes every student whose profile has
// not been refreshed since cutoff. Projects and enrollments follow via
// ON DELETE CASCADE.
func (r *studentRepository) DeleteStudentsNotSyncedSince(ctx context.Context, cutoff time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := deleteStaleStudentsQuery(cutoff).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*studentRepository.DeleteStudentsNotSyncedSince").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*studentRepository.DeleteStudentsNotSyncedSince").Msg("error deleting stale students")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deleted, nil
}

func scanStudent(scan func(dest ...any) error, s *models.Student) error {
	return scan(&s.ID, &s.RemoteID, &s.Login, &s.DisplayName, &s.Email, &s.ImageURL, &s.Campus, &s.CreatedAt, &s.UpdatedAt)
}
