package store

import (
	"context"
	"fmt"

	"github.com/Grihladin/42Connect/internal/logger"
	"github.com/Grihladin/42Connect/models"
)

// cursusRepository is the PostgreSQL-backed implementation of
// [CursusRepository]. Rows live in the "cursus_enrollments" table,
// identified by the (student_id, forty_two_cursus_id) pair.
type cursusRepository struct {
	logger *logger.Logger
	db     querier
}

// NewCursusRepository constructs a [CursusRepository] backed by the
// provided database connection.
func NewCursusRepository(db *DB) CursusRepository {
	db.logger.Debug().Msg("creating cursus repository")
	return &cursusRepository{
		db:     db,
		logger: db.logger,
	}
}

// GetCursusByStudent lists every mirrored enrollment of studentID.
func (r *cursusRepository) GetCursusByStudent(ctx context.Context, studentID int64) ([]models.CursusEnrollment, error) {
	log := logger.FromContext(ctx)

	query, args, err := getCursusByStudentQuery(studentID).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*cursusRepository.GetCursusByStudent").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*cursusRepository.GetCursusByStudent").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer func() { _ = rows.Close() }()

	var enrollments []models.CursusEnrollment
	for rows.Next() {
		var e models.CursusEnrollment
		if err = rows.Scan(
			&e.ID, &e.StudentID, &e.RemoteCursusID, &e.Name, &e.Grade, &e.BeganAt, &e.EndedAt, &e.SyncedAt,
		); err != nil {
			log.Err(err).Str("func", "*cursusRepository.GetCursusByStudent").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		enrollments = append(enrollments, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return enrollments, nil
}

// SaveCursus inserts a new mirrored enrollment row.
func (r *cursusRepository) SaveCursus(ctx context.Context, enrollment models.CursusEnrollment) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, saveCursus,
		enrollment.StudentID,
		enrollment.RemoteCursusID,
		enrollment.Name,
		enrollment.Grade,
		enrollment.BeganAt,
		enrollment.EndedAt,
		enrollment.SyncedAt,
	)
	if err != nil {
		log.Err(err).Str("func", "*cursusRepository.SaveCursus").
			Int64("cursus_id", enrollment.RemoteCursusID).Msg("error inserting enrollment")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// UpdateCursus overwrites every mirrored field of the row matched by
// (StudentID, RemoteCursusID).
func (r *cursusRepository) UpdateCursus(ctx context.Context, enrollment models.CursusEnrollment) error {
	log := logger.FromContext(ctx)

	query, args, err := updateCursusQuery(enrollment.StudentID, enrollment.RemoteCursusID, map[string]any{
		"name":      enrollment.Name,
		"grade":     enrollment.Grade,
		"began_at":  enrollment.BeganAt,
		"ended_at":  enrollment.EndedAt,
		"synced_at": enrollment.SyncedAt,
	}).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*cursusRepository.UpdateCursus").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*cursusRepository.UpdateCursus").
			Int64("cursus_id", enrollment.RemoteCursusID).Msg("error updating enrollment")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteCursusByRemoteIDs removes the student's rows whose remote cursus
// ids are in remoteIDs. A no-op for an empty id list.
func (r *cursusRepository) DeleteCursusByRemoteIDs(ctx context.Context, studentID int64, remoteIDs []int64) error {
	if len(remoteIDs) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := deleteCursusByRemoteIDsQuery(studentID, remoteIDs).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*cursusRepository.DeleteCursusByRemoteIDs").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*cursusRepository.DeleteCursusByRemoteIDs").Msg("error deleting enrollments")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
