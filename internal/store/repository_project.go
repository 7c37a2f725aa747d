package store

import (
	"context"
	"fmt"

	"github.com/Grihladin/42Connect/internal/logger"
	"github.com/Grihladin/42Connect/models"
	"github.com/jackc/pgerrcode"
)

// projectRepository is the PostgreSQL-backed implementation of
// [ProjectRepository]. Rows live in the "projects" table, owned by a
// student and identified upstream by forty_two_project_user_id.
type projectRepository struct {
	logger *logger.Logger
	db     querier
}

// NewProjectRepository constructs a [ProjectRepository] backed by the
// provided database connection.
func NewProjectRepository(db *DB) ProjectRepository {
	db.logger.Debug().Msg("creating project repository")
	return &projectRepository{
		db:     db,
		logger: db.logger,
	}
}

// GetProjectsByStudent lists every mirrored project of studentID, most
// recently marked first.
func (r *projectRepository) GetProjectsByStudent(ctx context.Context, studentID int64) ([]models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := getProjectsByStudentQuery(studentID).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.GetProjectsByStudent").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.GetProjectsByStudent").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer func() { _ = rows.Close() }()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err = rows.Scan(
			&p.ID, &p.StudentID, &p.RemoteProjectUserID, &p.RemoteProjectID,
			&p.Slug, &p.Name, &p.Status, &p.Validated, &p.FinalMark, &p.ProgressPercent, &p.MarkedAt, &p.SyncedAt,
		); err != nil {
			log.Err(err).Str("func", "*projectRepository.GetProjectsByStudent").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		projects = append(projects, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return projects, nil
}

// SaveProject inserts a new mirrored project row.
//
// A unique_violation on forty_two_project_user_id means a concurrent
// cycle already inserted the row; it is reported as a plain error and
// the caller's transaction rolls back.
func (r *projectRepository) SaveProject(ctx context.Context, project models.Project) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, saveProject,
		project.StudentID,
		project.RemoteProjectUserID,
		project.RemoteProjectID,
		project.Slug,
		project.Name,
		project.Status,
		project.Validated,
		project.FinalMark,
		project.ProgressPercent,
		project.MarkedAt,
		project.SyncedAt,
	)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.SaveProject").
			Int64("project_user_id", project.RemoteProjectUserID).Msg("error inserting project")
		if postgresError(err) == pgerrcode.UniqueViolation {
			return fmt.Errorf("%w: duplicate projects_users id %d", ErrExecutingStatement, project.RemoteProjectUserID)
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// UpdateProject overwrites every mirrored field of the row matched by
// (StudentID, RemoteProjectUserID). Fields absent upstream overwrite
// their columns with NULL.
func (r *projectRepository) UpdateProject(ctx context.Context, project models.Project) error {
	log := logger.FromContext(ctx)

	query, args, err := updateProjectQuery(project.StudentID, project.RemoteProjectUserID, map[string]any{
		"forty_two_project_id": project.RemoteProjectID,
		"slug":                 project.Slug,
		"name":                 project.Name,
		"status":               project.Status,
		"validated":            project.Validated,
		"final_mark":           project.FinalMark,
		"progress_percent":     project.ProgressPercent,
		"marked_at":            project.MarkedAt,
		"synced_at":            project.SyncedAt,
	}).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.UpdateProject").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*projectRepository.UpdateProject").
			Int64("project_user_id", project.RemoteProjectUserID).Msg("error updating project")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteProjectsByRemoteIDs removes the student's rows whose upstream
// projects_users ids are in remoteIDs. A no-op for an empty id list.
func (r *projectRepository) DeleteProjectsByRemoteIDs(ctx context.Context, studentID int64, remoteIDs []int64) error {
	if len(remoteIDs) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := deleteProjectsByRemoteIDsQuery(studentID, remoteIDs).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.DeleteProjectsByRemoteIDs").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*projectRepository.DeleteProjectsByRemoteIDs").Msg("error deleting projects")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
