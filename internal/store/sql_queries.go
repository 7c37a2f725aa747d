package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

// psql builds every dynamic query with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	studentColumns = "id, forty_two_id, login, display_name, email, image_url, campus, created_at, updated_at"

	upsertStudent = `INSERT INTO students (forty_two_id, login, display_name, email, image_url, campus)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (forty_two_id) DO UPDATE SET
			login = EXCLUDED.login,
			display_name = EXCLUDED.display_name,
			email = EXCLUDED.email,
			image_url = EXCLUDED.image_url,
			campus = EXCLUDED.campus,
			updated_at = NOW()
		RETURNING ` + studentColumns + `;`

	projectColumns = `id, student_id, forty_two_project_user_id, forty_two_project_id,
		slug, name, status, validated, final_mark, progress_percent, marked_at, synced_at`

	saveProject = `INSERT INTO projects (
			student_id,
			forty_two_project_user_id,
			forty_two_project_id,
			slug,
			name,
			status,
			validated,
			final_mark,
			progress_percent,
			marked_at,
			synced_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`

	cursusColumns = "id, student_id, forty_two_cursus_id, name, grade, began_at, ended_at, synced_at"

	saveCursus = `INSERT INTO cursus_enrollments (
			student_id,
			forty_two_cursus_id,
			name,
			grade,
			began_at,
			ended_at,
			synced_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7);`

	advisoryLockSync = `SELECT pg_advisory_xact_lock($1);`
)

func findStudentByRemoteIDQuery(remoteID int64) sq.SelectBuilder {
	return psql.Select(
		"id", "forty_two_id", "login", "display_name", "email", "image_url", "campus", "created_at", "updated_at",
	).
		From("students").
		Where(sq.Eq{"forty_two_id": remoteID})
}

func deleteStaleStudentsQuery(cutoff time.Time) sq.DeleteBuilder {
	return psql.Delete("students").Where(sq.Lt{"updated_at": cutoff})
}

func getProjectsByStudentQuery(studentID int64) sq.SelectBuilder {
	return psql.Select(
		"id", "student_id", "forty_two_project_user_id", "forty_two_project_id",
		"slug", "name", "status", "validated", "final_mark", "progress_percent", "marked_at", "synced_at",
	).
		From("projects").
		Where(sq.Eq{"student_id": studentID}).
		OrderBy("marked_at DESC NULLS LAST", "forty_two_project_user_id DESC")
}

func updateProjectQuery(studentID, remoteProjectUserID int64, set map[string]any) sq.UpdateBuilder {
	return psql.Update("projects").
		SetMap(set).
		Where(sq.Eq{
			"student_id":                studentID,
			"forty_two_project_user_id": remoteProjectUserID,
		})
}

func deleteProjectsByRemoteIDsQuery(studentID int64, remoteIDs []int64) sq.DeleteBuilder {
	return psql.Delete("projects").
		Where(sq.Eq{
			"student_id":                studentID,
			"forty_two_project_user_id": remoteIDs,
		})
}

func getCursusByStudentQuery(studentID int64) sq.SelectBuilder {
	return psql.Select(
		"id", "student_id", "forty_two_cursus_id", "name", "grade", "began_at", "ended_at", "synced_at",
	).
		From("cursus_enrollments").
		Where(sq.Eq{"student_id": studentID}).
		OrderBy("began_at DESC NULLS LAST", "forty_two_cursus_id DESC")
}

func updateCursusQuery(studentID, remoteCursusID int64, set map[string]any) sq.UpdateBuilder {
	return psql.Update("cursus_enrollments").
		SetMap(set).
		Where(sq.Eq{
			"student_id":          studentID,
			"forty_two_cursus_id": remoteCursusID,
		})
}

func deleteCursusByRemoteIDsQuery(studentID int64, remoteIDs []int64) sq.DeleteBuilder {
	return psql.Delete("cursus_enrollments").
		Where(sq.Eq{
			"student_id":          studentID,
			"forty_two_cursus_id": remoteIDs,
		})
}
