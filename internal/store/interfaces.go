// Package store persists the student-profile mirror in PostgreSQL:
// one row per authenticated student plus the project and cursus
// collections reconciled from intra on every login.
package store

import (
	"context"
	"time"

	"github.com/Grihladin/42Connect/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// StudentRepository manages rows of the "students" table.
type StudentRepository interface {
	// UpsertStudent inserts the student keyed by RemoteID or fully
	// overwrites the profile fields of an existing row, and returns
	// the canonical database representation.
	UpsertStudent(ctx context.Context, student models.Student) (models.Student, error)

	// FindStudentByRemoteID looks a student up by intra user id.
	// Returns [ErrStudentNotFound] when no row matches.
	FindStudentByRemoteID(ctx context.Context, remoteID int64) (models.Student, error)

	// DeleteStudentsNotSyncedSince removes students whose mirror has not
	// been refreshed since cutoff, cascading to their collections.
	// Returns the number of students removed.
	DeleteStudentsNotSyncedSince(ctx context.Context, cutoff time.Time) (int64, error)
}

// ProjectRepository manages a student's mirrored projects_users records.
type ProjectRepository interface {
	// GetProjectsByStudent lists every mirrored project of a student,
	// most recently marked first.
	GetProjectsByStudent(ctx context.Context, studentID int64) ([]models.Project, error)

	// SaveProject inserts a new mirrored project row.
	SaveProject(ctx context.Context, project models.Project) error

	// UpdateProject overwrites every mirrored field of the row matched
	// by (StudentID, RemoteProjectUserID).
	UpdateProject(ctx context.Context, project models.Project) error

	// DeleteProjectsByRemoteIDs removes the student's rows whose
	// upstream projects_users ids are in remoteIDs.
	DeleteProjectsByRemoteIDs(ctx context.Context, studentID int64, remoteIDs []int64) error
}

// CursusRepository manages a student's mirrored cursus_users records.
type CursusRepository interface {
	// GetCursusByStudent lists every mirrored enrollment of a student.
	GetCursusByStudent(ctx context.Context, studentID int64) ([]models.CursusEnrollment, error)

	// SaveCursus inserts a new mirrored enrollment row.
	SaveCursus(ctx context.Context, enrollment models.CursusEnrollment) error

	// UpdateCursus overwrites every mirrored field of the row matched
	// by (StudentID, RemoteCursusID).
	UpdateCursus(ctx context.Context, enrollment models.CursusEnrollment) error

	// DeleteCursusByRemoteIDs removes the student's rows whose remote
	// cursus ids are in remoteIDs.
	DeleteCursusByRemoteIDs(ctx context.Context, studentID int64, remoteIDs []int64) error
}

// SyncRepositories bundles the repositories bound to one open sync
// transaction.
type SyncRepositories struct {
	Students StudentRepository
	Projects ProjectRepository
	Cursus   CursusRepository
}

// UnitOfWork runs a reconciliation cycle atomically: everything fn does
// through the provided repositories commits together or not at all.
type UnitOfWork interface {
	// WithinSync opens a transaction, takes an advisory lock on the
	// intra user id so concurrent cycles for the same student serialise,
	// runs fn, and commits. Any error from fn rolls the whole cycle back.
	WithinSync(ctx context.Context, remoteID int64, fn func(ctx context.Context, repos SyncRepositories) error) error
}

// Storages aggregates every repository the service layer depends on.
type Storages struct {
	StudentRepository StudentRepository
	ProjectRepository ProjectRepository
	CursusRepository  CursusRepository
	UnitOfWork        UnitOfWork
}
