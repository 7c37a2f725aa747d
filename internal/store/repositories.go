package store

import (
	"context"
	"database/sql"
)

// querier is the subset of database/sql operations repositories need.
// Both *sql.DB and *sql.Tx satisfy it, so the same repository code runs
// standalone and inside a sync transaction.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// NewStorages wires every repository and the unit of work over one
// database connection.
func NewStorages(db *DB) *Storages {
	return &Storages{
		StudentRepository: NewStudentRepository(db),
		ProjectRepository: NewProjectRepository(db),
		CursusRepository:  NewCursusRepository(db),
		UnitOfWork:        NewUnitOfWork(db),
	}
}

// syncRepositories binds every repository to tx for one reconciliation
// cycle.
func syncRepositories(db *DB, tx *sql.Tx) SyncRepositories {
	return SyncRepositories{
		Students: &studentRepository{db: tx, logger: db.logger},
		Projects: &projectRepository{db: tx, logger: db.logger},
		Cursus:   &cursusRepository{db: tx, logger: db.logger},
	}
}
