package sync

import (
	"context"
	"errors"
	"time"

	"github.com/Grihladin/42Connect/internal/intra"
	"github.com/Grihladin/42Connect/internal/logger"
	"github.com/Grihladin/42Connect/internal/store"
	"github.com/Grihladin/42Connect/models"
)

// ErrMissingIdentity is returned when the upstream profile carries no
// user id: nothing can be mirrored without the stable identity.
var ErrMissingIdentity = errors.New("remote profile is missing its user id")

// Engine reconciles a student's mirror against the live intra state.
//
// Both remote collections are fetched before the transaction opens, so
// an upstream failure can never leave a half-applied cycle: either all
// writes of a cycle commit together or none do. Re-running a cycle
// against unchanged upstream data converges to the same mirror.
type Engine struct {
	api    intra.API
	uow    store.UnitOfWork
	logger *logger.Logger
}

// NewEngine constructs a reconciliation [Engine].
func NewEngine(api intra.API, uow store.UnitOfWork, log *logger.Logger) *Engine {
	return &Engine{
		api:    api,
		uow:    uow,
		logger: log,
	}
}

// SyncStudent refreshes the whole mirror of the profile's owner: the
// student row is upserted, and the project and cursus collections are
// diffed against upstream. Records present upstream are inserted or
// fully overwritten; records absent upstream are deleted.
//
// Returns the canonical student row as stored after the cycle commits.
func (e *Engine) SyncStudent(ctx context.Context, accessToken string, profile models.RemoteProfile) (models.Student, error) {
	log := logger.FromContext(ctx)

	if profile.ID == nil {
		return models.Student{}, ErrMissingIdentity
	}
	remoteID := *profile.ID

	projectRecords, err := e.api.ProjectsUsers(ctx, accessToken, remoteID)
	if err != nil {
		return models.Student{}, err
	}
	cursusRecords, err := e.api.CursusUsers(ctx, accessToken, remoteID)
	if err != nil {
		return models.Student{}, err
	}

	now := time.Now().UTC()

	var student models.Student
	err = e.uow.WithinSync(ctx, remoteID, func(ctx context.Context, repos store.SyncRepositories) error {
		student, err = repos.Students.UpsertStudent(ctx, MapProfile(profile))
		if err != nil {
			return err
		}

		if err = reconcileProjects(ctx, repos.Projects, student.ID, projectRecords, now); err != nil {
			return err
		}

		return reconcileCursus(ctx, repos.Cursus, student.ID, cursusRecords, now)
	})
	if err != nil {
		return models.Student{}, err
	}

	log.Info().Str("func", "*Engine.SyncStudent").
		Int64("forty_two_id", remoteID).
		Int("projects", len(projectRecords)).
		Int("cursus", len(cursusRecords)).
		Msg("mirror refreshed")

	return student, nil
}

// reconcileProjects diffs the fetched projects_users collection against
// the stored rows of one student. Placeholder (piscine) records and
// records without an id never enter the seen set, so their stored rows,
// if any, fall to the absence-deletion pass.
func reconcileProjects(ctx context.Context, repo store.ProjectRepository, studentID int64, records []models.RemoteProjectUser, now time.Time) error {
	log := logger.FromContext(ctx)

	existing, err := repo.GetProjectsByStudent(ctx, studentID)
	if err != nil {
		return err
	}
	stored := make(map[int64]struct{}, len(existing))
	for _, p := range existing {
		stored[p.RemoteProjectUserID] = struct{}{}
	}

	seen := make(map[int64]struct{}, len(records))
	skipped := 0
	for _, record := range records {
		if IsPlaceholderProject(record.Project.Name, record.Project.Slug) {
			continue
		}
		if record.ID == nil {
			skipped++
			continue
		}
		remoteID := *record.ID

		project := MapProjectUser(record, studentID, now)

		_, known := stored[remoteID]
		_, duplicate := seen[remoteID]
		seen[remoteID] = struct{}{}

		// A remote id repeated within one fetch overwrites its own
		// earlier occurrence, last write wins.
		if known || duplicate {
			if err = repo.UpdateProject(ctx, project); err != nil {
				return err
			}
			continue
		}
		if err = repo.SaveProject(ctx, project); err != nil {
			return err
		}
	}
	if skipped > 0 {
		log.Warn().Str("func", "sync.reconcileProjects").
			Int("skipped", skipped).Msg("projects_users records without id were skipped")
	}

	var toDelete []int64
	for remoteID := range stored {
		if _, ok := seen[remoteID]; !ok {
			toDelete = append(toDelete, remoteID)
		}
	}

	return repo.DeleteProjectsByRemoteIDs(ctx, studentID, toDelete)
}

// reconcileCursus diffs the fetched cursus_users collection against the
// stored enrollments of one student, keyed by the (student, cursus id)
// pair.
func reconcileCursus(ctx context.Context, repo store.CursusRepository, studentID int64, records []models.RemoteCursusUser, now time.Time) error {
	log := logger.FromContext(ctx)

	existing, err := repo.GetCursusByStudent(ctx, studentID)
	if err != nil {
		return err
	}
	stored := make(map[int64]struct{}, len(existing))
	for _, e := range existing {
		stored[e.RemoteCursusID] = struct{}{}
	}

	seen := make(map[int64]struct{}, len(records))
	skipped := 0
	for _, record := range records {
		remoteID, ok := record.RemoteCursusID()
		if !ok {
			skipped++
			continue
		}

		enrollment := MapCursusUser(record, studentID, remoteID, now)

		_, known := stored[remoteID]
		_, duplicate := seen[remoteID]
		seen[remoteID] = struct{}{}

		if known || duplicate {
			if err = repo.UpdateCursus(ctx, enrollment); err != nil {
				return err
			}
			continue
		}
		if err = repo.SaveCursus(ctx, enrollment); err != nil {
			return err
		}
	}
	if skipped > 0 {
		log.Warn().Str("func", "sync.reconcileCursus").
			Int("skipped", skipped).Msg("cursus_users records without cursus id were skipped")
	}

	var toDelete []int64
	for remoteID := range stored {
		if _, ok := seen[remoteID]; !ok {
			toDelete = append(toDelete, remoteID)
		}
	}

	return repo.DeleteCursusByRemoteIDs(ctx, studentID, toDelete)
}
