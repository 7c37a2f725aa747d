package service

import (
	"context"

	"github.com/Grihladin/42Connect/internal/logger"
	"github.com/Grihladin/42Connect/internal/store"
	synclib "github.com/Grihladin/42Connect/internal/sync"
	"github.com/Grihladin/42Connect/models"
)

// mirrorService implements [MirrorService] over the stored mirror.
// It performs no upstream calls: the data is whatever the most recent
// reconciliation cycle committed.
type mirrorService struct {
	students store.StudentRepository
	projects store.ProjectRepository
	cursus   store.CursusRepository
	logger   *logger.Logger
}

// NewMirrorService constructs the mirror read service.
func NewMirrorService(storages *store.Storages, log *logger.Logger) MirrorService {
	return &mirrorService{
		students: storages.StudentRepository,
		projects: storages.ProjectRepository,
		cursus:   storages.CursusRepository,
		logger:   log,
	}
}

// StudentProjects lists the mirrored projects of the student identified
// by remoteID, each decorated with its classification flags.
// Returns [store.ErrStudentNotFound] when the student has no mirror yet.
func (s *mirrorService) StudentProjects(ctx context.Context, remoteID int64) ([]models.ProjectView, error) {
	student, err := s.students.FindStudentByRemoteID(ctx, remoteID)
	if err != nil {
		return nil, err
	}

	projects, err := s.projects.GetProjectsByStudent(ctx, student.ID)
	if err != nil {
		return nil, err
	}

	views := make([]models.ProjectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, models.ProjectView{
			Project:    p,
			Finished:   synclib.IsFinishedProject(p),
			InProgress: synclib.IsInProgressProject(p),
		})
	}

	return views, nil
}

// StudentCursus lists the mirrored cursus enrollments of the student
// identified by remoteID.
// Returns [store.ErrStudentNotFound] when the student has no mirror yet.
func (s *mirrorService) StudentCursus(ctx context.Context, remoteID int64) ([]models.CursusEnrollment, error) {
	student, err := s.students.FindStudentByRemoteID(ctx, remoteID)
	if err != nil {
		return nil, err
	}

	return s.cursus.GetCursusByStudent(ctx, student.ID)
}
