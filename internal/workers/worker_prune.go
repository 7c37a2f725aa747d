package workers

import (
	"context"
	"time"

	"github.com/Grihladin/42Connect/internal/logger"
	"github.com/Grihladin/42Connect/internal/store"
)

// pruneWorker periodically deletes mirrored students whose last successful
// synchronization is older than the configured retention window. Rows in the
// dependent project and cursus tables are removed by cascade.
type pruneWorker struct {
	students  store.StudentRepository
	interval  time.Duration
	retention time.Duration
	logger    *logger.Logger
}

func newPruneWorker(students store.StudentRepository, interval, retention time.Duration, logger *logger.Logger) *pruneWorker {
	return &pruneWorker{
		students:  students,
		interval:  interval,
		retention: retention,
		logger:    logger,
	}
}

// Run starts the pruning loop in a background goroutine. A zero interval or
// zero retention disables the worker.
func (w *pruneWorker) Run() {
	if w.interval <= 0 || w.retention <= 0 {
		w.logger.Info().Msg("mirror retention worker is disabled")
		return
	}

	w.logger.Info().
		Dur("interval", w.interval).
		Dur("retention", w.retention).
		Msg("starting mirror retention worker")

	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for range ticker.C {
			w.prune(context.Background())
		}
	}()
}

func (w *pruneWorker) prune(ctx context.Context) {
	log := w.logger

	cutoff := time.Now().UTC().Add(-w.retention)
	deleted, err := w.students.DeleteStudentsNotSyncedSince(ctx, cutoff)
	if err != nil {
		log.Err(err).Str("func", "*pruneWorker.prune").Msg("error deleting stale students")
		return
	}

	if deleted > 0 {
		log.Info().Int64("deleted", deleted).Time("cutoff", cutoff).Msg("pruned stale mirrored students")
	}
}
