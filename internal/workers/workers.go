package workers

import (
	"github.com/Grihladin/42Connect/internal/config"
	"github.com/Grihladin/42Connect/internal/logger"
	"github.com/Grihladin/42Connect/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles all background workers enabled by the configuration.
func NewWorkers(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newPruneWorker(storages.StudentRepository, cfg.Workers.PruneInterval, cfg.App.MirrorRetention, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
