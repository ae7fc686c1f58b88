package worker

import (
	"context"
	"sync"
	"time"

	"github.com/camate/camate-api/internal/service"
	"github.com/camate/camate-api/pkg/logger"
)

// CleanupWorker periodically sweeps every firm's database for uploads past
// their retention deadline. One sweep at a time; a slow sweep skips ticks
// rather than overlapping itself.
type CleanupWorker struct {
	cleanup      *service.CleanupService
	logger       *logger.Logger
	interval     time.Duration
	shutdownChan chan struct{}
	waitGroup    sync.WaitGroup
}

func NewCleanupWorker(cleanup *service.CleanupService, logger *logger.Logger, interval time.Duration) *CleanupWorker {
	return &CleanupWorker{
		cleanup:      cleanup,
		logger:       logger,
		interval:     interval,
		shutdownChan: make(chan struct{}),
	}
}

func (w *CleanupWorker) Start() {
	w.logger.Info("Starting cleanup worker...")
	w.waitGroup.Add(1)
	go w.run()
}

func (w *CleanupWorker) Stop() {
	w.logger.Info("Stopping cleanup worker...")
	close(w.shutdownChan)
	w.waitGroup.Wait()
	w.logger.Info("Cleanup worker stopped")
}

func (w *CleanupWorker) run() {
	defer w.waitGroup.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdownChan:
			return
		case <-ticker.C:
			deleted, err := w.cleanup.Sweep(context.Background())
			if err != nil {
				w.logger.Errorf("Cleanup sweep failed: %v", err)
				continue
			}
			w.logger.Infof("Cleanup sweep finished, deleted %d uploads", deleted)
		}
	}
}
