package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/camate/camate-api/internal/service/queue"
	"github.com/camate/camate-api/internal/tenant"
	"github.com/camate/camate-api/pkg/logger"
)

// ProvisionWorker consumes provisioning jobs enqueued at firm signup and runs
// them with bounded retry. Messages are acknowledged only after the tenant
// database is fully usable, so a crashed worker hands the job to the next one.
type ProvisionWorker struct {
	sqsService   *queue.SQSService
	provisioner  *tenant.Provisioner
	logger       *logger.Logger
	workerCount  int
	pollInterval time.Duration
	maxMessages  int32
	waitTime     int32
	shutdownChan chan struct{}
	waitGroup    sync.WaitGroup
}

func NewProvisionWorker(
	sqsService *queue.SQSService,
	provisioner *tenant.Provisioner,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
) *ProvisionWorker {
	return &ProvisionWorker{
		sqsService:   sqsService,
		provisioner:  provisioner,
		logger:       logger,
		workerCount:  workerCount,
		pollInterval: pollInterval,
		maxMessages:  10,
		waitTime:     20, // long polling, seconds
		shutdownChan: make(chan struct{}),
	}
}

func (w *ProvisionWorker) Start() {
	w.logger.Info("Starting provisioning workers...")

	for i := 0; i < w.workerCount; i++ {
		w.waitGroup.Add(1)
		go w.runWorker(i)
	}
}

func (w *ProvisionWorker) Stop() {
	w.logger.Info("Stopping provisioning workers...")
	close(w.shutdownChan)
	w.waitGroup.Wait()
	w.logger.Info("All provisioning workers stopped")
}

func (w *ProvisionWorker) runWorker(workerID int) {
	defer w.waitGroup.Done()

	w.logger.Infof("Provision worker %d started", workerID)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdownChan:
			w.logger.Infof("Provision worker %d shutting down", workerID)
			return
		case <-ticker.C:
			if err := w.processMessages(context.Background()); err != nil {
				w.logger.Errorf("Provision worker %d failed to process messages: %v", workerID, err)
			}
		}
	}
}

func (w *ProvisionWorker) processMessages(ctx context.Context) error {
	messages, err := w.sqsService.ReceiveProvisionMessages(ctx, w.maxMessages, w.waitTime)
	if err != nil {
		return fmt.Errorf("failed to receive messages: %w", err)
	}

	for _, msg := range messages {
		if err := w.provisioner.ProvisionWithRetry(ctx, msg.Message.CACode,
			tenant.DefaultRetryAttempts, tenant.DefaultRetryDelay); err != nil {
			// Leave the message for redelivery and eventual operator attention.
			w.logger.Errorf("Provisioning failed for %s: %v", msg.Message.CACode, err)
			continue
		}

		if err := w.sqsService.DeleteMessage(ctx, msg.ReceiptHandle); err != nil {
			w.logger.Errorf("Failed to delete message for %s: %v", msg.Message.CACode, err)
		}
	}

	return nil
}
