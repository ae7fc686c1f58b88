package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/camate/camate-api/internal/repository"
	"github.com/camate/camate-api/internal/tenant"
	"github.com/camate/camate-api/pkg/logger"
)

// CleanupService removes uploads past their retention deadline, firm by firm.
// It enumerates the master registry and routes each sweep with an explicit
// tenant context, the same primitive the registry warm-load uses.
type CleanupService struct {
	repo    repository.Repository
	storage FileStorage
	log     *logger.Logger
}

func NewCleanupService(repo repository.Repository, storage FileStorage, log *logger.Logger) *CleanupService {
	return &CleanupService{
		repo:    repo,
		storage: storage,
		log:     log,
	}
}

// Sweep deletes expired uploads across all active firms and returns the total
// removed. A failure in one firm's sweep is logged and never aborts the rest.
// The R2 object goes first; the row is kept when the object delete fails so a
// later sweep can retry.
func (s *CleanupService) Sweep(ctx context.Context) (int, error) {
	firms, err := s.repo.Firm().ListActive(ctx)
	if err != nil {
		return 0, err
	}

	totalDeleted := 0
	for _, firm := range firms {
		tctx := tenant.WithCode(ctx, firm.CACode)

		expired, err := s.repo.Upload().ListExpired(tctx)
		if err != nil {
			s.log.Error("cleanup failed for firm", err, zap.String("ca_code", firm.CACode))
			continue
		}

		for _, upload := range expired {
			if err := s.storage.Delete(tctx, upload.StorageKey); err != nil {
				s.log.Warn("R2 delete failed, keeping upload row for retry",
					zap.String("storage_key", upload.StorageKey),
					zap.Error(err))
				continue
			}
			if err := s.repo.Upload().Delete(tctx, upload.ID); err != nil {
				s.log.Error("failed to delete expired upload row", err,
					zap.String("upload_id", upload.ID),
					zap.String("ca_code", firm.CACode))
				continue
			}
			totalDeleted++
			s.log.Info("deleted expired upload",
				zap.String("upload_id", upload.ID),
				zap.String("ca_code", firm.CACode))
		}
	}

	s.log.Infof("cleanup complete, total deleted: %d", totalDeleted)
	return totalDeleted, nil
}
