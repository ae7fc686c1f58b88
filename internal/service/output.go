package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/camate/camate-api/internal/api/dto"
	"github.com/camate/camate-api/internal/domain"
	"github.com/camate/camate-api/internal/repository"
	"github.com/camate/camate-api/internal/utils"
	"github.com/camate/camate-api/pkg/storage"
)

// OutputService records generated GSTR1 files and verification runs in the
// firm's database. Generation and verification themselves run in an external
// engine; only their bookkeeping lives here.
type OutputService struct {
	repo    repository.Repository
	storage FileStorage
}

func NewOutputService(repo repository.Repository, storage FileStorage) *OutputService {
	return &OutputService{repo: repo, storage: storage}
}

func (s *OutputService) RecordOutput(ctx context.Context, req dto.RecordOutputRequest) (*domain.GSTR1Output, error) {
	generatedBy, err := utils.GetStringClaim(ctx, "username")
	if err != nil {
		generatedBy = "system"
	}

	output := &domain.GSTR1Output{
		CustomerID:    req.CustomerID,
		CustomerName:  req.CustomerName,
		FinancialYear: req.FinancialYear,
		Month:         req.Month,
		StorageKey:    req.StorageKey,
		FileName:      req.FileName,
		GeneratedBy:   generatedBy,
		Status:        domain.OutputStatusGenerated,
	}

	return s.repo.Output().CreateOutput(ctx, output)
}

func (s *OutputService) List(ctx context.Context) ([]domain.GSTR1Output, error) {
	return s.repo.Output().ListOutputs(ctx)
}

// DownloadURL signs a short-lived GET URL for a generated file.
func (s *OutputService) DownloadURL(ctx context.Context, id string) (*dto.DownloadResponse, error) {
	output, err := s.getOutput(ctx, id)
	if err != nil {
		return nil, err
	}

	url, err := s.storage.PresignDownload(ctx, output.StorageKey)
	if err != nil {
		return nil, err
	}

	return &dto.DownloadResponse{
		URL:       url,
		ExpiresAt: time.Now().Add(storage.PresignTTL),
	}, nil
}

// StartVerification opens a verification run against a generated output.
func (s *OutputService) StartVerification(ctx context.Context, req dto.StartVerificationRequest) (*domain.VerificationRun, error) {
	output, err := s.getOutput(ctx, req.GSTR1OutputID)
	if err != nil {
		return nil, err
	}

	run := &domain.VerificationRun{
		CustomerID:    output.CustomerID,
		CustomerName:  output.CustomerName,
		GSTR1OutputID: output.ID,
		FinancialYear: output.FinancialYear,
		Month:         output.Month,
		Status:        domain.VerificationStatusRunning,
	}

	return s.repo.Output().CreateVerificationRun(ctx, run)
}

// CompleteVerification closes a run with the engine's results and flips the
// output status when everything checked out.
func (s *OutputService) CompleteVerification(ctx context.Context, run *domain.VerificationRun, totalChecked, totalInvalid int) error {
	now := time.Now()
	run.TotalChecked = totalChecked
	run.TotalInvalid = totalInvalid
	run.Status = domain.VerificationStatusCompleted
	run.CompletedAt = &now

	if err := s.repo.Output().UpdateVerificationRun(ctx, run); err != nil {
		return err
	}

	if totalInvalid == 0 {
		return s.repo.Output().UpdateOutputStatus(ctx, run.GSTR1OutputID, domain.OutputStatusVerified)
	}
	return nil
}

func (s *OutputService) getOutput(ctx context.Context, id string) (*domain.GSTR1Output, error) {
	output, err := s.repo.Output().GetOutputByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOutputNotFound
		}
		return nil, err
	}
	return output, nil
}
