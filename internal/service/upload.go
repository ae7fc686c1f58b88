package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/camate/camate-api/internal/api/dto"
	"github.com/camate/camate-api/internal/domain"
	"github.com/camate/camate-api/internal/repository"
	"github.com/camate/camate-api/internal/tenant"
	"github.com/camate/camate-api/pkg/storage"
)

//go:generate mockery --name FileStorage --output ../mocks
type FileStorage interface {
	PresignUpload(ctx context.Context, caCode, customerID, financialYear, month, fileName string) (*storage.PresignedUpload, error)
	PresignDownload(ctx context.Context, storageKey string) (string, error)
	Delete(ctx context.Context, storageKey string) error
}

// UploadService issues presigned upload slots and tracks upload metadata in
// the firm's database.
type UploadService struct {
	repo    repository.Repository
	storage FileStorage
}

func NewUploadService(repo repository.Repository, storage FileStorage) *UploadService {
	return &UploadService{repo: repo, storage: storage}
}

// RequestUpload verifies the customer, signs an upload URL and records the
// pending upload in the tenant store.
func (s *UploadService) RequestUpload(ctx context.Context, req dto.RequestUploadRequest) (*dto.RequestUploadResponse, error) {
	code, ok := tenant.CodeFromContext(ctx)
	if !ok {
		return nil, ErrInvalidCACode
	}

	customer, err := s.repo.Customer().GetByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	presigned, err := s.storage.PresignUpload(ctx, code, customer.ID, req.FinancialYear, req.Month, req.FileName)
	if err != nil {
		return nil, err
	}

	upload := &domain.Upload{
		CustomerID:    customer.ID,
		CustomerName:  customer.FullName,
		FileName:      req.FileName,
		StorageKey:    presigned.StorageKey,
		FileSize:      req.FileSize,
		FinancialYear: req.FinancialYear,
		Month:         req.Month,
		GSTRSheet:     req.GSTRSheet,
		Note:          req.Note,
		Status:        domain.UploadStatusPending,
	}

	if _, err := s.repo.Upload().Create(ctx, upload); err != nil {
		return nil, err
	}

	return &dto.RequestUploadResponse{
		UploadID:     upload.ID,
		PresignedURL: presigned.URL,
		StorageKey:   presigned.StorageKey,
	}, nil
}

// ConfirmUpload marks an upload as received after the client finished its PUT.
func (s *UploadService) ConfirmUpload(ctx context.Context, id string) error {
	if _, err := s.getUpload(ctx, id); err != nil {
		return err
	}
	return s.repo.Upload().UpdateStatus(ctx, id, domain.UploadStatusReceived)
}

func (s *UploadService) List(ctx context.Context) ([]domain.Upload, error) {
	return s.repo.Upload().List(ctx)
}

func (s *UploadService) ListByCustomer(ctx context.Context, customerID string) ([]domain.Upload, error) {
	return s.repo.Upload().ListByCustomer(ctx, customerID)
}

// DownloadURL signs a short-lived GET URL for an uploaded file.
func (s *UploadService) DownloadURL(ctx context.Context, id string) (*dto.DownloadResponse, error) {
	upload, err := s.getUpload(ctx, id)
	if err != nil {
		return nil, err
	}

	url, err := s.storage.PresignDownload(ctx, upload.StorageKey)
	if err != nil {
		return nil, err
	}

	return &dto.DownloadResponse{
		URL:       url,
		ExpiresAt: time.Now().Add(storage.PresignTTL),
	}, nil
}

func (s *UploadService) getUpload(ctx context.Context, id string) (*domain.Upload, error) {
	upload, err := s.repo.Upload().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUploadNotFound
		}
		return nil, err
	}
	return upload, nil
}
