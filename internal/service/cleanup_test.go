package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/camate/camate-api/internal/domain"
	"github.com/camate/camate-api/internal/mocks"
	"github.com/camate/camate-api/pkg/logger"
)

type CleanupServiceTestSuite struct {
	suite.Suite
	mockRepo    *mocks.Repository
	mockFirm    *mocks.FirmRepository
	mockUpload  *mocks.UploadRepository
	mockStorage *mocks.FileStorage
	service     *CleanupService
}

func (s *CleanupServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockFirm = new(mocks.FirmRepository)
	s.mockUpload = new(mocks.UploadRepository)
	s.mockStorage = new(mocks.FileStorage)

	s.mockRepo.On("Firm").Return(s.mockFirm).Maybe()
	s.mockRepo.On("Upload").Return(s.mockUpload).Maybe()

	s.service = NewCleanupService(s.mockRepo, s.mockStorage, logger.NewWithZap(zap.NewNop()))
}

func TestCleanupService(t *testing.T) {
	suite.Run(t, new(CleanupServiceTestSuite))
}

func (s *CleanupServiceTestSuite) TestSweep_DeletesExpiredAcrossFirms() {
	ctx := context.Background()

	s.mockFirm.On("ListActive", ctx).Return([]domain.CAFirm{
		{CACode: "CAFIRM01"},
		{CACode: "CAFIRM02"},
	}, nil)
	s.mockUpload.On("ListExpired", mock.Anything).Return([]domain.Upload{
		{ID: "upl-1", StorageKey: "uploads/CAFIRM01/a"},
	}, nil).Once()
	s.mockUpload.On("ListExpired", mock.Anything).Return([]domain.Upload{
		{ID: "upl-2", StorageKey: "uploads/CAFIRM02/b"},
		{ID: "upl-3", StorageKey: "uploads/CAFIRM02/c"},
	}, nil).Once()
	s.mockStorage.On("Delete", mock.Anything, mock.AnythingOfType("string")).Return(nil)
	s.mockUpload.On("Delete", mock.Anything, mock.AnythingOfType("string")).Return(nil)

	deleted, err := s.service.Sweep(ctx)

	s.NoError(err)
	s.Equal(3, deleted)
	s.mockUpload.AssertNumberOfCalls(s.T(), "Delete", 3)
}

func (s *CleanupServiceTestSuite) TestSweep_ObjectDeleteFailureKeepsRow() {
	ctx := context.Background()

	s.mockFirm.On("ListActive", ctx).Return([]domain.CAFirm{{CACode: "CAFIRM01"}}, nil)
	s.mockUpload.On("ListExpired", mock.Anything).Return([]domain.Upload{
		{ID: "upl-1", StorageKey: "uploads/CAFIRM01/a"},
	}, nil)
	s.mockStorage.On("Delete", mock.Anything, "uploads/CAFIRM01/a").
		Return(errors.New("r2 unavailable"))

	deleted, err := s.service.Sweep(ctx)

	// The row survives so the next sweep retries the object delete.
	s.NoError(err)
	s.Equal(0, deleted)
	s.mockUpload.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything)
}

func (s *CleanupServiceTestSuite) TestSweep_OneFirmFailureDoesNotAbortOthers() {
	ctx := context.Background()

	s.mockFirm.On("ListActive", ctx).Return([]domain.CAFirm{
		{CACode: "CAFIRM01"},
		{CACode: "CAFIRM02"},
	}, nil)
	s.mockUpload.On("ListExpired", mock.Anything).
		Return(nil, errors.New("tenant database unreachable")).Once()
	s.mockUpload.On("ListExpired", mock.Anything).Return([]domain.Upload{
		{ID: "upl-2", StorageKey: "uploads/CAFIRM02/b"},
	}, nil).Once()
	s.mockStorage.On("Delete", mock.Anything, "uploads/CAFIRM02/b").Return(nil)
	s.mockUpload.On("Delete", mock.Anything, "upl-2").Return(nil)

	deleted, err := s.service.Sweep(ctx)

	s.NoError(err)
	s.Equal(1, deleted)
}

func (s *CleanupServiceTestSuite) TestSweep_FirmRegistryUnreadable() {
	ctx := context.Background()

	s.mockFirm.On("ListActive", ctx).Return(nil, errors.New("master unreachable"))

	_, err := s.service.Sweep(ctx)

	s.Error(err)
}
