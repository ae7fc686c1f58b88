package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/camate/camate-api/internal/api/dto"
	"github.com/camate/camate-api/internal/domain"
	"github.com/camate/camate-api/internal/mocks"
	"github.com/camate/camate-api/pkg/logger"
)

type AuthServiceTestSuite struct {
	suite.Suite
	mockRepo        *mocks.Repository
	mockFirm        *mocks.FirmRepository
	mockCustomer    *mocks.CustomerRepository
	mockProvisioner *mocks.Provisioner
	mockQueue       *mocks.ProvisionQueue
	service         *AuthService
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockFirm = new(mocks.FirmRepository)
	s.mockCustomer = new(mocks.CustomerRepository)
	s.mockProvisioner = new(mocks.Provisioner)
	s.mockQueue = new(mocks.ProvisionQueue)

	s.mockRepo.On("Firm").Return(s.mockFirm).Maybe()
	s.mockRepo.On("Customer").Return(s.mockCustomer).Maybe()

	s.service = NewAuthService(s.mockRepo, s.mockProvisioner, s.mockQueue, false,
		logger.NewWithZap(zap.NewNop()))
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func registerFirmRequest() dto.RegisterFirmRequest {
	return dto.RegisterFirmRequest{
		Username: "sharma_associates",
		Email:    "office@sharma.example",
		Password: "s3cretpass",
		FullName: "R. Sharma",
		FirmName: "Sharma & Associates",
		GSTIN:    "27abcde1234f1z5",
	}
}

func (s *AuthServiceTestSuite) TestRegisterFirm_Success() {
	// Arrange
	ctx := context.Background()
	req := registerFirmRequest()

	s.mockFirm.On("ExistsByUsername", ctx, req.Username).Return(false, nil)
	s.mockFirm.On("ExistsByEmail", ctx, req.Email).Return(false, nil)
	s.mockFirm.On("ExistsByCode", ctx, mock.AnythingOfType("string")).Return(false, nil)
	s.mockFirm.On("Create", ctx, mock.AnythingOfType("*domain.CAFirm")).Return(&domain.CAFirm{}, nil)
	s.mockProvisioner.On("Provision", ctx, mock.AnythingOfType("string")).Return(nil)

	// Act
	firm, err := s.service.RegisterFirm(ctx, req)

	// Assert
	s.NoError(err)
	s.True(strings.HasPrefix(firm.CACode, "CA"))
	s.Len(firm.CACode, 8)
	s.Equal("27ABCDE1234F1Z5", firm.GSTIN)
	s.Equal(domain.PlanStarter, firm.Plan)
	s.True(firm.IsActive)
	s.NotEqual(req.Password, firm.PasswordHash)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(firm.PasswordHash), []byte(req.Password)))
	s.mockProvisioner.AssertCalled(s.T(), "Provision", ctx, firm.CACode)
	s.mockFirm.AssertExpectations(s.T())
}

func (s *AuthServiceTestSuite) TestRegisterFirm_UsernameTaken() {
	ctx := context.Background()
	req := registerFirmRequest()

	s.mockFirm.On("ExistsByUsername", ctx, req.Username).Return(true, nil)

	_, err := s.service.RegisterFirm(ctx, req)

	s.ErrorIs(err, ErrUsernameTaken)
	s.mockFirm.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestRegisterFirm_InvalidGSTIN() {
	ctx := context.Background()
	req := registerFirmRequest()
	req.GSTIN = "not-a-gstin"

	s.mockFirm.On("ExistsByUsername", ctx, req.Username).Return(false, nil)
	s.mockFirm.On("ExistsByEmail", ctx, req.Email).Return(false, nil)

	_, err := s.service.RegisterFirm(ctx, req)

	s.ErrorIs(err, ErrInvalidGSTIN)
}

func (s *AuthServiceTestSuite) TestRegisterFirm_CodeCollisionRetries() {
	ctx := context.Background()
	req := registerFirmRequest()

	s.mockFirm.On("ExistsByUsername", ctx, req.Username).Return(false, nil)
	s.mockFirm.On("ExistsByEmail", ctx, req.Email).Return(false, nil)
	// First probe collides, second probe finds a free code.
	s.mockFirm.On("ExistsByCode", ctx, mock.AnythingOfType("string")).Return(true, nil).Once()
	s.mockFirm.On("ExistsByCode", ctx, mock.AnythingOfType("string")).Return(false, nil).Once()
	s.mockFirm.On("Create", ctx, mock.AnythingOfType("*domain.CAFirm")).Return(&domain.CAFirm{}, nil)
	s.mockProvisioner.On("Provision", ctx, mock.AnythingOfType("string")).Return(nil)

	firm, err := s.service.RegisterFirm(ctx, req)

	s.NoError(err)
	s.NotEmpty(firm.CACode)
	s.mockFirm.AssertNumberOfCalls(s.T(), "ExistsByCode", 2)
}

func (s *AuthServiceTestSuite) TestRegisterFirm_ProvisioningFailureFailsSignup() {
	ctx := context.Background()
	req := registerFirmRequest()

	s.mockFirm.On("ExistsByUsername", ctx, req.Username).Return(false, nil)
	s.mockFirm.On("ExistsByEmail", ctx, req.Email).Return(false, nil)
	s.mockFirm.On("ExistsByCode", ctx, mock.AnythingOfType("string")).Return(false, nil)
	s.mockFirm.On("Create", ctx, mock.AnythingOfType("*domain.CAFirm")).Return(&domain.CAFirm{}, nil)
	s.mockProvisioner.On("Provision", ctx, mock.AnythingOfType("string")).
		Return(errors.New("create database failed"))
	s.mockFirm.On("Deactivate", ctx, mock.AnythingOfType("string")).Return(nil)

	_, err := s.service.RegisterFirm(ctx, req)

	// Signup is all-or-nothing: the firm is deactivated and the caller sees
	// one failure, never a firm with an unusable database.
	s.ErrorIs(err, ErrProvisioningFailed)
	s.mockFirm.AssertCalled(s.T(), "Deactivate", ctx, mock.AnythingOfType("string"))
}

func (s *AuthServiceTestSuite) TestRegisterFirm_AsyncEnqueuesProvisioning() {
	ctx := context.Background()
	req := registerFirmRequest()
	s.service = NewAuthService(s.mockRepo, s.mockProvisioner, s.mockQueue, true,
		logger.NewWithZap(zap.NewNop()))

	s.mockFirm.On("ExistsByUsername", ctx, req.Username).Return(false, nil)
	s.mockFirm.On("ExistsByEmail", ctx, req.Email).Return(false, nil)
	s.mockFirm.On("ExistsByCode", ctx, mock.AnythingOfType("string")).Return(false, nil)
	s.mockFirm.On("Create", ctx, mock.AnythingOfType("*domain.CAFirm")).Return(&domain.CAFirm{}, nil)
	s.mockQueue.On("SendProvisionMessage", ctx, mock.AnythingOfType("string")).Return(nil)

	firm, err := s.service.RegisterFirm(ctx, req)

	s.NoError(err)
	s.mockQueue.AssertCalled(s.T(), "SendProvisionMessage", ctx, firm.CACode)
	s.mockProvisioner.AssertNotCalled(s.T(), "Provision", mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestLoginFirm_Success() {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cretpass"), bcrypt.MinCost)
	s.Require().NoError(err)

	s.mockFirm.On("GetByIdentifier", ctx, "sharma_associates").Return(&domain.CAFirm{
		CACode:       "CAABC123",
		Username:     "sharma_associates",
		PasswordHash: string(hash),
		IsActive:     true,
	}, nil)

	firm, err := s.service.LoginFirm(ctx, "sharma_associates", "s3cretpass")

	s.NoError(err)
	s.Equal("CAABC123", firm.CACode)
}

func (s *AuthServiceTestSuite) TestLoginFirm_WrongPassword() {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cretpass"), bcrypt.MinCost)
	s.Require().NoError(err)

	s.mockFirm.On("GetByIdentifier", ctx, "sharma_associates").Return(&domain.CAFirm{
		PasswordHash: string(hash),
		IsActive:     true,
	}, nil)

	_, err = s.service.LoginFirm(ctx, "sharma_associates", "wrong")

	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestLoginFirm_UnknownIdentifier() {
	ctx := context.Background()

	s.mockFirm.On("GetByIdentifier", ctx, "nobody").Return(nil, gorm.ErrRecordNotFound)

	_, err := s.service.LoginFirm(ctx, "nobody", "whatever")

	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestLoginFirm_InactiveFirm() {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cretpass"), bcrypt.MinCost)
	s.Require().NoError(err)

	s.mockFirm.On("GetByIdentifier", ctx, "sharma_associates").Return(&domain.CAFirm{
		PasswordHash: string(hash),
		IsActive:     false,
	}, nil)

	_, err = s.service.LoginFirm(ctx, "sharma_associates", "s3cretpass")

	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestRegisterCustomer_Success() {
	ctx := context.Background()
	req := dto.RegisterCustomerRequest{
		Username: "patel_traders",
		Password: "s3cretpass",
		FullName: "K. Patel",
		CACode:   "CAABC123",
	}

	s.mockFirm.On("ExistsByCode", ctx, "CAABC123").Return(true, nil)
	s.mockCustomer.On("ExistsByUsername", mock.Anything, req.Username).Return(false, nil)
	s.mockCustomer.On("Create", mock.Anything, mock.AnythingOfType("*domain.Customer")).
		Return(&domain.Customer{Username: req.Username, CACode: "CAABC123"}, nil)

	customer, err := s.service.RegisterCustomer(ctx, req)

	s.NoError(err)
	s.Equal("CAABC123", customer.CACode)
	s.mockCustomer.AssertExpectations(s.T())
}

func (s *AuthServiceTestSuite) TestRegisterCustomer_UnknownFirmCode() {
	ctx := context.Background()
	req := dto.RegisterCustomerRequest{
		Username: "patel_traders",
		Password: "s3cretpass",
		FullName: "K. Patel",
		CACode:   "CAGHOST1",
	}

	s.mockFirm.On("ExistsByCode", ctx, "CAGHOST1").Return(false, nil)

	_, err := s.service.RegisterCustomer(ctx, req)

	s.ErrorIs(err, ErrInvalidCACode)
	s.mockCustomer.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestLoginCustomer_Success() {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cretpass"), bcrypt.MinCost)
	s.Require().NoError(err)

	s.mockCustomer.On("GetByIdentifier", mock.Anything, "patel_traders").Return(&domain.Customer{
		Username:     "patel_traders",
		PasswordHash: string(hash),
		CACode:       "CAABC123",
		IsActive:     true,
	}, nil)

	customer, err := s.service.LoginCustomer(ctx, "CAABC123", "patel_traders", "s3cretpass")

	s.NoError(err)
	s.Equal("patel_traders", customer.Username)
}
