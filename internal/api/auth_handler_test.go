package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/camate/camate-api/internal/api/dto"
	"github.com/camate/camate-api/internal/config"
	"github.com/camate/camate-api/internal/domain"
	"github.com/camate/camate-api/internal/middleware"
	"github.com/camate/camate-api/internal/service"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	mockService *MockAuthService
	handler     *AuthHandler
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) RegisterFirm(ctx context.Context, req dto.RegisterFirmRequest) (*domain.CAFirm, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CAFirm), args.Error(1)
}

func (m *MockAuthService) RegisterCustomer(ctx context.Context, req dto.RegisterCustomerRequest) (*domain.Customer, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockAuthService) LoginFirm(ctx context.Context, identifier, password string) (*domain.CAFirm, error) {
	args := m.Called(ctx, identifier, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CAFirm), args.Error(1)
}

func (m *MockAuthService) LoginCustomer(ctx context.Context, caCode, identifier, password string) (*domain.Customer, error) {
	args := m.Called(ctx, caCode, identifier, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockService = new(MockAuthService)

	auth := middleware.NewAuthMiddleware(&config.Config{
		JWTSecretKey:       "test-secret",
		JWTExpirationHours: 1,
	})
	s.handler = NewAuthHandler(s.mockService, auth)
}

func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) postJSON(handler gin.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	s.Require().NoError(err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, path, bytes.NewBuffer(payload))
	c.Request.Header.Set("Content-Type", "application/json")

	handler(c)
	return w
}

func (s *AuthHandlerTestSuite) TestRegisterFirm_Success() {
	// Arrange
	req := dto.RegisterFirmRequest{
		Username: "sharma_associates",
		Email:    "office@sharma.example",
		Password: "s3cretpass",
		FullName: "R. Sharma",
	}

	s.mockService.On("RegisterFirm", mock.Anything, req).Return(&domain.CAFirm{
		CACode:   "CAABC123",
		Username: req.Username,
	}, nil)

	// Act
	w := s.postJSON(s.handler.RegisterFirm, "/api/auth/register/ca", req)

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	var response dto.RegisterFirmResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("CAABC123", response.CACode)
	s.mockService.AssertExpectations(s.T())
}

func (s *AuthHandlerTestSuite) TestRegisterFirm_UsernameTaken() {
	req := dto.RegisterFirmRequest{
		Username: "sharma_associates",
		Email:    "office@sharma.example",
		Password: "s3cretpass",
		FullName: "R. Sharma",
	}

	s.mockService.On("RegisterFirm", mock.Anything, req).Return(nil, service.ErrUsernameTaken)

	w := s.postJSON(s.handler.RegisterFirm, "/api/auth/register/ca", req)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *AuthHandlerTestSuite) TestRegisterFirm_ProvisioningFailure() {
	req := dto.RegisterFirmRequest{
		Username: "sharma_associates",
		Email:    "office@sharma.example",
		Password: "s3cretpass",
		FullName: "R. Sharma",
	}

	s.mockService.On("RegisterFirm", mock.Anything, req).Return(nil, service.ErrProvisioningFailed)

	w := s.postJSON(s.handler.RegisterFirm, "/api/auth/register/ca", req)

	// Provisioning failures surface as a failed signup, not a created firm.
	s.Equal(http.StatusInternalServerError, w.Code)
}

func (s *AuthHandlerTestSuite) TestRegisterFirm_InvalidPayload() {
	w := s.postJSON(s.handler.RegisterFirm, "/api/auth/register/ca", map[string]string{
		"username": "sharma_associates",
	})

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "RegisterFirm", mock.Anything, mock.Anything)
}

func (s *AuthHandlerTestSuite) TestLogin_FirmSuccess() {
	req := dto.LoginRequest{
		Identifier: "sharma_associates",
		Password:   "s3cretpass",
		Role:       "ca",
	}

	s.mockService.On("LoginFirm", mock.Anything, req.Identifier, req.Password).Return(&domain.CAFirm{
		ID:       "firm-1",
		CACode:   "CAABC123",
		Username: "sharma_associates",
	}, nil)

	w := s.postJSON(s.handler.Login, "/api/auth/login", req)

	s.Equal(http.StatusOK, w.Code)
	var response dto.LoginResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.NotEmpty(response.AccessToken)
	s.Equal("CAABC123", response.User.CACode)
	s.Equal("ca", response.User.Role)
}

func (s *AuthHandlerTestSuite) TestLogin_CustomerRequiresCACode() {
	req := dto.LoginRequest{
		Identifier: "patel_traders",
		Password:   "s3cretpass",
		Role:       "customer",
	}

	w := s.postJSON(s.handler.Login, "/api/auth/login", req)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "LoginCustomer",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *AuthHandlerTestSuite) TestLogin_InvalidCredentials() {
	req := dto.LoginRequest{
		Identifier: "sharma_associates",
		Password:   "wrong",
		Role:       "ca",
	}

	s.mockService.On("LoginFirm", mock.Anything, req.Identifier, req.Password).
		Return(nil, service.ErrInvalidCredentials)

	w := s.postJSON(s.handler.Login, "/api/auth/login", req)

	s.Equal(http.StatusUnauthorized, w.Code)
}
