package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/camate/camate-api/internal/api/dto"
	"github.com/camate/camate-api/internal/domain"
	"github.com/camate/camate-api/internal/middleware"
	"github.com/camate/camate-api/internal/service"
)

//go:generate mockery --name AuthService --output ../mocks
type AuthService interface {
	RegisterFirm(ctx context.Context, req dto.RegisterFirmRequest) (*domain.CAFirm, error)
	RegisterCustomer(ctx context.Context, req dto.RegisterCustomerRequest) (*domain.Customer, error)
	LoginFirm(ctx context.Context, identifier, password string) (*domain.CAFirm, error)
	LoginCustomer(ctx context.Context, caCode, identifier, password string) (*domain.Customer, error)
}

type AuthHandler struct {
	*BaseHandler
	service AuthService
	auth    *middleware.AuthMiddleware
}

func NewAuthHandler(service AuthService, auth *middleware.AuthMiddleware) *AuthHandler {
	return &AuthHandler{service: service, auth: auth}
}

// RegisterFirm handles CA firm signup. Signup is all-or-nothing: a 201 means
// the firm exists and its database is usable (or queued for provisioning in
// async deployments).
func (h *AuthHandler) RegisterFirm(c *gin.Context) {
	var req dto.RegisterFirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	firm, err := h.service.RegisterFirm(h.RequestCtx(c), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken),
			errors.Is(err, service.ErrEmailTaken),
			errors.Is(err, service.ErrInvalidGSTIN):
			c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterFirmResponse{
		CACode:   firm.CACode,
		Username: firm.Username,
		Message:  "CA registered successfully.",
	})
}

// RegisterCustomer handles customer signup under an existing firm code.
func (h *AuthHandler) RegisterCustomer(c *gin.Context) {
	var req dto.RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	customer, err := h.service.RegisterCustomer(h.RequestCtx(c), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCACode),
			errors.Is(err, service.ErrCustomerExists),
			errors.Is(err, service.ErrInvalidGSTIN):
			c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterCustomerResponse{
		Username: customer.Username,
		FullName: customer.FullName,
		CACode:   customer.CACode,
		Message:  "Customer registered successfully. Please login.",
	})
}

// Login authenticates either role and issues a token carrying the routing claims.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	var user dto.UserInfo
	if req.Role == "ca" {
		firm, err := h.service.LoginFirm(h.RequestCtx(c), req.Identifier, req.Password)
		if err != nil {
			h.loginError(c, err)
			return
		}
		user = dto.UserInfo{
			ID:       firm.ID,
			Role:     "ca",
			CACode:   firm.CACode,
			Username: firm.Username,
			FullName: firm.FullName,
			FirmName: firm.FirmName,
		}
	} else {
		if req.CACode == "" {
			c.JSON(http.StatusBadRequest, dto.Error{Error: "CA Code is required for customers"})
			return
		}
		customer, err := h.service.LoginCustomer(h.RequestCtx(c), req.CACode, req.Identifier, req.Password)
		if err != nil {
			h.loginError(c, err)
			return
		}
		user = dto.UserInfo{
			ID:       customer.ID,
			Role:     "customer",
			CACode:   customer.CACode,
			Username: customer.Username,
			FullName: customer.FullName,
		}
	}

	token, err := h.auth.GenerateToken(user.ID, user.Role, user.CACode, user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: token,
		User:        user,
	})
}

func (h *AuthHandler) loginError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "Invalid credentials"})
		return
	}
	c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
}
