package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/camate/camate-api/internal/api/dto"
	"github.com/camate/camate-api/internal/domain"
	"github.com/camate/camate-api/internal/repository"
	"github.com/camate/camate-api/internal/tenant"
	"github.com/camate/camate-api/pkg/logger"
)

// Firm codes: "CA" + 6 characters from a restricted alphabet. Short enough to
// read over the phone, large enough that collisions stay rare; the generator
// probes the registry and retries on collision anyway.
const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeSuffix   = 6
)

var gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

//go:generate mockery --name Provisioner --output ../mocks
type Provisioner interface {
	Provision(ctx context.Context, code string) error
}

//go:generate mockery --name ProvisionQueue --output ../mocks
type ProvisionQueue interface {
	SendProvisionMessage(ctx context.Context, caCode string) error
}

// AuthService handles firm signup (including tenant provisioning), customer
// registration and both login flows.
type AuthService struct {
	repo        repository.Repository
	provisioner Provisioner
	queue       ProvisionQueue
	async       bool
	log         *logger.Logger
}

func NewAuthService(repo repository.Repository, provisioner Provisioner, queue ProvisionQueue, async bool, log *logger.Logger) *AuthService {
	return &AuthService{
		repo:        repo,
		provisioner: provisioner,
		queue:       queue,
		async:       async,
		log:         log,
	}
}

// RegisterFirm creates a CA firm in the master registry and makes its tenant
// database usable. From the caller's perspective signup is all-or-nothing:
// a firm is never reported as created while its database is unusable.
func (s *AuthService) RegisterFirm(ctx context.Context, req dto.RegisterFirmRequest) (*domain.CAFirm, error) {
	if taken, err := s.repo.Firm().ExistsByUsername(ctx, req.Username); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrUsernameTaken
	}
	if taken, err := s.repo.Firm().ExistsByEmail(ctx, req.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrEmailTaken
	}

	gstin, err := normalizeGSTIN(req.GSTIN)
	if err != nil {
		return nil, err
	}

	code, err := s.generateFirmCode(ctx)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	firm := &domain.CAFirm{
		CACode:       code,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		FirmName:     req.FirmName,
		GSTIN:        gstin,
		Address:      req.Address,
		Phone:        req.Phone,
		Plan:         domain.PlanStarter,
		IsActive:     true,
	}

	if _, err := s.repo.Firm().Create(ctx, firm); err != nil {
		return nil, err
	}

	if s.async {
		if err := s.queue.SendProvisionMessage(ctx, code); err != nil {
			s.log.Error("failed to enqueue provisioning job", err, zap.String("ca_code", code))
			return nil, s.failSignup(ctx, code, err)
		}
		return firm, nil
	}

	if err := s.provisioner.Provision(ctx, code); err != nil {
		s.log.Error("synchronous provisioning failed", err, zap.String("ca_code", code))
		return nil, s.failSignup(ctx, code, err)
	}

	return firm, nil
}

// failSignup deactivates the half-registered firm so it never serves traffic,
// then reports the signup as fully failed. The code stays reserved; firms are
// never physically deleted.
func (s *AuthService) failSignup(ctx context.Context, code string, cause error) error {
	if err := s.repo.Firm().Deactivate(ctx, code); err != nil {
		s.log.Error("failed to deactivate firm after provisioning failure", err,
			zap.String("ca_code", code))
	}
	return fmt.Errorf("%w: %v", ErrProvisioningFailed, cause)
}

// generateFirmCode produces a fresh unique CA code. Unbounded retry on
// collision; with a 36^6 space and a unique constraint backing the probe this
// terminates on the first attempt in practice.
func (s *AuthService) generateFirmCode(ctx context.Context) (string, error) {
	for {
		suffix := make([]byte, codeSuffix)
		for i := range suffix {
			suffix[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
		}
		code := "CA" + string(suffix)

		exists, err := s.repo.Firm().ExistsByCode(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
}

// LoginFirm authenticates a CA firm against the master registry.
func (s *AuthService) LoginFirm(ctx context.Context, identifier, password string) (*domain.CAFirm, error) {
	firm, err := s.repo.Firm().GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !firm.IsActive {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(firm.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return firm, nil
}

// RegisterCustomer creates a customer inside the firm's database. The firm
// code is validated against the master registry first, then the write routes
// to the tenant store.
func (s *AuthService) RegisterCustomer(ctx context.Context, req dto.RegisterCustomerRequest) (*domain.Customer, error) {
	exists, err := s.repo.Firm().ExistsByCode(ctx, req.CACode)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrInvalidCACode
	}

	gstin, err := normalizeGSTIN(req.GSTIN)
	if err != nil {
		return nil, err
	}

	// Route the remaining operations to the firm's database.
	tctx := tenant.WithCode(ctx, req.CACode)

	if taken, err := s.repo.Customer().ExistsByUsername(tctx, req.Username); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrCustomerExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	customer := &domain.Customer{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		FirmName:     req.FirmName,
		GSTIN:        gstin,
		Address:      req.Address,
		Phone:        req.Phone,
		CACode:       req.CACode,
		IsActive:     true,
	}

	return s.repo.Customer().Create(tctx, customer)
}

// LoginCustomer authenticates a customer within the firm's database. The CA
// code arrives in the request body because no token exists yet.
func (s *AuthService) LoginCustomer(ctx context.Context, caCode, identifier, password string) (*domain.Customer, error) {
	tctx := tenant.WithCode(ctx, caCode)

	customer, err := s.repo.Customer().GetByIdentifier(tctx, identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !customer.IsActive {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return customer, nil
}

func normalizeGSTIN(gstin string) (string, error) {
	if gstin == "" {
		return "", nil
	}
	gstin = strings.ToUpper(gstin)
	if !gstinPattern.MatchString(gstin) {
		return "", ErrInvalidGSTIN
	}
	return gstin, nil
}
