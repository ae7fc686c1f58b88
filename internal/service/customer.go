package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/camate/camate-api/internal/domain"
	"github.com/camate/camate-api/internal/repository"
)

// CustomerService reads customers from the current firm's database. All tenant
// routing happens below the repository, driven by the request context.
type CustomerService struct {
	repo repository.Repository
}

func NewCustomerService(repo repository.Repository) *CustomerService {
	return &CustomerService{repo: repo}
}

func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.Customer().List(ctx)
}

func (s *CustomerService) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	customer, err := s.repo.Customer().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return customer, nil
}
