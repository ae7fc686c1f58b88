package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/camate/camate-api/internal/domain"
	"github.com/camate/camate-api/internal/tenant"
)

// CustomerRepository persists customers in the firm's own database. The
// connection comes from the router per call, so the same repository instance
// serves every tenant concurrently.
type CustomerRepository struct {
	router *tenant.Router
}

func NewCustomerRepository(router *tenant.Router) *CustomerRepository {
	return &CustomerRepository{router: router}
}

func (r *CustomerRepository) db(ctx context.Context) (*gorm.DB, error) {
	return r.router.Resolve(ctx, &domain.Customer{})
}

func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	db, err := r.db(ctx)
	if err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Create(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	db, err := r.db(ctx)
	if err != nil {
		return nil, err
	}
	var customer domain.Customer
	if err := db.WithContext(ctx).First(&customer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetByIdentifier looks a customer up by username or email within the current
// tenant's database.
func (r *CustomerRepository) GetByIdentifier(ctx context.Context, identifier string) (*domain.Customer, error) {
	db, err := r.db(ctx)
	if err != nil {
		return nil, err
	}
	var customer domain.Customer
	if err := db.WithContext(ctx).
		Where("username = ? OR email = ?", identifier, identifier).
		First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	db, err := r.db(ctx)
	if err != nil {
		return false, err
	}
	var count int64
	if err := db.WithContext(ctx).Model(&domain.Customer{}).
		Where("username = ?", username).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	db, err := r.db(ctx)
	if err != nil {
		return nil, err
	}
	var customers []domain.Customer
	if err := db.WithContext(ctx).Order("created_at DESC").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}
