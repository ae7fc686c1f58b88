package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/camate/camate-api/internal/domain"
	"github.com/camate/camate-api/internal/tenant"
)

// FirmRepository persists CA firms. Firms are a shared entity, so every
// operation resolves to the master connection, but resolution still goes
// through the router so the classification stays in one place.
type FirmRepository struct {
	router *tenant.Router
}

func NewFirmRepository(router *tenant.Router) *FirmRepository {
	return &FirmRepository{router: router}
}

func (r *FirmRepository) db(ctx context.Context) (*gorm.DB, error) {
	return r.router.Resolve(ctx, &domain.CAFirm{})
}

func (r *FirmRepository) Create(ctx context.Context, firm *domain.CAFirm) (*domain.CAFirm, error) {
	db, err := r.db(ctx)
	if err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Create(firm).Error; err != nil {
		return nil, err
	}
	return firm, nil
}

func (r *FirmRepository) GetByCode(ctx context.Context, code string) (*domain.CAFirm, error) {
	db, err := r.db(ctx)
	if err != nil {
		return nil, err
	}
	var firm domain.CAFirm
	if err := db.WithContext(ctx).First(&firm, "ca_code = ?", code).Error; err != nil {
		return nil, err
	}
	return &firm, nil
}

// GetByIdentifier looks a firm up by username or email.
func (r *FirmRepository) GetByIdentifier(ctx context.Context, identifier string) (*domain.CAFirm, error) {
	db, err := r.db(ctx)
	if err != nil {
		return nil, err
	}
	var firm domain.CAFirm
	if err := db.WithContext(ctx).
		Where("username = ? OR email = ?", identifier, identifier).
		First(&firm).Error; err != nil {
		return nil, err
	}
	return &firm, nil
}

func (r *FirmRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	return r.exists(ctx, "ca_code = ?", code)
}

func (r *FirmRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username = ?", username)
}

func (r *FirmRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email = ?", email)
}

func (r *FirmRepository) exists(ctx context.Context, query string, arg string) (bool, error) {
	db, err := r.db(ctx)
	if err != nil {
		return false, err
	}
	var count int64
	if err := db.WithContext(ctx).Model(&domain.CAFirm{}).Where(query, arg).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *FirmRepository) Update(ctx context.Context, firm *domain.CAFirm) error {
	db, err := r.db(ctx)
	if err != nil {
		return err
	}
	firm.UpdatedAt = time.Now()
	return db.WithContext(ctx).Save(firm).Error
}

// Deactivate soft-disables a firm. Firms are never physically deleted; the
// code stays reserved and the tenant database stays in place.
func (r *FirmRepository) Deactivate(ctx context.Context, code string) error {
	db, err := r.db(ctx)
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Model(&domain.CAFirm{}).
		Where("ca_code = ?", code).
		Updates(map[string]interface{}{"is_active": false, "updated_at": time.Now()}).Error
}

func (r *FirmRepository) ListActive(ctx context.Context) ([]domain.CAFirm, error) {
	db, err := r.db(ctx)
	if err != nil {
		return nil, err
	}
	var firms []domain.CAFirm
	if err := db.WithContext(ctx).Where("is_active = ?", true).Find(&firms).Error; err != nil {
		return nil, err
	}
	return firms, nil
}
