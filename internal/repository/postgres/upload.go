package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/camate/camate-api/internal/domain"
	"github.com/camate/camate-api/internal/tenant"
)

type UploadRepository struct {
	router *tenant.Router
}

func NewUploadRepository(router *tenant.Router) *UploadRepository {
	return &UploadRepository{router: router}
}

func (r *UploadRepository) db(ctx context.Context) (*gorm.DB, error) {
	return r.router.Resolve(ctx, &domain.Upload{})
}

func (r *UploadRepository) Create(ctx context.Context, upload *domain.Upload) (*domain.Upload, error) {
	db, err := r.db(ctx)
	if err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Create(upload).Error; err != nil {
		return nil, err
	}
	return upload, nil
}

func (r *UploadRepository) GetByID(ctx context.Context, id string) (*domain.Upload, error) {
	db, err := r.db(ctx)
	if err != nil {
		return nil, err
	}
	var upload domain.Upload
	if err := db.WithContext(ctx).First(&upload, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &upload, nil
}

func (r *UploadRepository) List(ctx context.Context) ([]domain.Upload, error) {
	db, err := r.db(ctx)
	if err != nil {
		return nil, err
	}
	var uploads []domain.Upload
	if err := db.WithContext(ctx).Order("uploaded_at DESC").Find(&uploads).Error; err != nil {
		return nil, err
	}
	return uploads, nil
}

func (r *UploadRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.Upload, error) {
	db, err := r.db(ctx)
	if err != nil {
		return nil, err
	}
	var uploads []domain.Upload
	if err := db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("uploaded_at DESC").
		Find(&uploads).Error; err != nil {
		return nil, err
	}
	return uploads, nil
}

// ListExpired returns uploads past their retention deadline in the current
// tenant's database. Used by the cleanup worker's per-tenant sweep.
func (r *UploadRepository) ListExpired(ctx context.Context) ([]domain.Upload, error) {
	db, err := r.db(ctx)
	if err != nil {
		return nil, err
	}
	var uploads []domain.Upload
	if err := db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Find(&uploads).Error; err != nil {
		return nil, err
	}
	return uploads, nil
}

func (r *UploadRepository) UpdateStatus(ctx context.Context, id, status string) error {
	db, err := r.db(ctx)
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Model(&domain.Upload{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *UploadRepository) Delete(ctx context.Context, id string) error {
	db, err := r.db(ctx)
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Delete(&domain.Upload{}, "id = ?", id).Error
}
