package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/camate/camate-api/internal/domain"
	"github.com/camate/camate-api/internal/tenant"
)

type OutputRepository struct {
	router *tenant.Router
}

func NewOutputRepository(router *tenant.Router) *OutputRepository {
	return &OutputRepository{router: router}
}

func (r *OutputRepository) db(ctx context.Context) (*gorm.DB, error) {
	return r.router.Resolve(ctx, &domain.GSTR1Output{})
}

func (r *OutputRepository) CreateOutput(ctx context.Context, output *domain.GSTR1Output) (*domain.GSTR1Output, error) {
	db, err := r.db(ctx)
	if err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Create(output).Error; err != nil {
		return nil, err
	}
	return output, nil
}

func (r *OutputRepository) GetOutputByID(ctx context.Context, id string) (*domain.GSTR1Output, error) {
	db, err := r.db(ctx)
	if err != nil {
		return nil, err
	}
	var output domain.GSTR1Output
	if err := db.WithContext(ctx).First(&output, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &output, nil
}

func (r *OutputRepository) ListOutputs(ctx context.Context) ([]domain.GSTR1Output, error) {
	db, err := r.db(ctx)
	if err != nil {
		return nil, err
	}
	var outputs []domain.GSTR1Output
	if err := db.WithContext(ctx).Order("generated_at DESC").Find(&outputs).Error; err != nil {
		return nil, err
	}
	return outputs, nil
}

func (r *OutputRepository) UpdateOutputStatus(ctx context.Context, id, status string) error {
	db, err := r.db(ctx)
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Model(&domain.GSTR1Output{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *OutputRepository) CreateVerificationRun(ctx context.Context, run *domain.VerificationRun) (*domain.VerificationRun, error) {
	// Verification runs reference outputs; both live in the same tenant
	// database, which the router enforces before the write.
	if err := r.router.AllowRelation(ctx, &domain.VerificationRun{}, &domain.GSTR1Output{}); err != nil {
		return nil, err
	}
	db, err := r.router.Resolve(ctx, run)
	if err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Create(run).Error; err != nil {
		return nil, err
	}
	return run, nil
}

func (r *OutputRepository) UpdateVerificationRun(ctx context.Context, run *domain.VerificationRun) error {
	db, err := r.router.Resolve(ctx, run)
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Save(run).Error
}
