package repository

import (
	"context"

	"github.com/camate/camate-api/internal/domain"
)

//go:generate mockery --name FirmRepository --output ../mocks
type FirmRepository interface {
	Create(ctx context.Context, firm *domain.CAFirm) (*domain.CAFirm, error)
	GetByCode(ctx context.Context, code string) (*domain.CAFirm, error)
	GetByIdentifier(ctx context.Context, identifier string) (*domain.CAFirm, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, firm *domain.CAFirm) error
	Deactivate(ctx context.Context, code string) error
	ListActive(ctx context.Context) ([]domain.CAFirm, error)
}

//go:generate mockery --name CustomerRepository --output ../mocks
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	GetByIdentifier(ctx context.Context, identifier string) (*domain.Customer, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	List(ctx context.Context) ([]domain.Customer, error)
}

//go:generate mockery --name UploadRepository --output ../mocks
type UploadRepository interface {
	Create(ctx context.Context, upload *domain.Upload) (*domain.Upload, error)
	GetByID(ctx context.Context, id string) (*domain.Upload, error)
	List(ctx context.Context) ([]domain.Upload, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Upload, error)
	ListExpired(ctx context.Context) ([]domain.Upload, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

//go:generate mockery --name OutputRepository --output ../mocks
type OutputRepository interface {
	CreateOutput(ctx context.Context, output *domain.GSTR1Output) (*domain.GSTR1Output, error)
	GetOutputByID(ctx context.Context, id string) (*domain.GSTR1Output, error)
	ListOutputs(ctx context.Context) ([]domain.GSTR1Output, error)
	UpdateOutputStatus(ctx context.Context, id, status string) error
	CreateVerificationRun(ctx context.Context, run *domain.VerificationRun) (*domain.VerificationRun, error)
	UpdateVerificationRun(ctx context.Context, run *domain.VerificationRun) error
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	Firm() FirmRepository
	Customer() CustomerRepository
	Upload() UploadRepository
	Output() OutputRepository
}
