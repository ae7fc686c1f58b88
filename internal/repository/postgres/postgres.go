package postgres

import (
	"github.com/camate/camate-api/internal/repository"
	"github.com/camate/camate-api/internal/tenant"
)

// PostgresRepository bundles the concrete repositories. Every repository goes
// through the router for each operation; none holds a connection of its own,
// so tenant routing decisions always reflect the current request context.
type PostgresRepository struct {
	firm     *FirmRepository
	customer *CustomerRepository
	upload   *UploadRepository
	output   *OutputRepository
}

func NewPostgresRepository(router *tenant.Router) *PostgresRepository {
	return &PostgresRepository{
		firm:     NewFirmRepository(router),
		customer: NewCustomerRepository(router),
		upload:   NewUploadRepository(router),
		output:   NewOutputRepository(router),
	}
}

func (r *PostgresRepository) Firm() repository.FirmRepository {
	return r.firm
}

func (r *PostgresRepository) Customer() repository.CustomerRepository {
	return r.customer
}

func (r *PostgresRepository) Upload() repository.UploadRepository {
	return r.upload
}

func (r *PostgresRepository) Output() repository.OutputRepository {
	return r.output
}
