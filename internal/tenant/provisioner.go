package tenant

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/camate/camate-api/internal/domain"
	"github.com/camate/camate-api/pkg/logger"
)

// Bounded retry for the async provisioning path.
const (
	DefaultRetryAttempts = 3
	DefaultRetryDelay    = 10 * time.Second
)

// DatabaseAdmin performs physical database administration against the engine.
// Abstracted so the provisioner can be tested without a server.
type DatabaseAdmin interface {
	DatabaseExists(ctx context.Context, name string) (bool, error)
	CreateDatabase(ctx context.Context, name string) error
}

// Migrator brings a tenant database schema to the current head.
type Migrator interface {
	ApplySchema(ctx context.Context, db *gorm.DB) error
}

// PostgresAdmin runs admin statements over the master connection. CREATE
// DATABASE cannot run inside a transaction, so statements go through Exec
// directly.
type PostgresAdmin struct {
	master *gorm.DB
}

func NewPostgresAdmin(master *gorm.DB) *PostgresAdmin {
	return &PostgresAdmin{master: master}
}

func (a *PostgresAdmin) DatabaseExists(ctx context.Context, name string) (bool, error) {
	var count int64
	err := a.master.WithContext(ctx).
		Raw("SELECT count(*) FROM pg_database WHERE datname = ?", name).
		Scan(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check database existence: %w", err)
	}
	return count > 0, nil
}

func (a *PostgresAdmin) CreateDatabase(ctx context.Context, name string) error {
	// name is always a derived identifier that already passed SanitizeCode;
	// CREATE DATABASE does not take bind parameters.
	if err := a.master.WithContext(ctx).Exec("CREATE DATABASE " + name).Error; err != nil {
		return fmt.Errorf("failed to create database %q: %w", name, err)
	}
	return nil
}

// AutoMigrator applies the full tenant schema via GORM auto-migration,
// equivalent to replaying every migration from empty to current head.
// AutoMigrate is idempotent, so re-running it on an existing database is safe.
type AutoMigrator struct{}

func (AutoMigrator) ApplySchema(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(domain.TenantEntities()...); err != nil {
		return fmt.Errorf("failed to apply tenant schema: %w", err)
	}
	return nil
}

// Provisioner creates a firm's physical database, registers its connection and
// applies the schema. Every step is safe to retry. It holds no lock shared
// with request routing, so provisioning one firm never stalls other firms'
// traffic.
type Provisioner struct {
	admin    DatabaseAdmin
	registry *ConnectionRegistry
	migrator Migrator
	singleDB bool
	log      *logger.Logger
}

func NewProvisioner(admin DatabaseAdmin, registry *ConnectionRegistry, migrator Migrator, singleDB bool, log *logger.Logger) *Provisioner {
	if migrator == nil {
		migrator = AutoMigrator{}
	}
	return &Provisioner{
		admin:    admin,
		registry: registry,
		migrator: migrator,
		singleDB: singleDB,
		log:      log,
	}
}

// Provision makes a firm's database usable: create if absent, register the
// connection, apply the schema. The connection is registered only after the
// physical database exists, so the registry never points at a database that
// cannot be opened. A non-nil return means "tenant not usable yet", never a
// partial success.
func (p *Provisioner) Provision(ctx context.Context, code string) error {
	if p.singleDB {
		// Single-database deployments keep all tenant data in master; the
		// router bypasses tenant resolution under the same switch.
		p.log.Infof("single-database mode: skipping database provisioning for %s", code)
		return nil
	}

	code, err := SanitizeCode(code)
	if err != nil {
		return err
	}
	dbName, err := DBName(code)
	if err != nil {
		return err
	}

	exists, err := p.admin.DatabaseExists(ctx, dbName)
	if err != nil {
		return err
	}
	if !exists {
		if err := p.admin.CreateDatabase(ctx, dbName); err != nil {
			return err
		}
		p.log.Info("created tenant database", zap.String("db_name", dbName))
	}

	alias, err := p.registry.Register(code)
	if err != nil {
		return fmt.Errorf("failed to register tenant connection: %w", err)
	}

	entry, ok := p.registry.Get(alias)
	if !ok {
		return fmt.Errorf("%w: %s", ErrTenantNotRegistered, code)
	}

	if err := p.migrator.ApplySchema(ctx, entry.DB); err != nil {
		return err
	}

	p.log.Info("tenant database provisioned",
		zap.String("ca_code", code),
		zap.String("alias", alias),
		zap.String("db_name", dbName))
	return nil
}

// ProvisionWithRetry wraps Provision with bounded fixed-delay retry for
// deployments that offload provisioning to a background worker.
func (p *Provisioner) ProvisionWithRetry(ctx context.Context, code string, attempts int, delay time.Duration) error {
	if attempts <= 0 {
		attempts = DefaultRetryAttempts
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = p.Provision(ctx, code)
		if lastErr == nil {
			return nil
		}

		p.log.Warn("provisioning attempt failed",
			zap.String("ca_code", code),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", attempts),
			zap.Error(lastErr))

		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return fmt.Errorf("provisioning failed after %d attempts: %w", attempts, lastErr)
}
