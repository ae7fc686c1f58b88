package tenant

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/camate/camate-api/internal/config"
	"github.com/camate/camate-api/pkg/logger"
)

type fakeAdmin struct {
	existing    map[string]bool
	createCalls []string
	existsErr   error
	createErr   error
}

func newFakeAdmin() *fakeAdmin {
	return &fakeAdmin{existing: make(map[string]bool)}
}

func (f *fakeAdmin) DatabaseExists(_ context.Context, name string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	return f.existing[name], nil
}

func (f *fakeAdmin) CreateDatabase(_ context.Context, name string) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.createCalls = append(f.createCalls, name)
	f.existing[name] = true
	return nil
}

// flakyAdmin fails its first N existence checks, then behaves normally.
type flakyAdmin struct {
	*fakeAdmin
	failures int
	calls    int
}

func (f *flakyAdmin) DatabaseExists(ctx context.Context, name string) (bool, error) {
	f.calls++
	if f.calls <= f.failures {
		return false, errors.New("server starting up")
	}
	return f.fakeAdmin.DatabaseExists(ctx, name)
}

type fakeMigrator struct {
	applied []*gorm.DB
	err     error
}

func (f *fakeMigrator) ApplySchema(_ context.Context, db *gorm.DB) error {
	if f.err != nil {
		return f.err
	}
	f.applied = append(f.applied, db)
	return nil
}

type ProvisionerTestSuite struct {
	suite.Suite
	admin    *fakeAdmin
	migrator *fakeMigrator
	registry *ConnectionRegistry
}

func (s *ProvisionerTestSuite) SetupTest() {
	s.admin = newFakeAdmin()
	s.migrator = &fakeMigrator{}

	template := &config.DatabaseConfig{
		Host:   "db.internal",
		Port:   "5432",
		User:   "camate",
		DBName: "camate_master",
	}
	open := func(cfg *config.DatabaseConfig) (*gorm.DB, error) {
		return &gorm.DB{}, nil
	}
	s.registry = NewConnectionRegistry(template, open, logger.NewWithZap(zap.NewNop()))
}

func (s *ProvisionerTestSuite) newProvisioner(singleDB bool) *Provisioner {
	return NewProvisioner(s.admin, s.registry, s.migrator, singleDB, logger.NewWithZap(zap.NewNop()))
}

func TestProvisioner(t *testing.T) {
	suite.Run(t, new(ProvisionerTestSuite))
}

func (s *ProvisionerTestSuite) TestProvision_CreatesRegistersMigrates() {
	p := s.newProvisioner(false)

	err := p.Provision(context.Background(), "CAABC123")

	s.NoError(err)
	s.Equal([]string{"ca_caabc123_db"}, s.admin.createCalls)

	entry, ok := s.registry.Get("ca_caabc123")
	s.True(ok)
	s.Require().Len(s.migrator.applied, 1)
	s.Same(entry.DB, s.migrator.applied[0])
}

func (s *ProvisionerTestSuite) TestProvision_Idempotent() {
	p := s.newProvisioner(false)

	s.Require().NoError(p.Provision(context.Background(), "CAABC123"))
	s.Require().NoError(p.Provision(context.Background(), "CAABC123"))

	// The database is created once, the schema is applied on both passes.
	s.Equal([]string{"ca_caabc123_db"}, s.admin.createCalls)
	s.Len(s.migrator.applied, 2)
	s.Equal(1, s.registry.Len())
}

func (s *ProvisionerTestSuite) TestProvision_ExistingDatabaseStillRegistered() {
	s.admin.existing["ca_caabc123_db"] = true
	p := s.newProvisioner(false)

	err := p.Provision(context.Background(), "CAABC123")

	s.NoError(err)
	s.Empty(s.admin.createCalls)
	_, ok := s.registry.Get("ca_caabc123")
	s.True(ok)
	s.Len(s.migrator.applied, 1)
}

func (s *ProvisionerTestSuite) TestProvision_InvalidCode() {
	p := s.newProvisioner(false)

	err := p.Provision(context.Background(), "CA;DROP DATABASE")

	s.ErrorIs(err, ErrInvalidCode)
	s.Empty(s.admin.createCalls)
	s.Equal(0, s.registry.Len())
}

func (s *ProvisionerTestSuite) TestProvision_CreateFailureLeavesNothingRegistered() {
	s.admin.createErr = errors.New("insufficient privilege")
	p := s.newProvisioner(false)

	err := p.Provision(context.Background(), "CAABC123")

	s.Error(err)
	s.Equal(0, s.registry.Len())
	s.Empty(s.migrator.applied)
}

func (s *ProvisionerTestSuite) TestProvision_SingleDatabaseModeIsNoOp() {
	p := s.newProvisioner(true)

	err := p.Provision(context.Background(), "CAABC123")

	s.NoError(err)
	s.Empty(s.admin.createCalls)
	s.Equal(0, s.registry.Len())
}

func (s *ProvisionerTestSuite) TestProvisionWithRetry_SucceedsAfterTransientFailure() {
	admin := &flakyAdmin{fakeAdmin: s.admin, failures: 2}
	p := NewProvisioner(admin, s.registry, s.migrator, false, logger.NewWithZap(zap.NewNop()))

	err := p.ProvisionWithRetry(context.Background(), "CAABC123", 3, time.Millisecond)

	s.NoError(err)
	s.Equal(3, admin.calls)
	_, ok := s.registry.Get("ca_caabc123")
	s.True(ok)
}

func (s *ProvisionerTestSuite) TestProvisionWithRetry_StopsAfterMaxAttempts() {
	s.admin.existsErr = errors.New("server unreachable")
	p := s.newProvisioner(false)

	err := p.ProvisionWithRetry(context.Background(), "CAABC123", 3, time.Millisecond)

	s.Error(err)
	s.Contains(err.Error(), "after 3 attempts")
}

func (s *ProvisionerTestSuite) TestProvisionWithRetry_ContextCancelled() {
	s.admin.existsErr = errors.New("server unreachable")
	p := s.newProvisioner(false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := p.ProvisionWithRetry(ctx, "CAABC123", 3, time.Minute)

	s.ErrorIs(err, context.Canceled)
}
