package tenant

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/camate/camate-api/internal/config"
	"github.com/camate/camate-api/internal/domain"
	"github.com/camate/camate-api/pkg/logger"
)

type stubFirmSource struct {
	firms []domain.CAFirm
	err   error
}

func (s *stubFirmSource) ListActive(_ context.Context) ([]domain.CAFirm, error) {
	return s.firms, s.err
}

type ConnectionRegistryTestSuite struct {
	suite.Suite
	template  *config.DatabaseConfig
	openCount atomic.Int64
	openErr   error
	registry  *ConnectionRegistry
}

func (s *ConnectionRegistryTestSuite) SetupTest() {
	s.template = &config.DatabaseConfig{
		Host:     "db.internal",
		Port:     "5432",
		User:     "camate",
		Password: "secret",
		DBName:   "camate_master",
		SSLMode:  "disable",
	}
	s.openCount.Store(0)
	s.openErr = nil

	open := func(cfg *config.DatabaseConfig) (*gorm.DB, error) {
		s.openCount.Add(1)
		if s.openErr != nil {
			return nil, s.openErr
		}
		return &gorm.DB{}, nil
	}
	s.registry = NewConnectionRegistry(s.template, open, logger.NewWithZap(zap.NewNop()))
}

func TestConnectionRegistry(t *testing.T) {
	suite.Run(t, new(ConnectionRegistryTestSuite))
}

func (s *ConnectionRegistryTestSuite) TestRegister_DerivesNamesFromTemplate() {
	alias, err := s.registry.Register("CAABC123")

	s.NoError(err)
	s.Equal("ca_caabc123", alias)

	entry, ok := s.registry.Get(alias)
	s.True(ok)
	s.Equal("ca_caabc123_db", entry.DBName)
	s.Equal("ca_caabc123_db", entry.Config.DBName)
	// Everything except the database name comes from the template.
	s.Equal(s.template.Host, entry.Config.Host)
	s.Equal(s.template.User, entry.Config.User)
	s.Equal(s.template.Password, entry.Config.Password)
	s.NotNil(entry.DB)

	// The template itself is never mutated.
	s.Equal("camate_master", s.template.DBName)
}

func (s *ConnectionRegistryTestSuite) TestRegister_Idempotent() {
	first, err := s.registry.Register("CAABC123")
	s.NoError(err)
	second, err := s.registry.Register("CAABC123")
	s.NoError(err)

	s.Equal(first, second)
	s.Equal(1, s.registry.Len())
	s.EqualValues(1, s.openCount.Load())
}

func (s *ConnectionRegistryTestSuite) TestRegister_InvalidCode() {
	_, err := s.registry.Register("CA;DROP DATABASE")

	s.ErrorIs(err, ErrInvalidCode)
	s.Equal(0, s.registry.Len())
}

func (s *ConnectionRegistryTestSuite) TestRegister_OpenFailureLeavesNoEntry() {
	s.openErr = errors.New("connection refused")

	_, err := s.registry.Register("CAABC123")

	s.Error(err)
	s.Equal(0, s.registry.Len())
	_, ok := s.registry.Get("ca_caabc123")
	s.False(ok)
}

func (s *ConnectionRegistryTestSuite) TestRegister_ConcurrentSameCode() {
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			alias, err := s.registry.Register("CAABC123")
			s.NoError(err)
			s.Equal("ca_caabc123", alias)
		}()
	}
	wg.Wait()

	s.Equal(1, s.registry.Len())
}

func (s *ConnectionRegistryTestSuite) TestRegister_ConcurrentDistinctCodes() {
	codes := []string{"CAFIRM01", "CAFIRM02", "CAFIRM03", "CAFIRM04"}

	var wg sync.WaitGroup
	for _, code := range codes {
		wg.Add(1)
		go func(code string) {
			defer wg.Done()
			_, err := s.registry.Register(code)
			s.NoError(err)
		}(code)
	}
	wg.Wait()

	s.Equal(len(codes), s.registry.Len())
	s.ElementsMatch([]string{"ca_cafirm01", "ca_cafirm02", "ca_cafirm03", "ca_cafirm04"},
		s.registry.Aliases())
}

func (s *ConnectionRegistryTestSuite) TestWarmLoad_RegistersActiveFirms() {
	source := &stubFirmSource{firms: []domain.CAFirm{
		{CACode: "CAFIRM01"},
		{CACode: "CAFIRM02"},
	}}

	err := s.registry.WarmLoad(context.Background(), source)

	s.NoError(err)
	s.Equal(LoadStateWarm, s.registry.State())
	s.Equal(2, s.registry.Len())
}

func (s *ConnectionRegistryTestSuite) TestWarmLoad_UnreadableSourceStaysCold() {
	source := &stubFirmSource{err: errors.New("relation \"ca_firms\" does not exist")}

	err := s.registry.WarmLoad(context.Background(), source)

	// A fresh install with no firm table yet is not a startup failure.
	s.NoError(err)
	s.Equal(LoadStateCold, s.registry.State())
	s.Equal(0, s.registry.Len())
}

func (s *ConnectionRegistryTestSuite) TestWarmLoad_SkipsBadCodes() {
	source := &stubFirmSource{firms: []domain.CAFirm{
		{CACode: "CAFIRM01"},
		{CACode: "bad code"},
		{CACode: "CAFIRM02"},
	}}

	err := s.registry.WarmLoad(context.Background(), source)

	s.NoError(err)
	s.Equal(LoadStateWarm, s.registry.State())
	s.Equal(2, s.registry.Len())
}

func TestLoadStateString(t *testing.T) {
	if LoadStateCold.String() != "cold" || LoadStateWarm.String() != "warm" {
		t.Fatalf("unexpected LoadState strings: %s, %s", LoadStateCold, LoadStateWarm)
	}
}
