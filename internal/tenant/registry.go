package tenant

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/camate/camate-api/internal/config"
	"github.com/camate/camate-api/internal/domain"
	"github.com/camate/camate-api/pkg/logger"
)

// LoadState reports whether the registry was warm-loaded from the firm
// registry at startup. A cold registry is a valid first-run condition, not an
// error; callers can inspect it instead of guessing from log output.
type LoadState int

const (
	LoadStateCold LoadState = iota
	LoadStateWarm
)

func (s LoadState) String() string {
	if s == LoadStateWarm {
		return "warm"
	}
	return "cold"
}

// Entry is one tenant's live connection. Entries are built fully before they
// become visible to readers and are never mutated in place.
type Entry struct {
	Alias  string
	DBName string
	Config *config.DatabaseConfig
	DB     *gorm.DB
}

// OpenFunc opens a database connection for a derived tenant config. Injected
// so tests can run the registry without a database server.
type OpenFunc func(*config.DatabaseConfig) (*gorm.DB, error)

// FirmSource enumerates known firms from the master registry. Satisfied by the
// postgres firm repository; also the primitive fan-out maintenance jobs use.
type FirmSource interface {
	ListActive(ctx context.Context) ([]domain.CAFirm, error)
}

// ConnectionRegistry maps connection aliases to live tenant connections. It is
// read-mostly: lookups take the read lock only, and registration builds the
// entry (including the slow connection dial) before touching the write lock,
// so readers never observe a partially constructed entry and routing never
// blocks behind a dial.
type ConnectionRegistry struct {
	mu       sync.RWMutex
	entries  map[string]*Entry
	template *config.DatabaseConfig
	open     OpenFunc
	state    LoadState
	log      *logger.Logger
}

func NewConnectionRegistry(template *config.DatabaseConfig, open OpenFunc, log *logger.Logger) *ConnectionRegistry {
	if open == nil {
		open = config.OpenDatabase
	}
	return &ConnectionRegistry{
		entries:  make(map[string]*Entry),
		template: template,
		open:     open,
		state:    LoadStateCold,
		log:      log,
	}
}

// Register derives the alias and database name for a CA code, clones the
// template config with only the database name overridden, opens the
// connection, and publishes the entry. Registering an already-known code is a
// no-op returning the existing alias.
func (r *ConnectionRegistry) Register(code string) (string, error) {
	alias, err := Alias(code)
	if err != nil {
		return "", err
	}
	dbName, err := DBName(code)
	if err != nil {
		return "", err
	}

	r.mu.RLock()
	_, exists := r.entries[alias]
	r.mu.RUnlock()
	if exists {
		return alias, nil
	}

	cfg := r.template.CloneForDatabase(dbName)
	db, err := r.open(cfg)
	if err != nil {
		return "", err
	}

	entry := &Entry{
		Alias:  alias,
		DBName: dbName,
		Config: cfg,
		DB:     db,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Another goroutine may have registered the same code while we were dialing.
	if _, ok := r.entries[alias]; ok {
		_ = config.CloseDatabase(db)
		return alias, nil
	}
	r.entries[alias] = entry
	return alias, nil
}

// Get returns the entry for a connection alias, if registered.
func (r *ConnectionRegistry) Get(alias string) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[alias]
	return entry, ok
}

// Aliases returns a snapshot of all registered aliases.
func (r *ConnectionRegistry) Aliases() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	aliases := make([]string, 0, len(r.entries))
	for alias := range r.entries {
		aliases = append(aliases, alias)
	}
	return aliases
}

// Len returns the number of registered tenant connections.
func (r *ConnectionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// State reports whether the last WarmLoad succeeded.
func (r *ConnectionRegistry) State() LoadState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// WarmLoad registers a connection for every active firm in the master
// registry. Called at process start so steady-state traffic never pays the
// lazy-registration cost, and reused by fan-out maintenance jobs. An
// unreadable or empty firm registry (fresh install, migrations not yet run) is
// logged and leaves the registry cold; it does not fail startup.
func (r *ConnectionRegistry) WarmLoad(ctx context.Context, source FirmSource) error {
	firms, err := source.ListActive(ctx)
	if err != nil {
		r.log.Warn("firm registry not readable, starting with cold connection registry",
			zap.Error(err))
		r.setState(LoadStateCold)
		return nil
	}

	registered := 0
	for _, firm := range firms {
		if _, err := r.Register(firm.CACode); err != nil {
			r.log.Error("failed to register tenant connection", err,
				zap.String("ca_code", firm.CACode))
			continue
		}
		registered++
	}

	r.setState(LoadStateWarm)
	r.log.Info("tenant connection registry loaded",
		zap.Int("firms", len(firms)),
		zap.Int("registered", registered))
	return nil
}

func (r *ConnectionRegistry) setState(state LoadState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = state
}
