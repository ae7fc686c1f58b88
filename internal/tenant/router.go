package tenant

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/camate/camate-api/internal/config"
	"github.com/camate/camate-api/internal/domain"
	"github.com/camate/camate-api/pkg/logger"
)

var (
	// ErrUnclassifiedEntity means an entity type appears in neither the shared
	// nor the tenant list. That is a deployment configuration error and the
	// operation is rejected, never silently routed to a default.
	ErrUnclassifiedEntity = errors.New("entity has no ownership classification")

	// ErrAmbiguousEntity means an entity type appears in both ownership lists.
	ErrAmbiguousEntity = errors.New("entity classified as both shared and tenant-scoped")

	// ErrTenantNotRegistered is returned under FallbackReject when the request's
	// CA code has no registered connection.
	ErrTenantNotRegistered = errors.New("no registered connection for tenant")

	// ErrCrossTenantRelation is returned when two entities resolve to different
	// connections and are therefore not allowed to be related.
	ErrCrossTenantRelation = errors.New("relation crosses database connections")
)

// Router resolves every repository read/write to a connection: shared entities
// to the master database unconditionally, tenant-scoped entities to the
// connection registered for the request's CA code. Repositories must go
// through Resolve rather than holding a *gorm.DB of their own.
type Router struct {
	master    *gorm.DB
	registry  *ConnectionRegistry
	ownership map[reflect.Type]domain.Ownership
	singleDB  bool
	fallback  config.FallbackPolicy
	log       *logger.Logger
}

// NewRouter builds the static ownership table from the domain entity lists and
// fails on any entity classified twice. singleDB is the one global switch for
// the degenerate single-database deployment: when set, tenant resolution is
// bypassed and everything routes to master.
func NewRouter(master *gorm.DB, registry *ConnectionRegistry, cfg *config.Config, log *logger.Logger) (*Router, error) {
	ownership := make(map[reflect.Type]domain.Ownership)
	for _, entity := range domain.SharedEntities() {
		ownership[entityType(entity)] = domain.OwnershipShared
	}
	for _, entity := range domain.TenantEntities() {
		t := entityType(entity)
		if _, ok := ownership[t]; ok {
			return nil, fmt.Errorf("%w: %s", ErrAmbiguousEntity, t)
		}
		ownership[t] = domain.OwnershipTenant
	}

	return &Router{
		master:    master,
		registry:  registry,
		ownership: ownership,
		singleDB:  cfg.SingleDatabaseMode,
		fallback:  cfg.RoutingFallback,
		log:       log,
	}, nil
}

// Master returns the shared master connection.
func (r *Router) Master() *gorm.DB {
	return r.master
}

// Resolve returns the connection for one read or write of the given entity.
// Reads and writes resolve identically.
func (r *Router) Resolve(ctx context.Context, entity interface{}) (*gorm.DB, error) {
	ownership, ok := r.ownership[entityType(entity)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnclassifiedEntity, entityType(entity))
	}

	// Shared entities short-circuit tenant logic entirely.
	if ownership == domain.OwnershipShared {
		return r.master, nil
	}

	if r.singleDB {
		return r.master, nil
	}

	code, ok := CodeFromContext(ctx)
	if !ok {
		// Anonymous operation, or a deployment that never set tenant context.
		return r.master, nil
	}

	return r.resolveTenant(code)
}

// ResolveByCode returns the tenant connection for an explicit CA code,
// bypassing the request context. Used by login for customers (the code arrives
// in the request body before any token exists) and by fan-out maintenance jobs.
func (r *Router) ResolveByCode(code string) (*gorm.DB, error) {
	if r.singleDB || code == "" {
		return r.master, nil
	}
	return r.resolveTenant(code)
}

func (r *Router) resolveTenant(code string) (*gorm.DB, error) {
	alias, err := Alias(code)
	if err != nil {
		return nil, err
	}

	entry, ok := r.registry.Get(alias)
	if !ok {
		if r.fallback == config.FallbackReject {
			return nil, fmt.Errorf("%w: %s", ErrTenantNotRegistered, code)
		}
		r.log.Warn("tenant has no registered connection, falling back to master",
			zap.String("ca_code", code),
			zap.String("alias", alias))
		return r.master, nil
	}

	return entry.DB, nil
}

// AllowRelation permits two entities to be related (joined, foreign-keyed)
// only when both resolve to the same connection under the current context.
func (r *Router) AllowRelation(ctx context.Context, a, b interface{}) error {
	dbA, err := r.Resolve(ctx, a)
	if err != nil {
		return err
	}
	dbB, err := r.Resolve(ctx, b)
	if err != nil {
		return err
	}
	if dbA != dbB {
		return fmt.Errorf("%w: %s and %s", ErrCrossTenantRelation, entityType(a), entityType(b))
	}
	return nil
}

// entityType normalizes an entity value or pointer to its struct type.
func entityType(entity interface{}) reflect.Type {
	t := reflect.TypeOf(entity)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}
