package domain

// Ownership classifies where an entity's table lives: the shared master
// database or the per-firm tenant database. The classification is fixed at
// deployment time; an entity missing from both lists is a configuration error
// the router refuses to route, never a silent default.
type Ownership int

const (
	OwnershipShared Ownership = iota
	OwnershipTenant
)

func (o Ownership) String() string {
	if o == OwnershipShared {
		return "shared"
	}
	return "tenant"
}

// SharedEntities are routed to the master database regardless of tenant
// context: the firm registry itself plus auth bookkeeping.
func SharedEntities() []interface{} {
	return []interface{}{
		&CAFirm{},
	}
}

// TenantEntities live in each firm's own database. This list is also the
// schema the provisioner applies to a freshly created tenant database.
func TenantEntities() []interface{} {
	return []interface{}{
		&Customer{},
		&Upload{},
		&GSTR1Output{},
		&VerificationRun{},
	}
}
