package domain

import (
	"strings"
	"time"
)

// Plan tiers for CA firms
const (
	PlanStarter    = "starter"
	PlanPro        = "pro"
	PlanEnterprise = "enterprise"
)

// CAFirm is the tenant record in the master database. CACode is the stable,
// unique identifier every derived database name and connection alias comes from;
// it is never changed after creation. Firms are deactivated, never deleted.
type CAFirm struct {
	ID           string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	CACode       string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"ca_code"`
	Username     string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	FullName     string    `gorm:"type:varchar(255);not null" json:"full_name"`
	FirmName     string    `gorm:"type:varchar(255)" json:"firm_name"`
	GSTIN        string    `gorm:"type:varchar(20)" json:"gstin"`
	Address      string    `gorm:"type:text" json:"address"`
	Phone        string    `gorm:"type:varchar(15)" json:"phone"`
	Plan         string    `gorm:"type:varchar(20);default:'starter'" json:"plan"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (CAFirm) TableName() string {
	return "ca_firms"
}

// IsPro reports whether the firm is on a paid plan.
func (f *CAFirm) IsPro() bool {
	return f.Plan == PlanPro || f.Plan == PlanEnterprise
}

// DBName is the derived physical database name, e.g. "ca_caabc123_db".
func (f *CAFirm) DBName() string {
	return "ca_" + strings.ToLower(f.CACode) + "_db"
}
