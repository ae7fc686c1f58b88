package domain

import (
	"time"
)

// Customer is a client of a CA firm. Lives in the firm's own database.
type Customer struct {
	ID           string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Username     string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:varchar(255)" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	FullName     string    `gorm:"type:varchar(255);not null" json:"full_name"`
	FirmName     string    `gorm:"type:varchar(255)" json:"firm_name"`
	GSTIN        string    `gorm:"type:varchar(20)" json:"gstin"`
	Address      string    `gorm:"type:text" json:"address"`
	Phone        string    `gorm:"type:varchar(15)" json:"phone"`
	CACode       string    `gorm:"type:varchar(20);not null" json:"ca_code"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Customer) TableName() string {
	return "customers"
}
