package domain

import (
	"time"

	"gorm.io/gorm"
)

// Upload statuses
const (
	UploadStatusPending    = "Pending"
	UploadStatusReceived   = "Received"
	UploadStatusProcessing = "Processing"
	UploadStatusCompleted  = "Completed"
	UploadStatusError      = "Error"
)

// UploadRetention is how long uploaded files are kept before the cleanup
// worker removes them from R2 and the tenant database.
const UploadRetention = 90 * 24 * time.Hour

// Upload tracks a customer file upload in the firm's database. The file itself
// lives in R2; StorageKey is the full object path.
type Upload struct {
	ID            string     `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	CustomerID    string     `gorm:"type:uuid;not null" json:"customer_id"`
	CustomerName  string     `gorm:"type:varchar(255);not null" json:"customer_name"`
	FileName      string     `gorm:"type:varchar(255);not null" json:"file_name"`
	StorageKey    string     `gorm:"type:text;not null" json:"storage_key"`
	FileSize      int64      `gorm:"default:0" json:"file_size"`
	FinancialYear string     `gorm:"type:varchar(10);not null" json:"financial_year"`
	Month         string     `gorm:"type:varchar(20);not null" json:"month"`
	GSTRSheet     string     `gorm:"type:varchar(50)" json:"gstr_sheet"`
	Note          string     `gorm:"type:text" json:"note"`
	Status        string     `gorm:"type:varchar(20);default:'Pending'" json:"status"`
	UploadedAt    time.Time  `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"uploaded_at"`
	ExpiresAt     *time.Time `gorm:"type:timestamp with time zone" json:"expires_at"`
}

func (Upload) TableName() string {
	return "uploads"
}

// BeforeCreate sets the retention deadline when the caller did not.
func (u *Upload) BeforeCreate(tx *gorm.DB) error {
	if u.ExpiresAt == nil {
		expires := time.Now().Add(UploadRetention)
		u.ExpiresAt = &expires
	}
	return nil
}
