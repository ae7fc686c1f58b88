package domain

import (
	"time"
)

// GSTR1Output statuses
const (
	OutputStatusGenerated = "generated"
	OutputStatusVerified  = "verified"
	OutputStatusCorrected = "corrected"
)

// GSTR1Output is a generated GSTR1 Excel file recorded in the firm's database.
type GSTR1Output struct {
	ID            string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	CustomerID    string    `gorm:"type:uuid;not null" json:"customer_id"`
	CustomerName  string    `gorm:"type:varchar(255);not null" json:"customer_name"`
	FinancialYear string    `gorm:"type:varchar(10);not null" json:"financial_year"`
	Month         string    `gorm:"type:varchar(20);not null" json:"month"`
	StorageKey    string    `gorm:"type:text;not null" json:"storage_key"`
	FileName      string    `gorm:"type:varchar(255);not null" json:"file_name"`
	GeneratedAt   time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"generated_at"`
	GeneratedBy   string    `gorm:"type:varchar(100);not null" json:"generated_by"`
	Status        string    `gorm:"type:varchar(20);default:'generated'" json:"status"`
}

func (GSTR1Output) TableName() string {
	return "gstr1_outputs"
}

// VerificationRun statuses
const (
	VerificationStatusPending   = "pending"
	VerificationStatusRunning   = "running"
	VerificationStatusCompleted = "completed"
	VerificationStatusFailed    = "failed"
)

// VerificationRun records one execution of the GSTIN verification engine against
// a generated output. The engine itself is an external service; only the
// bookkeeping lives here.
type VerificationRun struct {
	ID            string     `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	CustomerID    string     `gorm:"type:uuid;not null" json:"customer_id"`
	CustomerName  string     `gorm:"type:varchar(255);not null" json:"customer_name"`
	GSTR1OutputID string     `gorm:"type:uuid;not null" json:"gstr1_output_id"`
	FinancialYear string     `gorm:"type:varchar(10);not null" json:"financial_year"`
	Month         string     `gorm:"type:varchar(20);not null" json:"month"`
	TotalChecked  int        `gorm:"default:0" json:"total_checked"`
	TotalInvalid  int        `gorm:"default:0" json:"total_invalid"`
	Status        string     `gorm:"type:varchar(20);default:'pending'" json:"status"`
	StartedAt     time.Time  `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"started_at"`
	CompletedAt   *time.Time `gorm:"type:timestamp with time zone" json:"completed_at"`
}

func (VerificationRun) TableName() string {
	return "verification_runs"
}
