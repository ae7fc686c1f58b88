package dto

type RegisterFirmRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required,max=255"`
	FirmName string `json:"firm_name" binding:"max=255"`
	GSTIN    string `json:"gstin" binding:"max=20"`
	Address  string `json:"address"`
	Phone    string `json:"phone" binding:"max=15"`
}

type RegisterCustomerRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required,max=255"`
	FirmName string `json:"firm_name" binding:"max=255"`
	GSTIN    string `json:"gstin" binding:"max=20"`
	Address  string `json:"address"`
	Phone    string `json:"phone" binding:"max=15"`
	CACode   string `json:"ca_code" binding:"required,max=20"`
}

type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
	Role       string `json:"role" binding:"required,oneof=ca customer"`
	CACode     string `json:"ca_code"`
}

type RequestUploadRequest struct {
	CustomerID    string `json:"customer_id" binding:"required,uuid"`
	FileName      string `json:"file_name" binding:"required,max=255"`
	FileSize      int64  `json:"file_size" binding:"min=0"`
	FinancialYear string `json:"financial_year" binding:"required,max=10"`
	Month         string `json:"month" binding:"required,max=20"`
	GSTRSheet     string `json:"gstr_sheet" binding:"max=50"`
	Note          string `json:"note"`
}

type RecordOutputRequest struct {
	CustomerID    string `json:"customer_id" binding:"required,uuid"`
	CustomerName  string `json:"customer_name" binding:"required,max=255"`
	FinancialYear string `json:"financial_year" binding:"required,max=10"`
	Month         string `json:"month" binding:"required,max=20"`
	StorageKey    string `json:"storage_key" binding:"required"`
	FileName      string `json:"file_name" binding:"required,max=255"`
}

type StartVerificationRequest struct {
	GSTR1OutputID string `json:"gstr1_output_id" binding:"required,uuid"`
}
