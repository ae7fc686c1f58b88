package service

import "errors"

var (
	// Firm errors
	ErrFirmNotFound  = errors.New("CA firm not found")
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already registered")
	ErrInvalidCACode = errors.New("invalid CA code")

	// Customer errors
	ErrCustomerNotFound = errors.New("customer not found")
	ErrCustomerExists   = errors.New("username already exists for this CA firm")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidGSTIN       = errors.New("invalid GSTIN format")

	// Provisioning errors
	ErrProvisioningFailed = errors.New("tenant database provisioning failed")

	// Upload/output errors
	ErrUploadNotFound = errors.New("upload not found")
	ErrOutputNotFound = errors.New("output not found")
)
