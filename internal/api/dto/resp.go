package dto

import "time"

type RegisterFirmResponse struct {
	CACode   string `json:"ca_code"`
	Username string `json:"username"`
	Message  string `json:"message"`
}

type RegisterCustomerResponse struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	CACode   string `json:"ca_code"`
	Message  string `json:"message"`
}

type LoginResponse struct {
	AccessToken string   `json:"access"`
	User        UserInfo `json:"user"`
}

type UserInfo struct {
	ID       string `json:"id"`
	Role     string `json:"role"`
	CACode   string `json:"ca_code"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	FirmName string `json:"firm_name,omitempty"`
}

type RequestUploadResponse struct {
	UploadID     string `json:"upload_id"`
	PresignedURL string `json:"presigned_url"`
	StorageKey   string `json:"storage_key"`
}

type DownloadResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}
