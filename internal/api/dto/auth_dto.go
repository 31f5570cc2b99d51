package dto

import (
	"time"

	"github.com/spec-kit/renewal-service/internal/domain"
)

// AdminLoginRequest payload.
type AdminLoginRequest struct {
	AccessCode string `json:"access_code"`
}

// StaffLoginRequest payload.
type StaffLoginRequest struct {
	AccessCode string `json:"access_code"`
	Name       string `json:"name"`
}

// StaffRegisterRequest payload. Name and phone are accepted for form parity
// but the demo resolves the session to an existing roster member.
type StaffRegisterRequest struct {
	AccessCode string          `json:"access_code"`
	Name       string          `json:"name"`
	District   domain.District `json:"district"`
	Phone      string          `json:"phone"`
}

// MerchantLoginRequest payload.
type MerchantLoginRequest struct {
	LicenseNo string `json:"license_no"`
}

// MerchantRegisterRequest payload.
type MerchantRegisterRequest struct {
	LicenseNo string `json:"license_no"`
	OwnerName string `json:"owner_name"`
	Phone     string `json:"phone"`
}

// AuthResponse carries the issued session token.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
