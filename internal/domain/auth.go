package domain

import "time"

// SubjectType differentiates the three demo roles carried by session tokens.
type SubjectType string

const (
	SubjectTypeAdmin    SubjectType = "ADMIN"
	SubjectTypeStaff    SubjectType = "STAFF"
	SubjectTypeMerchant SubjectType = "MERCHANT"
)

// Token represents issued session token metadata.
type Token struct {
	SubjectID string
	Subject   SubjectType
	ExpiresAt time.Time
	IssuedAt  time.Time
}
