package auth

import "time"

const (
	PurposeEmailVerify   = "email_verify"
	PurposePasswordReset = "password_reset"
)

// VerificationCode stores a hashed one-time code for email verification or
// password reset.
type VerificationCode struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	UserID    int64     `gorm:"column:user_id;index"`
	Purpose   string    `gorm:"column:purpose"`
	CodeHash  string    `gorm:"column:code_hash"`
	ExpiresAt time.Time `gorm:"column:expires_at"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (VerificationCode) TableName() string { return "verification_codes" }
