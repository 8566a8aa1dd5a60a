package domain

import "time"

// RefreshToken is a single-use rotating refresh token. Only the hash is
// stored; the raw token never touches the database.
type RefreshToken struct {
	ID        int64      `gorm:"column:id;primaryKey" json:"-"`
	UserID    int64      `gorm:"column:user_id;index" json:"-"`
	TokenHash string     `gorm:"column:token_hash;uniqueIndex" json:"-"`
	ExpiresAt time.Time  `gorm:"column:expires_at" json:"-"`
	UsedAt    *time.Time `gorm:"column:used_at" json:"-"`
	RevokedAt *time.Time `gorm:"column:revoked_at" json:"-"`
	CreatedAt time.Time  `gorm:"column:created_at" json:"-"`
}

func (RefreshToken) TableName() string { return "refresh_tokens" }

// RevokedToken blacklists an access-token JTI until its natural expiry.
type RevokedToken struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	JTI       string    `gorm:"column:jti;uniqueIndex"`
	UserID    int64     `gorm:"column:user_id;index"`
	ExpiresAt time.Time `gorm:"column:expires_at;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (RevokedToken) TableName() string { return "revoked_tokens" }
