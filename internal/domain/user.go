package domain

import "time"

type UserRole string

const (
	RoleTenant  UserRole = "tenant"
	RoleManager UserRole = "manager"
	RoleAdmin   UserRole = "admin"
	RoleStaff   UserRole = "staff"
)

// ValidRole reports whether r is one of the known roles. Role strings are
// validated once at the boundary; everything past the handlers trusts them.
func ValidRole(r UserRole) bool {
	switch r {
	case RoleTenant, RoleManager, RoleAdmin, RoleStaff:
		return true
	}
	return false
}

type UserStatus string

const (
	UserActive    UserStatus = "active"
	UserSuspended UserStatus = "suspended"
)

type User struct {
	ID                  int64      `gorm:"column:id;primaryKey" json:"id"`
	Email               string     `gorm:"column:email;uniqueIndex" json:"email"`
	PasswordHash        string     `gorm:"column:password_hash" json:"-"`
	Name                string     `gorm:"column:name" json:"name"`
	Phone               string     `gorm:"column:phone" json:"phone,omitempty"`
	Role                UserRole   `gorm:"column:role" json:"role"`
	Status              UserStatus `gorm:"column:status" json:"status"`
	EmailVerified       bool       `gorm:"column:email_verified" json:"email_verified"`
	FailedLoginAttempts int        `gorm:"column:failed_login_attempts" json:"-"`
	LockedUntil         *time.Time `gorm:"column:locked_until" json:"-"`
	CreatedAt           time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt           time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string { return "users" }

// IsLocked reports whether the account is inside a login lockout window.
func (u *User) IsLocked() bool {
	return u.LockedUntil != nil && time.Now().Before(*u.LockedUntil)
}
