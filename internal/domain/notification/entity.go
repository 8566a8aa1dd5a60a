package notification

import (
	"encoding/json"
	"time"
)

// Type classifies a notification for client-side grouping and filtering.
type Type string

const (
	TypeInquiry      Type = "inquiry"
	TypeProperty     Type = "property"
	TypeBilling      Type = "billing"
	TypeSubscription Type = "subscription"
	TypeAccount      Type = "account"
	TypeSystem       Type = "system"
)

// Notification is a single in-app notification row. Deleted notifications
// stay in the table flagged is_deleted and are excluded from every listing
// and count query.
type Notification struct {
	ID        int64           `gorm:"column:id;primaryKey" json:"id"`
	UserID    int64           `gorm:"column:user_id;index:idx_notifications_user_unread" json:"user_id"`
	Type      Type            `gorm:"column:type" json:"type"`
	Title     string          `gorm:"column:title" json:"title"`
	Message   string          `gorm:"column:message" json:"message"`
	Data      json.RawMessage `gorm:"column:data" json:"data,omitempty"`
	IsRead    bool            `gorm:"column:is_read;index:idx_notifications_user_unread" json:"is_read"`
	ReadAt    *time.Time      `gorm:"column:read_at" json:"read_at,omitempty"`
	IsDeleted bool            `gorm:"column:is_deleted;index" json:"-"`
	CreatedAt time.Time       `gorm:"column:created_at" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }

// MarkAsRead marks notification as read with timestamp
func (n *Notification) MarkAsRead() {
	n.IsRead = true
	now := time.Now()
	n.ReadAt = &now
}
