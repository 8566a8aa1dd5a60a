package admin

import (
	"estatelink/internal/domain"
	"estatelink/internal/domain/subscription"
)

type ApproveRequest struct {
	// Optional custom portal subdomain; defaults to a slug built from the
	// property title and id.
	Subdomain string `json:"subdomain"`
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

type PendingPropertiesResponse struct {
	Properties []domain.Property `json:"properties"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}

type PendingSubscriptionsResponse struct {
	Subscriptions []subscription.Subscription `json:"subscriptions"`
	Total         int64                       `json:"total"`
	Page          int                         `json:"page"`
	Limit         int                         `json:"limit"`
}

// Statistics is the platform dashboard payload.
type Statistics struct {
	TotalUsers          int64   `json:"total_users"`
	Managers            int64   `json:"managers"`
	Tenants             int64   `json:"tenants"`
	TotalProperties     int64   `json:"total_properties"`
	PendingProperties   int64   `json:"pending_properties"`
	ActiveSubscriptions int64   `json:"active_subscriptions"`
	OpenMaintenance     int64   `json:"open_maintenance"`
	SubscriptionRevenue float64 `json:"subscription_revenue"`
}
