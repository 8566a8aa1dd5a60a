package admin

import (
	"context"

	"estatelink/internal/domain"
	"estatelink/internal/domain/subscription"
)

type PropertyStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
	Update(ctx context.Context, p *domain.Property) error
	ListPending(ctx context.Context, offset, limit int) ([]domain.Property, int64, error)
	SubdomainTaken(ctx context.Context, subdomain string) (bool, error)
}

type SubscriptionStore interface {
	GetByID(ctx context.Context, id int64) (*subscription.Subscription, error)
	Update(ctx context.Context, sub *subscription.Subscription) error
	ListPending(ctx context.Context, offset, limit int) ([]subscription.Subscription, int64, error)
	LatestPaidBill(ctx context.Context, subscriptionID int64) (*subscription.Bill, error)
	GetPlan(ctx context.Context, id int64) (*subscription.Plan, error)
}

type NotificationSender interface {
	NotifyPropertyApproved(ctx context.Context, managerID, propertyID int64, subdomain string)
	NotifyPropertyRejected(ctx context.Context, managerID, propertyID int64, reason string)
	NotifySubscriptionActivated(ctx context.Context, managerID int64, planName string)
}
