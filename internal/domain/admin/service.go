package admin

import (
	"context"
	"strings"
	"time"

	"estatelink/internal/domain"
	"estatelink/internal/domain/subscription"
	"estatelink/internal/pkg/slug"
)

type Service struct {
	properties PropertyStore
	subs       SubscriptionStore
	stats      StatsRepository
	notifs     NotificationSender
}

func NewService(properties PropertyStore, subs SubscriptionStore, stats StatsRepository, notifs NotificationSender) *Service {
	return &Service{
		properties: properties,
		subs:       subs,
		stats:      stats,
		notifs:     notifs,
	}
}

// ListPendingProperties returns the approval queue, oldest first.
func (s *Service) ListPendingProperties(ctx context.Context, page, limit int) (*PendingPropertiesResponse, error) {
	page, limit = normalizePage(page, limit)

	props, total, err := s.properties.ListPending(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	return &PendingPropertiesResponse{Properties: props, Total: total, Page: page, Limit: limit}, nil
}

// ApproveProperty moves a pending property to approved and assigns its portal
// subdomain. A custom subdomain may be supplied; otherwise one is generated
// from the title. Approving a property in any other state is an error and the
// property is left untouched.
func (s *Service) ApproveProperty(ctx context.Context, propertyID int64, customSubdomain string) (*domain.Property, error) {
	p, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPropertyNotFound
	}
	if p.Status != domain.PropertyPendingApproval {
		return nil, ErrNotPendingApproval
	}

	subdomain := strings.TrimSpace(strings.ToLower(customSubdomain))
	if subdomain == "" {
		subdomain = slug.ForProperty(p.Title, p.ID)
	} else if !slug.Valid(subdomain) {
		return nil, ErrInvalidSubdomain
	}

	taken, err := s.properties.SubdomainTaken(ctx, subdomain)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSubdomainTaken
	}

	p.Status = domain.PropertyApproved
	p.PortalSubdomain = subdomain
	p.RejectionReason = ""
	p.UpdatedAt = time.Now()

	if err := s.properties.Update(ctx, p); err != nil {
		return nil, err
	}

	s.notifs.NotifyPropertyApproved(ctx, p.ManagerID, p.ID, subdomain)
	return p, nil
}

// RejectProperty moves a pending property to rejected. A reason is mandatory
// so the manager knows what to fix before resubmitting.
func (s *Service) RejectProperty(ctx context.Context, propertyID int64, reason string) (*domain.Property, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrReasonRequired
	}

	p, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPropertyNotFound
	}
	if p.Status != domain.PropertyPendingApproval {
		return nil, ErrNotPendingApproval
	}

	p.Status = domain.PropertyRejected
	p.RejectionReason = reason
	p.UpdatedAt = time.Now()

	if err := s.properties.Update(ctx, p); err != nil {
		return nil, err
	}

	s.notifs.NotifyPropertyRejected(ctx, p.ManagerID, p.ID, reason)
	return p, nil
}

// ListPendingSubscriptions returns subscriptions awaiting activation.
func (s *Service) ListPendingSubscriptions(ctx context.Context, page, limit int) (*PendingSubscriptionsResponse, error) {
	page, limit = normalizePage(page, limit)

	subs, total, err := s.subs.ListPending(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	return &PendingSubscriptionsResponse{Subscriptions: subs, Total: total, Page: page, Limit: limit}, nil
}

// ActivateSubscription is the manual backstop for pending subscriptions whose
// bill was settled outside the payment endpoint. It requires a paid bill and
// moves the subscription onto the billed plan.
func (s *Service) ActivateSubscription(ctx context.Context, subscriptionID int64) error {
	sub, err := s.subs.GetByID(ctx, subscriptionID)
	if err != nil {
		return err
	}
	if sub == nil {
		return ErrSubscriptionNotFound
	}
	if sub.Status != subscription.StatusPending {
		return ErrSubscriptionNotPending
	}

	bill, err := s.subs.LatestPaidBill(ctx, subscriptionID)
	if err != nil {
		return err
	}
	if bill == nil {
		return ErrSubscriptionBillUnpaid
	}

	sub.PlanID = bill.PlanID
	sub.Status = subscription.StatusActive
	sub.UpdatedAt = time.Now()
	if err := s.subs.Update(ctx, sub); err != nil {
		return err
	}

	planName := ""
	if plan, err := s.subs.GetPlan(ctx, bill.PlanID); err == nil && plan != nil {
		planName = plan.Name
	}
	s.notifs.NotifySubscriptionActivated(ctx, sub.UserID, planName)
	return nil
}

// Statistics returns the platform dashboard counters.
func (s *Service) Statistics(ctx context.Context) (*Statistics, error) {
	return s.stats.Collect(ctx)
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
