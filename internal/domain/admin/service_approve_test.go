package admin

import (
	"context"
	"testing"

	"estatelink/internal/domain"
	"estatelink/internal/domain/subscription"
)

type mockPropertyStore struct {
	property  *domain.Property
	taken     bool
	getErr    error
	updateErr error
	updated   bool
}

func (m *mockPropertyStore) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.property, nil
}

func (m *mockPropertyStore) Update(ctx context.Context, p *domain.Property) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.property = p
	m.updated = true
	return nil
}

func (m *mockPropertyStore) ListPending(ctx context.Context, offset, limit int) ([]domain.Property, int64, error) {
	return nil, 0, nil
}

func (m *mockPropertyStore) SubdomainTaken(ctx context.Context, subdomain string) (bool, error) {
	return m.taken, nil
}

type mockSubStore struct {
	sub     *subscription.Subscription
	bill    *subscription.Bill
	plan    *subscription.Plan
	updated bool
}

func (m *mockSubStore) GetByID(ctx context.Context, id int64) (*subscription.Subscription, error) {
	return m.sub, nil
}

func (m *mockSubStore) Update(ctx context.Context, sub *subscription.Subscription) error {
	m.sub = sub
	m.updated = true
	return nil
}

func (m *mockSubStore) ListPending(ctx context.Context, offset, limit int) ([]subscription.Subscription, int64, error) {
	return nil, 0, nil
}

func (m *mockSubStore) LatestPaidBill(ctx context.Context, subscriptionID int64) (*subscription.Bill, error) {
	return m.bill, nil
}

func (m *mockSubStore) GetPlan(ctx context.Context, id int64) (*subscription.Plan, error) {
	return m.plan, nil
}

type mockNotifier struct {
	approved  bool
	rejected  bool
	activated bool
	reason    string
	subdomain string
}

func (m *mockNotifier) NotifyPropertyApproved(ctx context.Context, managerID, propertyID int64, subdomain string) {
	m.approved = true
	m.subdomain = subdomain
}

func (m *mockNotifier) NotifyPropertyRejected(ctx context.Context, managerID, propertyID int64, reason string) {
	m.rejected = true
	m.reason = reason
}

func (m *mockNotifier) NotifySubscriptionActivated(ctx context.Context, managerID int64, planName string) {
	m.activated = true
}

func TestApproveProperty_Success(t *testing.T) {
	ctx := context.Background()

	store := &mockPropertyStore{property: &domain.Property{
		ID:        7,
		ManagerID: 3,
		Title:     "Sunny Loft Apartments",
		Status:    domain.PropertyPendingApproval,
	}}
	notifs := &mockNotifier{}

	svc := NewService(store, nil, nil, notifs)

	p, err := svc.ApproveProperty(ctx, 7, "")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if p.Status != domain.PropertyApproved {
		t.Fatalf("expected status approved, got %v", p.Status)
	}
	if p.PortalSubdomain != "sunny-loft-apartments-7" {
		t.Fatalf("expected generated subdomain, got %q", p.PortalSubdomain)
	}
	if !notifs.approved || notifs.subdomain != p.PortalSubdomain {
		t.Fatalf("expected approval notification with subdomain, got %+v", notifs)
	}
}

func TestApproveProperty_CustomSubdomain(t *testing.T) {
	ctx := context.Background()

	store := &mockPropertyStore{property: &domain.Property{
		ID:     7,
		Title:  "Sunny Loft",
		Status: domain.PropertyPendingApproval,
	}}

	svc := NewService(store, nil, nil, &mockNotifier{})

	p, err := svc.ApproveProperty(ctx, 7, "My-Lofts")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if p.PortalSubdomain != "my-lofts" {
		t.Fatalf("expected lowercased custom subdomain, got %q", p.PortalSubdomain)
	}
}

func TestApproveProperty_NotPending(t *testing.T) {
	ctx := context.Background()

	store := &mockPropertyStore{property: &domain.Property{
		ID:     7,
		Status: domain.PropertyApproved,
	}}

	svc := NewService(store, nil, nil, &mockNotifier{})

	if _, err := svc.ApproveProperty(ctx, 7, ""); err != ErrNotPendingApproval {
		t.Fatalf("expected ErrNotPendingApproval, got %v", err)
	}
	if store.updated {
		t.Fatalf("expected property untouched")
	}
}

func TestApproveProperty_SubdomainTaken(t *testing.T) {
	ctx := context.Background()

	store := &mockPropertyStore{
		property: &domain.Property{ID: 7, Title: "Loft", Status: domain.PropertyPendingApproval},
		taken:    true,
	}

	svc := NewService(store, nil, nil, &mockNotifier{})

	if _, err := svc.ApproveProperty(ctx, 7, ""); err != ErrSubdomainTaken {
		t.Fatalf("expected ErrSubdomainTaken, got %v", err)
	}
}

func TestRejectProperty_RequiresReason(t *testing.T) {
	ctx := context.Background()

	store := &mockPropertyStore{property: &domain.Property{
		ID:     7,
		Status: domain.PropertyPendingApproval,
	}}

	svc := NewService(store, nil, nil, &mockNotifier{})

	if _, err := svc.RejectProperty(ctx, 7, "   "); err != ErrReasonRequired {
		t.Fatalf("expected ErrReasonRequired, got %v", err)
	}
	if store.updated {
		t.Fatalf("expected property untouched")
	}
}

func TestRejectProperty_Success(t *testing.T) {
	ctx := context.Background()

	store := &mockPropertyStore{property: &domain.Property{
		ID:        7,
		ManagerID: 3,
		Status:    domain.PropertyPendingApproval,
	}}
	notifs := &mockNotifier{}

	svc := NewService(store, nil, nil, notifs)

	p, err := svc.RejectProperty(ctx, 7, "photos missing")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if p.Status != domain.PropertyRejected {
		t.Fatalf("expected status rejected, got %v", p.Status)
	}
	if p.RejectionReason != "photos missing" {
		t.Fatalf("expected reason recorded, got %q", p.RejectionReason)
	}
	if !notifs.rejected || notifs.reason != "photos missing" {
		t.Fatalf("expected rejection notification with reason")
	}
}

func TestActivateSubscription_RequiresPaidBill(t *testing.T) {
	ctx := context.Background()

	subs := &mockSubStore{sub: &subscription.Subscription{
		ID:     1,
		UserID: 3,
		Status: subscription.StatusPending,
	}}

	svc := NewService(nil, subs, nil, &mockNotifier{})

	if err := svc.ActivateSubscription(ctx, 1); err != ErrSubscriptionBillUnpaid {
		t.Fatalf("expected ErrSubscriptionBillUnpaid, got %v", err)
	}
	if subs.updated {
		t.Fatalf("expected subscription untouched")
	}
}

func TestActivateSubscription_Success(t *testing.T) {
	ctx := context.Background()

	subs := &mockSubStore{
		sub:  &subscription.Subscription{ID: 1, UserID: 3, PlanID: 1, Status: subscription.StatusPending},
		bill: &subscription.Bill{ID: 9, SubscriptionID: 1, PlanID: 2, Status: subscription.BillPaid},
		plan: &subscription.Plan{ID: 2, Name: "Professional"},
	}
	notifs := &mockNotifier{}

	svc := NewService(nil, subs, nil, notifs)

	if err := svc.ActivateSubscription(ctx, 1); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if subs.sub.Status != subscription.StatusActive {
		t.Fatalf("expected status active, got %v", subs.sub.Status)
	}
	if subs.sub.PlanID != 2 {
		t.Fatalf("expected subscription moved to billed plan, got %d", subs.sub.PlanID)
	}
	if !notifs.activated {
		t.Fatalf("expected activation notification")
	}
}
