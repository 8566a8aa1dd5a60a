package subscription

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

type stubGateway struct {
	err error
}

func (g *stubGateway) Charge(ctx context.Context, amount float64, req *PaymentRequest) error {
	return g.err
}

func setupTestService(t *testing.T, gateway Gateway) (*Service, Repository) {
	t.Helper()
	dsn := fmt.Sprintf("file:subscription_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&Plan{}, &Subscription{}, &Bill{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	repo := NewRepository(db)
	return NewService(repo, nil, nil, gateway), repo
}

func seedPlan(t *testing.T, repo Repository, plan *Plan) *Plan {
	t.Helper()
	if err := repo.(*repository).db.Create(plan).Error; err != nil {
		t.Fatalf("failed to seed plan: %v", err)
	}
	return plan
}

func TestUpgradeFreePlanActivatesImmediately(t *testing.T) {
	svc, repo := setupTestService(t, &stubGateway{})
	ctx := context.Background()

	basic := seedPlan(t, repo, &Plan{Name: "Basic", Slug: "basic", MonthlyPrice: 0, MaxProperties: 1, IsActive: true})

	result, err := svc.Upgrade(ctx, 10, &UpgradeRequest{PlanID: basic.ID})
	if err != nil {
		t.Fatalf("Upgrade returned error: %v", err)
	}
	if result.Subscription.Status != StatusActive {
		t.Fatalf("expected active subscription, got %s", result.Subscription.Status)
	}
	if result.PendingBill != nil {
		t.Fatalf("expected no bill for a free plan, got %+v", result.PendingBill)
	}

	bills, err := svc.ListBills(ctx, 10)
	if err != nil {
		t.Fatalf("ListBills returned error: %v", err)
	}
	if len(bills) != 0 {
		t.Fatalf("expected no bills, got %d", len(bills))
	}
}

func TestUpgradePaidPlanParksOnBasicTier(t *testing.T) {
	svc, repo := setupTestService(t, &stubGateway{})
	ctx := context.Background()

	basic := seedPlan(t, repo, &Plan{Name: "Basic", Slug: "basic", MonthlyPrice: 0, MaxProperties: 1, IsActive: true})
	pro := seedPlan(t, repo, &Plan{Name: "Professional", Slug: "professional", MonthlyPrice: 49, MaxProperties: 10, IsActive: true})

	result, err := svc.Upgrade(ctx, 10, &UpgradeRequest{PlanSlug: "professional"})
	if err != nil {
		t.Fatalf("Upgrade returned error: %v", err)
	}

	if result.Subscription.PlanID != basic.ID {
		t.Fatalf("expected subscription parked on basic plan %d, got %d", basic.ID, result.Subscription.PlanID)
	}
	if result.Subscription.Status != StatusActive {
		t.Fatalf("expected basic tier active, got %s", result.Subscription.Status)
	}
	if result.PendingBill == nil {
		t.Fatalf("expected a pending bill for the paid plan")
	}
	if result.PendingBill.Amount != pro.MonthlyPrice {
		t.Fatalf("expected bill amount %.2f, got %.2f", pro.MonthlyPrice, result.PendingBill.Amount)
	}
	if result.PendingBill.PlanID != pro.ID {
		t.Fatalf("expected bill raised for plan %d, got %d", pro.ID, result.PendingBill.PlanID)
	}
	if result.PendingBill.Status != BillPending {
		t.Fatalf("expected pending bill, got %s", result.PendingBill.Status)
	}
}

func TestUpgradePaidPlanWithoutBasicTierStaysPending(t *testing.T) {
	svc, repo := setupTestService(t, &stubGateway{})
	ctx := context.Background()

	pro := seedPlan(t, repo, &Plan{Name: "Professional", Slug: "professional", MonthlyPrice: 49, MaxProperties: 10, IsActive: true})

	result, err := svc.Upgrade(ctx, 10, &UpgradeRequest{PlanID: pro.ID})
	if err != nil {
		t.Fatalf("Upgrade returned error: %v", err)
	}
	if result.Subscription.Status != StatusPending {
		t.Fatalf("expected pending subscription, got %s", result.Subscription.Status)
	}
	if result.Subscription.PlanID != pro.ID {
		t.Fatalf("expected subscription on requested plan, got %d", result.Subscription.PlanID)
	}
	if result.PendingBill == nil {
		t.Fatalf("expected a pending bill")
	}
}

func TestUpgradePaidPlanKeepsCurrentPlanUntilPaid(t *testing.T) {
	svc, repo := setupTestService(t, &stubGateway{})
	ctx := context.Background()

	basic := seedPlan(t, repo, &Plan{Name: "Basic", Slug: "basic", MonthlyPrice: 0, MaxProperties: 1, IsActive: true})
	pro := seedPlan(t, repo, &Plan{Name: "Professional", Slug: "professional", MonthlyPrice: 49, MaxProperties: 10, IsActive: true})

	if _, err := svc.Upgrade(ctx, 10, &UpgradeRequest{PlanID: basic.ID}); err != nil {
		t.Fatalf("initial upgrade returned error: %v", err)
	}

	result, err := svc.Upgrade(ctx, 10, &UpgradeRequest{PlanID: pro.ID})
	if err != nil {
		t.Fatalf("Upgrade returned error: %v", err)
	}
	if result.Subscription.PlanID != basic.ID {
		t.Fatalf("expected plan unchanged until payment, got %d", result.Subscription.PlanID)
	}
	if result.PendingBill == nil || result.PendingBill.PlanID != pro.ID {
		t.Fatalf("expected pending bill for the requested plan")
	}
}

func TestUpgradeUnknownPlan(t *testing.T) {
	svc, _ := setupTestService(t, &stubGateway{})

	_, err := svc.Upgrade(context.Background(), 10, &UpgradeRequest{PlanSlug: "no-such-plan"})
	if !errors.Is(err, ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound, got %v", err)
	}
}

func TestProcessPaymentActivatesSubscription(t *testing.T) {
	svc, repo := setupTestService(t, &stubGateway{}) // always approves
	ctx := context.Background()

	seedPlan(t, repo, &Plan{Name: "Basic", Slug: "basic", MonthlyPrice: 0, MaxProperties: 1, IsActive: true})
	pro := seedPlan(t, repo, &Plan{Name: "Professional", Slug: "professional", MonthlyPrice: 49, MaxProperties: 10, IsActive: true})

	up, err := svc.Upgrade(ctx, 10, &UpgradeRequest{PlanID: pro.ID})
	if err != nil {
		t.Fatalf("Upgrade returned error: %v", err)
	}

	result, err := svc.ProcessPayment(ctx, 10, &PaymentRequest{
		BillID:      up.PendingBill.ID,
		CardNumber:  "4242424242424242",
		CardHolder:  "Pat Manager",
		ExpiryMonth: "12",
		ExpiryYear:  "2030",
		CVV:         "123",
	})
	if err != nil {
		t.Fatalf("ProcessPayment returned error: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected successful payment, got %q", result.Message)
	}
	if result.Bill.Status != BillPaid {
		t.Fatalf("expected bill paid, got %s", result.Bill.Status)
	}
	if result.Subscription.Status != StatusActive {
		t.Fatalf("expected active subscription, got %s", result.Subscription.Status)
	}
	if result.Subscription.PlanID != pro.ID {
		t.Fatalf("expected subscription moved to billed plan %d, got %d", pro.ID, result.Subscription.PlanID)
	}
}

func TestProcessPaymentDeclinedLeavesStateUntouched(t *testing.T) {
	svc, repo := setupTestService(t, &stubGateway{err: ErrPaymentDeclined})
	ctx := context.Background()

	basic := seedPlan(t, repo, &Plan{Name: "Basic", Slug: "basic", MonthlyPrice: 0, MaxProperties: 1, IsActive: true})
	pro := seedPlan(t, repo, &Plan{Name: "Professional", Slug: "professional", MonthlyPrice: 49, MaxProperties: 10, IsActive: true})

	up, err := svc.Upgrade(ctx, 10, &UpgradeRequest{PlanID: pro.ID})
	if err != nil {
		t.Fatalf("Upgrade returned error: %v", err)
	}

	result, err := svc.ProcessPayment(ctx, 10, &PaymentRequest{
		BillID:      up.PendingBill.ID,
		CardNumber:  "4000000000000002",
		CardHolder:  "Pat Manager",
		ExpiryMonth: "12",
		ExpiryYear:  "2030",
		CVV:         "123",
	})
	if err != nil {
		t.Fatalf("declined charge must not be an error, got %v", err)
	}
	if result.Success {
		t.Fatalf("expected declined payment")
	}

	current, err := svc.GetCurrent(ctx, 10)
	if err != nil {
		t.Fatalf("GetCurrent returned error: %v", err)
	}
	if current.Subscription.PlanID != basic.ID {
		t.Fatalf("expected subscription still on basic, got plan %d", current.Subscription.PlanID)
	}
	if current.PendingBill == nil || current.PendingBill.Status != BillPending {
		t.Fatalf("expected bill still pending")
	}
}

func TestProcessPaymentMissingFieldRejectedBeforeCharge(t *testing.T) {
	svc, repo := setupTestService(t, &stubGateway{})
	ctx := context.Background()

	seedPlan(t, repo, &Plan{Name: "Basic", Slug: "basic", MonthlyPrice: 0, MaxProperties: 1, IsActive: true})
	pro := seedPlan(t, repo, &Plan{Name: "Professional", Slug: "professional", MonthlyPrice: 49, MaxProperties: 10, IsActive: true})

	up, err := svc.Upgrade(ctx, 10, &UpgradeRequest{PlanID: pro.ID})
	if err != nil {
		t.Fatalf("Upgrade returned error: %v", err)
	}

	_, err = svc.ProcessPayment(ctx, 10, &PaymentRequest{
		BillID:      up.PendingBill.ID,
		CardNumber:  "4242424242424242",
		ExpiryMonth: "12",
		ExpiryYear:  "2030",
		CVV:         "123",
	})

	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
	if missing.Field != "card_holder" {
		t.Fatalf("expected card_holder reported missing, got %s", missing.Field)
	}

	current, err := svc.GetCurrent(ctx, 10)
	if err != nil {
		t.Fatalf("GetCurrent returned error: %v", err)
	}
	if current.PendingBill == nil || current.PendingBill.Status != BillPending {
		t.Fatalf("expected bill untouched after validation failure")
	}
}

func TestProcessPaymentAlreadyPaid(t *testing.T) {
	svc, repo := setupTestService(t, &stubGateway{})
	ctx := context.Background()

	seedPlan(t, repo, &Plan{Name: "Basic", Slug: "basic", MonthlyPrice: 0, MaxProperties: 1, IsActive: true})
	pro := seedPlan(t, repo, &Plan{Name: "Professional", Slug: "professional", MonthlyPrice: 49, MaxProperties: 10, IsActive: true})

	up, err := svc.Upgrade(ctx, 10, &UpgradeRequest{PlanID: pro.ID})
	if err != nil {
		t.Fatalf("Upgrade returned error: %v", err)
	}

	req := &PaymentRequest{
		BillID:      up.PendingBill.ID,
		CardNumber:  "4242424242424242",
		CardHolder:  "Pat Manager",
		ExpiryMonth: "12",
		ExpiryYear:  "2030",
		CVV:         "123",
	}
	if _, err := svc.ProcessPayment(ctx, 10, req); err != nil {
		t.Fatalf("first payment returned error: %v", err)
	}

	if _, err := svc.ProcessPayment(ctx, 10, req); !errors.Is(err, ErrBillAlreadyPaid) {
		t.Fatalf("expected ErrBillAlreadyPaid, got %v", err)
	}
}

func TestGetCurrentReturnsPlaceholderWithoutSubscription(t *testing.T) {
	svc, _ := setupTestService(t, &stubGateway{})

	current, err := svc.GetCurrent(context.Background(), 99)
	if err != nil {
		t.Fatalf("GetCurrent returned error: %v", err)
	}
	if current.Subscription == nil || current.Subscription.Status != StatusInactive {
		t.Fatalf("expected inactive placeholder, got %+v", current.Subscription)
	}
	if current.Plan != nil || current.PendingBill != nil {
		t.Fatalf("expected no plan or bill on placeholder")
	}
}

func TestSimulatedGatewayRespectsContext(t *testing.T) {
	g := NewSimulatedGateway(time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := g.Charge(ctx, 49, &PaymentRequest{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
}
