package subscription

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	billPeriodDays = 30
	billDueDays    = 7
)

// PropertyCounter is implemented by the property repository to count
// properties per manager.
type PropertyCounter interface {
	CountByManagerID(ctx context.Context, managerID int64) (int, error)
}

// Notifier is the slice of the notification service this module uses.
// Helpers never fail; a lost notification does not affect the upgrade.
type Notifier interface {
	NotifySubscriptionBillCreated(ctx context.Context, managerID int64, planName string, amount float64)
	NotifySubscriptionActivated(ctx context.Context, managerID int64, planName string)
	NotifyPaymentVerified(ctx context.Context, userID, billID int64, amount float64)
}

// Gateway charges a card. The production implementation is a simulation;
// tests inject deterministic outcomes.
type Gateway interface {
	Charge(ctx context.Context, amount float64, req *PaymentRequest) error
}

// SimulatedGateway sleeps to fake network latency and approves roughly 90%
// of charges.
type SimulatedGateway struct {
	Latency time.Duration
	rng     *rand.Rand
}

func NewSimulatedGateway(latency time.Duration) *SimulatedGateway {
	return &SimulatedGateway{
		Latency: latency,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (g *SimulatedGateway) Charge(ctx context.Context, _ float64, _ *PaymentRequest) error {
	if g.Latency > 0 {
		select {
		case <-time.After(g.Latency):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if g.rng.Float64() >= 0.9 {
		return ErrPaymentDeclined
	}
	return nil
}

// Service handles the subscription lifecycle for property managers.
type Service struct {
	repo       Repository
	properties PropertyCounter
	notifs     Notifier
	gateway    Gateway
}

func NewService(repo Repository, properties PropertyCounter, notifs Notifier, gateway Gateway) *Service {
	if gateway == nil {
		gateway = NewSimulatedGateway(300 * time.Millisecond)
	}
	return &Service{repo: repo, properties: properties, notifs: notifs, gateway: gateway}
}

// GetPlans returns all active plans (public, no auth required)
func (s *Service) GetPlans(ctx context.Context) ([]*Plan, error) {
	return s.repo.ListPlans(ctx)
}

// GetCurrent returns the manager's subscription, plan and latest pending
// bill. When no subscription exists it returns an inactive placeholder so
// clients always get a well-formed object.
func (s *Service) GetCurrent(ctx context.Context, userID int64) (*CurrentResponse, error) {
	sub, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if sub == nil {
		return &CurrentResponse{
			Subscription: &Subscription{UserID: userID, Status: StatusInactive},
		}, nil
	}

	plan, err := s.repo.GetPlanByID(ctx, sub.PlanID)
	if err != nil {
		return nil, err
	}
	pending, err := s.repo.GetPendingBill(ctx, sub.ID)
	if err != nil {
		return nil, err
	}

	return &CurrentResponse{Subscription: sub, Plan: plan, PendingBill: pending}, nil
}

// resolvePlan looks up the target plan by numeric id, falling back to slug.
func (s *Service) resolvePlan(ctx context.Context, req *UpgradeRequest) (*Plan, error) {
	if req.PlanID != 0 {
		plan, err := s.repo.GetPlanByID(ctx, req.PlanID)
		if err != nil {
			return nil, err
		}
		if plan != nil {
			return plan, nil
		}
	}
	if slug := strings.TrimSpace(req.PlanSlug); slug != "" {
		plan, err := s.repo.GetPlanBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if plan != nil {
			return plan, nil
		}
	}
	return nil, ErrPlanNotFound
}

// Upgrade moves a manager towards the requested plan.
//
// Free targets switch immediately. Paid targets never switch here: the
// subscription keeps its current plan (or a freshly provisioned Basic tier)
// and a pending bill for the requested plan is raised; the plan activates
// when that bill is paid. A failed bill insert degrades to a softer message
// instead of failing the upgrade.
func (s *Service) Upgrade(ctx context.Context, userID int64, req *UpgradeRequest) (*UpgradeResult, error) {
	target, err := s.resolvePlan(ctx, req)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	if existing == nil {
		if target.IsFree() {
			sub := s.newSubscription(userID, target, StatusActive, now)
			if err := s.fillUsage(ctx, sub, target); err != nil {
				return nil, err
			}
			if err := s.repo.Create(ctx, sub); err != nil {
				return nil, err
			}
			return &UpgradeResult{
				Subscription: sub,
				Plan:         target,
				Message:      "Subscription activated on plan " + target.Name,
			}, nil
		}

		// Paid plan requested with no subscription: park the manager on the
		// free Basic tier when one is configured and defer the paid plan
		// until its bill is settled.
		holdPlan := target
		status := StatusPending
		if basic, berr := s.repo.GetPlanBySlug(ctx, BasicPlanSlug); berr == nil && basic != nil && basic.IsFree() {
			holdPlan = basic
			status = StatusActive
		}

		sub := s.newSubscription(userID, holdPlan, status, now)
		if err := s.fillUsage(ctx, sub, holdPlan); err != nil {
			return nil, err
		}
		if err := s.repo.Create(ctx, sub); err != nil {
			return nil, err
		}

		bill, msg := s.raiseBill(ctx, userID, sub, target, now)
		return &UpgradeResult{Subscription: sub, Plan: holdPlan, PendingBill: bill, Message: msg}, nil
	}

	if target.IsFree() {
		existing.PlanID = target.ID
		existing.Status = StatusActive
		existing.UpdatedAt = now
		if err := s.fillUsage(ctx, existing, target); err != nil {
			return nil, err
		}
		if err := s.repo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return &UpgradeResult{
			Subscription: existing,
			Plan:         target,
			Message:      "Switched to plan " + target.Name,
		}, nil
	}

	// Paid target with an existing subscription: current plan stays until
	// the bill is paid.
	bill, msg := s.raiseBill(ctx, userID, existing, target, now)
	return &UpgradeResult{Subscription: existing, Plan: target, PendingBill: bill, Message: msg}, nil
}

func (s *Service) newSubscription(userID int64, plan *Plan, status Status, now time.Time) *Subscription {
	return &Subscription{
		UserID:    userID,
		PlanID:    plan.ID,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// fillUsage recomputes the properties_used/properties_remaining counters
// against the given plan.
func (s *Service) fillUsage(ctx context.Context, sub *Subscription, plan *Plan) error {
	used := 0
	if s.properties != nil {
		var err error
		used, err = s.properties.CountByManagerID(ctx, sub.UserID)
		if err != nil {
			return err
		}
	}
	sub.PropertiesUsed = used
	if plan.MaxProperties < 0 {
		sub.PropertiesRemaining = -1
	} else {
		remaining := plan.MaxProperties - used
		if remaining < 0 {
			remaining = 0
		}
		sub.PropertiesRemaining = remaining
	}
	return nil
}

// raiseBill creates the pending bill for a paid target plan. The bill covers
// a fixed 30-day period with a 7-day due window. Insert failures are
// swallowed into the returned message.
func (s *Service) raiseBill(ctx context.Context, userID int64, sub *Subscription, target *Plan, now time.Time) (*Bill, string) {
	bill := &Bill{
		SubscriptionID: sub.ID,
		PlanID:         target.ID,
		Reference:      uuid.NewString(),
		Amount:         target.MonthlyPrice,
		PeriodStart:    now,
		PeriodEnd:      now.AddDate(0, 0, billPeriodDays),
		DueDate:        now.AddDate(0, 0, billDueDays),
		Status:         BillPending,
		CreatedAt:      now,
	}

	if err := s.repo.CreateBill(ctx, bill); err != nil {
		return nil, "Upgrade to plan " + target.Name + " recorded; the bill could not be issued yet and will be retried"
	}

	if s.notifs != nil {
		s.notifs.NotifySubscriptionBillCreated(ctx, userID, target.Name, target.MonthlyPrice)
	}
	return bill, "A pending bill was created for plan " + target.Name + "; the plan activates once it is paid"
}

// requiredPaymentFields maps field names to extractors, checked in a stable
// order so the first missing field is always the same one.
var requiredPaymentFields = []struct {
	name string
	get  func(*PaymentRequest) string
}{
	{"card_number", func(r *PaymentRequest) string { return r.CardNumber }},
	{"card_holder", func(r *PaymentRequest) string { return r.CardHolder }},
	{"expiry_month", func(r *PaymentRequest) string { return r.ExpiryMonth }},
	{"expiry_year", func(r *PaymentRequest) string { return r.ExpiryYear }},
	{"cvv", func(r *PaymentRequest) string { return r.CVV }},
}

// ProcessPayment settles a pending bill. A declined charge is reported in
// the result payload, not as an error; validation problems and unknown bills
// are errors.
func (s *Service) ProcessPayment(ctx context.Context, userID int64, req *PaymentRequest) (*PaymentResult, error) {
	for _, f := range requiredPaymentFields {
		if strings.TrimSpace(f.get(req)) == "" {
			return nil, &MissingFieldError{Field: f.name}
		}
	}

	sub, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrBillNotFound
	}

	bill, err := s.repo.GetBillByID(ctx, req.BillID)
	if err != nil {
		return nil, err
	}
	if bill == nil || bill.SubscriptionID != sub.ID {
		return nil, ErrBillNotFound
	}
	if bill.Status == BillPaid {
		return nil, ErrBillAlreadyPaid
	}

	if err := s.gateway.Charge(ctx, bill.Amount, req); err != nil {
		return &PaymentResult{
			Success: false,
			Message: "Payment was declined. No charges were made; please try again.",
			Bill:    bill,
		}, nil
	}

	now := time.Now()
	method := cardLabel(req.CardNumber)
	if err := s.repo.MarkBillPaid(ctx, bill.ID, method, now); err != nil {
		return nil, err
	}
	bill.Status = BillPaid
	bill.PaymentMethod = method
	bill.PaidAt = &now

	// Paying the bill activates the subscription on the billed plan.
	plan, err := s.repo.GetPlanByID(ctx, bill.PlanID)
	if err != nil {
		return nil, err
	}
	sub.PlanID = bill.PlanID
	sub.Status = StatusActive
	sub.UpdatedAt = now
	if plan != nil {
		if err := s.fillUsage(ctx, sub, plan); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Update(ctx, sub); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		s.notifs.NotifyPaymentVerified(ctx, userID, bill.ID, bill.Amount)
		if plan != nil {
			s.notifs.NotifySubscriptionActivated(ctx, userID, plan.Name)
		}
	}

	return &PaymentResult{
		Success:      true,
		Message:      "Payment processed successfully",
		Bill:         bill,
		Subscription: sub,
	}, nil
}

// ListBills returns the billing history for the manager's subscription.
func (s *Service) ListBills(ctx context.Context, userID int64) ([]*Bill, error) {
	sub, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return []*Bill{}, nil
	}
	return s.repo.ListBills(ctx, sub.ID)
}

// PaymentMethods returns the simulated saved methods. Nothing is stored
// against a real gateway.
func (s *Service) PaymentMethods(ctx context.Context, userID int64) ([]*PaymentMethod, error) {
	bills, err := s.ListBills(ctx, userID)
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	methods := make([]*PaymentMethod, 0, 2)
	for _, b := range bills {
		if b.PaymentMethod == "" || seen[b.PaymentMethod] {
			continue
		}
		seen[b.PaymentMethod] = true
		methods = append(methods, &PaymentMethod{
			ID:    uuid.NewString(),
			Label: b.PaymentMethod,
			Brand: "card",
			Last4: last4(b.PaymentMethod),
		})
	}
	return methods, nil
}

// ---- Limit checkers (called by other services) ----

// CanAddProperty checks the manager's plan allows another property.
func (s *Service) CanAddProperty(ctx context.Context, managerID int64) error {
	sub, plan, err := s.activePlan(ctx, managerID)
	if err != nil {
		return err
	}
	if sub == nil || plan == nil {
		return ErrNoActivePlan
	}
	if plan.MaxProperties < 0 {
		return nil // unlimited
	}
	used, err := s.properties.CountByManagerID(ctx, managerID)
	if err != nil {
		return err
	}
	if used >= plan.MaxProperties {
		return ErrPropertyLimit
	}
	return nil
}

// HasFeature checks a boolean feature flag on the manager's active plan.
func (s *Service) HasFeature(ctx context.Context, managerID int64, feature string) (bool, error) {
	_, plan, err := s.activePlan(ctx, managerID)
	if err != nil {
		return false, err
	}
	if plan == nil {
		return false, nil
	}
	switch feature {
	case "analytics":
		return plan.Analytics, nil
	case "api_access":
		return plan.APIAccess, nil
	case "staff_management":
		return plan.StaffManagement, nil
	}
	return false, nil
}

func (s *Service) activePlan(ctx context.Context, userID int64) (*Subscription, *Plan, error) {
	sub, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if sub == nil || sub.Status != StatusActive {
		return nil, nil, nil
	}
	plan, err := s.repo.GetPlanByID(ctx, sub.PlanID)
	if err != nil {
		return nil, nil, err
	}
	return sub, plan, nil
}

func cardLabel(cardNumber string) string {
	return "card ending " + last4(cardNumber)
}

func last4(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= 4 {
		return s
	}
	return s[len(s)-4:]
}
