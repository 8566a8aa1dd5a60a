package billing

import (
	"context"
	"time"

	"estatelink/internal/domain"
)

const dueDays = 7

// StaffChecker reports whether a user is staff on a property.
type StaffChecker interface {
	IsStaff(ctx context.Context, propertyID, userID int64) (bool, error)
}

// LeaseStore resolves tenancies behind rent bills.
type LeaseStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Tenancy, error)
	GetActiveByTenant(ctx context.Context, propertyID, tenantID int64) (*domain.Tenancy, error)
}

// Notifier is the slice of the notification service this module uses.
type Notifier interface {
	NotifyBillingCreated(ctx context.Context, tenantID, billID int64, amount float64)
	NotifyPaymentVerified(ctx context.Context, userID, billID int64, amount float64)
}

// Gateway charges a card for a rent bill.
type Gateway interface {
	Charge(ctx context.Context, amount float64) error
}

type Service struct {
	repo    Repository
	staff   StaffChecker
	leases  LeaseStore
	notifs  Notifier
	gateway Gateway
}

func NewService(repo Repository, staff StaffChecker, leases LeaseStore, notifs Notifier, gateway Gateway) *Service {
	return &Service{repo: repo, staff: staff, leases: leases, notifs: notifs, gateway: gateway}
}

// Generate raises the next monthly rent bill for a lease. The period follows
// the latest existing bill, or starts at the lease start date for the first
// one. Managers and property staff only.
func (s *Service) Generate(ctx context.Context, property *domain.Property, actorID int64, actorRole string, tenancyID int64) (*domain.TenantBill, error) {
	ok, err := s.canManage(ctx, property, actorID, actorRole)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotAllowed
	}

	lease, err := s.leases.GetByID(ctx, tenancyID)
	if err != nil {
		return nil, err
	}
	if lease == nil || lease.PropertyID != property.ID {
		return nil, ErrTenancyNotFound
	}
	if lease.Status != domain.TenancyActive {
		return nil, ErrTenancyEnded
	}

	periodStart := lease.StartDate
	if latest, err := s.repo.LatestByTenancy(ctx, tenancyID); err != nil {
		return nil, err
	} else if latest != nil {
		periodStart = latest.PeriodEnd
	}
	periodEnd := periodStart.AddDate(0, 1, 0)

	bill := &domain.TenantBill{
		TenancyID:   lease.ID,
		PropertyID:  property.ID,
		Amount:      lease.MonthlyRent,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		DueDate:     periodStart.AddDate(0, 0, dueDays),
		Status:      domain.TenantBillPending,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.Create(ctx, bill); err != nil {
		return nil, err
	}

	s.notifs.NotifyBillingCreated(ctx, lease.TenantID, bill.ID, bill.Amount)
	return bill, nil
}

// List returns the property's bills for managers and staff, or the tenant's
// own bills.
func (s *Service) List(ctx context.Context, property *domain.Property, actorID int64, actorRole string) ([]domain.TenantBill, error) {
	ok, err := s.canManage(ctx, property, actorID, actorRole)
	if err != nil {
		return nil, err
	}
	if ok {
		return s.repo.ListByProperty(ctx, property.ID)
	}

	lease, err := s.leases.GetActiveByTenant(ctx, property.ID, actorID)
	if err != nil {
		return nil, err
	}
	if lease == nil {
		return nil, ErrNoActiveLease
	}
	return s.repo.ListByTenancy(ctx, lease.ID)
}

// Pay charges the tenant's card for a pending or overdue bill. A declined
// charge is a normal outcome, not an error; the bill stays unpaid.
func (s *Service) Pay(ctx context.Context, property *domain.Property, tenantID int64, req *PayRequest) (*PayResult, error) {
	bill, err := s.repo.GetByID(ctx, req.BillID)
	if err != nil {
		return nil, err
	}
	if bill == nil || bill.PropertyID != property.ID {
		return nil, ErrBillNotFound
	}
	if bill.Status == domain.TenantBillPaid {
		return nil, ErrBillAlreadyPaid
	}

	lease, err := s.leases.GetByID(ctx, bill.TenancyID)
	if err != nil {
		return nil, err
	}
	if lease == nil || lease.TenantID != tenantID {
		return nil, ErrNotYourBill
	}

	if err := s.gateway.Charge(ctx, bill.Amount); err != nil {
		if err == ErrPaymentDeclined {
			return &PayResult{Success: false, Message: "Payment was declined. Please try again."}, nil
		}
		return nil, err
	}

	if err := s.repo.MarkPaid(ctx, bill.ID, cardLabel(req.CardNumber), time.Now()); err != nil {
		return nil, err
	}

	s.notifs.NotifyPaymentVerified(ctx, tenantID, bill.ID, bill.Amount)
	return &PayResult{Success: true, Message: "Payment accepted."}, nil
}

// MarkOverdue flips pending bills past their due date to overdue and returns
// how many were affected. Managers and staff only.
func (s *Service) MarkOverdue(ctx context.Context, property *domain.Property, actorID int64, actorRole string) (int64, error) {
	ok, err := s.canManage(ctx, property, actorID, actorRole)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrNotAllowed
	}
	return s.repo.MarkOverdue(ctx, property.ID, time.Now())
}

func (s *Service) canManage(ctx context.Context, property *domain.Property, actorID int64, role string) (bool, error) {
	switch role {
	case string(domain.RoleAdmin):
		return true, nil
	case string(domain.RoleManager):
		return property.ManagerID == actorID, nil
	case string(domain.RoleStaff):
		return s.staff.IsStaff(ctx, property.ID, actorID)
	}
	return false, nil
}

func cardLabel(cardNumber string) string {
	if len(cardNumber) <= 4 {
		return "card ending " + cardNumber
	}
	return "card ending " + cardNumber[len(cardNumber)-4:]
}
