package maintenance

import (
	"context"
	"time"

	"estatelink/internal/domain"
)

// Valid status transitions. Requests move forward only; resolved and
// cancelled are terminal.
var transitions = map[domain.MaintenanceStatus][]domain.MaintenanceStatus{
	domain.MaintenanceOpen:       {domain.MaintenanceInProgress, domain.MaintenanceCancelled},
	domain.MaintenanceInProgress: {domain.MaintenanceResolved, domain.MaintenanceCancelled},
}

// StaffChecker reports whether a user is staff on a property.
type StaffChecker interface {
	IsStaff(ctx context.Context, propertyID, userID int64) (bool, error)
}

// LeaseStore resolves tenancies for request filing and notifications.
type LeaseStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Tenancy, error)
	GetActiveByTenant(ctx context.Context, propertyID, tenantID int64) (*domain.Tenancy, error)
}

// Notifier is the slice of the notification service this module uses.
type Notifier interface {
	NotifyMaintenanceUpdate(ctx context.Context, userID, requestID int64, status string)
}

type Service struct {
	repo   Repository
	staff  StaffChecker
	leases LeaseStore
	notifs Notifier
}

func NewService(repo Repository, staff StaffChecker, leases LeaseStore, notifs Notifier) *Service {
	return &Service{repo: repo, staff: staff, leases: leases, notifs: notifs}
}

// File opens a maintenance request. Only tenants with an active lease on the
// portal property can file one.
func (s *Service) File(ctx context.Context, property *domain.Property, tenantID int64, req *CreateRequest) (*domain.MaintenanceRequest, error) {
	lease, err := s.leases.GetActiveByTenant(ctx, property.ID, tenantID)
	if err != nil {
		return nil, err
	}
	if lease == nil {
		return nil, ErrNoActiveLease
	}

	priority := domain.PriorityNormal
	if req.Priority != "" {
		priority = domain.MaintenancePriority(req.Priority)
		switch priority {
		case domain.PriorityLow, domain.PriorityNormal, domain.PriorityUrgent:
		default:
			return nil, ErrInvalidPriority
		}
	}

	now := time.Now()
	mr := &domain.MaintenanceRequest{
		PropertyID:  property.ID,
		TenancyID:   lease.ID,
		Category:    req.Category,
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		Status:      domain.MaintenanceOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, mr); err != nil {
		return nil, err
	}
	return mr, nil
}

// UpdateStatus moves a request through its lifecycle. Managers and property
// staff only. The tenant behind the lease is notified on every transition.
func (s *Service) UpdateStatus(ctx context.Context, property *domain.Property, actorID int64, actorRole string, requestID int64, status string) (*domain.MaintenanceRequest, error) {
	ok, err := s.canManage(ctx, property, actorID, actorRole)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotAllowed
	}

	mr, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if mr == nil || mr.PropertyID != property.ID {
		return nil, ErrRequestNotFound
	}

	next := domain.MaintenanceStatus(status)
	if !allowed(mr.Status, next) {
		return nil, ErrInvalidTransition
	}

	now := time.Now()
	mr.Status = next
	mr.UpdatedAt = now
	if next == domain.MaintenanceResolved {
		mr.ResolvedAt = &now
	}
	if next == domain.MaintenanceInProgress && mr.AssigneeID == nil {
		mr.AssigneeID = &actorID
	}

	if err := s.repo.Update(ctx, mr); err != nil {
		return nil, err
	}

	if lease, err := s.leases.GetByID(ctx, mr.TenancyID); err == nil && lease != nil {
		s.notifs.NotifyMaintenanceUpdate(ctx, lease.TenantID, mr.ID, string(next))
	}

	return mr, nil
}

// List returns requests the actor may see: all of the property's for
// managers and staff, the tenant's own otherwise.
func (s *Service) List(ctx context.Context, property *domain.Property, actorID int64, actorRole string, status string) ([]domain.MaintenanceRequest, error) {
	ok, err := s.canManage(ctx, property, actorID, actorRole)
	if err != nil {
		return nil, err
	}
	if ok {
		return s.repo.ListByProperty(ctx, property.ID, status)
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

func allowed(from, to domain.MaintenanceStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
