package tenancy

import (
	"context"
	"time"

	"estatelink/internal/domain"
)

// StaffChecker reports whether a user is staff on a property.
type StaffChecker interface {
	IsStaff(ctx context.Context, propertyID, userID int64) (bool, error)
}

// UserLookup resolves tenants by email when creating a lease.
type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UnitStore is the slice of the property repository the lease module uses.
type UnitStore interface {
	GetUnitByID(ctx context.Context, id int64) (*domain.Unit, error)
	UpdateUnit(ctx context.Context, u *domain.Unit) error
}

type Service struct {
	repo  Repository
	staff StaffChecker
	users UserLookup
	units UnitStore
}

func NewService(repo Repository, staff StaffChecker, users UserLookup, units UnitStore) *Service {
	return &Service{repo: repo, staff: staff, users: users, units: units}
}

// Create starts a lease binding a tenant to a unit of the property. Managers
// and property staff can create leases; a unit carries at most one active
// lease at a time.
func (s *Service) Create(ctx context.Context, property *domain.Property, actorID int64, actorRole string, req *CreateRequest) (*domain.Tenancy, error) {
	ok, err := s.canManage(ctx, property, actorID, actorRole)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotAllowed
	}

	tenant, err := s.users.GetByEmail(ctx, req.TenantEmail)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, ErrUserNotFound
	}
	if tenant.Role != domain.RoleTenant {
		return nil, ErrNotTenantRole
	}

	unit, err := s.units.GetUnitByID(ctx, req.UnitID)
	if err != nil {
		return nil, err
	}
	if unit == nil || unit.PropertyID != property.ID {
		return nil, ErrUnitNotFound
	}

	existing, err := s.repo.GetActiveByUnit(ctx, unit.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUnitOccupied
	}

	now := time.Now()
	start := now
	if req.StartDate != nil {
		start = *req.StartDate
	}
	rent := unit.MonthlyRent
	if req.MonthlyRent != nil {
		rent = *req.MonthlyRent
	}

	lease := &domain.Tenancy{
		PropertyID:  property.ID,
		UnitID:      unit.ID,
		TenantID:    tenant.ID,
		MonthlyRent: rent,
		StartDate:   start,
		Status:      domain.TenancyActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, lease); err != nil {
		return nil, err
	}

	unit.Occupied = true
	_ = s.units.UpdateUnit(ctx, unit)

	return lease, nil
}

// End closes an active lease and frees the unit.
func (s *Service) End(ctx context.Context, property *domain.Property, actorID int64, actorRole string, leaseID int64) (*domain.Tenancy, error) {
	ok, err := s.canManage(ctx, property, actorID, actorRole)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotAllowed
	}

	lease, err := s.repo.GetByID(ctx, leaseID)
	if err != nil {
		return nil, err
	}
	if lease == nil || lease.PropertyID != property.ID {
		return nil, ErrTenancyNotFound
	}
	if lease.Status == domain.TenancyEnded {
		return nil, ErrTenancyEnded
	}

	now := time.Now()
	lease.Status = domain.TenancyEnded
	lease.EndDate = &now
	lease.UpdatedAt = now
	if err := s.repo.Update(ctx, lease); err != nil {
		return nil, err
	}

	if unit, err := s.units.GetUnitByID(ctx, lease.UnitID); err == nil && unit != nil {
		unit.Occupied = false
		_ = s.units.UpdateUnit(ctx, unit)
	}

	return lease, nil
}

// List returns all leases on the property for managers and staff.
func (s *Service) List(ctx context.Context, property *domain.Property, actorID int64, actorRole string) ([]domain.Tenancy, error) {
	ok, err := s.canManage(ctx, property, actorID, actorRole)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotAllowed
	}
	return s.repo.ListByProperty(ctx, property.ID)
}

// MyLease returns the tenant's active lease on the portal property.
func (s *Service) MyLease(ctx context.Context, property *domain.Property, tenantID int64) (*domain.Tenancy, error) {
	lease, err := s.repo.GetActiveByTenant(ctx, property.ID, tenantID)
	if err != nil {
		return nil, err
	}
	if lease == nil {
		return nil, ErrNoActiveLease
	}
	return lease, nil
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
