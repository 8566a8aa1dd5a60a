package staff

import (
	"context"
	"time"

	"estatelink/internal/domain"
)

// FeatureGate checks plan feature flags on the manager's subscription.
type FeatureGate interface {
	HasFeature(ctx context.Context, managerID int64, feature string) (bool, error)
}

// UserLookup resolves users by email when adding staff.
type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type Service struct {
	repo  Repository
	gate  FeatureGate
	users UserLookup
}

func NewService(repo Repository, gate FeatureGate, users UserLookup) *Service {
	return &Service{repo: repo, gate: gate, users: users}
}

// Add assigns a staff user to the property. Only the property's manager can
// do this, and only when their plan carries the staff_management feature.
func (s *Service) Add(ctx context.Context, property *domain.Property, actorID int64, req *AddRequest) (*domain.StaffMember, error) {
	if property.ManagerID != actorID {
		return nil, ErrNotManager
	}

	allowed, err := s.gate.HasFeature(ctx, property.ManagerID, "staff_management")
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrFeatureNotInPlan
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.Role != domain.RoleStaff {
		return nil, ErrNotStaffRole
	}

	already, err := s.repo.IsStaff(ctx, property.ID, user.ID)
	if err != nil {
		return nil, err
	}
	if already {
		return nil, ErrAlreadyStaff
	}

	member := &domain.StaffMember{
		PropertyID: property.ID,
		UserID:     user.ID,
		Position:   req.Position,
		CreatedAt:  time.Now(),
	}
	if err := s.repo.Add(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// Remove takes a staff member off the property. Manager only.
func (s *Service) Remove(ctx context.Context, property *domain.Property, actorID, memberID int64) error {
	if property.ManagerID != actorID {
		return ErrNotManager
	}

	member, err := s.repo.GetByID(ctx, memberID)
	if err != nil {
		return err
	}
	if member == nil || member.PropertyID != property.ID {
		return ErrStaffNotFound
	}

	return s.repo.Remove(ctx, memberID)
}

// List returns the property's staff roster.
func (s *Service) List(ctx context.Context, property *domain.Property) ([]domain.StaffMember, error) {
	return s.repo.ListByProperty(ctx, property.ID)
}

// IsStaff reports whether userID is on the property's roster. Other portal
// modules use this for access checks.
func (s *Service) IsStaff(ctx context.Context, propertyID, userID int64) (bool, error) {
	return s.repo.IsStaff(ctx, propertyID, userID)
}
