package property

import (
	"context"
	"time"

	"estatelink/internal/domain"
)

const defaultRadiusKm = 10.0

// PlanGuard is the slice of the subscription service used to enforce plan
// limits before a manager lists another property.
type PlanGuard interface {
	CanAddProperty(ctx context.Context, managerID int64) error
}

// Notifier is the slice of the notification service this module uses.
type Notifier interface {
	NotifyPortalToggled(ctx context.Context, managerID, propertyID int64, enabled bool)
	NotifyInquiryReceived(ctx context.Context, managerID, propertyID int64, senderName, message string)
}

// UserDirectory resolves the display name of an inquiry sender.
type UserDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Service handles property listing, search and unit management. Approval
// transitions live in the admin module.
type Service struct {
	repo   Repository
	guard  PlanGuard
	notifs Notifier
	users  UserDirectory
}

func NewService(repo Repository, guard PlanGuard, notifs Notifier, users UserDirectory) *Service {
	return &Service{repo: repo, guard: guard, notifs: notifs, users: users}
}

// Create lists a new property in pending_approval state. A default unit is
// created so single-unit properties are immediately leasable once approved.
func (s *Service) Create(ctx context.Context, managerID int64, req *CreateRequest) (*domain.Property, error) {
	if s.guard != nil {
		if err := s.guard.CanAddProperty(ctx, managerID); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	p := &domain.Property{
		ManagerID:   managerID,
		Title:       req.Title,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		PostalCode:  req.PostalCode,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		MonthlyRent: req.MonthlyRent,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		Status:      domain.PropertyPendingApproval,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	unit := &domain.Unit{
		PropertyID:  p.ID,
		Label:       "main",
		MonthlyRent: req.MonthlyRent,
		Bedrooms:    req.Bedrooms,
		CreatedAt:   now,
	}
	if err := s.repo.CreateUnit(ctx, unit); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	return s.repo.GetByID(ctx, id)
}

// GetBySubdomain resolves a portal subdomain to its property.
func (s *Service) GetBySubdomain(ctx context.Context, subdomain string) (*domain.Property, error) {
	return s.repo.GetBySubdomain(ctx, subdomain)
}

func (s *Service) ListMine(ctx context.Context, managerID int64) ([]*domain.Property, error) {
	return s.repo.ListByManagerID(ctx, managerID)
}

// Update applies partial changes. Only the managing user may update, and
// location/price edits on an approved property do not reset its status.
func (s *Service) Update(ctx context.Context, managerID, propertyID int64, req *UpdateRequest) (*domain.Property, error) {
	p, err := s.repo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if p.ManagerID != managerID {
		return nil, ErrNotOwner
	}

	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Address != nil {
		p.Address = *req.Address
	}
	if req.City != nil {
		p.City = *req.City
	}
	if req.PostalCode != nil {
		p.PostalCode = *req.PostalCode
	}
	if req.Latitude != nil {
		p.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		p.Longitude = req.Longitude
	}
	if req.MonthlyRent != nil {
		p.MonthlyRent = *req.MonthlyRent
	}
	if req.Bedrooms != nil {
		p.Bedrooms = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		p.Bathrooms = *req.Bathrooms
	}
	p.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, managerID, propertyID int64) error {
	p, err := s.repo.GetByID(ctx, propertyID)
	if err != nil {
		return err
	}
	if p.ManagerID != managerID {
		return ErrNotOwner
	}
	return s.repo.Delete(ctx, propertyID)
}

// Search runs the public filtered search. Radius search is two-phase: the
// repository applies a bounding-box predicate, then candidates are filtered
// by exact haversine distance here. Anything outside the box never reaches
// the exact check, whatever the text predicates matched.
func (s *Service) Search(ctx context.Context, params *SearchParams) ([]*SearchResult, error) {
	geo := params.Latitude != nil || params.Longitude != nil
	if geo {
		if params.Latitude == nil || params.Longitude == nil {
			return nil, ErrMissingCoords
		}
		if params.RadiusKm < 0 {
			return nil, ErrInvalidRadius
		}
		if params.RadiusKm == 0 {
			params.RadiusKm = defaultRadiusKm
		}
	}

	props, err := s.repo.Search(ctx, params)
	if err != nil {
		return nil, err
	}

	results := make([]*SearchResult, 0, len(props))
	for _, p := range props {
		if !geo {
			results = append(results, &SearchResult{Property: p})
			continue
		}
		if p.Latitude == nil || p.Longitude == nil {
			continue
		}
		d := haversineKm(*params.Latitude, *params.Longitude, *p.Latitude, *p.Longitude)
		if d > params.RadiusKm {
			continue
		}
		dist := d
		results = append(results, &SearchResult{Property: p, DistanceKm: &dist})
	}
	return results, nil
}

// Inquire sends an inquiry about a public listing to its manager. The
// notification is best-effort, but an inquiry without one is pointless, so
// a missing sender is an error.
func (s *Service) Inquire(ctx context.Context, senderID, propertyID int64, message string) error {
	p, err := s.repo.GetByID(ctx, propertyID)
	if err != nil {
		return err
	}
	if !p.IsPublic() {
		return ErrNotFound
	}
	if p.ManagerID == senderID {
		return ErrOwnProperty
	}

	sender, err := s.users.GetByID(ctx, senderID)
	if err != nil {
		return err
	}
	if sender == nil {
		return ErrSenderNotFound
	}

	if s.notifs != nil {
		s.notifs.NotifyInquiryReceived(ctx, p.ManagerID, p.ID, sender.Name, message)
	}
	return nil
}

// ---- Units ----

func (s *Service) AddUnit(ctx context.Context, managerID, propertyID int64, req *UnitRequest) (*domain.Unit, error) {
	p, err := s.repo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if p.ManagerID != managerID {
		return nil, ErrNotOwner
	}

	rent := req.MonthlyRent
	if rent == 0 {
		rent = p.MonthlyRent
	}
	u := &domain.Unit{
		PropertyID:  propertyID,
		Label:       req.Label,
		MonthlyRent: rent,
		Bedrooms:    req.Bedrooms,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.CreateUnit(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) ListUnits(ctx context.Context, propertyID int64) ([]*domain.Unit, error) {
	return s.repo.ListUnits(ctx, propertyID)
}

// TogglePortal enables or disables the tenant portal for an approved
// property.
func (s *Service) TogglePortal(ctx context.Context, managerID, propertyID int64, enabled bool) (*domain.Property, error) {
	p, err := s.repo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if p.ManagerID != managerID {
		return nil, ErrNotOwner
	}
	if !p.IsPublic() {
		return nil, ErrNotApproved
	}

	p.PortalEnabled = enabled
	p.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		s.notifs.NotifyPortalToggled(ctx, managerID, propertyID, enabled)
	}
	return p, nil
}
