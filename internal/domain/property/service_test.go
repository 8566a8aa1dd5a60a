package property

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"estatelink/internal/domain"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

type stubGuard struct {
	err error
}

func (g *stubGuard) CanAddProperty(ctx context.Context, managerID int64) error {
	return g.err
}

func setupTestService(t *testing.T, guard PlanGuard) (*Service, Repository) {
	t.Helper()
	dsn := fmt.Sprintf("file:property_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Property{}, &domain.Unit{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	repo := NewRepository(db)
	return NewService(repo, guard, nil, nil), repo
}

func seedProperty(t *testing.T, repo Repository, p *domain.Property) *domain.Property {
	t.Helper()
	if p.Status == "" {
		p.Status = domain.PropertyApproved
	}
	if err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("failed to seed property: %v", err)
	}
	return p
}

func ptr[T any](v T) *T { return &v }

func TestCreateMakesDefaultUnit(t *testing.T) {
	svc, repo := setupTestService(t, &stubGuard{})
	ctx := context.Background()

	p, err := svc.Create(ctx, 7, &CreateRequest{
		Title:       "Riverside Flat",
		Address:     "12 Embankment",
		City:        "Almaty",
		MonthlyRent: 950,
		Bedrooms:    2,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if p.Status != domain.PropertyPendingApproval {
		t.Fatalf("expected pending_approval, got %s", p.Status)
	}

	units, err := repo.ListUnits(ctx, p.ID)
	if err != nil {
		t.Fatalf("ListUnits returned error: %v", err)
	}
	if len(units) != 1 {
		t.Fatalf("expected one default unit, got %d", len(units))
	}
	if units[0].MonthlyRent != 950 {
		t.Fatalf("expected unit to inherit rent 950, got %v", units[0].MonthlyRent)
	}
}

func TestCreateBlockedByPlanLimit(t *testing.T) {
	svc, _ := setupTestService(t, &stubGuard{err: ErrPropertyLimit})

	_, err := svc.Create(context.Background(), 7, &CreateRequest{
		Title:       "One Too Many",
		Address:     "1 Overflow St",
		City:        "Almaty",
		MonthlyRent: 500,
	})
	if !errors.Is(err, ErrPropertyLimit) {
		t.Fatalf("expected ErrPropertyLimit, got %v", err)
	}
}

func TestSearchExcludesUnapproved(t *testing.T) {
	svc, repo := setupTestService(t, &stubGuard{})
	ctx := context.Background()

	seedProperty(t, repo, &domain.Property{ManagerID: 1, Title: "Visible Loft", City: "Almaty", MonthlyRent: 700})
	seedProperty(t, repo, &domain.Property{ManagerID: 1, Title: "Hidden Loft", City: "Almaty", MonthlyRent: 700, Status: domain.PropertyPendingApproval})
	seedProperty(t, repo, &domain.Property{ManagerID: 1, Title: "Rejected Loft", City: "Almaty", MonthlyRent: 700, Status: domain.PropertyRejected})

	results, err := svc.Search(ctx, &SearchParams{Query: "Loft"})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected only the approved property, got %d results", len(results))
	}
	if results[0].Property.Title != "Visible Loft" {
		t.Fatalf("unexpected property in results: %s", results[0].Property.Title)
	}
}

func TestSearchPriceAndBedroomFilters(t *testing.T) {
	svc, repo := setupTestService(t, &stubGuard{})
	ctx := context.Background()

	seedProperty(t, repo, &domain.Property{ManagerID: 1, Title: "Cheap Studio", MonthlyRent: 400, Bedrooms: 1})
	seedProperty(t, repo, &domain.Property{ManagerID: 1, Title: "Family Home", MonthlyRent: 1200, Bedrooms: 3})
	seedProperty(t, repo, &domain.Property{ManagerID: 1, Title: "Penthouse", MonthlyRent: 4000, Bedrooms: 3})

	results, err := svc.Search(ctx, &SearchParams{
		MinPrice: ptr(500.0),
		MaxPrice: ptr(2000.0),
		Bedrooms: ptr(2),
	})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected one match, got %d", len(results))
	}
	if results[0].Property.Title != "Family Home" {
		t.Fatalf("unexpected match: %s", results[0].Property.Title)
	}
}

func TestRadiusSearchFiltersByDistance(t *testing.T) {
	svc, repo := setupTestService(t, &stubGuard{})
	ctx := context.Background()

	// Origin in central Almaty, 5 km radius.
	origin := struct{ lat, lng float64 }{43.2400, 76.8900}

	near := seedProperty(t, repo, &domain.Property{
		ManagerID: 1, Title: "Near Flat", MonthlyRent: 800,
		Latitude: ptr(43.2580), Longitude: ptr(76.8900), // ~2 km north
	})
	// Box corner: passes the bounding-box prefilter but sits ~6.9 km out.
	seedProperty(t, repo, &domain.Property{
		ManagerID: 1, Title: "Corner Flat", MonthlyRent: 800,
		Latitude: ptr(43.2840), Longitude: ptr(76.9500),
	})
	seedProperty(t, repo, &domain.Property{
		ManagerID: 1, Title: "Far Flat", MonthlyRent: 800,
		Latitude: ptr(44.0000), Longitude: ptr(76.8900),
	})
	seedProperty(t, repo, &domain.Property{
		ManagerID: 1, Title: "No Coords Flat", MonthlyRent: 800,
	})

	results, err := svc.Search(ctx, &SearchParams{
		Latitude:  ptr(origin.lat),
		Longitude: ptr(origin.lng),
		RadiusKm:  5,
	})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected one property inside the radius, got %d", len(results))
	}
	if results[0].Property.ID != near.ID {
		t.Fatalf("expected %q, got %q", near.Title, results[0].Property.Title)
	}
	if results[0].DistanceKm == nil {
		t.Fatal("expected distance to be set for radius search")
	}
	if *results[0].DistanceKm > 2.5 {
		t.Fatalf("distance %v km looks wrong for a ~2 km offset", *results[0].DistanceKm)
	}
}

func TestRadiusSearchValidation(t *testing.T) {
	svc, _ := setupTestService(t, &stubGuard{})
	ctx := context.Background()

	if _, err := svc.Search(ctx, &SearchParams{Latitude: ptr(43.24)}); !errors.Is(err, ErrMissingCoords) {
		t.Fatalf("expected ErrMissingCoords, got %v", err)
	}
	if _, err := svc.Search(ctx, &SearchParams{Latitude: ptr(43.24), Longitude: ptr(76.89), RadiusKm: -1}); !errors.Is(err, ErrInvalidRadius) {
		t.Fatalf("expected ErrInvalidRadius, got %v", err)
	}
}

func TestRadiusDefaultsToTenKm(t *testing.T) {
	svc, repo := setupTestService(t, &stubGuard{})
	ctx := context.Background()

	// ~8 km north of the origin: inside the default radius, outside 5 km.
	seedProperty(t, repo, &domain.Property{
		ManagerID: 1, Title: "Edge Flat", MonthlyRent: 800,
		Latitude: ptr(43.3120), Longitude: ptr(76.8900),
	})

	results, err := svc.Search(ctx, &SearchParams{Latitude: ptr(43.2400), Longitude: ptr(76.8900)})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected the 8 km property inside the default radius, got %d results", len(results))
	}
}

func TestUpdateRejectsNonOwner(t *testing.T) {
	svc, repo := setupTestService(t, &stubGuard{})
	ctx := context.Background()

	p := seedProperty(t, repo, &domain.Property{ManagerID: 1, Title: "Owned Flat", MonthlyRent: 800})

	_, err := svc.Update(ctx, 2, p.ID, &UpdateRequest{Title: ptr("Stolen Flat")})
	if !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
}

type stubNotifier struct {
	inquiryManagerID int64
	inquirySender    string
	inquiryMessage   string
}

func (n *stubNotifier) NotifyPortalToggled(ctx context.Context, managerID, propertyID int64, enabled bool) {
}

func (n *stubNotifier) NotifyInquiryReceived(ctx context.Context, managerID, propertyID int64, senderName, message string) {
	n.inquiryManagerID = managerID
	n.inquirySender = senderName
	n.inquiryMessage = message
}

type stubUsers struct {
	user *domain.User
}

func (u *stubUsers) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return u.user, nil
}

func TestInquireNotifiesManager(t *testing.T) {
	_, repo := setupTestService(t, &stubGuard{})
	notifs := &stubNotifier{}
	svc := NewService(repo, &stubGuard{}, notifs, &stubUsers{user: &domain.User{ID: 9, Name: "Aset"}})
	ctx := context.Background()

	p := seedProperty(t, repo, &domain.Property{ManagerID: 1, Title: "Inquiry Flat", MonthlyRent: 800})

	if err := svc.Inquire(ctx, 9, p.ID, "Is it still available?"); err != nil {
		t.Fatalf("Inquire returned error: %v", err)
	}
	if notifs.inquiryManagerID != 1 {
		t.Fatalf("expected manager 1 notified, got %d", notifs.inquiryManagerID)
	}
	if notifs.inquirySender != "Aset" || notifs.inquiryMessage != "Is it still available?" {
		t.Fatalf("unexpected inquiry payload: %q %q", notifs.inquirySender, notifs.inquiryMessage)
	}

	// Managers cannot inquire about their own listings.
	if err := svc.Inquire(ctx, 1, p.ID, "hi"); !errors.Is(err, ErrOwnProperty) {
		t.Fatalf("expected ErrOwnProperty, got %v", err)
	}

	pending := seedProperty(t, repo, &domain.Property{ManagerID: 1, Title: "Unlisted Flat", MonthlyRent: 800, Status: domain.PropertyPendingApproval})
	if err := svc.Inquire(ctx, 9, pending.ID, "hi"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for non-public listing, got %v", err)
	}
}

func TestTogglePortalRequiresApproval(t *testing.T) {
	svc, repo := setupTestService(t, &stubGuard{})
	ctx := context.Background()

	pending := seedProperty(t, repo, &domain.Property{ManagerID: 1, Title: "Pending Flat", MonthlyRent: 800, Status: domain.PropertyPendingApproval})
	if _, err := svc.TogglePortal(ctx, 1, pending.ID, true); !errors.Is(err, ErrNotApproved) {
		t.Fatalf("expected ErrNotApproved, got %v", err)
	}

	approved := seedProperty(t, repo, &domain.Property{ManagerID: 1, Title: "Approved Flat", MonthlyRent: 800})
	p, err := svc.TogglePortal(ctx, 1, approved.ID, true)
	if err != nil {
		t.Fatalf("TogglePortal returned error: %v", err)
	}
	if !p.PortalEnabled {
		t.Fatal("expected portal to be enabled")
	}
}
