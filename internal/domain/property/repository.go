package property

import (
	"context"

	"estatelink/internal/domain"

	"gorm.io/gorm"
)

// Repository handles persistence for properties and units.
type Repository interface {
	Create(ctx context.Context, p *domain.Property) error
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
	GetBySubdomain(ctx context.Context, subdomain string) (*domain.Property, error)
	Update(ctx context.Context, p *domain.Property) error
	Delete(ctx context.Context, id int64) error
	ListByManagerID(ctx context.Context, managerID int64) ([]*domain.Property, error)
	CountByManagerID(ctx context.Context, managerID int64) (int, error)
	Search(ctx context.Context, params *SearchParams) ([]*domain.Property, error)

	CreateUnit(ctx context.Context, u *domain.Unit) error
	GetUnitByID(ctx context.Context, id int64) (*domain.Unit, error)
	UpdateUnit(ctx context.Context, u *domain.Unit) error
	ListUnits(ctx context.Context, propertyID int64) ([]*domain.Unit, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *domain.Property) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	var p domain.Property
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) GetBySubdomain(ctx context.Context, subdomain string) (*domain.Property, error) {
	var p domain.Property
	err := r.db.WithContext(ctx).Where("portal_subdomain = ?", subdomain).First(&p).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Update(ctx context.Context, p *domain.Property) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Property{}).Error
}

func (r *repository) ListByManagerID(ctx context.Context, managerID int64) ([]*domain.Property, error) {
	var props []*domain.Property
	err := r.db.WithContext(ctx).
		Where("manager_id = ?", managerID).
		Order("created_at DESC").
		Find(&props).Error
	return props, err
}

func (r *repository) CountByManagerID(ctx context.Context, managerID int64) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Property{}).
		Where("manager_id = ?", managerID).
		Count(&count).Error
	return int(count), err
}

// Search applies all SQL-expressible predicates, including the geo bounding
// box. Exact haversine distance is applied by the service on the reduced
// candidate set.
func (r *repository) Search(ctx context.Context, params *SearchParams) ([]*domain.Property, error) {
	q := r.db.WithContext(ctx).
		Model(&domain.Property{}).
		Where("status IN ?", []domain.PropertyStatus{domain.PropertyApproved, domain.PropertyActive})

	if params.Query != "" {
		like := "%" + params.Query + "%"
		q = q.Where("title LIKE ? OR description LIKE ? OR address LIKE ? OR city LIKE ?", like, like, like, like)
	}
	if params.MinPrice != nil {
		q = q.Where("monthly_rent >= ?", *params.MinPrice)
	}
	if params.MaxPrice != nil {
		q = q.Where("monthly_rent <= ?", *params.MaxPrice)
	}
	if params.Bedrooms != nil {
		q = q.Where("bedrooms >= ?", *params.Bedrooms)
	}

	if params.Latitude != nil && params.Longitude != nil {
		box := boundingBox(*params.Latitude, *params.Longitude, params.RadiusKm)
		q = q.Where("latitude IS NOT NULL AND longitude IS NOT NULL").
			Where("latitude BETWEEN ? AND ?", box.minLat, box.maxLat).
			Where("longitude BETWEEN ? AND ?", box.minLng, box.maxLng)
	}

	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var props []*domain.Property
	err := q.Order("created_at DESC").Limit(limit).Offset(params.Offset).Find(&props).Error
	return props, err
}

func (r *repository) CreateUnit(ctx context.Context, u *domain.Unit) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) GetUnitByID(ctx context.Context, id int64) (*domain.Unit, error) {
	var u domain.Unit
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrUnitNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) UpdateUnit(ctx context.Context, u *domain.Unit) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *repository) ListUnits(ctx context.Context, propertyID int64) ([]*domain.Unit, error) {
	var units []*domain.Unit
	err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("label ASC").
		Find(&units).Error
	return units, err
}
