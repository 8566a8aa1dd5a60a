package tenancy

import (
	"context"

	"estatelink/internal/domain"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, t *domain.Tenancy) error
	GetByID(ctx context.Context, id int64) (*domain.Tenancy, error)
	Update(ctx context.Context, t *domain.Tenancy) error
	ListByProperty(ctx context.Context, propertyID int64) ([]domain.Tenancy, error)
	GetActiveByUnit(ctx context.Context, unitID int64) (*domain.Tenancy, error)
	GetActiveByTenant(ctx context.Context, propertyID, tenantID int64) (*domain.Tenancy, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *domain.Tenancy) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) GetByID(ctx context.Context, id int64) (*domain.Tenancy, error) {
	var t domain.Tenancy
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) Update(ctx context.Context, t *domain.Tenancy) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) ListByProperty(ctx context.Context, propertyID int64) ([]domain.Tenancy, error) {
	var list []domain.Tenancy
	err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *repository) GetActiveByUnit(ctx context.Context, unitID int64) (*domain.Tenancy, error) {
	var t domain.Tenancy
	err := r.db.WithContext(ctx).
		Where("unit_id = ? AND status = ?", unitID, domain.TenancyActive).
		First(&t).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) GetActiveByTenant(ctx context.Context, propertyID, tenantID int64) (*domain.Tenancy, error) {
	var t domain.Tenancy
	err := r.db.WithContext(ctx).
		Where("property_id = ? AND tenant_id = ? AND status = ?", propertyID, tenantID, domain.TenancyActive).
		First(&t).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}
