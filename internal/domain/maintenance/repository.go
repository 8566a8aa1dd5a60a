package maintenance

import (
	"context"

	"estatelink/internal/domain"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, r *domain.MaintenanceRequest) error
	GetByID(ctx context.Context, id int64) (*domain.MaintenanceRequest, error)
	Update(ctx context.Context, r *domain.MaintenanceRequest) error
	ListByProperty(ctx context.Context, propertyID int64, status string) ([]domain.MaintenanceRequest, error)
	ListByTenancy(ctx context.Context, tenancyID int64) ([]domain.MaintenanceRequest, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, req *domain.MaintenanceRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *repository) GetByID(ctx context.Context, id int64) (*domain.MaintenanceRequest, error) {
	var req domain.MaintenanceRequest
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&req).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *repository) Update(ctx context.Context, req *domain.MaintenanceRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *repository) ListByProperty(ctx context.Context, propertyID int64, status string) ([]domain.MaintenanceRequest, error) {
	q := r.db.WithContext(ctx).Where("property_id = ?", propertyID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var list []domain.MaintenanceRequest
	err := q.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *repository) ListByTenancy(ctx context.Context, tenancyID int64) ([]domain.MaintenanceRequest, error) {
	var list []domain.MaintenanceRequest
	err := r.db.WithContext(ctx).
		Where("tenancy_id = ?", tenancyID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}
