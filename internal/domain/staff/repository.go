package staff

import (
	"context"

	"estatelink/internal/domain"

	"gorm.io/gorm"
)

type Repository interface {
	Add(ctx context.Context, m *domain.StaffMember) error
	GetByID(ctx context.Context, id int64) (*domain.StaffMember, error)
	Remove(ctx context.Context, id int64) error
	ListByProperty(ctx context.Context, propertyID int64) ([]domain.StaffMember, error)
	IsStaff(ctx context.Context, propertyID, userID int64) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Add(ctx context.Context, m *domain.StaffMember) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) GetByID(ctx context.Context, id int64) (*domain.StaffMember, error) {
	var m domain.StaffMember
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) Remove(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.StaffMember{}, "id = ?", id).Error
}

func (r *repository) ListByProperty(ctx context.Context, propertyID int64) ([]domain.StaffMember, error) {
	var members []domain.StaffMember
	err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("created_at ASC").
		Find(&members).Error
	return members, err
}

func (r *repository) IsStaff(ctx context.Context, propertyID, userID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.StaffMember{}).
		Where("property_id = ? AND user_id = ?", propertyID, userID).
		Count(&count).Error
	return count > 0, err
}
