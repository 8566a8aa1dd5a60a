package profile

import (
	"context"

	"estatelink/internal/domain"

	"gorm.io/gorm"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	List(ctx context.Context, params *ListUsersParams) ([]domain.User, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) Update(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *repository) List(ctx context.Context, params *ListUsersParams) ([]domain.User, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.User{})
	if params.Role != "" {
		q = q.Where("role = ?", params.Role)
	}
	if params.Status != "" {
		q = q.Where("status = ?", params.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (params.Page - 1) * params.Limit
	var users []domain.User
	err := q.Order("created_at DESC").Offset(offset).Limit(params.Limit).Find(&users).Error
	return users, total, err
}
