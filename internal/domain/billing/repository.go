package billing

import (
	"context"
	"time"

	"estatelink/internal/domain"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, b *domain.TenantBill) error
	GetByID(ctx context.Context, id int64) (*domain.TenantBill, error)
	ListByTenancy(ctx context.Context, tenancyID int64) ([]domain.TenantBill, error)
	ListByProperty(ctx context.Context, propertyID int64) ([]domain.TenantBill, error)
	LatestByTenancy(ctx context.Context, tenancyID int64) (*domain.TenantBill, error)
	MarkPaid(ctx context.Context, id int64, method string, paidAt time.Time) error
	MarkOverdue(ctx context.Context, propertyID int64, now time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, b *domain.TenantBill) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *repository) GetByID(ctx context.Context, id int64) (*domain.TenantBill, error) {
	var b domain.TenantBill
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&b).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) ListByTenancy(ctx context.Context, tenancyID int64) ([]domain.TenantBill, error) {
	var bills []domain.TenantBill
	err := r.db.WithContext(ctx).
		Where("tenancy_id = ?", tenancyID).
		Order("period_start DESC").
		Find(&bills).Error
	return bills, err
}

func (r *repository) ListByProperty(ctx context.Context, propertyID int64) ([]domain.TenantBill, error) {
	var bills []domain.TenantBill
	err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("period_start DESC").
		Find(&bills).Error
	return bills, err
}

func (r *repository) LatestByTenancy(ctx context.Context, tenancyID int64) (*domain.TenantBill, error) {
	var b domain.TenantBill
	err := r.db.WithContext(ctx).
		Where("tenancy_id = ?", tenancyID).
		Order("period_end DESC").
		First(&b).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) MarkPaid(ctx context.Context, id int64, method string, paidAt time.Time) error {
	return r.db.WithContext(ctx).Model(&domain.TenantBill{}).
		Where("id = ? AND status IN ?", id, []string{string(domain.TenantBillPending), string(domain.TenantBillOverdue)}).
		Updates(map[string]any{
			"status":         domain.TenantBillPaid,
			"payment_method": method,
			"paid_at":        paidAt,
		}).Error
}

func (r *repository) MarkOverdue(ctx context.Context, propertyID int64, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&domain.TenantBill{}).
		Where("property_id = ? AND status = ? AND due_date < ?", propertyID, domain.TenantBillPending, now).
		Update("status", domain.TenantBillOverdue)
	return res.RowsAffected, res.Error
}
