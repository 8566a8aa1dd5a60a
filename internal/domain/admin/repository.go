package admin

import (
	"context"

	"estatelink/internal/domain"
	"estatelink/internal/domain/subscription"

	"gorm.io/gorm"
)

type propertyStore struct {
	db *gorm.DB
}

func NewPropertyStore(db *gorm.DB) PropertyStore {
	return &propertyStore{db: db}
}

func (r *propertyStore) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	var p domain.Property
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *propertyStore) Update(ctx context.Context, p *domain.Property) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *propertyStore) ListPending(ctx context.Context, offset, limit int) ([]domain.Property, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Property{}).
		Where("status = ?", domain.PropertyPendingApproval)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var props []domain.Property
	err := q.Order("created_at ASC").Offset(offset).Limit(limit).Find(&props).Error
	return props, total, err
}

func (r *propertyStore) SubdomainTaken(ctx context.Context, subdomain string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Property{}).
		Where("portal_subdomain = ?", subdomain).
		Count(&count).Error
	return count > 0, err
}

type subscriptionStore struct {
	db *gorm.DB
}

func NewSubscriptionStore(db *gorm.DB) SubscriptionStore {
	return &subscriptionStore{db: db}
}

func (r *subscriptionStore) GetByID(ctx context.Context, id int64) (*subscription.Subscription, error) {
	var sub subscription.Subscription
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&sub).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionStore) Update(ctx context.Context, sub *subscription.Subscription) error {
	return r.db.WithContext(ctx).Save(sub).Error
}

func (r *subscriptionStore) ListPending(ctx context.Context, offset, limit int) ([]subscription.Subscription, int64, error) {
	q := r.db.WithContext(ctx).Model(&subscription.Subscription{}).
		Where("status = ?", subscription.StatusPending)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var subs []subscription.Subscription
	err := q.Order("created_at ASC").Offset(offset).Limit(limit).Find(&subs).Error
	return subs, total, err
}

func (r *subscriptionStore) LatestPaidBill(ctx context.Context, subscriptionID int64) (*subscription.Bill, error) {
	var bill subscription.Bill
	err := r.db.WithContext(ctx).
		Where("subscription_id = ? AND status = ?", subscriptionID, subscription.BillPaid).
		Order("paid_at DESC").
		First(&bill).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *subscriptionStore) GetPlan(ctx context.Context, id int64) (*subscription.Plan, error) {
	var plan subscription.Plan
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&plan).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// StatsRepository runs the count queries behind the platform dashboard.
type StatsRepository interface {
	Collect(ctx context.Context) (*Statistics, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Collect(ctx context.Context) (*Statistics, error) {
	db := r.db.WithContext(ctx)
	stats := &Statistics{}

	type countQuery struct {
		dest  *int64
		model any
		where []any
	}

	queries := []countQuery{
		{&stats.TotalUsers, &domain.User{}, nil},
		{&stats.Managers, &domain.User{}, []any{"role = ?", domain.RoleManager}},
		{&stats.Tenants, &domain.User{}, []any{"role = ?", domain.RoleTenant}},
		{&stats.TotalProperties, &domain.Property{}, nil},
		{&stats.PendingProperties, &domain.Property{}, []any{"status = ?", domain.PropertyPendingApproval}},
		{&stats.ActiveSubscriptions, &subscription.Subscription{}, []any{"status = ?", subscription.StatusActive}},
		{&stats.OpenMaintenance, &domain.MaintenanceRequest{}, []any{"status IN ?", []string{string(domain.MaintenanceOpen), string(domain.MaintenanceInProgress)}}},
	}

	for _, q := range queries {
		tx := db.Model(q.model)
		if len(q.where) > 0 {
			tx = tx.Where(q.where[0], q.where[1:]...)
		}
		if err := tx.Count(q.dest).Error; err != nil {
			return nil, err
		}
	}

	err := db.Model(&subscription.Bill{}).
		Where("status = ?", subscription.BillPaid).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&stats.SubscriptionRevenue).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}
