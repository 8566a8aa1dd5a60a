package subscription

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Repository handles persistence for plans, subscriptions and bills.
type Repository interface {
	// Plans
	ListPlans(ctx context.Context) ([]*Plan, error)
	GetPlanByID(ctx context.Context, id int64) (*Plan, error)
	GetPlanBySlug(ctx context.Context, slug string) (*Plan, error)

	// Subscriptions
	GetByUserID(ctx context.Context, userID int64) (*Subscription, error)
	Create(ctx context.Context, sub *Subscription) error
	Update(ctx context.Context, sub *Subscription) error

	// Bills
	CreateBill(ctx context.Context, bill *Bill) error
	GetBillByID(ctx context.Context, id int64) (*Bill, error)
	GetPendingBill(ctx context.Context, subscriptionID int64) (*Bill, error)
	MarkBillPaid(ctx context.Context, id int64, method string, paidAt time.Time) error
	ListBills(ctx context.Context, subscriptionID int64) ([]*Bill, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListPlans(ctx context.Context) ([]*Plan, error) {
	var plans []*Plan
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("monthly_price ASC").Find(&plans).Error
	return plans, err
}

func (r *repository) GetPlanByID(ctx context.Context, id int64) (*Plan, error) {
	var plan Plan
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&plan).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *repository) GetPlanBySlug(ctx context.Context, slug string) (*Plan, error) {
	var plan Plan
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&plan).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *repository) GetByUserID(ctx context.Context, userID int64) (*Subscription, error) {
	var sub Subscription
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&sub).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *repository) Create(ctx context.Context, sub *Subscription) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *repository) Update(ctx context.Context, sub *Subscription) error {
	return r.db.WithContext(ctx).Save(sub).Error
}

func (r *repository) CreateBill(ctx context.Context, bill *Bill) error {
	return r.db.WithContext(ctx).Create(bill).Error
}

func (r *repository) GetBillByID(ctx context.Context, id int64) (*Bill, error) {
	var bill Bill
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&bill).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *repository) GetPendingBill(ctx context.Context, subscriptionID int64) (*Bill, error) {
	var bill Bill
	err := r.db.WithContext(ctx).
		Where("subscription_id = ? AND status = ?", subscriptionID, BillPending).
		Order("created_at DESC").
		First(&bill).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *repository) MarkBillPaid(ctx context.Context, id int64, method string, paidAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&Bill{}).
		Where("id = ? AND status = ?", id, BillPending).
		Updates(map[string]any{
			"status":         BillPaid,
			"payment_method": method,
			"paid_at":        paidAt,
		}).Error
}

func (r *repository) ListBills(ctx context.Context, subscriptionID int64) ([]*Bill, error) {
	var bills []*Bill
	err := r.db.WithContext(ctx).
		Where("subscription_id = ?", subscriptionID).
		Order("created_at DESC").
		Find(&bills).Error
	return bills, err
}
