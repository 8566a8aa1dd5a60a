package subscription

import "time"

// Status of a subscription
type Status string

const (
	StatusInactive Status = "inactive"
	StatusPending  Status = "pending"
	StatusActive   Status = "active"
)

// BillStatus of a subscription bill
type BillStatus string

const (
	BillPending BillStatus = "pending"
	BillPaid    BillStatus = "paid"
)

// BasicPlanSlug is the free tier provisioned when a manager requests a paid
// plan before having any subscription.
const BasicPlanSlug = "basic"

// Plan defines a subscription tier available to property managers.
type Plan struct {
	ID           int64  `gorm:"column:id;primaryKey" json:"id"`
	Name         string `gorm:"column:name" json:"name"`
	Slug         string `gorm:"column:slug;uniqueIndex" json:"slug"`
	Description  string `gorm:"column:description" json:"description,omitempty"`
	MonthlyPrice float64 `gorm:"column:monthly_price" json:"monthly_price"`

	// -1 = unlimited
	MaxProperties int `gorm:"column:max_properties" json:"max_properties"`

	Analytics       bool `gorm:"column:analytics" json:"analytics"`
	APIAccess       bool `gorm:"column:api_access" json:"api_access"`
	StaffManagement bool `gorm:"column:staff_management" json:"staff_management"`

	IsActive  bool      `gorm:"column:is_active" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Plan) TableName() string { return "subscription_plans" }

// IsFree reports whether the plan has no monthly price.
func (p *Plan) IsFree() bool { return p.MonthlyPrice == 0 }

// Subscription tracks a manager's plan. A user owns at most one row.
type Subscription struct {
	ID                  int64     `gorm:"column:id;primaryKey" json:"id"`
	UserID              int64     `gorm:"column:user_id;uniqueIndex" json:"user_id"`
	PlanID              int64     `gorm:"column:plan_id" json:"plan_id"`
	Status              Status    `gorm:"column:status" json:"status"`
	PropertiesUsed      int       `gorm:"column:properties_used" json:"properties_used"`
	PropertiesRemaining int       `gorm:"column:properties_remaining" json:"properties_remaining"`
	CreatedAt           time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt           time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Subscription) TableName() string { return "subscriptions" }

// Bill is a charge raised against a subscription. PlanID records the plan the
// bill was raised for, which may differ from the subscription's current plan
// while a paid upgrade is pending.
type Bill struct {
	ID             int64      `gorm:"column:id;primaryKey" json:"id"`
	SubscriptionID int64      `gorm:"column:subscription_id;index" json:"subscription_id"`
	PlanID         int64      `gorm:"column:plan_id" json:"plan_id"`
	Reference      string     `gorm:"column:reference;uniqueIndex" json:"reference"`
	Amount         float64    `gorm:"column:amount" json:"amount"`
	PeriodStart    time.Time  `gorm:"column:period_start" json:"period_start"`
	PeriodEnd      time.Time  `gorm:"column:period_end" json:"period_end"`
	DueDate        time.Time  `gorm:"column:due_date" json:"due_date"`
	Status         BillStatus `gorm:"column:status;index" json:"status"`
	PaymentMethod  string     `gorm:"column:payment_method" json:"payment_method,omitempty"`
	PaidAt         *time.Time `gorm:"column:paid_at" json:"paid_at,omitempty"`
	CreatedAt      time.Time  `gorm:"column:created_at" json:"created_at"`
}

func (Bill) TableName() string { return "subscription_bills" }
