package domain

import "time"

type TenancyStatus string

const (
	TenancyActive TenancyStatus = "active"
	TenancyEnded  TenancyStatus = "ended"
)

// Tenancy is a lease binding a tenant user to a unit of a property.
type Tenancy struct {
	ID          int64         `gorm:"column:id;primaryKey" json:"id"`
	PropertyID  int64         `gorm:"column:property_id;index" json:"property_id"`
	UnitID      int64         `gorm:"column:unit_id;index" json:"unit_id"`
	TenantID    int64         `gorm:"column:tenant_id;index" json:"tenant_id"`
	MonthlyRent float64       `gorm:"column:monthly_rent" json:"monthly_rent"`
	StartDate   time.Time     `gorm:"column:start_date" json:"start_date"`
	EndDate     *time.Time    `gorm:"column:end_date" json:"end_date,omitempty"`
	Status      TenancyStatus `gorm:"column:status" json:"status"`
	CreatedAt   time.Time     `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"column:updated_at" json:"updated_at"`
}

func (Tenancy) TableName() string { return "tenancies" }

// StaffMember assigns a staff user to a property.
type StaffMember struct {
	ID         int64     `gorm:"column:id;primaryKey" json:"id"`
	PropertyID int64     `gorm:"column:property_id;index" json:"property_id"`
	UserID     int64     `gorm:"column:user_id;index" json:"user_id"`
	Position   string    `gorm:"column:position" json:"position"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

func (StaffMember) TableName() string { return "staff_members" }

type MaintenanceStatus string

const (
	MaintenanceOpen       MaintenanceStatus = "open"
	MaintenanceInProgress MaintenanceStatus = "in_progress"
	MaintenanceResolved   MaintenanceStatus = "resolved"
	MaintenanceCancelled  MaintenanceStatus = "cancelled"
)

type MaintenancePriority string

const (
	PriorityLow    MaintenancePriority = "low"
	PriorityNormal MaintenancePriority = "normal"
	PriorityUrgent MaintenancePriority = "urgent"
)

type MaintenanceRequest struct {
	ID          int64               `gorm:"column:id;primaryKey" json:"id"`
	PropertyID  int64               `gorm:"column:property_id;index" json:"property_id"`
	TenancyID   int64               `gorm:"column:tenancy_id;index" json:"tenancy_id"`
	Category    string              `gorm:"column:category" json:"category"`
	Title       string              `gorm:"column:title" json:"title"`
	Description string              `gorm:"column:description" json:"description,omitempty"`
	Priority    MaintenancePriority `gorm:"column:priority" json:"priority"`
	Status      MaintenanceStatus   `gorm:"column:status;index" json:"status"`
	AssigneeID  *int64              `gorm:"column:assignee_id" json:"assignee_id,omitempty"`
	ResolvedAt  *time.Time          `gorm:"column:resolved_at" json:"resolved_at,omitempty"`
	CreatedAt   time.Time           `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time           `gorm:"column:updated_at" json:"updated_at"`
}

func (MaintenanceRequest) TableName() string { return "maintenance_requests" }

type TenantBillStatus string

const (
	TenantBillPending TenantBillStatus = "pending"
	TenantBillPaid    TenantBillStatus = "paid"
	TenantBillOverdue TenantBillStatus = "overdue"
)

// TenantBill is a rent invoice issued against a tenancy.
type TenantBill struct {
	ID            int64            `gorm:"column:id;primaryKey" json:"id"`
	TenancyID     int64            `gorm:"column:tenancy_id;index" json:"tenancy_id"`
	PropertyID    int64            `gorm:"column:property_id;index" json:"property_id"`
	Amount        float64          `gorm:"column:amount" json:"amount"`
	PeriodStart   time.Time        `gorm:"column:period_start" json:"period_start"`
	PeriodEnd     time.Time        `gorm:"column:period_end" json:"period_end"`
	DueDate       time.Time        `gorm:"column:due_date" json:"due_date"`
	Status        TenantBillStatus `gorm:"column:status;index" json:"status"`
	PaymentMethod string           `gorm:"column:payment_method" json:"payment_method,omitempty"`
	PaidAt        *time.Time       `gorm:"column:paid_at" json:"paid_at,omitempty"`
	CreatedAt     time.Time        `gorm:"column:created_at" json:"created_at"`
}

func (TenantBill) TableName() string { return "tenant_bills" }
