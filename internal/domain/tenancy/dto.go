package tenancy

import "time"

type CreateRequest struct {
	TenantEmail string     `json:"tenant_email" binding:"required,email"`
	UnitID      int64      `json:"unit_id" binding:"required"`
	MonthlyRent *float64   `json:"monthly_rent"`
	StartDate   *time.Time `json:"start_date"`
}
