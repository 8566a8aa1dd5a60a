package domain

import "time"

type PropertyStatus string

const (
	PropertyPendingApproval PropertyStatus = "pending_approval"
	PropertyApproved        PropertyStatus = "approved"
	PropertyRejected        PropertyStatus = "rejected"
	PropertyActive          PropertyStatus = "active"
)

type Property struct {
	ID              int64          `gorm:"column:id;primaryKey" json:"id"`
	ManagerID       int64          `gorm:"column:manager_id;index" json:"manager_id"`
	Title           string         `gorm:"column:title" json:"title"`
	Description     string         `gorm:"column:description" json:"description,omitempty"`
	Address         string         `gorm:"column:address" json:"address"`
	City            string         `gorm:"column:city" json:"city"`
	PostalCode      string         `gorm:"column:postal_code" json:"postal_code,omitempty"`
	Latitude        *float64       `gorm:"column:latitude" json:"latitude,omitempty"`
	Longitude       *float64       `gorm:"column:longitude" json:"longitude,omitempty"`
	MonthlyRent     float64        `gorm:"column:monthly_rent" json:"monthly_rent"`
	Bedrooms        int            `gorm:"column:bedrooms" json:"bedrooms"`
	Bathrooms       int            `gorm:"column:bathrooms" json:"bathrooms"`
	Status          PropertyStatus `gorm:"column:status;index" json:"status"`
	PortalSubdomain string         `gorm:"column:portal_subdomain;index" json:"portal_subdomain,omitempty"`
	PortalEnabled   bool           `gorm:"column:portal_enabled" json:"portal_enabled"`
	RejectionReason string         `gorm:"column:rejection_reason" json:"rejection_reason,omitempty"`
	CreatedAt       time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (Property) TableName() string { return "properties" }

// IsPublic reports whether the property is visible in public search.
func (p *Property) IsPublic() bool {
	return p.Status == PropertyApproved || p.Status == PropertyActive
}

// Unit is a rentable unit inside a property. Single-unit properties get one
// implicit unit created alongside them.
type Unit struct {
	ID          int64     `gorm:"column:id;primaryKey" json:"id"`
	PropertyID  int64     `gorm:"column:property_id;index" json:"property_id"`
	Label       string    `gorm:"column:label" json:"label"`
	MonthlyRent float64   `gorm:"column:monthly_rent" json:"monthly_rent"`
	Bedrooms    int       `gorm:"column:bedrooms" json:"bedrooms"`
	Occupied    bool      `gorm:"column:occupied" json:"occupied"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Unit) TableName() string { return "units" }
