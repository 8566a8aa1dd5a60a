package property

import "estatelink/internal/domain"

type CreateRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Address     string   `json:"address" binding:"required"`
	City        string   `json:"city" binding:"required"`
	PostalCode  string   `json:"postal_code"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	MonthlyRent float64  `json:"monthly_rent" binding:"required"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   int      `json:"bathrooms"`
}

type UpdateRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Address     *string  `json:"address"`
	City        *string  `json:"city"`
	PostalCode  *string  `json:"postal_code"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	MonthlyRent *float64 `json:"monthly_rent"`
	Bedrooms    *int     `json:"bedrooms"`
	Bathrooms   *int     `json:"bathrooms"`
}

type InquiryRequest struct {
	Message string `json:"message" binding:"required"`
}

type UnitRequest struct {
	Label       string  `json:"label" binding:"required"`
	MonthlyRent float64 `json:"monthly_rent"`
	Bedrooms    int     `json:"bedrooms"`
}

// SearchParams filter public property search. Radius search needs both
// coordinates; RadiusKm defaults to 10 when coordinates are set.
type SearchParams struct {
	Query     string
	MinPrice  *float64
	MaxPrice  *float64
	Bedrooms  *int
	Latitude  *float64
	Longitude *float64
	RadiusKm  float64
	Limit     int
	Offset    int
}

// SearchResult pairs a property with its distance from the search origin
// (only set for radius searches).
type SearchResult struct {
	Property   *domain.Property `json:"property"`
	DistanceKm *float64         `json:"distance_km,omitempty"`
}
