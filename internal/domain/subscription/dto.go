package subscription

// UpgradeRequest selects a target plan by numeric id or slug.
type UpgradeRequest struct {
	PlanID   int64  `json:"plan_id"`
	PlanSlug string `json:"plan_slug"`
}

// UpgradeResult is returned by Upgrade. Pending carries the bill the manager
// must settle before the requested plan activates.
type UpgradeResult struct {
	Subscription *Subscription `json:"subscription"`
	Plan         *Plan         `json:"plan"`
	PendingBill  *Bill         `json:"pending_bill,omitempty"`
	Message      string        `json:"message"`
}

// PaymentRequest carries the five required card fields.
type PaymentRequest struct {
	BillID      int64  `json:"bill_id"`
	CardNumber  string `json:"card_number"`
	CardHolder  string `json:"card_holder"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
	CVV         string `json:"cvv"`
}

// PaymentResult is always returned with a 200 on a reachable gateway; a
// declined charge is a payload, not an error.
type PaymentResult struct {
	Success      bool          `json:"success"`
	Message      string        `json:"message"`
	Bill         *Bill         `json:"bill,omitempty"`
	Subscription *Subscription `json:"subscription,omitempty"`
}

// PaymentMethod is a simulated saved payment method. Nothing is persisted
// against a real gateway.
type PaymentMethod struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Brand string `json:"brand"`
	Last4 string `json:"last4"`
}

// CurrentResponse combines the subscription with its plan and usage.
type CurrentResponse struct {
	Subscription *Subscription `json:"subscription"`
	Plan         *Plan         `json:"plan,omitempty"`
	PendingBill  *Bill         `json:"pending_bill,omitempty"`
}
