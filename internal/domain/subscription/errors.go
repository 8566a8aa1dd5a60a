package subscription

import (
	"errors"
	"fmt"
)

var (
	ErrPlanNotFound     = errors.New("subscription plan not found")
	ErrBillNotFound     = errors.New("bill not found")
	ErrBillAlreadyPaid  = errors.New("bill is already paid")
	ErrPaymentDeclined  = errors.New("payment was declined by the gateway")
	ErrPropertyLimit    = errors.New("property limit reached for your current plan")
	ErrNoActivePlan     = errors.New("an active subscription is required for this feature")
	ErrFeatureNotInPlan = errors.New("this feature is not available on your current plan")
)

// MissingFieldError names the payment field that was absent from the request.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required payment field: %s", e.Field)
}
