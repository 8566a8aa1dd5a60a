package billing

import "errors"

var (
	ErrBillNotFound    = errors.New("bill not found")
	ErrBillAlreadyPaid = errors.New("bill has already been paid")
	ErrNotAllowed      = errors.New("not allowed to manage billing on this property")
	ErrNotYourBill     = errors.New("bill does not belong to your lease")
	ErrTenancyNotFound = errors.New("lease not found")
	ErrTenancyEnded    = errors.New("cannot bill an ended lease")
	ErrNoActiveLease   = errors.New("no active lease on this property")
	ErrPaymentDeclined = errors.New("payment was declined")
)
