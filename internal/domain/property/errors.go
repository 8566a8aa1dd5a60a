package property

import "errors"

var (
	ErrNotFound       = errors.New("property not found")
	ErrUnitNotFound   = errors.New("unit not found")
	ErrNotOwner       = errors.New("you do not manage this property")
	ErrInvalidRadius  = errors.New("radius must be positive")
	ErrMissingCoords  = errors.New("latitude and longitude are both required for radius search")
	ErrNotApproved    = errors.New("property is not approved")
	ErrOwnProperty    = errors.New("you manage this property")
	ErrSenderNotFound = errors.New("sender account not found")
	ErrPropertyLimit  = errors.New("property limit reached for your current plan")
	ErrNoSubscription = errors.New("an active subscription is required to list properties")
)
