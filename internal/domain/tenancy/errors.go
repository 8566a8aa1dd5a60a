package tenancy

import "errors"

var (
	ErrNotAllowed      = errors.New("not allowed to manage leases on this property")
	ErrUserNotFound    = errors.New("user not found")
	ErrNotTenantRole   = errors.New("user does not have the tenant role")
	ErrUnitNotFound    = errors.New("unit not found")
	ErrUnitOccupied    = errors.New("unit already has an active lease")
	ErrTenancyNotFound = errors.New("lease not found")
	ErrTenancyEnded    = errors.New("lease has already ended")
	ErrNoActiveLease   = errors.New("no active lease on this property")
)
