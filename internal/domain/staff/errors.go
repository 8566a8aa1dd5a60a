package staff

import "errors"

var (
	ErrNotManager       = errors.New("only the property manager can manage staff")
	ErrFeatureNotInPlan = errors.New("current plan does not include staff management")
	ErrUserNotFound     = errors.New("user not found")
	ErrNotStaffRole     = errors.New("user does not have the staff role")
	ErrAlreadyStaff     = errors.New("user is already staff on this property")
	ErrStaffNotFound    = errors.New("staff member not found")
)
