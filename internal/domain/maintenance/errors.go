package maintenance

import "errors"

var (
	ErrRequestNotFound   = errors.New("maintenance request not found")
	ErrNoActiveLease     = errors.New("no active lease on this property")
	ErrNotAllowed        = errors.New("not allowed to manage maintenance on this property")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidPriority   = errors.New("invalid priority")
)
