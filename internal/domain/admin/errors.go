package admin

import "errors"

var (
	ErrPropertyNotFound       = errors.New("property not found")
	ErrNotPendingApproval     = errors.New("property is not awaiting approval")
	ErrReasonRequired         = errors.New("rejection reason is required")
	ErrSubdomainTaken         = errors.New("portal subdomain is already taken")
	ErrInvalidSubdomain       = errors.New("invalid portal subdomain")
	ErrSubscriptionNotFound   = errors.New("subscription not found")
	ErrSubscriptionNotPending = errors.New("subscription is not awaiting activation")
	ErrSubscriptionBillUnpaid = errors.New("subscription has no paid bill")
)
