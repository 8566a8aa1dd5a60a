package profile

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrWrongPassword     = errors.New("current password is incorrect")
	ErrCannotSuspendSelf = errors.New("admins cannot suspend their own account")
)
