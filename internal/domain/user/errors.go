package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrPasswordTooShort       = errors.New("password must be at least 6 characters")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
