package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUserEmailExists         = errors.New("email already registered")
	ErrInvalidEmailFormat      = errors.New("invalid email format")
	ErrInvalidPasswordLength   = errors.New("password must be at least 8 characters")
	ErrInvalidRole             = errors.New("invalid role")
	ErrUserInactive            = errors.New("user account is inactive")
	ErrAdminPrivilegeRequired  = errors.New("admin privilege required")
	ErrSuperAdminRequired      = errors.New("super admin privilege required")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)
