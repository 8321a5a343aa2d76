package user

import (
	"strings"
	"time"
)

type Role string

const (
	RoleSuperAdmin Role = "super_admin" // Platform owner - full access
	RoleAdmin      Role = "admin"       // Manages employees, tasks and leave
	RoleEmployee   Role = "employee"    // Regular employee
)

// NormalizeRole maps the loosely cased role spellings found in stored data
// ("Admin", "SUPER ADMIN", "superadmin") onto the closed Role enumeration.
// It is applied once at the system boundary; comparisons elsewhere use the
// enum values directly.
func NormalizeRole(raw string) (Role, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")

	switch s {
	case "super_admin", "superadmin":
		return RoleSuperAdmin, true
	case "admin":
		return RoleAdmin, true
	case "employee":
		return RoleEmployee, true
	}
	return "", false
}

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsSuperAdmin checks if user is the platform owner
func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

// IsAdmin checks if user is admin or super admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}

// CanManageEmployees checks if user can create, update and delete employees
func (u *User) CanManageEmployees() bool {
	return u.IsAdmin()
}
