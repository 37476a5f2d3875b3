package user

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"   // Dashboard access
	RoleAnggota Role = "anggota" // Regular member
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleAnggota
}

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash *string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user may use the admin dashboard
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
