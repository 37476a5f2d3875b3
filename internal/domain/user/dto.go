package user

import (
	"github.com/paskibra-rajawali/admin-dashboard/internal/pkg/pagination"
	"github.com/paskibra-rajawali/admin-dashboard/internal/pkg/validator"
)

// MinPasswordLength applies to both the API and the dashboard's local check.
const MinPasswordLength = 6

// UserResponse represents user data in API responses. Password is never returned.
type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	CreatedAt string `json:"created_at"`
}

type ListUserResponse struct {
	Data       []UserResponse        `json:"data"`
	Pagination pagination.Pagination `json:"pagination"`
}

// RoleAll disables the role filter.
const RoleAll = "all"

type UserFilter struct {
	Role   string // admin, anggota or all
	Search string // username or email

	Page  int
	Limit int
}

func (f *UserFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Limit < 0 || f.Limit > pagination.MaxLimit {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be between 1 and 100",
		})
	}
	f.Page, f.Limit = pagination.Normalize(f.Page, f.Limit)

	if f.Role == "" {
		f.Role = RoleAll
	}
	if f.Role != RoleAll && !Role(f.Role).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: all, admin, anggota",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RoleFilter returns nil when every role is requested.
func (f UserFilter) RoleFilter() *Role {
	if f.Role == "" || f.Role == RoleAll {
		return nil
	}
	r := Role(f.Role)
	return &r
}

// ResetPasswordRequest is sent by an admin for another user's account.
type ResetPasswordRequest struct {
	UserID      string `json:"-"`
	NewPassword string `json:"newPassword"`
}

func (r *ResetPasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if validator.IsEmpty(r.NewPassword) {
		errs = append(errs, validator.ValidationError{
			Field:   "newPassword",
			Message: "newPassword is required",
		})
	} else if !validator.HasMinLength(r.NewPassword, MinPasswordLength) {
		errs = append(errs, validator.ValidationError{
			Field:   "newPassword",
			Message: "password minimal 6 karakter",
		})
	} else if len(r.NewPassword) > 72 {
		// bcrypt ignores anything past 72 bytes
		errs = append(errs, validator.ValidationError{
			Field:   "newPassword",
			Message: "password must not exceed 72 bytes",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
