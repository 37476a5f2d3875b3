package user

import "context"

type UserService interface {
	List(ctx context.Context, filter UserFilter) (ListUserResponse, error)
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
}
