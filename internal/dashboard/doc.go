// Package dashboard holds the state behind every admin page: query state,
// the fetch controller, the mutation dispatcher and the derived presentation
// values. It has no rendering code; internal/tui draws what it exposes.
package dashboard

import (
	"context"

	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/user"
)

// Notifier shows transient messages to the admin.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Session is the logged-in admin. Pages only read it; logout is delegated.
type Session interface {
	CurrentUser() *user.UserResponse
	Logout(ctx context.Context) error
}
