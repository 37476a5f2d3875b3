package client

import (
	"context"
	"sync"

	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/user"
)

// Session holds the logged-in admin and the client carrying its token.
type Session struct {
	client *Client

	mu   sync.RWMutex
	user *user.UserResponse
}

// Login authenticates and returns a session bound to c.
func Login(ctx context.Context, c *Client, username, password string) (*Session, error) {
	tok, err := c.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	u := tok.User
	return &Session{client: c, user: &u}, nil
}

// CurrentUser returns nil after logout.
func (s *Session) CurrentUser() *user.UserResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	return s.client.Logout(ctx)
}
