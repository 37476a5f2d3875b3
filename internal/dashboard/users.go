package dashboard

import (
	"context"
	"errors"
	"sync"
	"unicode/utf8"

	"github.com/paskibra-rajawali/admin-dashboard/internal/client"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/user"
)

type UserAPI interface {
	ListUsers(ctx context.Context, q client.UserQuery) (client.Page[user.UserResponse], error)
	ResetPassword(ctx context.Context, userID, newPassword string) (string, error)
}

// PasswordDialog is the reset-password modal state.
type PasswordDialog struct {
	Open     bool
	UserID   string
	Username string
	Password string
	Err      string
}

type UsersPage struct {
	*Controller[UserFilter, user.UserResponse]

	api       UserAPI
	notifier  Notifier
	mutations *Dispatcher

	mu     sync.Mutex
	dialog PasswordDialog
}

func NewUsersPage(api UserAPI, notifier Notifier, limit int) *UsersPage {
	p := &UsersPage{
		api:       api,
		notifier:  notifier,
		mutations: NewDispatcher(notifier),
	}
	p.Controller = NewController(p.fetch, notifier, NewQueryState(UserFilter{Role: user.RoleAll}, limit))
	return p
}

func (p *UsersPage) fetch(ctx context.Context, q QueryState[UserFilter]) (ListResult[user.UserResponse], error) {
	page, err := p.api.ListUsers(ctx, client.UserQuery{
		Role:   q.Filter.Role,
		Search: q.Filter.Search,
		Page:   q.Page,
		Limit:  q.Limit,
	})
	if err != nil {
		return ListResult[user.UserResponse]{}, err
	}
	return ListResult[user.UserResponse]{Items: page.Items, Pagination: page.Pagination}, nil
}

func (p *UsersPage) Pending(id string) bool {
	return p.mutations.Pending(id)
}

func (p *UsersPage) OpenReset(u user.UserResponse) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dialog = PasswordDialog{Open: true, UserID: u.ID, Username: u.Username}
}

func (p *UsersPage) SetPassword(password string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dialog.Password = password
}

func (p *UsersPage) CancelReset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dialog = PasswordDialog{}
}

func (p *UsersPage) Dialog() PasswordDialog {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dialog
}

// SubmitReset resets the password of the user in the open dialog.
func (p *UsersPage) SubmitReset(ctx context.Context) error {
	d := p.Dialog()
	if !d.Open {
		return nil
	}
	return p.ResetPassword(ctx, d.UserID, d.Password)
}

// ResetPassword checks the minimum length locally before any request. On
// success the dialog is closed and cleared; on failure it stays open with
// the error.
func (p *UsersPage) ResetPassword(ctx context.Context, id, password string) error {
	if utf8.RuneCountInString(password) < user.MinPasswordLength {
		err := &client.ValidationError{Message: "Password minimal 6 karakter"}
		p.failDialog(id, err.Message)
		p.notifier.Error(err.Message)
		return err
	}

	err := p.mutations.Run(ctx, id, func(ctx context.Context) (string, error) {
		return p.api.ResetPassword(ctx, id, password)
	})
	if errors.Is(err, ErrMutationPending) {
		return err
	}
	if err != nil {
		p.failDialog(id, client.MessageOf(err))
		return err
	}

	p.mu.Lock()
	if p.dialog.UserID == id {
		p.dialog = PasswordDialog{}
	}
	p.mu.Unlock()
	return nil
}

func (p *UsersPage) failDialog(id, message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.dialog.Open && p.dialog.UserID == id {
		p.dialog.Err = message
	}
}
