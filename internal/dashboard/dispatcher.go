package dashboard

import (
	"context"
	"errors"
	"sync"

	"github.com/paskibra-rajawali/admin-dashboard/internal/client"
)

// ErrMutationPending is returned when a mutation for the same entity is still in flight.
var ErrMutationPending = errors.New("mutation already in progress")

// Mutation performs one write and returns the server confirmation message.
type Mutation func(ctx context.Context) (string, error)

// Dispatcher allows one in-flight mutation per entity identifier.
type Dispatcher struct {
	notifier Notifier

	mu      sync.Mutex
	pending map[string]struct{}
}

func NewDispatcher(notifier Notifier) *Dispatcher {
	return &Dispatcher{
		notifier: notifier,
		pending:  make(map[string]struct{}),
	}
}

// Pending reports whether controls for key should be disabled.
func (d *Dispatcher) Pending(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.pending[key]
	return ok
}

// Run executes fn unless a mutation for key is already running. Success and
// failure are both reported through the notifier.
func (d *Dispatcher) Run(ctx context.Context, key string, fn Mutation) error {
	d.mu.Lock()
	if _, ok := d.pending[key]; ok {
		d.mu.Unlock()
		return ErrMutationPending
	}
	d.pending[key] = struct{}{}
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		delete(d.pending, key)
		d.mu.Unlock()
	}()

	message, err := fn(ctx)
	if err != nil {
		d.notifier.Error(client.MessageOf(err))
		return err
	}
	if message == "" {
		message = "Berhasil"
	}
	d.notifier.Success(message)
	return nil
}
