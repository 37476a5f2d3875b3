package tui

import (
	"log/slog"
	"sync"
	"time"
)

const toastDuration = 4 * time.Second

type toastKind int

const (
	toastSuccess toastKind = iota
	toastError
)

type toast struct {
	text    string
	kind    toastKind
	shownAt time.Time
}

// Toasts implements dashboard.Notifier. Notifications arrive from command
// goroutines; the model reads the latest one when rendering. Every
// notification is also logged.
type Toasts struct {
	logger *slog.Logger
	now    func() time.Time

	mu     sync.Mutex
	latest *toast
}

func NewToasts(logger *slog.Logger) *Toasts {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Toasts{logger: logger, now: time.Now}
}

func (t *Toasts) Success(message string) {
	t.logger.Info("notification", "kind", "success", "message", message)
	t.show(message, toastSuccess)
}

func (t *Toasts) Error(message string) {
	t.logger.Warn("notification", "kind", "error", "message", message)
	t.show(message, toastError)
}

func (t *Toasts) show(message string, kind toastKind) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.latest = &toast{text: message, kind: kind, shownAt: t.now()}
}

// current returns the visible toast, or nil once it has expired.
func (t *Toasts) current() *toast {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.latest == nil || t.now().Sub(t.latest.shownAt) >= toastDuration {
		return nil
	}
	shown := *t.latest
	return &shown
}
