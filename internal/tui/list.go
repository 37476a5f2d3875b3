package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/paskibra-rajawali/admin-dashboard/internal/dashboard"
)

type column struct {
	title string
	width int
}

// listing is the type-erased view of a list page the model works with.
type listing interface {
	Load(ctx context.Context) tea.Cmd
	Next(ctx context.Context) tea.Cmd
	Prev(ctx context.Context) tea.Cmd
	Search(ctx context.Context, term string) tea.Cmd
	SearchTerm() string
	Len() int
	IDAt(i int) string
	Loading() bool
	Loaded() bool
	Render(theme Theme, cursor int, pending func(id string) bool) string
	Close()
}

// listTab adapts a dashboard controller to listing.
type listTab[F, T any] struct {
	tab     Tab
	ctrl    *dashboard.Controller[F, T]
	columns []column
	cells   func(theme Theme, item T) []string
	id      func(item T) string
	search  func(filter F, term string) F
	term    func(filter F) string
}

func (l *listTab[F, T]) issue(req *dashboard.Request[F, T]) tea.Cmd {
	if req == nil {
		return nil
	}
	tab := l.tab
	return func() tea.Msg {
		return fetchedMsg{tab: tab, err: req.Do()}
	}
}

func (l *listTab[F, T]) Load(ctx context.Context) tea.Cmd {
	return l.issue(l.ctrl.Issue(ctx, nil))
}

func (l *listTab[F, T]) Next(ctx context.Context) tea.Cmd {
	return l.issue(l.ctrl.IssueNext(ctx))
}

func (l *listTab[F, T]) Prev(ctx context.Context) tea.Cmd {
	return l.issue(l.ctrl.IssuePrev(ctx))
}

func (l *listTab[F, T]) Search(ctx context.Context, term string) tea.Cmd {
	return l.issue(l.ctrl.Issue(ctx, func(q dashboard.QueryState[F]) dashboard.QueryState[F] {
		return q.WithFilter(l.search(q.Filter, term))
	}))
}

// Filter applies an arbitrary filter change; the page returns to 1.
func (l *listTab[F, T]) Filter(ctx context.Context, change func(F) F) tea.Cmd {
	return l.issue(l.ctrl.Issue(ctx, func(q dashboard.QueryState[F]) dashboard.QueryState[F] {
		return q.WithFilter(change(q.Filter))
	}))
}

func (l *listTab[F, T]) SearchTerm() string {
	return l.term(l.ctrl.Snapshot().Query.Filter)
}

func (l *listTab[F, T]) Len() int {
	return len(l.ctrl.Snapshot().Result.Items)
}

func (l *listTab[F, T]) IDAt(i int) string {
	items := l.ctrl.Snapshot().Result.Items
	if i < 0 || i >= len(items) {
		return ""
	}
	return l.id(items[i])
}

func (l *listTab[F, T]) ItemAt(i int) (T, bool) {
	items := l.ctrl.Snapshot().Result.Items
	if i < 0 || i >= len(items) {
		var zero T
		return zero, false
	}
	return items[i], true
}

func (l *listTab[F, T]) Loading() bool { return l.ctrl.Snapshot().Loading }

func (l *listTab[F, T]) Loaded() bool { return l.ctrl.Snapshot().Loaded }

func (l *listTab[F, T]) Close() { l.ctrl.Close() }

// Render draws the table, or only the loading indicator while a request is outstanding.
func (l *listTab[F, T]) Render(theme Theme, cursor int, pending func(id string) bool) string {
	view := l.ctrl.Snapshot()
	faint := lipgloss.NewStyle().Foreground(theme.FaintText)

	if view.Loading {
		return faint.Render("Memuat data...")
	}

	var b strings.Builder
	header := make([]string, len(l.columns))
	for i, col := range l.columns {
		header[i] = fit(col.title, col.width)
	}
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(theme.HeaderForeground).Render(strings.Join(header, " ")))
	b.WriteString("\n")

	if len(view.Result.Items) == 0 {
		b.WriteString(faint.Render("Tidak ada data"))
		b.WriteString("\n")
	}

	selected := lipgloss.NewStyle().Background(theme.SelectedBackground).Foreground(theme.SelectedForeground)
	for i, item := range view.Result.Items {
		cells := l.cells(theme, item)
		parts := make([]string, len(l.columns))
		for c, col := range l.columns {
			if c < len(cells) {
				parts[c] = fit(cells[c], col.width)
			}
		}
		line := strings.Join(parts, " ")
		if pending != nil && pending(l.id(item)) {
			line += faint.Render("  memproses...")
		}
		if i == cursor {
			line = selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	pager := view.Pager()
	b.WriteString("\n")
	b.WriteString(faint.Render(dashboard.RangeLabel(view.Result.Pagination) + "  ·  " + pager.Label() + pagerHints(pager)))
	return b.String()
}

func pagerHints(p dashboard.Pager) string {
	var hints []string
	if p.CanPrev() {
		hints = append(hints, "← sebelumnya")
	}
	if p.CanNext() {
		hints = append(hints, "berikutnya →")
	}
	if len(hints) == 0 {
		return ""
	}
	return "  ·  " + strings.Join(hints, "  ")
}

// fit pads or truncates s to width display cells.
func fit(s string, width int) string {
	if lipgloss.Width(s) > width {
		runes := []rune(s)
		for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
			runes = runes[:len(runes)-1]
		}
		s = string(runes) + "…"
	}
	return s + strings.Repeat(" ", max(0, width-lipgloss.Width(s)))
}
