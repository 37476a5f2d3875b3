package dashboard

import (
	"context"
	"errors"
	"sync"

	"github.com/paskibra-rajawali/admin-dashboard/internal/client"
	"github.com/paskibra-rajawali/admin-dashboard/internal/pkg/pagination"
)

// ErrStale is returned by Request.Do when a newer request was issued meanwhile.
// The response was discarded without touching state or notifying.
var ErrStale = errors.New("response superseded by a newer request")

// ListResult is one page of items plus its pagination metadata.
type ListResult[T any] struct {
	Items      []T
	Pagination pagination.Pagination
}

// Fetcher performs the list request for a query state.
type Fetcher[F, T any] func(ctx context.Context, q QueryState[F]) (ListResult[T], error)

// View is an immutable snapshot for rendering. While Loading the table must not be drawn.
type View[F, T any] struct {
	Query   QueryState[F]
	Result  ListResult[T]
	Loading bool
	Loaded  bool
}

func (v View[F, T]) Pager() Pager {
	return Pager{Page: v.Query.Page, TotalPages: v.Result.Pagination.TotalPages}
}

// Controller owns the query state and list result of one page. Every query
// change issues exactly one request; only the latest issued request may
// update the result.
type Controller[F, T any] struct {
	fetch    Fetcher[F, T]
	notifier Notifier

	mu      sync.Mutex
	query   QueryState[F]
	result  ListResult[T]
	loading bool
	loaded  bool
	seq     uint64
	cancel  context.CancelFunc
	closed  bool
}

func NewController[F, T any](fetch Fetcher[F, T], notifier Notifier, initial QueryState[F]) *Controller[F, T] {
	return &Controller[F, T]{
		fetch:    fetch,
		notifier: notifier,
		query:    initial,
		result:   ListResult[T]{Items: []T{}},
	}
}

// Request is one issued list fetch.
type Request[F, T any] struct {
	c      *Controller[F, T]
	ctx    context.Context
	cancel context.CancelFunc
	seq    uint64
	query  QueryState[F]
}

func (r *Request[F, T]) Seq() uint64 { return r.seq }

func (r *Request[F, T]) Query() QueryState[F] { return r.query }

// Do performs the fetch and applies the response if it is still the latest.
func (r *Request[F, T]) Do() error {
	defer r.cancel()
	res, err := r.c.fetch(r.ctx, r.query)
	return r.c.resolve(r, res, err)
}

// Issue applies mutate to the query state, supersedes any in-flight request
// and returns the new one. mutate may be nil to refetch the current state.
func (c *Controller[F, T]) Issue(ctx context.Context, mutate func(QueryState[F]) QueryState[F]) *Request[F, T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	if mutate != nil {
		c.query = mutate(c.query)
	}
	if c.cancel != nil {
		c.cancel()
	}

	reqCtx, cancel := context.WithCancel(ctx)
	c.seq++
	c.cancel = cancel
	c.loading = !c.closed

	return &Request[F, T]{
		c:      c,
		ctx:    reqCtx,
		cancel: cancel,
		seq:    c.seq,
		query:  c.query,
	}
}

func (c *Controller[F, T]) resolve(r *Request[F, T], res ListResult[T], err error) error {
	c.mu.Lock()
	if c.closed || r.seq != c.seq {
		c.mu.Unlock()
		return ErrStale
	}
	c.loading = false
	c.cancel = nil
	if err != nil {
		c.mu.Unlock()
		c.notifier.Error(client.MessageOf(err))
		return err
	}
	if res.Items == nil {
		res.Items = []T{}
	}
	c.result = res
	c.loaded = true
	c.mu.Unlock()
	return nil
}

// Load fetches the current query state (initial mount or refresh).
func (c *Controller[F, T]) Load(ctx context.Context) error {
	return c.Issue(ctx, nil).Do()
}

func (c *Controller[F, T]) SetFilter(ctx context.Context, filter F) error {
	return c.Issue(ctx, func(q QueryState[F]) QueryState[F] { return q.WithFilter(filter) }).Do()
}

func (c *Controller[F, T]) SetPage(ctx context.Context, page int) error {
	return c.Issue(ctx, func(q QueryState[F]) QueryState[F] { return q.WithPage(page) }).Do()
}

func (c *Controller[F, T]) SetLimit(ctx context.Context, limit int) error {
	return c.Issue(ctx, func(q QueryState[F]) QueryState[F] { return q.WithLimit(limit) }).Do()
}

// NextPage is a no-op while the next control is disabled.
func (c *Controller[F, T]) NextPage(ctx context.Context) error {
	req := c.IssueNext(ctx)
	if req == nil {
		return nil
	}
	return req.Do()
}

// PrevPage is a no-op while the previous control is disabled.
func (c *Controller[F, T]) PrevPage(ctx context.Context) error {
	req := c.IssuePrev(ctx)
	if req == nil {
		return nil
	}
	return req.Do()
}

// IssueNext returns nil when there is no next page.
func (c *Controller[F, T]) IssueNext(ctx context.Context) *Request[F, T] {
	pager := c.Snapshot().Pager()
	if !pager.CanNext() {
		return nil
	}
	return c.Issue(ctx, func(q QueryState[F]) QueryState[F] { return q.WithPage(pager.Page + 1) })
}

// IssuePrev returns nil on the first page.
func (c *Controller[F, T]) IssuePrev(ctx context.Context) *Request[F, T] {
	pager := c.Snapshot().Pager()
	if !pager.CanPrev() {
		return nil
	}
	return c.Issue(ctx, func(q QueryState[F]) QueryState[F] { return q.WithPage(pager.Page - 1) })
}

// Patch edits the current result in place without a request.
func (c *Controller[F, T]) Patch(fn func(ListResult[T]) ListResult[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.result = fn(c.result)
}

func (c *Controller[F, T]) Snapshot() View[F, T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]T, len(c.result.Items))
	copy(items, c.result.Items)
	return View[F, T]{
		Query:   c.query,
		Result:  ListResult[T]{Items: items, Pagination: c.result.Pagination},
		Loading: c.loading,
		Loaded:  c.loaded,
	}
}

// Close abandons any in-flight request; late responses are ignored.
func (c *Controller[F, T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.loading = false
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// removeItem drops the first item matching match and shrinks the totals.
func removeItem[T any](res ListResult[T], match func(T) bool) (ListResult[T], bool) {
	for i, item := range res.Items {
		if !match(item) {
			continue
		}
		items := make([]T, 0, len(res.Items)-1)
		items = append(items, res.Items[:i]...)
		items = append(items, res.Items[i+1:]...)
		res.Items = items
		if res.Pagination.TotalItems > 0 {
			res.Pagination.TotalItems--
		}
		res.Pagination.TotalPages = pagination.TotalPages(res.Pagination.TotalItems, res.Pagination.Limit)
		return res, true
	}
	return res, false
}
