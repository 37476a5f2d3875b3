package dashboard

import (
	"context"
	"sync"

	"github.com/paskibra-rajawali/admin-dashboard/internal/client"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/pendaftar"
)

// PendaftarAPI is the part of the admin client the applicant pages use.
type PendaftarAPI interface {
	ListPendaftar(ctx context.Context, q client.PendaftarQuery) (client.Page[pendaftar.PendaftarResponse], error)
	GetPendaftar(ctx context.Context, id string) (pendaftar.PendaftarResponse, error)
	UpdatePendaftarStatus(ctx context.Context, id string, status pendaftar.Status) (string, error)
	GenerateKTA(ctx context.Context, pendaftarID string) (client.KTAResult, error)
}

// PendaftarPage lists applicants and applies status and card number mutations.
type PendaftarPage struct {
	*Controller[PendaftarFilter, pendaftar.PendaftarResponse]

	api       PendaftarAPI
	notifier  Notifier
	mutations *Dispatcher

	mu     sync.Mutex
	detail *pendaftar.PendaftarResponse
}

func NewPendaftarPage(api PendaftarAPI, notifier Notifier, limit int) *PendaftarPage {
	return newPendaftarPage(api, notifier, PendaftarFilter{Status: pendaftar.StatusAll}, limit)
}

// NewKTAPage lists accepted applicants that still need a card number.
func NewKTAPage(api PendaftarAPI, notifier Notifier, limit int) *PendaftarPage {
	return newPendaftarPage(api, notifier, PendaftarFilter{Status: string(pendaftar.StatusDiterima), NeedsKTA: true}, limit)
}

func newPendaftarPage(api PendaftarAPI, notifier Notifier, filter PendaftarFilter, limit int) *PendaftarPage {
	p := &PendaftarPage{
		api:       api,
		notifier:  notifier,
		mutations: NewDispatcher(notifier),
	}
	p.Controller = NewController(p.fetch, notifier, NewQueryState(filter, limit))
	return p
}

func (p *PendaftarPage) fetch(ctx context.Context, q QueryState[PendaftarFilter]) (ListResult[pendaftar.PendaftarResponse], error) {
	query := client.PendaftarQuery{
		Status: q.Filter.Status,
		Search: q.Filter.Search,
		Page:   q.Page,
		Limit:  q.Limit,
	}
	if q.Filter.NeedsKTA {
		hasKTA := false
		query.Status = string(pendaftar.StatusDiterima)
		query.HasKTA = &hasKTA
	}
	page, err := p.api.ListPendaftar(ctx, query)
	if err != nil {
		return ListResult[pendaftar.PendaftarResponse]{}, err
	}
	return ListResult[pendaftar.PendaftarResponse]{Items: page.Items, Pagination: page.Pagination}, nil
}

// Pending reports whether a mutation for the applicant is in flight.
func (p *PendaftarPage) Pending(id string) bool {
	return p.mutations.Pending(id)
}

// UpdateStatus accepts or rejects an applicant, then refetches the list.
// On failure the list is left as it was.
func (p *PendaftarPage) UpdateStatus(ctx context.Context, id string, status pendaftar.Status) error {
	if status != pendaftar.StatusDiterima && status != pendaftar.StatusDitolak {
		err := &client.ValidationError{Message: "Status harus diterima atau ditolak"}
		p.notifier.Error(err.Message)
		return err
	}

	err := p.mutations.Run(ctx, id, func(ctx context.Context) (string, error) {
		return p.api.UpdatePendaftarStatus(ctx, id, status)
	})
	if err != nil {
		return err
	}
	return p.Load(ctx)
}

// GenerateKTA assigns a card number without refetching. In the
// needs-card view the row is removed; elsewhere it is updated in place.
func (p *PendaftarPage) GenerateKTA(ctx context.Context, id string) error {
	var nomorKTA string
	err := p.mutations.Run(ctx, id, func(ctx context.Context) (string, error) {
		res, err := p.api.GenerateKTA(ctx, id)
		nomorKTA = res.NomorKTA
		return res.Message, err
	})
	if err != nil {
		return err
	}

	if !p.Snapshot().Query.Filter.NeedsKTA {
		p.Patch(func(res ListResult[pendaftar.PendaftarResponse]) ListResult[pendaftar.PendaftarResponse] {
			for i := range res.Items {
				if res.Items[i].ID == id {
					res.Items[i].NomorKTA = &nomorKTA
				}
			}
			return res
		})
		return nil
	}

	var emptied bool
	p.Patch(func(res ListResult[pendaftar.PendaftarResponse]) ListResult[pendaftar.PendaftarResponse] {
		res, _ = removeItem(res, func(item pendaftar.PendaftarResponse) bool { return item.ID == id })
		emptied = len(res.Items) == 0
		return res
	})

	// Removing the last row of a later page steps back so the view is not blank.
	if view := p.Snapshot(); emptied && view.Query.Page > 1 {
		return p.SetPage(ctx, view.Query.Page-1)
	}
	return nil
}

// OpenDetail loads the full applicant record for the detail modal.
func (p *PendaftarPage) OpenDetail(ctx context.Context, id string) error {
	detail, err := p.api.GetPendaftar(ctx, id)
	if err != nil {
		p.notifier.Error(client.MessageOf(err))
		return err
	}
	p.mu.Lock()
	p.detail = &detail
	p.mu.Unlock()
	return nil
}

func (p *PendaftarPage) CloseDetail() {
	p.mu.Lock()
	p.detail = nil
	p.mu.Unlock()
}

// Detail returns the open record, or nil when the modal is closed.
func (p *PendaftarPage) Detail() *pendaftar.PendaftarResponse {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.detail == nil {
		return nil
	}
	d := *p.detail
	return &d
}
