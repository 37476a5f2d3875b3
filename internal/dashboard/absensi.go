package dashboard

import (
	"context"

	"github.com/paskibra-rajawali/admin-dashboard/internal/client"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/absensi"
)

type AbsensiAPI interface {
	ListAbsensi(ctx context.Context, q client.AbsensiQuery) (client.Page[absensi.AbsensiResponse], error)
}

// AbsensiPage is read-only; attendance is recorded by the member app.
type AbsensiPage struct {
	*Controller[AbsensiFilter, absensi.AbsensiResponse]

	api       AbsensiAPI
	uploadURL string
}

func NewAbsensiPage(api AbsensiAPI, notifier Notifier, uploadURL string, limit int) *AbsensiPage {
	p := &AbsensiPage{api: api, uploadURL: uploadURL}
	p.Controller = NewController(p.fetch, notifier, NewQueryState(AbsensiFilter{}, limit))
	return p
}

func (p *AbsensiPage) fetch(ctx context.Context, q QueryState[AbsensiFilter]) (ListResult[absensi.AbsensiResponse], error) {
	page, err := p.api.ListAbsensi(ctx, client.AbsensiQuery{
		StartDate: q.Filter.StartDate,
		EndDate:   q.Filter.EndDate,
		Search:    q.Filter.Search,
		Page:      q.Page,
		Limit:     q.Limit,
	})
	if err != nil {
		return ListResult[absensi.AbsensiResponse]{}, err
	}
	return ListResult[absensi.AbsensiResponse]{Items: page.Items, Pagination: page.Pagination}, nil
}

// PhotoURL is the absolute URL of a record's attendance photo, or "-".
func (p *AbsensiPage) PhotoURL(rec absensi.AbsensiResponse) string {
	return ImageURL(p.uploadURL, rec.Foto)
}
