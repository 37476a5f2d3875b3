package dashboard

import (
	"context"
	"sync"

	"github.com/paskibra-rajawali/admin-dashboard/internal/client"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/statistics"
)

// EmptyStatisticsMessage is shown when no statistics are loaded.
const EmptyStatisticsMessage = "Tidak ada data statistik"

type StatisticsAPI interface {
	Statistics(ctx context.Context, period statistics.Period) (statistics.StatisticsResponse, error)
}

// Share is one count with its percentage of the group total.
type Share struct {
	Label   string
	Count   int64
	Percent float64
}

// StatisticsView is the rendered statistics page. Empty is true when
// nothing is loaded, in which case only EmptyMessage is shown.
type StatisticsView struct {
	Period       statistics.Period
	Loading      bool
	Empty        bool
	EmptyMessage string

	PendaftarTotal int64
	Pendaftar      []Share
	TanpaKTA       int64
	AbsensiTotal   int64
	Absensi        []Share
	Gender         []Share
}

type StatisticsPage struct {
	api      StatisticsAPI
	notifier Notifier

	mu      sync.Mutex
	period  statistics.Period
	stats   *statistics.StatisticsResponse
	loading bool
	seq     uint64
	cancel  context.CancelFunc
}

func NewStatisticsPage(api StatisticsAPI, notifier Notifier) *StatisticsPage {
	return &StatisticsPage{api: api, notifier: notifier, period: statistics.PeriodAll}
}

func (p *StatisticsPage) Load(ctx context.Context) error {
	return p.fetch(ctx, nil)
}

// SetPeriod changes the window and refetches; the latest request wins.
func (p *StatisticsPage) SetPeriod(ctx context.Context, period statistics.Period) error {
	return p.fetch(ctx, &period)
}

func (p *StatisticsPage) fetch(ctx context.Context, period *statistics.Period) error {
	p.mu.Lock()
	if period != nil {
		p.period = *period
	}
	if p.cancel != nil {
		p.cancel()
	}
	reqCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	p.cancel = cancel
	p.seq++
	seq, current := p.seq, p.period
	p.loading = true
	p.mu.Unlock()

	stats, err := p.api.Statistics(reqCtx, current)

	p.mu.Lock()
	if seq != p.seq {
		p.mu.Unlock()
		return ErrStale
	}
	p.loading = false
	p.cancel = nil
	if err != nil {
		// Counts from another period must not be shown under this one.
		p.stats = nil
		p.mu.Unlock()
		p.notifier.Error(client.MessageOf(err))
		return err
	}
	p.stats = &stats
	p.mu.Unlock()
	return nil
}

func (p *StatisticsPage) View() StatisticsView {
	p.mu.Lock()
	defer p.mu.Unlock()

	view := StatisticsView{Period: p.period, Loading: p.loading}
	if p.stats == nil {
		view.Empty = true
		view.EmptyMessage = EmptyStatisticsMessage
		return view
	}

	s := p.stats
	view.PendaftarTotal = s.Pendaftar.Total
	view.TanpaKTA = s.Pendaftar.TanpaKTA
	view.Pendaftar = []Share{
		share("Menunggu", s.Pendaftar.Pending, s.Pendaftar.Total),
		share("Diterima", s.Pendaftar.Diterima, s.Pendaftar.Total),
		share("Ditolak", s.Pendaftar.Ditolak, s.Pendaftar.Total),
	}
	view.AbsensiTotal = s.Absensi.Total
	view.Absensi = []Share{
		share("Hadir", s.Absensi.Hadir, s.Absensi.Total),
		share("Izin", s.Absensi.Izin, s.Absensi.Total),
		share("Sakit", s.Absensi.Sakit, s.Absensi.Total),
		share("Alpha", s.Absensi.Alpha, s.Absensi.Total),
	}
	genderTotal := s.Gender.LakiLaki + s.Gender.Perempuan
	view.Gender = []Share{
		share("Laki-laki", s.Gender.LakiLaki, genderTotal),
		share("Perempuan", s.Gender.Perempuan, genderTotal),
	}
	return view
}

func share(label string, count, total int64) Share {
	return Share{Label: label, Count: count, Percent: Percent(count, total)}
}
