package tui

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paskibra-rajawali/admin-dashboard/internal/client"
	"github.com/paskibra-rajawali/admin-dashboard/internal/dashboard"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/absensi"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/pendaftar"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/statistics"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/user"
	"github.com/paskibra-rajawali/admin-dashboard/internal/pkg/pagination"
)

// fakeAPI serves every page from in-memory data and records calls.
type fakeAPI struct {
	mu          sync.Mutex
	applicants  []pendaftar.PendaftarResponse
	users       []user.UserResponse
	queries     []client.PendaftarQuery
	statusCalls []pendaftar.Status
	resetCalls  int
	statsErr    error
}

func (f *fakeAPI) ListPendaftar(_ context.Context, q client.PendaftarQuery) (client.Page[pendaftar.PendaftarResponse], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, q)
	var items []pendaftar.PendaftarResponse
	for _, a := range f.applicants {
		if q.Search != "" && !strings.Contains(a.NamaLengkap, q.Search) {
			continue
		}
		if q.HasKTA != nil && !*q.HasKTA && a.NomorKTA != nil {
			continue
		}
		items = append(items, a)
	}
	return client.Page[pendaftar.PendaftarResponse]{Items: items, Pagination: pagination.New(q.Page, q.Limit, int64(len(items)))}, nil
}

func (f *fakeAPI) GetPendaftar(_ context.Context, id string) (pendaftar.PendaftarResponse, error) {
	for _, a := range f.applicants {
		if a.ID == id {
			return a, nil
		}
	}
	return pendaftar.PendaftarResponse{}, &client.APIError{Status: 404, Message: "Pendaftar tidak ditemukan"}
}

func (f *fakeAPI) UpdatePendaftarStatus(_ context.Context, _ string, status pendaftar.Status) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statusCalls = append(f.statusCalls, status)
	return "Pendaftar berhasil diterima", nil
}

func (f *fakeAPI) GenerateKTA(_ context.Context, id string) (client.KTAResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	nomor := "RJW-2026-0001"
	for i := range f.applicants {
		if f.applicants[i].ID == id {
			f.applicants[i].NomorKTA = &nomor
		}
	}
	return client.KTAResult{Message: "Nomor KTA berhasil dibuat: " + nomor, NomorKTA: nomor}, nil
}

func (f *fakeAPI) ListUsers(_ context.Context, q client.UserQuery) (client.Page[user.UserResponse], error) {
	return client.Page[user.UserResponse]{Items: f.users, Pagination: pagination.New(q.Page, q.Limit, int64(len(f.users)))}, nil
}

func (f *fakeAPI) ResetPassword(context.Context, string, string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetCalls++
	return "Password berhasil direset", nil
}

func (f *fakeAPI) ListAbsensi(_ context.Context, q client.AbsensiQuery) (client.Page[absensi.AbsensiResponse], error) {
	return client.Page[absensi.AbsensiResponse]{
		Items:      []absensi.AbsensiResponse{{ID: "a-1", Kampus: "Kampus A", Tanggal: "2026-01-02"}},
		Pagination: pagination.New(q.Page, q.Limit, 1),
	}, nil
}

func (f *fakeAPI) Statistics(context.Context, statistics.Period) (statistics.StatisticsResponse, error) {
	return statistics.StatisticsResponse{}, f.statsErr
}

type fakeSession struct{ loggedOut bool }

func (s *fakeSession) CurrentUser() *user.UserResponse {
	return &user.UserResponse{ID: "admin-1", Username: "admin", Role: user.RoleAdmin}
}

func (s *fakeSession) Logout(context.Context) error {
	s.loggedOut = true
	return nil
}

func testModel(t *testing.T, api *fakeAPI) (Model, *Toasts) {
	t.Helper()
	toasts := NewToasts(nil)
	model := NewModel(context.Background(), Config{
		Pages: Pages{
			Pendaftar:  dashboard.NewPendaftarPage(api, toasts, 10),
			KTA:        dashboard.NewKTAPage(api, toasts, 10),
			Users:      dashboard.NewUsersPage(api, toasts, 10),
			Absensi:    dashboard.NewAbsensiPage(api, toasts, "http://localhost:8080/uploads", 10),
			Statistics: dashboard.NewStatisticsPage(api, toasts),
		},
		Session:   &fakeSession{},
		Toasts:    toasts,
		UploadURL: "http://localhost:8080/uploads",
	})
	// A blinking cursor would return timer commands from every keystroke.
	model.input.Cursor.SetMode(cursor.CursorStatic)
	model.password.Cursor.SetMode(cursor.CursorStatic)
	return model, toasts
}

func testAPI() *fakeAPI {
	sekolah := "SMAN 1"
	return &fakeAPI{
		applicants: []pendaftar.PendaftarResponse{
			{ID: "p-1", NamaLengkap: "Budi Santoso", Username: "budi", Status: pendaftar.StatusPending, AsalSekolah: &sekolah},
			{ID: "p-2", NamaLengkap: "Siti Aminah", Username: "siti", Status: pendaftar.StatusDiterima},
		},
		users: []user.UserResponse{{ID: "u-1", Username: "budi", Role: user.RoleAnggota}},
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// step sends message and feeds any resulting fetch or mutation message back.
func step(t *testing.T, model Model, message tea.Msg) Model {
	t.Helper()
	updated, cmd := model.Update(message)
	model = updated.(Model)
	if cmd == nil {
		return model
	}
	switch result := cmd().(type) {
	case fetchedMsg, mutatedMsg, detailMsg, loggedOutMsg:
		updated, _ = model.Update(result)
		model = updated.(Model)
	}
	return model
}

func initModel(t *testing.T, model Model) Model {
	t.Helper()
	require.NoError(t, model.pendaftarLs.ctrl.Issue(context.Background(), nil).Do())
	updated, _ := model.Update(fetchedMsg{tab: TabPendaftar})
	return updated.(Model)
}

func TestModelRendersApplicants(t *testing.T) {
	model, _ := testModel(t, testAPI())
	model = initModel(t, model)

	view := model.View()
	assert.Contains(t, view, "Budi Santoso")
	assert.Contains(t, view, "Menunggu")
	assert.Contains(t, view, "1 - 2 dari 2 data")
	assert.Contains(t, view, "admin")
}

func TestModelLoadingShowsOnlyIndicator(t *testing.T) {
	model, _ := testModel(t, testAPI())
	model = initModel(t, model)

	model.pendaftarLs.ctrl.Issue(context.Background(), nil)
	view := model.View()
	assert.Contains(t, view, "Memuat data...")
	assert.NotContains(t, view, "Budi Santoso")
}

func TestModelSearch(t *testing.T) {
	api := testAPI()
	model, _ := testModel(t, api)
	model = initModel(t, model)

	model = step(t, model, keyRunes("/"))
	require.Equal(t, focusSearch, model.focus)
	model = step(t, model, keyRunes("Siti"))
	model = step(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, focusList, model.focus)
	view := model.View()
	assert.Contains(t, view, "Siti Aminah")
	assert.NotContains(t, view, "Budi Santoso")
	last := api.queries[len(api.queries)-1]
	assert.Equal(t, "Siti", last.Search)
	assert.Equal(t, 1, last.Page)
}

func TestModelAcceptApplicant(t *testing.T) {
	api := testAPI()
	model, toasts := testModel(t, api)
	model = initModel(t, model)

	model = step(t, model, keyRunes("a"))

	assert.Equal(t, []pendaftar.Status{pendaftar.StatusDiterima}, api.statusCalls)
	require.NotNil(t, toasts.current())
	assert.Contains(t, model.View(), "Pendaftar berhasil diterima")
}

func TestModelGenerateKTARemovesRow(t *testing.T) {
	api := testAPI()
	model, _ := testModel(t, api)
	model = initModel(t, model)

	model = step(t, model, keyRunes("2"))
	require.Equal(t, TabKTA, model.active)
	require.Equal(t, 2, model.ktaLs.Len())

	queries := len(api.queries)
	model = step(t, model, keyRunes("g"))

	assert.Equal(t, 1, model.ktaLs.Len())
	assert.Len(t, api.queries, queries, "no refetch after generation")
	assert.Contains(t, model.View(), "Nomor KTA berhasil dibuat: RJW-2026-0001")
}

func TestModelGenerateOnPendaftarRefreshesKTATab(t *testing.T) {
	api := testAPI()
	model, _ := testModel(t, api)
	model = initModel(t, model)

	model = step(t, model, keyRunes("2"))
	require.Equal(t, 2, model.ktaLs.Len())

	model = step(t, model, keyRunes("1"))
	model = step(t, model, keyRunes("j"))
	require.Equal(t, "p-2", model.selectedID())
	model = step(t, model, keyRunes("g"))

	queries := len(api.queries)
	model = step(t, model, keyRunes("2"))
	assert.Len(t, api.queries, queries+1)
	require.Equal(t, 1, model.ktaLs.Len())
	assert.Equal(t, "p-1", model.ktaLs.IDAt(0))

	queries = len(api.queries)
	model = step(t, model, keyRunes("1"))
	assert.Len(t, api.queries, queries, "a tab nothing changed is not refetched")
}

func TestModelGenerateOnKTARefreshesPendaftarTab(t *testing.T) {
	api := testAPI()
	model, _ := testModel(t, api)
	model = initModel(t, model)

	model = step(t, model, keyRunes("2"))
	model = step(t, model, keyRunes("g"))
	require.Equal(t, 1, model.ktaLs.Len())

	model = step(t, model, keyRunes("1"))
	item, ok := model.pendaftarLs.ItemAt(0)
	require.True(t, ok)
	require.Equal(t, "p-1", item.ID)
	require.NotNil(t, item.NomorKTA)
	assert.Equal(t, "RJW-2026-0001", *item.NomorKTA)
}

func TestModelMutationReloadsVisibleSibling(t *testing.T) {
	api := testAPI()
	model, _ := testModel(t, api)
	model = initModel(t, model)
	model = step(t, model, keyRunes("2"))

	// The mutation was started on the Pendaftar tab and finishes while Nomor KTA is shown.
	queries := len(api.queries)
	updated, cmd := model.Update(mutatedMsg{tab: TabPendaftar})
	model = updated.(Model)
	require.NotNil(t, cmd)

	var fetched bool
	switch result := cmd().(type) {
	case fetchedMsg:
		fetched = result.tab == TabKTA
	case tea.BatchMsg:
		for _, c := range result {
			if c == nil {
				continue
			}
			if msg, ok := c().(fetchedMsg); ok && msg.tab == TabKTA {
				fetched = true
			}
		}
	}
	assert.True(t, fetched)
	assert.Len(t, api.queries, queries+1)
	assert.False(t, model.stale[TabKTA])
}

func TestModelShortPasswordKeepsDialog(t *testing.T) {
	api := testAPI()
	model, _ := testModel(t, api)
	model = initModel(t, model)

	model = step(t, model, keyRunes("3"))
	model = step(t, model, keyRunes("p"))
	require.Equal(t, focusPassword, model.focus)

	model = step(t, model, keyRunes("123"))
	model = step(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, focusPassword, model.focus)
	assert.Zero(t, api.resetCalls)
	assert.Contains(t, model.View(), "Password minimal 6 karakter")

	model = step(t, model, keyRunes("456"))
	model = step(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 1, api.resetCalls)
	assert.Equal(t, focusList, model.focus)
	assert.False(t, model.pages.Users.Dialog().Open)
}

func TestModelStatisticsEmptyState(t *testing.T) {
	api := testAPI()
	api.statsErr = &client.APIError{Status: 500, Message: "Terjadi kesalahan pada server"}
	model, _ := testModel(t, api)
	model = initModel(t, model)

	model = step(t, model, keyRunes("5"))

	view := model.View()
	assert.Contains(t, view, "Tidak ada data statistik")
	assert.Contains(t, view, "Terjadi kesalahan pada server")
}

func TestModelDateRangeValidation(t *testing.T) {
	model, toasts := testModel(t, testAPI())
	model = initModel(t, model)

	model = step(t, model, keyRunes("4"))
	model = step(t, model, keyRunes("d"))
	require.Equal(t, focusDates, model.focus)
	model = step(t, model, keyRunes("02/01/2026"))
	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(Model)

	assert.Equal(t, focusDates, model.focus)
	require.NotNil(t, toasts.current())
	assert.Equal(t, "Format tanggal harus YYYY-MM-DD", toasts.current().text)
}

func TestModelDetail(t *testing.T) {
	model, _ := testModel(t, testAPI())
	model = initModel(t, model)

	model = step(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, focusDetail, model.focus)
	assert.Contains(t, model.View(), "SMAN 1")

	model = step(t, model, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, focusList, model.focus)
}

func TestModelLogoutQuits(t *testing.T) {
	model, _ := testModel(t, testAPI())
	session := model.session.(*fakeSession)

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	require.NotNil(t, cmd)
	msg := cmd()
	_, quit := updated.(Model).Update(msg)

	assert.True(t, session.loggedOut)
	require.NotNil(t, quit)
	assert.IsType(t, tea.QuitMsg{}, quit())
}

func TestParseDateRange(t *testing.T) {
	start, end, ok := parseDateRange("2026-01-01 2026-01-31")
	assert.True(t, ok)
	assert.Equal(t, "2026-01-01", start)
	assert.Equal(t, "2026-01-31", end)

	_, _, ok = parseDateRange("")
	assert.True(t, ok)
	_, _, ok = parseDateRange("2026-13-01")
	assert.False(t, ok)
	_, _, ok = parseDateRange("a b c")
	assert.False(t, ok)
}
