package dashboard

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/paskibra-rajawali/admin-dashboard/internal/client"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/absensi"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/pendaftar"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/statistics"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/user"
	"github.com/paskibra-rajawali/admin-dashboard/internal/pkg/pagination"
)

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, msg)
}

func (n *recordingNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, msg)
}

func (n *recordingNotifier) Errors() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.errors...)
}

func (n *recordingNotifier) Successes() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.successes...)
}

type MockPendaftarAPI struct{ mock.Mock }

func (m *MockPendaftarAPI) ListPendaftar(ctx context.Context, q client.PendaftarQuery) (client.Page[pendaftar.PendaftarResponse], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(client.Page[pendaftar.PendaftarResponse]), args.Error(1)
}

func (m *MockPendaftarAPI) GetPendaftar(ctx context.Context, id string) (pendaftar.PendaftarResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(pendaftar.PendaftarResponse), args.Error(1)
}

func (m *MockPendaftarAPI) UpdatePendaftarStatus(ctx context.Context, id string, status pendaftar.Status) (string, error) {
	args := m.Called(ctx, id, status)
	return args.String(0), args.Error(1)
}

func (m *MockPendaftarAPI) GenerateKTA(ctx context.Context, id string) (client.KTAResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(client.KTAResult), args.Error(1)
}

type MockUserAPI struct{ mock.Mock }

func (m *MockUserAPI) ListUsers(ctx context.Context, q client.UserQuery) (client.Page[user.UserResponse], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(client.Page[user.UserResponse]), args.Error(1)
}

func (m *MockUserAPI) ResetPassword(ctx context.Context, id, password string) (string, error) {
	args := m.Called(ctx, id, password)
	return args.String(0), args.Error(1)
}

type MockAbsensiAPI struct{ mock.Mock }

func (m *MockAbsensiAPI) ListAbsensi(ctx context.Context, q client.AbsensiQuery) (client.Page[absensi.AbsensiResponse], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(client.Page[absensi.AbsensiResponse]), args.Error(1)
}

type MockStatisticsAPI struct{ mock.Mock }

func (m *MockStatisticsAPI) Statistics(ctx context.Context, period statistics.Period) (statistics.StatisticsResponse, error) {
	args := m.Called(ctx, period)
	return args.Get(0).(statistics.StatisticsResponse), args.Error(1)
}

func applicants(ids ...string) []pendaftar.PendaftarResponse {
	out := make([]pendaftar.PendaftarResponse, 0, len(ids))
	for _, id := range ids {
		out = append(out, pendaftar.PendaftarResponse{ID: id, NamaLengkap: "Anggota " + id, Status: pendaftar.StatusDiterima})
	}
	return out
}

func applicantPage(page, limit int, total int64, ids ...string) client.Page[pendaftar.PendaftarResponse] {
	return client.Page[pendaftar.PendaftarResponse]{
		Items:      applicants(ids...),
		Pagination: pagination.New(page, limit, total),
	}
}
