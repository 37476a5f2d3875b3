package pendaftar

import "context"

// PendaftarService defines admin operations on applicants.
type PendaftarService interface {
	List(ctx context.Context, filter PendaftarFilter) (ListPendaftarResponse, error)
	Get(ctx context.Context, id string) (PendaftarResponse, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) error

	// GenerateKTA allocates the next membership card number for an accepted pendaftar.
	GenerateKTA(ctx context.Context, req GenerateKTARequest) (GenerateKTAResponse, error)
}
