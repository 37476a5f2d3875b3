package pendaftar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/pendaftar"
	"github.com/paskibra-rajawali/admin-dashboard/internal/pkg/pagination"
	"github.com/paskibra-rajawali/admin-dashboard/internal/repository/postgresql"
)

// maxKTAAttempts bounds the search for a free number when manually assigned numbers collide.
const maxKTAAttempts = 50

// StatisticsInvalidator is notified after every mutation that changes the aggregates.
type StatisticsInvalidator interface {
	Invalidate(ctx context.Context)
}

type PendaftarServiceImpl struct {
	pendaftar.PendaftarRepository
	tx        postgresql.Transactor
	stats     StatisticsInvalidator
	ktaPrefix string
	now       func() time.Time
}

func NewPendaftarService(repo pendaftar.PendaftarRepository, tx postgresql.Transactor, stats StatisticsInvalidator, ktaPrefix string) pendaftar.PendaftarService {
	return &PendaftarServiceImpl{
		PendaftarRepository: repo,
		tx:                  tx,
		stats:               stats,
		ktaPrefix:           ktaPrefix,
		now:                 time.Now,
	}
}

// List implements pendaftar.PendaftarService.
func (s *PendaftarServiceImpl) List(ctx context.Context, filter pendaftar.PendaftarFilter) (pendaftar.ListPendaftarResponse, error) {
	if err := filter.Validate(); err != nil {
		return pendaftar.ListPendaftarResponse{}, err
	}

	rows, total, err := s.PendaftarRepository.List(ctx, filter)
	if err != nil {
		return pendaftar.ListPendaftarResponse{}, fmt.Errorf("failed to list pendaftar: %w", err)
	}

	data := make([]pendaftar.PendaftarResponse, 0, len(rows))
	for _, p := range rows {
		data = append(data, toResponse(p))
	}

	return pendaftar.ListPendaftarResponse{
		Data:       data,
		Pagination: pagination.New(filter.Page, filter.Limit, total),
	}, nil
}

// Get implements pendaftar.PendaftarService.
func (s *PendaftarServiceImpl) Get(ctx context.Context, id string) (pendaftar.PendaftarResponse, error) {
	p, err := s.PendaftarRepository.GetByID(ctx, id)
	if err != nil {
		return pendaftar.PendaftarResponse{}, err
	}
	return toResponse(p), nil
}

// UpdateStatus implements pendaftar.PendaftarService.
func (s *PendaftarServiceImpl) UpdateStatus(ctx context.Context, req pendaftar.UpdateStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	err := s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		current, err := s.PendaftarRepository.GetByIDForUpdate(txCtx, req.ID)
		if err != nil {
			return err
		}

		// A card number only exists on an accepted applicant.
		if current.HasKTA() && req.Status != pendaftar.StatusDiterima {
			return pendaftar.ErrKTARequiresAccepted
		}

		if req.NomorKTA != nil {
			if current.HasKTA() {
				return pendaftar.ErrKTAAlreadyGenerated
			}
			exists, err := s.PendaftarRepository.ExistsByNomorKTA(txCtx, *req.NomorKTA)
			if err != nil {
				return err
			}
			if exists {
				return pendaftar.ErrKTAExists
			}
		}

		return s.PendaftarRepository.UpdateStatus(txCtx, req.ID, req.Status, req.NomorKTA)
	})
	if err != nil {
		return err
	}

	slog.Info("pendaftar status updated", "pendaftar_id", req.ID, "status", req.Status)
	s.stats.Invalidate(ctx)
	return nil
}

// GenerateKTA implements pendaftar.PendaftarService.
func (s *PendaftarServiceImpl) GenerateKTA(ctx context.Context, req pendaftar.GenerateKTARequest) (pendaftar.GenerateKTAResponse, error) {
	if err := req.Validate(); err != nil {
		return pendaftar.GenerateKTAResponse{}, err
	}

	var nomorKTA string
	err := s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		current, err := s.PendaftarRepository.GetByIDForUpdate(txCtx, req.PendaftarID)
		if err != nil {
			return err
		}
		if current.HasKTA() {
			return pendaftar.ErrKTAAlreadyGenerated
		}
		if current.Status != pendaftar.StatusDiterima {
			return pendaftar.ErrPendaftarNotAccepted
		}

		year := s.now().Year()
		seq, err := s.PendaftarRepository.NextKTASequence(txCtx, year)
		if err != nil {
			return err
		}

		for attempt := 0; attempt < maxKTAAttempts; attempt++ {
			candidate := FormatKTA(s.ktaPrefix, year, seq+attempt)
			exists, err := s.PendaftarRepository.ExistsByNomorKTA(txCtx, candidate)
			if err != nil {
				return err
			}
			if !exists {
				nomorKTA = candidate
				return s.PendaftarRepository.SetNomorKTA(txCtx, req.PendaftarID, candidate)
			}
		}
		return pendaftar.ErrKTAExists
	})
	if err != nil {
		if !errors.Is(err, pendaftar.ErrKTAAlreadyGenerated) && !errors.Is(err, pendaftar.ErrPendaftarNotAccepted) {
			slog.Error("failed to generate KTA", "pendaftar_id", req.PendaftarID, "error", err)
		}
		return pendaftar.GenerateKTAResponse{}, err
	}

	slog.Info("nomor KTA generated", "pendaftar_id", req.PendaftarID, "nomor_kta", nomorKTA)
	s.stats.Invalidate(ctx)

	return pendaftar.GenerateKTAResponse{
		PendaftarID: req.PendaftarID,
		NomorKTA:    nomorKTA,
	}, nil
}

// FormatKTA renders PREFIX-YYYY-NNNN.
func FormatKTA(prefix string, year, seq int) string {
	return fmt.Sprintf("%s-%04d-%04d", prefix, year, seq)
}

func toResponse(p pendaftar.Pendaftar) pendaftar.PendaftarResponse {
	resp := pendaftar.PendaftarResponse{
		ID:          p.ID,
		NamaLengkap: p.NamaLengkap,
		Username:    p.Username,
		Email:       p.Email,
		NoHP:        p.NoHP,
		TempatLahir: p.TempatLahir,
		Alamat:      p.Alamat,
		TinggiBadan: p.TinggiBadan,
		BeratBadan:  p.BeratBadan,
		AsalSekolah: p.AsalSekolah,
		Kelas:       p.Kelas,
		Foto:        p.Foto,
		Status:      p.Status,
		NomorKTA:    p.NomorKTA,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
	if p.JenisKelamin != nil {
		g := string(*p.JenisKelamin)
		resp.JenisKelamin = &g
	}
	if p.TanggalLahir != nil {
		d := p.TanggalLahir.Format("2006-01-02")
		resp.TanggalLahir = &d
	}
	return resp
}
