package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/pendaftar"
	"github.com/paskibra-rajawali/admin-dashboard/internal/handler/http/response"
)

type PendaftarHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	GenerateKTA(w http.ResponseWriter, r *http.Request)
}

type PendaftarHandlerImpl struct {
	pendaftarService pendaftar.PendaftarService
}

func NewPendaftarHandler(pendaftarService pendaftar.PendaftarService) PendaftarHandler {
	return &PendaftarHandlerImpl{pendaftarService: pendaftarService}
}

// List implements PendaftarHandler.
func (h *PendaftarHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := pendaftar.PendaftarFilter{
		Status: r.URL.Query().Get("status"),
		Search: r.URL.Query().Get("search"),
		HasKTA: queryBool(r, "has_kta"),
		Page:   queryInt(r, "page"),
		Limit:  queryInt(r, "limit"),
	}

	result, err := h.pendaftarService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List pendaftar error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithPagination(w, result.Data, result.Pagination)
}

// Get implements PendaftarHandler.
func (h *PendaftarHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.HandleError(w, pendaftar.ErrPendaftarNotFound)
		return
	}

	result, err := h.pendaftarService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateStatus implements PendaftarHandler.
func (h *PendaftarHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.HandleError(w, pendaftar.ErrPendaftarNotFound)
		return
	}

	var req pendaftar.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateStatus decode error", "error", err)
		response.BadRequest(w, "Format request tidak valid", nil)
		return
	}
	req.ID = id

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.pendaftarService.UpdateStatus(r.Context(), req); err != nil {
		slog.Error("UpdateStatus service error", "pendaftar_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	message := "Pendaftar berhasil diterima"
	if req.Status == pendaftar.StatusDitolak {
		message = "Pendaftar berhasil ditolak"
	}
	response.SuccessWithMessage(w, message, nil)
}

// GenerateKTA implements PendaftarHandler.
func (h *PendaftarHandlerImpl) GenerateKTA(w http.ResponseWriter, r *http.Request) {
	var req pendaftar.GenerateKTARequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("GenerateKTA decode error", "error", err)
		response.BadRequest(w, "Format request tidak valid", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.pendaftarService.GenerateKTA(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Nomor KTA berhasil dibuat: "+result.NomorKTA, result)
}
