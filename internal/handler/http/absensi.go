package http

import (
	"log/slog"
	"net/http"

	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/absensi"
	"github.com/paskibra-rajawali/admin-dashboard/internal/handler/http/response"
)

type AbsensiHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type AbsensiHandlerImpl struct {
	absensiService absensi.AbsensiService
}

func NewAbsensiHandler(absensiService absensi.AbsensiService) AbsensiHandler {
	return &AbsensiHandlerImpl{absensiService: absensiService}
}

// List implements AbsensiHandler.
func (h *AbsensiHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := absensi.AbsensiFilter{
		StartDate: r.URL.Query().Get("startDate"),
		EndDate:   r.URL.Query().Get("endDate"),
		Search:    r.URL.Query().Get("search"),
		Page:      queryInt(r, "page"),
		Limit:     queryInt(r, "limit"),
	}

	result, err := h.absensiService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List absensi error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithPagination(w, result.Data, result.Pagination)
}
