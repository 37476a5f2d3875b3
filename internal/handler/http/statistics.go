package http

import (
	"log/slog"
	"net/http"

	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/statistics"
	"github.com/paskibra-rajawali/admin-dashboard/internal/handler/http/response"
)

type StatisticsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type StatisticsHandlerImpl struct {
	statisticsService statistics.StatisticsService
}

func NewStatisticsHandler(statisticsService statistics.StatisticsService) StatisticsHandler {
	return &StatisticsHandlerImpl{statisticsService: statisticsService}
}

// Get implements StatisticsHandler.
func (h *StatisticsHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	period := statistics.Period(r.URL.Query().Get("period"))

	result, err := h.statisticsService.Get(r.Context(), period)
	if err != nil {
		slog.Error("Get statistics error", "period", period, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
