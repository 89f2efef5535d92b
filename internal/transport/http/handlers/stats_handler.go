package handlers

import (
	"net/http"

	statssvc "github.com/harryviennot/cuisto-admin/internal/services/stats"
	"github.com/harryviennot/cuisto-admin/internal/transport/http/dto"
	httperrors "github.com/harryviennot/cuisto-admin/internal/transport/http/errors"
)

type StatsHandler struct {
	stats *statssvc.Service
}

func NewStatsHandler(stats *statssvc.Service) *StatsHandler {
	return &StatsHandler{stats: stats}
}

func (h *StatsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	if h.stats == nil {
		writeInternal(w, "STATS_SERVICE_UNAVAILABLE", "stats service is unavailable")
		return
	}

	overview, err := h.stats.Overview(r.Context())
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	httperrors.Write(w, http.StatusOK, dto.FromOverview(overview))
}

func (h *StatsHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	if h.stats == nil {
		writeInternal(w, "STATS_SERVICE_UNAVAILABLE", "stats service is unavailable")
		return
	}

	statistics, err := h.stats.Statistics(r.Context())
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	httperrors.Write(w, http.StatusOK, dto.FromStatistics(statistics))
}
