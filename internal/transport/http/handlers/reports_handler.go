package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/harryviennot/cuisto-admin/internal/domain/enums"
	"github.com/harryviennot/cuisto-admin/internal/domain/model"
	modsvc "github.com/harryviennot/cuisto-admin/internal/services/moderation"
	queuesvc "github.com/harryviennot/cuisto-admin/internal/services/queues"
	"github.com/harryviennot/cuisto-admin/internal/transport/http/dto"
	httperrors "github.com/harryviennot/cuisto-admin/internal/transport/http/errors"
)

type ReportsHandler struct {
	queues     *queuesvc.Service
	moderation *modsvc.Service
}

func NewReportsHandler(queues *queuesvc.Service, moderation *modsvc.Service) *ReportsHandler {
	return &ReportsHandler{queues: queues, moderation: moderation}
}

func (h *ReportsHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.queues == nil {
		writeInternal(w, "QUEUE_SERVICE_UNAVAILABLE", "queue service is unavailable")
		return
	}

	query := r.URL.Query()
	filter := model.ReportQueueFilter{
		Status: enums.ReportStatus(query.Get("status")),
		Reason: enums.ReportReason(query.Get("reason")),
		Limit:  intQuery(query.Get("limit")),
		Offset: intQuery(query.Get("offset")),
	}
	filter.MinPriority = intQuery(query.Get("min_priority"))

	queue, err := h.queues.Reports(r.Context(), filter)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	httperrors.Write(w, http.StatusOK, dto.FromReportQueue(queue))
}

func (h *ReportsHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h.queues == nil {
		writeInternal(w, "QUEUE_SERVICE_UNAVAILABLE", "queue service is unavailable")
		return
	}

	report, err := h.queues.Report(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, queuesvc.ErrValidation) {
			writeBadRequest(w, "VALIDATION_ERROR", err.Error())
			return
		}
		writeUpstreamError(w, err)
		return
	}
	httperrors.Write(w, http.StatusOK, dto.FromReport(report))
}

// QuickDismiss is the one-click queue shortcut.
func (h *ReportsHandler) QuickDismiss(w http.ResponseWriter, r *http.Request) {
	if h.queues == nil {
		writeInternal(w, "QUEUE_SERVICE_UNAVAILABLE", "queue service is unavailable")
		return
	}

	report, err := h.queues.QuickDismissReport(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, queuesvc.ErrValidation) {
			writeBadRequest(w, "VALIDATION_ERROR", err.Error())
			return
		}
		writeUpstreamError(w, err)
		return
	}
	httperrors.Write(w, http.StatusOK, dto.FromReport(report))
}

// Resolve runs the report-centered composite decision: dismiss, hide the
// recipe with an optional secondary sanction, or sanction the author with an
// optional best-effort hide.
func (h *ReportsHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	if h.moderation == nil {
		writeInternal(w, "MODERATION_SERVICE_UNAVAILABLE", "moderation service is unavailable")
		return
	}

	var request dto.ReportActionRequest
	if err := decodeJSON(r, &request); err != nil {
		writeBadRequest(w, "INVALID_BODY", "invalid request body")
		return
	}

	action, ok := enums.ParseReportAction(request.Action)
	if !ok {
		writeBadRequest(w, "INVALID_ACTION", "unknown report action: "+request.Action)
		return
	}
	userAction, ok := enums.ParseUserAction(request.UserAction)
	if !ok {
		writeBadRequest(w, "INVALID_ACTION", "unknown user action: "+request.UserAction)
		return
	}

	result, err := h.moderation.ResolveReport(r.Context(), modsvc.ReportActionInput{
		ReportID:       chi.URLParam(r, "id"),
		Action:         action,
		Reason:         request.Reason,
		Notes:          request.Notes,
		AlsoHideRecipe: request.AlsoHideRecipe,
		UserAction:     userAction,
		SuspensionDays: request.SuspensionDays,
	})
	writeCompositeResult(w, result, err)
}

// writeCompositeResult reports both step outcomes even on failure so the
// moderator can see exactly which call landed.
func writeCompositeResult(w http.ResponseWriter, result modsvc.CompositeResult, err error) {
	switch {
	case err == nil, errors.Is(err, modsvc.ErrAuthorUnknown):
		httperrors.Write(w, http.StatusOK, dto.FromCompositeResult(result))
	case errors.Is(err, modsvc.ErrValidation):
		writeBadRequest(w, "VALIDATION_ERROR", err.Error())
	default:
		httperrors.Write(w, upstreamStatus(err), dto.FromCompositeResult(result))
	}
}

func intQuery(value string) int {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return 0
	}
	return parsed
}
