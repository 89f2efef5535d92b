package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/harryviennot/cuisto-admin/internal/domain/enums"
	"github.com/harryviennot/cuisto-admin/internal/domain/model"
	queuesvc "github.com/harryviennot/cuisto-admin/internal/services/queues"
	"github.com/harryviennot/cuisto-admin/internal/transport/http/dto"
	httperrors "github.com/harryviennot/cuisto-admin/internal/transport/http/errors"
)

type FeedbackHandler struct {
	queues *queuesvc.Service
}

func NewFeedbackHandler(queues *queuesvc.Service) *FeedbackHandler {
	return &FeedbackHandler{queues: queues}
}

func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.queues == nil {
		writeInternal(w, "QUEUE_SERVICE_UNAVAILABLE", "queue service is unavailable")
		return
	}

	query := r.URL.Query()
	filter := model.FeedbackQueueFilter{
		Status:   enums.FeedbackStatus(query.Get("status")),
		Category: enums.FeedbackCategory(query.Get("category")),
		Limit:    intQuery(query.Get("limit")),
		Offset:   intQuery(query.Get("offset")),
	}

	queue, err := h.queues.Feedback(r.Context(), filter)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	httperrors.Write(w, http.StatusOK, dto.FromFeedbackQueue(queue))
}

func (h *FeedbackHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h.queues == nil {
		writeInternal(w, "QUEUE_SERVICE_UNAVAILABLE", "queue service is unavailable")
		return
	}

	feedback, err := h.queues.FeedbackItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, queuesvc.ErrValidation) {
			writeBadRequest(w, "VALIDATION_ERROR", err.Error())
			return
		}
		writeUpstreamError(w, err)
		return
	}
	httperrors.Write(w, http.StatusOK, dto.FromFeedback(feedback))
}

func (h *FeedbackHandler) QuickResolve(w http.ResponseWriter, r *http.Request) {
	if h.queues == nil {
		writeInternal(w, "QUEUE_SERVICE_UNAVAILABLE", "queue service is unavailable")
		return
	}

	feedback, err := h.queues.QuickResolveFeedback(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, queuesvc.ErrValidation) {
			writeBadRequest(w, "VALIDATION_ERROR", err.Error())
			return
		}
		writeUpstreamError(w, err)
		return
	}
	httperrors.Write(w, http.StatusOK, dto.FromFeedback(feedback))
}

func (h *FeedbackHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	if h.queues == nil {
		writeInternal(w, "QUEUE_SERVICE_UNAVAILABLE", "queue service is unavailable")
		return
	}

	var request dto.ResolveFeedbackRequest
	if err := decodeJSON(r, &request); err != nil {
		writeBadRequest(w, "INVALID_BODY", "invalid request body")
		return
	}

	feedback, err := h.queues.ResolveFeedback(r.Context(), chi.URLParam(r, "id"), request.ResolutionNotes, request.WasHelpful)
	if err != nil {
		if errors.Is(err, queuesvc.ErrValidation) {
			writeBadRequest(w, "VALIDATION_ERROR", err.Error())
			return
		}
		writeUpstreamError(w, err)
		return
	}
	httperrors.Write(w, http.StatusOK, dto.FromFeedback(feedback))
}
