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

type UsersHandler struct {
	queues     *queuesvc.Service
	moderation *modsvc.Service
}

func NewUsersHandler(queues *queuesvc.Service, moderation *modsvc.Service) *UsersHandler {
	return &UsersHandler{queues: queues, moderation: moderation}
}

func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.queues == nil {
		writeInternal(w, "QUEUE_SERVICE_UNAVAILABLE", "queue service is unavailable")
		return
	}

	query := r.URL.Query()
	filter := model.UserListFilter{
		Status:    enums.UserStatus(query.Get("status")),
		Search:    query.Get("search"),
		SortBy:    query.Get("sort_by"),
		SortOrder: query.Get("sort_order"),
		Limit:     intQuery(query.Get("limit")),
		Offset:    intQuery(query.Get("offset")),
	}
	if raw := query.Get("is_premium"); raw != "" {
		if premium, err := strconv.ParseBool(raw); err == nil {
			filter.IsPremium = &premium
		}
	}

	list, err := h.queues.Users(r.Context(), filter)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	httperrors.Write(w, http.StatusOK, dto.FromUserList(list))
}

func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h.queues == nil {
		writeInternal(w, "QUEUE_SERVICE_UNAVAILABLE", "queue service is unavailable")
		return
	}

	detail, err := h.queues.User(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, queuesvc.ErrValidation) {
			writeBadRequest(w, "VALIDATION_ERROR", err.Error())
			return
		}
		writeUpstreamError(w, err)
		return
	}
	httperrors.Write(w, http.StatusOK, dto.FromUserDetail(detail))
}

func (h *UsersHandler) Warn(w http.ResponseWriter, r *http.Request) {
	var request dto.WarnUserRequest
	if err := decodeJSON(r, &request); err != nil {
		writeBadRequest(w, "INVALID_BODY", "invalid request body")
		return
	}
	h.runSanction(w, r, func() error {
		return h.moderation.WarnUser(r.Context(), chi.URLParam(r, "id"), request.Reason, request.RecipeID)
	})
}

func (h *UsersHandler) Suspend(w http.ResponseWriter, r *http.Request) {
	var request dto.SuspendUserRequest
	if err := decodeJSON(r, &request); err != nil {
		writeBadRequest(w, "INVALID_BODY", "invalid request body")
		return
	}
	h.runSanction(w, r, func() error {
		return h.moderation.SuspendUser(r.Context(), chi.URLParam(r, "id"), request.DurationDays, request.Reason)
	})
}

func (h *UsersHandler) Unsuspend(w http.ResponseWriter, r *http.Request) {
	var request dto.UserReasonRequest
	if err := decodeJSON(r, &request); err != nil {
		writeBadRequest(w, "INVALID_BODY", "invalid request body")
		return
	}
	h.runSanction(w, r, func() error {
		return h.moderation.UnsuspendUser(r.Context(), chi.URLParam(r, "id"), request.Reason)
	})
}

func (h *UsersHandler) Ban(w http.ResponseWriter, r *http.Request) {
	var request dto.UserReasonRequest
	if err := decodeJSON(r, &request); err != nil {
		writeBadRequest(w, "INVALID_BODY", "invalid request body")
		return
	}
	h.runSanction(w, r, func() error {
		return h.moderation.BanUser(r.Context(), chi.URLParam(r, "id"), request.Reason)
	})
}

func (h *UsersHandler) Unban(w http.ResponseWriter, r *http.Request) {
	var request dto.UserReasonRequest
	if err := decodeJSON(r, &request); err != nil {
		writeBadRequest(w, "INVALID_BODY", "invalid request body")
		return
	}
	h.runSanction(w, r, func() error {
		return h.moderation.UnbanUser(r.Context(), chi.URLParam(r, "id"), request.Reason)
	})
}

func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var request dto.UserReasonRequest
	if err := decodeJSON(r, &request); err != nil {
		writeBadRequest(w, "INVALID_BODY", "invalid request body")
		return
	}
	h.runSanction(w, r, func() error {
		return h.moderation.DeleteUser(r.Context(), chi.URLParam(r, "id"), request.Reason)
	})
}

func (h *UsersHandler) runSanction(w http.ResponseWriter, _ *http.Request, sanction func() error) {
	if h.moderation == nil {
		writeInternal(w, "MODERATION_SERVICE_UNAVAILABLE", "moderation service is unavailable")
		return
	}
	if err := sanction(); err != nil {
		if errors.Is(err, modsvc.ErrValidation) {
			writeBadRequest(w, "VALIDATION_ERROR", err.Error())
			return
		}
		writeUpstreamError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
