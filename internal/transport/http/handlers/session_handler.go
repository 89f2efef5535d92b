package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/harryviennot/cuisto-admin/internal/infra/identity"
	"github.com/harryviennot/cuisto-admin/internal/repo/adminhttp"
	sessionsvc "github.com/harryviennot/cuisto-admin/internal/services/session"
	"github.com/harryviennot/cuisto-admin/internal/transport/http/dto"
	httperrors "github.com/harryviennot/cuisto-admin/internal/transport/http/errors"
)

type SessionHandler struct {
	store *sessionsvc.Store
}

func NewSessionHandler(store *sessionsvc.Store) *SessionHandler {
	return &SessionHandler{store: store}
}

func (h *SessionHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeInternal(w, "SESSION_SERVICE_UNAVAILABLE", "session service is unavailable")
		return
	}

	var request dto.SignInRequest
	if err := decodeJSON(r, &request); err != nil {
		writeBadRequest(w, "INVALID_BODY", "invalid request body")
		return
	}
	if request.Email == "" || request.Password == "" {
		writeBadRequest(w, "MISSING_CREDENTIALS", "email and password are required")
		return
	}

	principal, err := h.store.SignIn(r.Context(), request.Email, request.Password)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrInvalidCredentials):
			writeUnauthorized(w, "INVALID_CREDENTIALS", "invalid email or password")
		case errors.Is(err, sessionsvc.ErrAccessDenied):
			httperrors.Write(w, http.StatusForbidden, httperrors.APIError{
				Code:    "ACCESS_DENIED",
				Message: "this account does not have moderator access",
			})
		default:
			writeInternal(w, "SIGN_IN_FAILED", "sign in failed")
		}
		return
	}

	session, _ := h.store.Current()
	httperrors.Write(w, http.StatusOK, dto.SessionResponse{
		UserID:      principal.UserID,
		Email:       principal.Email,
		IsModerator: principal.IsModerator,
		ExpiresAt:   session.ExpiresAt,
	})
}

func (h *SessionHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeInternal(w, "SESSION_SERVICE_UNAVAILABLE", "session service is unavailable")
		return
	}
	if err := h.store.SignOut(r.Context()); err != nil {
		writeInternal(w, "SIGN_OUT_FAILED", "sign out failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeInternal(w, "SESSION_SERVICE_UNAVAILABLE", "session service is unavailable")
		return
	}

	refreshed, err := h.store.Refresh(r.Context())
	if err != nil {
		if errors.Is(err, sessionsvc.ErrNotSignedIn) {
			writeUnauthorized(w, "NOT_SIGNED_IN", "no session to refresh")
			return
		}
		writeUnauthorized(w, "REFRESH_FAILED", "session refresh failed")
		return
	}

	principal, _ := h.store.Principal()
	httperrors.Write(w, http.StatusOK, dto.SessionResponse{
		UserID:      refreshed.UserID,
		Email:       refreshed.Email,
		IsModerator: principal.IsModerator,
		ExpiresAt:   refreshed.ExpiresAt,
	})
}

func (h *SessionHandler) Current(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeInternal(w, "SESSION_SERVICE_UNAVAILABLE", "session service is unavailable")
		return
	}

	session, ok := h.store.Current()
	if !ok {
		writeUnauthorized(w, "NOT_SIGNED_IN", "not signed in")
		return
	}

	principal, _ := h.store.Principal()
	httperrors.Write(w, http.StatusOK, dto.SessionResponse{
		UserID:      session.UserID,
		Email:       session.Email,
		IsModerator: principal.IsModerator,
		ExpiresAt:   session.ExpiresAt,
	})
}

func decodeJSON(r *http.Request, target any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

func writeBadRequest(w http.ResponseWriter, code, message string) {
	httperrors.Write(w, http.StatusBadRequest, httperrors.APIError{Code: code, Message: message})
}

func writeUnauthorized(w http.ResponseWriter, code, message string) {
	httperrors.Write(w, http.StatusUnauthorized, httperrors.APIError{Code: code, Message: message})
}

func writeInternal(w http.ResponseWriter, code, message string) {
	httperrors.Write(w, http.StatusInternalServerError, httperrors.APIError{Code: code, Message: message})
}

func upstreamStatus(err error) int {
	switch {
	case adminhttp.IsAuthError(err):
		return http.StatusUnauthorized
	case adminhttp.IsAccessDenied(err):
		return http.StatusForbidden
	case adminhttp.IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

// writeUpstreamError maps a failed core-API call onto this surface. The
// server-provided detail is forwarded verbatim when there is one.
func writeUpstreamError(w http.ResponseWriter, err error) {
	detail := adminhttp.Detail(err)

	switch {
	case adminhttp.IsAuthError(err):
		if detail == "" {
			detail = "session expired, sign in again"
		}
		writeUnauthorized(w, "SESSION_EXPIRED", detail)
	case adminhttp.IsAccessDenied(err):
		if detail == "" {
			detail = "moderator access required"
		}
		httperrors.Write(w, http.StatusForbidden, httperrors.APIError{Code: "ACCESS_DENIED", Message: detail})
	case adminhttp.IsNotFound(err):
		if detail == "" {
			detail = "not found"
		}
		httperrors.Write(w, http.StatusNotFound, httperrors.APIError{Code: "NOT_FOUND", Message: detail})
	default:
		if detail == "" {
			detail = "core api request failed"
		}
		httperrors.Write(w, http.StatusBadGateway, httperrors.APIError{Code: "UPSTREAM_ERROR", Message: detail})
	}
}
