package handlers

import (
	"errors"
	"net/http"

	"github.com/harryviennot/cuisto-admin/internal/domain/model"
	notifsvc "github.com/harryviennot/cuisto-admin/internal/services/notifications"
	"github.com/harryviennot/cuisto-admin/internal/transport/http/dto"
	httperrors "github.com/harryviennot/cuisto-admin/internal/transport/http/errors"
)

type NotificationsHandler struct {
	notifications *notifsvc.Service
}

func NewNotificationsHandler(notifications *notifsvc.Service) *NotificationsHandler {
	return &NotificationsHandler{notifications: notifications}
}

func (h *NotificationsHandler) Send(w http.ResponseWriter, r *http.Request) {
	if h.notifications == nil {
		writeInternal(w, "NOTIFICATION_SERVICE_UNAVAILABLE", "notification service is unavailable")
		return
	}

	var request dto.SendNotificationRequest
	if err := decodeJSON(r, &request); err != nil {
		writeBadRequest(w, "INVALID_BODY", "invalid request body")
		return
	}

	localizations := make(map[string]model.LocalizedText, len(request.Localizations))
	for lang, text := range request.Localizations {
		localizations[lang] = model.LocalizedText{Title: text.Title, Body: text.Body}
	}

	receipt, err := h.notifications.Send(r.Context(), model.PushNotification{
		UserID:        request.UserID,
		Localizations: localizations,
		Data:          request.Data,
	})
	if err != nil {
		if errors.Is(err, notifsvc.ErrValidation) {
			writeBadRequest(w, "VALIDATION_ERROR", err.Error())
			return
		}
		writeUpstreamError(w, err)
		return
	}
	httperrors.Write(w, http.StatusOK, dto.FromPushReceipt(receipt))
}
