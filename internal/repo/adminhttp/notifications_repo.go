package adminhttp

import (
	"context"
	"net/http"
	"strings"

	"github.com/harryviennot/cuisto-admin/internal/domain/model"
)

type NotificationsRepo struct {
	client *Client
}

func NewNotificationsRepo(client *Client) *NotificationsRepo {
	return &NotificationsRepo{client: client}
}

type localizedTextDTO struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type sendNotificationRequestDTO struct {
	UserID        string                      `json:"user_id,omitempty"`
	Localizations map[string]localizedTextDTO `json:"localizations"`
	Data          map[string]string           `json:"data,omitempty"`
}

type sendNotificationResponseDTO struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	SentCount   int    `json:"sent_count"`
	FailedCount int    `json:"failed_count"`
}

// Send dispatches a push to one user, or to all users when UserID is empty.
func (r *NotificationsRepo) Send(ctx context.Context, notification model.PushNotification) (model.PushReceipt, error) {
	localizations := make(map[string]localizedTextDTO, len(notification.Localizations))
	for lang, text := range notification.Localizations {
		localizations[lang] = localizedTextDTO{
			Title: strings.TrimSpace(text.Title),
			Body:  strings.TrimSpace(text.Body),
		}
	}

	request := sendNotificationRequestDTO{
		UserID:        strings.TrimSpace(notification.UserID),
		Localizations: localizations,
		Data:          notification.Data,
	}

	var response sendNotificationResponseDTO
	err := r.client.DoJSON(ctx, http.MethodPost, "/admin/notifications/send", nil, request, &response)
	if err != nil {
		return model.PushReceipt{}, err
	}

	return model.PushReceipt{
		Success:     response.Success,
		Message:     strings.TrimSpace(response.Message),
		SentCount:   response.SentCount,
		FailedCount: response.FailedCount,
	}, nil
}
