package notifications

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/harryviennot/cuisto-admin/internal/domain/model"
)

const (
	maxTitleLength = 100
	maxBodyLength  = 500
)

// RequiredLanguages are the translations every push must carry; the mobile
// app ships in these two.
var RequiredLanguages = []string{"en", "fr"}

var ErrValidation = errors.New("validation error")

type Sender interface {
	Send(ctx context.Context, notification model.PushNotification) (model.PushReceipt, error)
}

// Service validates and dispatches moderator-composed push notifications.
type Service struct {
	sender Sender
	log    *zap.Logger
}

func NewService(sender Sender, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{sender: sender, log: log}
}

// Send validates the payload and forwards it to the core API. Broadcasts
// (empty UserID) and single-user pushes go through the same path.
func (s *Service) Send(ctx context.Context, notification model.PushNotification) (model.PushReceipt, error) {
	if s.sender == nil {
		return model.PushReceipt{}, errors.New("notification sender is not configured")
	}

	cleaned, err := validate(notification)
	if err != nil {
		return model.PushReceipt{}, err
	}

	receipt, err := s.sender.Send(ctx, cleaned)
	if err != nil {
		return model.PushReceipt{}, err
	}

	s.log.Info("push notification dispatched",
		zap.Bool("broadcast", cleaned.UserID == ""),
		zap.Int("sent", receipt.SentCount),
		zap.Int("failed", receipt.FailedCount))
	return receipt, nil
}

func validate(notification model.PushNotification) (model.PushNotification, error) {
	cleaned := model.PushNotification{
		UserID:        strings.TrimSpace(notification.UserID),
		Localizations: make(map[string]model.LocalizedText, len(notification.Localizations)),
		Data:          notification.Data,
	}

	for lang, text := range notification.Localizations {
		key := strings.ToLower(strings.TrimSpace(lang))
		if key == "" {
			return model.PushNotification{}, fmt.Errorf("%w: empty language code", ErrValidation)
		}
		cleaned.Localizations[key] = model.LocalizedText{
			Title: strings.TrimSpace(text.Title),
			Body:  strings.TrimSpace(text.Body),
		}
	}

	var missing []string
	for _, lang := range RequiredLanguages {
		if _, ok := cleaned.Localizations[lang]; !ok {
			missing = append(missing, lang)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return model.PushNotification{}, fmt.Errorf("%w: missing translations: %s",
			ErrValidation, strings.Join(missing, ", "))
	}

	for lang, text := range cleaned.Localizations {
		if text.Title == "" {
			return model.PushNotification{}, fmt.Errorf("%w: %s title is empty", ErrValidation, lang)
		}
		if text.Body == "" {
			return model.PushNotification{}, fmt.Errorf("%w: %s body is empty", ErrValidation, lang)
		}
		if utf8.RuneCountInString(text.Title) > maxTitleLength {
			return model.PushNotification{}, fmt.Errorf("%w: %s title exceeds %d characters",
				ErrValidation, lang, maxTitleLength)
		}
		if utf8.RuneCountInString(text.Body) > maxBodyLength {
			return model.PushNotification{}, fmt.Errorf("%w: %s body exceeds %d characters",
				ErrValidation, lang, maxBodyLength)
		}
	}

	return cleaned, nil
}
