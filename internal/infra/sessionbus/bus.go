package sessionbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/harryviennot/cuisto-admin/internal/domain/model"
)

const (
	sessionKey     = "cuisto:admin:session"
	sessionChannel = "cuisto:admin:session-events"
)

// Event names published on the session channel. Subscribers never trust the
// payload; they re-read the authoritative value on each notification.
const (
	EventSignedIn       = "SIGNED_IN"
	EventTokenRefreshed = "TOKEN_REFRESHED"
	EventSignedOut      = "SIGNED_OUT"
)

// Bus keeps the authoritative session value in Redis and fans session-change
// notifications out to every dashboard context (tabs, replicas).
type Bus struct {
	client *goredis.Client
}

type storedSession struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresAt    time.Time `json:"expires_at"`
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
}

func New(client *goredis.Client) *Bus {
	return &Bus{client: client}
}

// Store replaces the authoritative session and announces the change.
func (b *Bus) Store(ctx context.Context, session model.Session, event string) error {
	if b == nil || b.client == nil {
		return errors.New("session bus is not configured")
	}

	payload, err := json.Marshal(storedSession{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		TokenType:    session.TokenType,
		ExpiresAt:    session.ExpiresAt,
		UserID:       session.UserID,
		Email:        session.Email,
	})
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := b.client.Set(ctx, sessionKey, payload, ttlFor(session)).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	if err := b.client.Publish(ctx, sessionChannel, event).Err(); err != nil {
		return fmt.Errorf("publish session event: %w", err)
	}
	return nil
}

// Clear deletes the authoritative session and announces the sign-out.
func (b *Bus) Clear(ctx context.Context) error {
	if b == nil || b.client == nil {
		return errors.New("session bus is not configured")
	}
	if err := b.client.Del(ctx, sessionKey).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	if err := b.client.Publish(ctx, sessionChannel, EventSignedOut).Err(); err != nil {
		return fmt.Errorf("publish session event: %w", err)
	}
	return nil
}

// Load reads the authoritative session. The second return is false when no
// session is stored.
func (b *Bus) Load(ctx context.Context) (model.Session, bool, error) {
	if b == nil || b.client == nil {
		return model.Session{}, false, errors.New("session bus is not configured")
	}

	raw, err := b.client.Get(ctx, sessionKey).Bytes()
	if errors.Is(err, goredis.Nil) {
		return model.Session{}, false, nil
	}
	if err != nil {
		return model.Session{}, false, fmt.Errorf("load session: %w", err)
	}

	var stored storedSession
	if err := json.Unmarshal(raw, &stored); err != nil {
		return model.Session{}, false, fmt.Errorf("decode stored session: %w", err)
	}

	return model.Session{
		AccessToken:  stored.AccessToken,
		RefreshToken: stored.RefreshToken,
		TokenType:    stored.TokenType,
		ExpiresAt:    stored.ExpiresAt,
		UserID:       stored.UserID,
		Email:        stored.Email,
	}, true, nil
}

// Subscribe delivers session-change event names to handler until ctx is
// cancelled. Delivery order within one publisher is preserved by Redis.
func (b *Bus) Subscribe(ctx context.Context, handler func(event string)) error {
	if b == nil || b.client == nil {
		return errors.New("session bus is not configured")
	}
	if handler == nil {
		return errors.New("session bus handler is nil")
	}

	sub := b.client.Subscribe(ctx, sessionChannel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return fmt.Errorf("subscribe session events: %w", err)
	}

	go func() {
		defer sub.Close()
		channel := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case message, ok := <-channel:
				if !ok {
					return
				}
				handler(message.Payload)
			}
		}
	}()

	return nil
}

func ttlFor(session model.Session) time.Duration {
	if session.ExpiresAt.IsZero() {
		return 0
	}
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return time.Minute
	}
	// Keep the stored value slightly past token expiry so the refresh token
	// is still recoverable by whichever context refreshes first.
	return ttl + 24*time.Hour
}
