package sessionbus

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/harryviennot/cuisto-admin/internal/domain/model"
)

func newTestBus(t *testing.T) (*Bus, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return New(client), server
}

func TestStoreAndLoadRoundTrip(t *testing.T) {
	bus, _ := newTestBus(t)
	ctx := context.Background()

	session := model.Session{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "bearer",
		ExpiresAt:    time.Now().Add(time.Hour).UTC().Truncate(time.Second),
		UserID:       "user-1",
		Email:        "mod@example.test",
	}

	if err := bus.Store(ctx, session, EventSignedIn); err != nil {
		t.Fatalf("store session: %v", err)
	}

	loaded, ok, err := bus.Load(ctx)
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	if !ok {
		t.Fatal("expected a stored session")
	}
	if loaded.AccessToken != session.AccessToken || loaded.RefreshToken != session.RefreshToken {
		t.Fatalf("unexpected tokens: %+v", loaded)
	}
	if loaded.UserID != "user-1" {
		t.Fatalf("unexpected user id: %q", loaded.UserID)
	}
	if !loaded.ExpiresAt.Equal(session.ExpiresAt) {
		t.Fatalf("unexpected expiry: got=%v want=%v", loaded.ExpiresAt, session.ExpiresAt)
	}
}

func TestLoadMissingSession(t *testing.T) {
	bus, _ := newTestBus(t)

	_, ok, err := bus.Load(context.Background())
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	if ok {
		t.Fatal("expected no stored session")
	}
}

func TestClearRemovesSession(t *testing.T) {
	bus, _ := newTestBus(t)
	ctx := context.Background()

	if err := bus.Store(ctx, model.Session{AccessToken: "access"}, EventSignedIn); err != nil {
		t.Fatalf("store session: %v", err)
	}
	if err := bus.Clear(ctx); err != nil {
		t.Fatalf("clear session: %v", err)
	}

	_, ok, err := bus.Load(ctx)
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	if ok {
		t.Fatal("expected session to be cleared")
	}
}

func TestSubscribeReceivesEvents(t *testing.T) {
	bus, _ := newTestBus(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	events := make(chan string, 4)
	if err := bus.Subscribe(ctx, func(event string) { events <- event }); err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	if err := bus.Store(ctx, model.Session{AccessToken: "access"}, EventSignedIn); err != nil {
		t.Fatalf("store session: %v", err)
	}
	if err := bus.Clear(ctx); err != nil {
		t.Fatalf("clear session: %v", err)
	}

	want := []string{EventSignedIn, EventSignedOut}
	for _, expected := range want {
		select {
		case got := <-events:
			if got != expected {
				t.Fatalf("unexpected event: got=%q want=%q", got, expected)
			}
		case <-ctx.Done():
			t.Fatalf("timed out waiting for event %q", expected)
		}
	}
}
