package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ghuser/backoffice/pkg/config"
)

func TestMemoryTokens(t *testing.T) {
	ctx := context.Background()
	var tokens SessionTokens = NewMemoryTokens("")

	if _, ok := tokens.Token(ctx); ok {
		t.Fatal("expected no token before login")
	}
	_ = tokens.Login(ctx, "abc")
	if tok, ok := tokens.Token(ctx); !ok || tok != "abc" {
		t.Fatalf("expected abc, got %q (ok=%v)", tok, ok)
	}
	_ = tokens.Logout(ctx)
	if _, ok := tokens.Token(ctx); ok {
		t.Fatal("expected no token after logout")
	}
}

// Integration test: skipped unless REDIS_URL is set.
func TestRedisStore_Integration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	client := redis.NewClient(opts)
	defer client.Close() //nolint:errcheck

	store := NewSessionStore(client, &config.Config{
		SessionAuthKey:       "test-auth-key-must-be-32-bytes!!",
		SessionEncryptionKey: "test-enc-key-must-be-32-bytes!!!",
		TokenTTL:             time.Minute,
		Environment:          config.EnvDevelopment,
	})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	session, err := store.Get(r, SessionName)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	session.Values[sessionWorkspaceIDKey] = "3f1c6a4e-7e65-4d52-9a57-2d1b5b8f9c11"
	if err := session.Save(r, w); err != nil {
		t.Fatalf("save: %v", err)
	}

	r2 := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		r2.AddCookie(c)
	}
	loaded, err := store.New(r2, SessionName)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if loaded.IsNew {
		t.Fatal("expected session to load from redis")
	}
	if loaded.Values[sessionWorkspaceIDKey] != "3f1c6a4e-7e65-4d52-9a57-2d1b5b8f9c11" {
		t.Fatalf("unexpected values %v", loaded.Values)
	}
}
