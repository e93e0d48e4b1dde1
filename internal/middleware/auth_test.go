package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"slot_backend/internal/model"
	"slot_backend/pkg/token"
)

type testJWTConfig struct {
	secret []byte
}

func (c testJWTConfig) AccessTokenSecretKey() []byte       { return c.secret }
func (c testJWTConfig) AccessTokenDuration() time.Duration { return time.Minute }
func (c testJWTConfig) RefreshTokenDuration() time.Duration {
	return time.Hour
}

func TestAuth(t *testing.T) {
	cfg := testJWTConfig{secret: []byte("test-secret")}

	var gotUserID int
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, gotOK = UserIDFromContext(r.Context())
	})

	handler := Auth(cfg)(next)

	accessToken, err := token.GenerateAccessToken(&model.User{ID: 7}, cfg.secret, time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/slot/spin", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !gotOK || gotUserID != 7 {
		t.Errorf("user id in context = %d, %v; want 7, true", gotUserID, gotOK)
	}
}

func TestAuthRejects(t *testing.T) {
	cfg := testJWTConfig{secret: []byte("test-secret")}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not be called")
	})
	handler := Auth(cfg)(next)

	foreignToken, err := token.GenerateAccessToken(&model.User{ID: 7}, []byte("other-secret"), time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc"},
		{"wrong secret", "Bearer " + foreignToken},
		{"garbage token", "Bearer not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/slot/spin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
		})
	}
}
