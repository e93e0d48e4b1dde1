package token

import (
	"strconv"
	"testing"
	"time"

	"slot_backend/internal/model"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	user := &model.User{ID: 42, Login: "player"}

	tokenStr, err := GenerateAccessToken(user, secret, time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken unexpected error: %v", err)
	}

	claims, err := VerifyToken(tokenStr, secret)
	if err != nil {
		t.Fatalf("VerifyToken unexpected error: %v", err)
	}

	if claims.ID != strconv.Itoa(user.ID) {
		t.Errorf("claims.ID = %q, want %q", claims.ID, strconv.Itoa(user.ID))
	}
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	tokenStr, err := GenerateAccessToken(&model.User{ID: 1}, []byte("secret-a"), time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := VerifyToken(tokenStr, []byte("secret-b")); err == nil {
		t.Error("VerifyToken with wrong secret: expected error, got nil")
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	tokenStr, err := GenerateAccessToken(&model.User{ID: 1}, []byte("secret"), -time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := VerifyToken(tokenStr, []byte("secret")); err == nil {
		t.Error("VerifyToken with expired token: expected error, got nil")
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	tok, err := GenerateRefreshToken()
	if err != nil {
		t.Fatalf("GenerateRefreshToken unexpected error: %v", err)
	}

	hash := HashRefreshToken(tok)
	if !VerifyRefreshToken(tok, hash) {
		t.Error("VerifyRefreshToken rejected its own hash")
	}
	if VerifyRefreshToken("other-token", hash) {
		t.Error("VerifyRefreshToken accepted a foreign token")
	}
}
