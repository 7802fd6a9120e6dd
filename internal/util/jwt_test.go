package util

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestJWTManagerGenerateAndParse(t *testing.T) {
	ttl := time.Minute
	manager := NewJWTManager("top-secret", ttl)

	userID := uuid.New()
	token, expiresAt, err := manager.Generate(userID, "user@example.com", true)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token to be non-empty")
	}
	if expiresAt.Before(time.Now()) {
		t.Fatalf("expected expiry in the future")
	}

	claims, err := manager.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("expected user id %s, got %s", userID, claims.UserID)
	}
	if claims.Email != "user@example.com" {
		t.Fatalf("expected email claim, got %q", claims.Email)
	}
	if !claims.IsAdmin {
		t.Fatalf("expected admin claim to be true")
	}
}

func TestJWTManagerParseExpiredToken(t *testing.T) {
	manager := NewJWTManager("secret", time.Millisecond)
	token, _, err := manager.Generate(uuid.New(), "user@example.com", false)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	time.Sleep(2 * time.Millisecond)

	if _, err := manager.Parse(token); err == nil {
		t.Fatalf("expected parse error for expired token")
	}
}

func TestJWTManagerRejectsForeignSecret(t *testing.T) {
	token, _, err := NewJWTManager("one", time.Minute).Generate(uuid.New(), "user@example.com", false)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if _, err := NewJWTManager("two", time.Minute).Parse(token); err == nil {
		t.Fatalf("expected parse error for wrong secret")
	}
}
