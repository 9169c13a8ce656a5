package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Mouad22Hakimi/lost-and-found-platform/internal/models"
)

func TestGenerateAndValidateToken(t *testing.T) {
	secret := "test-secret-key"
	user := models.User{ID: "user-1", Email: "alice@campus.edu"}

	token, err := GenerateToken(secret, time.Hour, user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := ValidateToken(secret, token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	if claims.UserID != "user-1" {
		t.Errorf("expected user id 'user-1', got %q", claims.UserID)
	}
	if claims.Email != "alice@campus.edu" {
		t.Errorf("expected email 'alice@campus.edu', got %q", claims.Email)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _ := GenerateToken("secret1", time.Hour, models.User{ID: "u1"})

	if _, err := ValidateToken("secret2", token); err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestValidateTokenInvalid(t *testing.T) {
	if _, err := ValidateToken("secret", "not-a-token"); err == nil {
		t.Error("expected error for invalid token")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	token, _ := GenerateToken("secret", -time.Minute, models.User{ID: "u1"})

	if _, err := ValidateToken("secret", token); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestMiddleware(t *testing.T) {
	secret := "test-secret"
	token, err := GenerateToken(secret, time.Hour, models.User{ID: "user-42", Email: "bob@campus.edu"})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserID(r.Context())
		if !ok {
			t.Error("expected user id in context")
		}
		gotUserID = id
	})
	handler := Middleware(secret)(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotUserID != "user-42" {
		t.Errorf("expected user id 'user-42', got %q", gotUserID)
	}
}

func TestMiddlewareMissingToken(t *testing.T) {
	handler := Middleware("secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestMiddlewareCookieFallback(t *testing.T) {
	secret := "test-secret"
	token, _ := GenerateToken(secret, time.Hour, models.User{ID: "user-7"})

	reached := false
	handler := Middleware(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || !reached {
		t.Fatalf("expected cookie auth to succeed, got %d", rec.Code)
	}
}
