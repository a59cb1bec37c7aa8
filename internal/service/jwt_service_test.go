package service

import (
	"errors"
	"testing"
	"time"

	"devconnect/internal/domain"
)

func TestJWTService_IssueVerify(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)
	user := domain.User{
		ID:     "u1",
		Name:   "Test User",
		Email:  "user@example.com",
		Avatar: "https://www.gravatar.com/avatar/abc?s=200&r=pg&d=mm",
	}

	token, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != "u1" || claims.Name != "Test User" || claims.Avatar != user.Avatar {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)
	user := domain.User{ID: "u1", Name: "Test User"}

	token, err := svc.issueAt(user, time.Now().UTC().Add(-2*time.Hour))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = svc.Verify(token)
	if !errors.Is(err, ErrJWTExpired) {
		t.Fatalf("expected ErrJWTExpired, got %v", err)
	}
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", time.Hour)
	verifier := NewJWTService("secret-b", time.Hour)
	user := domain.User{ID: "u1"}

	token, err := issuer.Issue(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = verifier.Verify(token)
	if !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid, got %v", err)
	}
}

func TestJWTService_EmptyToken(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)
	if _, err := svc.Verify("   "); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid, got %v", err)
	}
}

func TestJWTService_DefaultTTL(t *testing.T) {
	svc := NewJWTService("secret", 0)
	if svc.TTL() != time.Hour {
		t.Fatalf("expected default TTL of one hour, got %v", svc.TTL())
	}
}
