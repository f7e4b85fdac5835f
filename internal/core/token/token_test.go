package token

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gestoria/admin-api/internal/core/domain"
)

func testUsuario() *domain.Usuario {
	return &domain.Usuario{
		ID:     "abc123",
		Nombre: "Laura",
		Email:  "laura@example.com",
		Rol:    domain.RolAdmin,
	}
}

func TestNewService_EmptySecret(t *testing.T) {
	if _, err := NewService(""); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}

func TestService_IssueVerify_RoundTrip(t *testing.T) {
	svc, err := NewService("secret")
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	raw, err := svc.Issue(testUsuario())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := svc.Verify(raw)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != "abc123" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if claims.Rol != domain.RolAdmin {
		t.Fatalf("unexpected rol: %s", claims.Rol)
	}
	if claims.Nombre != "Laura" || claims.Email != "laura@example.com" {
		t.Fatalf("unexpected identity claims: %+v", claims)
	}
	if claims.ID == "" {
		t.Fatalf("expected jti to be set")
	}
	if claims.UsuarioID() != claims.Subject {
		t.Fatalf("UsuarioID should mirror the subject")
	}
}

func TestService_Issue_Lifetime(t *testing.T) {
	issuedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _ := NewService("secret")
	svc.WithClock(func() time.Time { return issuedAt })

	raw, err := svc.Issue(testUsuario())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	claims, err := svc.Verify(raw)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if got := claims.ExpiresAt.Time; !got.Equal(issuedAt.Add(Lifetime)) {
		t.Fatalf("expected expiry %v, got %v", issuedAt.Add(Lifetime), got)
	}
}

func TestService_Verify_ExpiryBoundary(t *testing.T) {
	issuedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	now := issuedAt
	svc, _ := NewService("secret")
	svc.WithClock(func() time.Time { return now })

	raw, err := svc.Issue(testUsuario())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// One second before expiry the token is still good.
	now = issuedAt.Add(Lifetime - time.Second)
	if _, err := svc.Verify(raw); err != nil {
		t.Fatalf("token should be valid just before expiry: %v", err)
	}

	// At the expiry instant it is already rejected.
	now = issuedAt.Add(Lifetime)
	if _, err := svc.Verify(raw); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken at expiry, got %v", err)
	}

	now = issuedAt.Add(Lifetime + time.Hour)
	if _, err := svc.Verify(raw); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken after expiry, got %v", err)
	}
}

func TestService_Verify_WrongSecret(t *testing.T) {
	issuer, _ := NewService("secret-a")
	verifier, _ := NewService("secret-b")

	raw, err := issuer.Issue(testUsuario())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := verifier.Verify(raw); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestService_Verify_Tampered(t *testing.T) {
	svc, _ := NewService("secret")
	raw, err := svc.Issue(testUsuario())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %s", raw)
	}
	// Swap the payload for one claiming a different role while keeping the
	// original signature.
	other, _ := svc.Issue(&domain.Usuario{ID: "abc123", Rol: domain.RolCliente})
	tampered := parts[0] + "." + strings.Split(other, ".")[1] + "." + parts[2]

	if _, err := svc.Verify(tampered); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for tampered payload, got %v", err)
	}
}

func TestService_Verify_Malformed(t *testing.T) {
	svc, _ := NewService("secret")
	for _, raw := range []string{"", "garbage", "a.b", "a.b.c"} {
		if _, err := svc.Verify(raw); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", raw, err)
		}
	}
}

func TestService_Verify_RejectsUnsignedAlg(t *testing.T) {
	svc, _ := NewService("secret")

	// Header {"alg":"none","typ":"JWT"} with an empty signature.
	raw := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJzdWIiOiJhYmMxMjMifQ."
	if _, err := svc.Verify(raw); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for alg=none, got %v", err)
	}
}
