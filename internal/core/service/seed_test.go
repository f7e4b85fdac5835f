package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/gestoria/admin-api/internal/core/domain"
)

func TestSeedAdmin_CreatesAccount(t *testing.T) {
	repo := newStubUsuarioRepo()

	if err := SeedAdmin(context.Background(), repo, "admin@example.com", "s3creta!", zerolog.Nop()); err != nil {
		t.Fatalf("SeedAdmin failed: %v", err)
	}

	u, err := repo.FindByEmail(context.Background(), "admin@example.com")
	if err != nil {
		t.Fatalf("seeded account missing: %v", err)
	}
	if u.Rol != domain.RolAdmin || !u.Estado {
		t.Fatalf("unexpected seeded account: %+v", u)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3creta!")) != nil {
		t.Fatalf("seeded hash does not match password")
	}
}

func TestSeedAdmin_Idempotent(t *testing.T) {
	repo := newStubUsuarioRepo()

	for i := 0; i < 2; i++ {
		if err := SeedAdmin(context.Background(), repo, "admin@example.com", "s3creta!", zerolog.Nop()); err != nil {
			t.Fatalf("SeedAdmin run %d failed: %v", i, err)
		}
	}

	all, _ := repo.ListAll(context.Background())
	if len(all) != 1 {
		t.Fatalf("expected a single admin account, got %d", len(all))
	}
}

func TestSeedAdmin_Disabled(t *testing.T) {
	repo := newStubUsuarioRepo()

	if err := SeedAdmin(context.Background(), repo, "", "", zerolog.Nop()); err != nil {
		t.Fatalf("SeedAdmin failed: %v", err)
	}
	if all, _ := repo.ListAll(context.Background()); len(all) != 0 {
		t.Fatalf("no account should be created when disabled, got %d", len(all))
	}
}
