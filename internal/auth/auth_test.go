package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/verbora/verbora/internal/store"
)

type memRepo struct {
	cred *store.Credential
}

func (m *memRepo) Get(context.Context) (*store.Credential, error) {
	return m.cred, nil
}

func (m *memRepo) Put(_ context.Context, c store.Credential) error {
	m.cred = &c
	return nil
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&memRepo{})

	if err := svc.Register(ctx, "Asha@Example.com", "secret"); err != nil {
		t.Fatalf("register: %v", err)
	}
	user, ok := svc.CurrentUser()
	if !ok || user != "asha@example.com" {
		t.Errorf("expected logged in as normalized email, got %q ok=%v", user, ok)
	}

	svc.Logout()
	if _, ok := svc.CurrentUser(); ok {
		t.Error("expected logged out")
	}

	if err := svc.Login(ctx, "asha@example.com", "secret"); err != nil {
		t.Errorf("login after logout: %v", err)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&memRepo{})
	if err := svc.Register(ctx, "asha@example.com", "secret"); err != nil {
		t.Fatal(err)
	}
	svc.Logout()

	if err := svc.Login(ctx, "asha@example.com", "wrong"); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("expected ErrBadCredentials, got %v", err)
	}
	if _, ok := svc.CurrentUser(); ok {
		t.Error("failed login must not establish a session")
	}
}

func TestLoginWithoutAccount(t *testing.T) {
	svc := NewService(&memRepo{})
	if err := svc.Login(context.Background(), "a@b.c", "pw"); !errors.Is(err, ErrNoAccount) {
		t.Errorf("expected ErrNoAccount, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&memRepo{})

	tests := []struct {
		email    string
		password string
		want     error
	}{
		{"not-an-email", "secret", ErrInvalidEmail},
		{"@example.com", "secret", ErrInvalidEmail},
		{"a@", "secret", ErrInvalidEmail},
		{"a@b.c", "pw", ErrWeakPassword},
	}
	for _, tc := range tests {
		if err := svc.Register(ctx, tc.email, tc.password); !errors.Is(err, tc.want) {
			t.Errorf("Register(%q, %q) = %v, want %v", tc.email, tc.password, err, tc.want)
		}
	}
}

func TestRegisterOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := &memRepo{}
	svc := NewService(repo)

	if err := svc.Register(ctx, "first@example.com", "onepass"); err != nil {
		t.Fatal(err)
	}
	if err := svc.Register(ctx, "second@example.com", "twopass"); err != nil {
		t.Fatal(err)
	}
	svc.Logout()

	if err := svc.Login(ctx, "first@example.com", "onepass"); err == nil {
		t.Error("old credential should be gone after re-registration")
	}
	if err := svc.Login(ctx, "second@example.com", "twopass"); err != nil {
		t.Errorf("new credential rejected: %v", err)
	}
}

func TestDigestStable(t *testing.T) {
	if Digest("secret") != Digest("secret") {
		t.Error("digest must be deterministic")
	}
	if Digest("secret") == Digest("Secret") {
		t.Error("digest must be case sensitive")
	}
	if len(Digest("x")) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(Digest("x")))
	}
}
