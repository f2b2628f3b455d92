// Package auth implements the local, offline login. Credentials never
// leave the device: a single email plus a SHA-256 password digest is
// kept in the store, and login just compares digests.
package auth

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/verbora/verbora/internal/store"
)

var (
	// ErrNoAccount means login was attempted before registration.
	ErrNoAccount = errors.New("auth: no account registered on this device")

	// ErrBadCredentials means the email or password did not match.
	ErrBadCredentials = errors.New("auth: email or password incorrect")

	// ErrInvalidEmail rejects registration with a malformed email.
	ErrInvalidEmail = errors.New("auth: invalid email address")

	// ErrWeakPassword rejects registration with a too-short password.
	ErrWeakPassword = errors.New("auth: password must be at least 4 characters")
)

// Repo is the credential storage the service needs.
type Repo interface {
	Get(ctx context.Context) (*store.Credential, error)
	Put(ctx context.Context, c store.Credential) error
}

// Service handles register, login and logout for the single local user.
type Service struct {
	repo Repo
	user string
}

// NewService wraps the credential repo.
func NewService(repo Repo) *Service {
	return &Service{repo: repo}
}

// Register stores a new credential, replacing any previous one, and
// logs the user in.
func (s *Service) Register(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if !validEmail(email) {
		return ErrInvalidEmail
	}
	if len(password) < 4 {
		return ErrWeakPassword
	}
	cred := store.Credential{Email: email, PasswordDigest: Digest(password)}
	if err := s.repo.Put(ctx, cred); err != nil {
		return fmt.Errorf("store credential: %w", err)
	}
	s.user = email
	return nil
}

// Login checks the email and password against the stored credential.
func (s *Service) Login(ctx context.Context, email, password string) error {
	cred, err := s.repo.Get(ctx)
	if err != nil {
		return fmt.Errorf("load credential: %w", err)
	}
	if cred == nil {
		return ErrNoAccount
	}

	email = strings.TrimSpace(strings.ToLower(email))
	digest := Digest(password)
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(cred.Email)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(digest), []byte(cred.PasswordDigest)) == 1
	if !emailOK || !passOK {
		return ErrBadCredentials
	}
	s.user = cred.Email
	return nil
}

// Logout clears the in-memory session. The stored credential stays.
func (s *Service) Logout() {
	s.user = ""
}

// CurrentUser returns the logged-in email, or false when logged out.
func (s *Service) CurrentUser() (string, bool) {
	return s.user, s.user != ""
}

// Registered reports whether a credential exists on this device.
func (s *Service) Registered(ctx context.Context) (bool, error) {
	cred, err := s.repo.Get(ctx)
	if err != nil {
		return false, err
	}
	return cred != nil, nil
}

// Digest returns the hex SHA-256 of the password.
func Digest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return false
	}
	return !strings.ContainsAny(email, " \t")
}
