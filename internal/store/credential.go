package store

import (
	"context"
	"fmt"

	"github.com/verbora/verbora/ent"
)

// Credential is the stored local login record.
type Credential struct {
	Email          string
	PasswordDigest string
}

// CredentialRepo persists the single local login credential.
type CredentialRepo struct {
	client *ent.Client
}

// Get returns the stored credential, or (nil, nil) when none exists.
func (r *CredentialRepo) Get(ctx context.Context) (*Credential, error) {
	row, err := r.client.Credential.Query().First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query credential: %w", err)
	}
	return &Credential{Email: row.Email, PasswordDigest: row.PasswordDigest}, nil
}

// Put replaces the stored credential. Registration on a device that
// already has one overwrites it, matching single-user semantics.
func (r *CredentialRepo) Put(ctx context.Context, c Credential) error {
	if _, err := r.client.Credential.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	_, err := r.client.Credential.Create().
		SetEmail(c.Email).
		SetPasswordDigest(c.PasswordDigest).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create credential: %w", err)
	}
	return nil
}
