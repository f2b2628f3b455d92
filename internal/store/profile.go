package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/verbora/verbora/ent"
	"github.com/verbora/verbora/internal/progress"
)

// ProfileRepo persists the single learner profile as a JSON row.
// It implements progress.Repo.
type ProfileRepo struct {
	client *ent.Client
}

var _ progress.Repo = (*ProfileRepo)(nil)

// Load returns the stored profile, or (nil, nil) when none exists.
// A row that fails to unmarshal is reported as an error; the progress
// service treats that as a corrupt record and re-initializes.
func (r *ProfileRepo) Load(ctx context.Context) (*progress.Profile, error) {
	row, err := r.client.Profile.Query().First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}

	b, err := json.Marshal(row.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal profile data: %w", err)
	}
	var p progress.Profile
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	return &p, nil
}

// Save upserts the profile row.
func (r *ProfileRepo) Save(ctx context.Context, p *progress.Profile) error {
	data, err := profileToMap(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	row, err := r.client.Profile.Query().First(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query profile: %w", err)
		}
		_, err = r.client.Profile.Create().
			SetUserID(p.UserID).
			SetData(data).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		return nil
	}

	_, err = row.Update().
		SetUserID(p.UserID).
		SetData(data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// Reset deletes the stored profile and all logged events.
func (r *ProfileRepo) Reset(ctx context.Context) error {
	if _, err := r.client.Profile.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	if _, err := r.client.AnswerEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete answer events: %w", err)
	}
	if _, err := r.client.SessionEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete session events: %w", err)
	}
	return nil
}

// profileToMap converts a profile to map[string]any for ent JSON storage.
func profileToMap(p *progress.Profile) (map[string]any, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}
