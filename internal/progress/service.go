package progress

import (
	"context"
	"fmt"
	"time"
)

// Repo persists the single learner profile. Load returns (nil, nil) when
// no profile exists yet.
type Repo interface {
	Load(ctx context.Context) (*Profile, error)
	Save(ctx context.Context, p *Profile) error
}

// Service applies the profile mutation policy on top of a Repo. All
// mutations are read-modify-write against the single record; the app
// assumes one process, one writer.
type Service struct {
	repo Repo
}

// NewService creates a Service over the given repo.
func NewService(repo Repo) *Service {
	return &Service{repo: repo}
}

// Current loads the profile, re-initializing a fresh default when the
// stored record is missing or corrupt. Loaded records are sanitized.
func (s *Service) Current(ctx context.Context) (*Profile, error) {
	p, err := s.repo.Load(ctx)
	if err != nil || p == nil {
		// Missing or unreadable record: local recovery, not an error.
		p = NewProfile("")
		if err := s.repo.Save(ctx, p); err != nil {
			return nil, fmt.Errorf("initialize profile: %w", err)
		}
		return p, nil
	}
	p.Sanitize()
	return p, nil
}

// Save persists the profile after sanitizing it.
func (s *Service) Save(ctx context.Context, p *Profile) error {
	p.Sanitize()
	if err := s.repo.Save(ctx, p); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// UpdateSkill adds delta points to the skill, clamped to [0,MaxSkill],
// and recomputes the level from summed skills.
func (s *Service) UpdateSkill(ctx context.Context, skill Skill, delta int) (*Profile, error) {
	p, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	p.Skills.set(skill, clamp(p.Skills.Get(skill)+delta, 0, MaxSkill))
	p.Level = p.Skills.Sum()/LevelDivisor + 1
	return p, s.Save(ctx, p)
}

// UpdateGameProgress records a finished round: monotonic max on
// level/highScore, additive totalScore, lastPlayed stamped with now.
func (s *Service) UpdateGameProgress(ctx context.Context, gameID string, level, score int, now time.Time) (*Profile, error) {
	p, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	gp := p.Game(gameID)
	gp.CurrentLevel = max(gp.CurrentLevel, level)
	gp.HighScore = max(gp.HighScore, score)
	gp.LastPlayed = now.Format(time.RFC3339)
	p.TotalScore += score
	return p, s.Save(ctx, p)
}

// AddBadge inserts the badge if not already earned. Returns true when the
// badge is newly earned; calling twice observes the same final state.
func (s *Service) AddBadge(ctx context.Context, badgeID string) (bool, error) {
	p, err := s.Current(ctx)
	if err != nil {
		return false, err
	}
	if p.HasBadge(badgeID) {
		return false, nil
	}
	p.Badges = append(p.Badges, badgeID)
	return true, s.Save(ctx, p)
}

// MarkDayCompleted records the day as done. Idempotent.
func (s *Service) MarkDayCompleted(ctx context.Context, dayNum int) error {
	p, err := s.Current(ctx)
	if err != nil {
		return err
	}
	if p.DayCompleted(dayNum) {
		return nil
	}
	p.CompletedDays = append(p.CompletedDays, dayNum)
	return s.Save(ctx, p)
}

// UpdateDailyStreak advances the streak for a new calendar day: +1 when
// the last login was exactly yesterday, reset to 1 otherwise (including
// the first-ever login). Calling again on the same day is a no-op.
func (s *Service) UpdateDailyStreak(ctx context.Context, now time.Time) (*Profile, error) {
	p, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	today := day(now)
	if p.LastLoginDate == today {
		return p, nil
	}
	if p.LastLoginDate == day(now.AddDate(0, 0, -1)) {
		p.DailyStreak++
	} else {
		p.DailyStreak = 1
	}
	p.LastLoginDate = today
	return p, s.Save(ctx, p)
}
