package progress

import (
	"context"
	"errors"
	"testing"
	"time"
)

// memRepo is an in-memory Repo for tests.
type memRepo struct {
	profile *Profile
	loadErr error
	saves   int
}

func (m *memRepo) Load(ctx context.Context) (*Profile, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.profile, nil
}

func (m *memRepo) Save(ctx context.Context, p *Profile) error {
	m.profile = p
	m.loadErr = nil
	m.saves++
	return nil
}

func newTestService() (*Service, *memRepo) {
	repo := &memRepo{}
	return NewService(repo), repo
}

func TestCurrent_InitializesDefault(t *testing.T) {
	svc, repo := newTestService()

	p, err := svc.Current(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Level != 1 || p.Avatar != 1 || p.Name != "Student" {
		t.Errorf("unexpected default profile: %+v", p)
	}
	if repo.saves != 1 {
		t.Errorf("expected default profile to be persisted, saves=%d", repo.saves)
	}
}

func TestCurrent_RecoversFromCorruptRecord(t *testing.T) {
	svc, repo := newTestService()
	repo.loadErr = errors.New("unmarshal profile: unexpected end of JSON input")

	p, err := svc.Current(context.Background())
	if err != nil {
		t.Fatalf("expected local recovery, got error: %v", err)
	}
	if p == nil || p.Level != 1 {
		t.Errorf("expected fresh default profile, got %+v", p)
	}
}

func TestSanitize_ClampsAvatar(t *testing.T) {
	p := NewProfile("Asha")
	p.Avatar = 99
	p.Sanitize()
	if p.Avatar != 1 {
		t.Errorf("expected out-of-range avatar to clamp to 1, got %d", p.Avatar)
	}
}

func TestUpdateSkill_ClampAndLevel(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	p, err := svc.UpdateSkill(ctx, SkillLogic, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Skills.Logic != 60 {
		t.Errorf("expected logic=60, got %d", p.Skills.Logic)
	}
	if p.Level != 2 {
		t.Errorf("expected level 2 (60/50+1), got %d", p.Level)
	}

	p, err = svc.UpdateSkill(ctx, SkillLogic, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Skills.Logic != MaxSkill {
		t.Errorf("expected logic clamped at %d, got %d", MaxSkill, p.Skills.Logic)
	}
	if p.Level != 3 {
		t.Errorf("expected level 3 (100/50+1), got %d", p.Level)
	}
}

func TestUpdateSkill_NeverNegative(t *testing.T) {
	svc, _ := newTestService()

	p, err := svc.UpdateSkill(context.Background(), SkillSpeed, -10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Skills.Speed != 0 {
		t.Errorf("expected speed clamped at 0, got %d", p.Skills.Speed)
	}
}

func TestUpdateGameProgress_Monotonic(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	p, err := svc.UpdateGameProgress(ctx, "quiz-battle", 3, 120, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gp := p.GamesProgress["quiz-battle"]
	if gp.CurrentLevel != 3 || gp.HighScore != 120 {
		t.Fatalf("unexpected game progress: %+v", gp)
	}

	// A worse round must not regress level or high score, but the total
	// score is additive.
	p, err = svc.UpdateGameProgress(ctx, "quiz-battle", 2, 80, now.Add(time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gp = p.GamesProgress["quiz-battle"]
	if gp.CurrentLevel != 3 || gp.HighScore != 120 {
		t.Errorf("expected monotonic level/highScore, got %+v", gp)
	}
	if p.TotalScore != 200 {
		t.Errorf("expected totalScore 200, got %d", p.TotalScore)
	}
}

func TestAddBadge_Idempotent(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	earned, err := svc.AddBadge(ctx, "first-steps")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !earned {
		t.Error("expected badge to be newly earned")
	}

	earned, err = svc.AddBadge(ctx, "first-steps")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if earned {
		t.Error("expected second AddBadge to be a no-op")
	}

	p, _ := svc.Current(ctx)
	if len(p.Badges) != 1 {
		t.Errorf("expected one badge, got %v", p.Badges)
	}
}

func TestMarkDayCompleted_Idempotent(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if err := svc.MarkDayCompleted(ctx, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.MarkDayCompleted(ctx, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, _ := svc.Current(ctx)
	if len(p.CompletedDays) != 1 || p.CompletedDays[0] != 4 {
		t.Errorf("expected completedDays [4], got %v", p.CompletedDays)
	}
}

func TestUpdateDailyStreak(t *testing.T) {
	base := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)

	t.Run("first login starts at 1", func(t *testing.T) {
		svc, _ := newTestService()
		p, err := svc.UpdateDailyStreak(context.Background(), base)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.DailyStreak != 1 {
			t.Errorf("expected streak 1, got %d", p.DailyStreak)
		}
	})

	t.Run("consecutive day increments", func(t *testing.T) {
		svc, _ := newTestService()
		ctx := context.Background()
		svc.UpdateDailyStreak(ctx, base)
		p, _ := svc.UpdateDailyStreak(ctx, base.AddDate(0, 0, 1))
		if p.DailyStreak != 2 {
			t.Errorf("expected streak 2, got %d", p.DailyStreak)
		}
	})

	t.Run("gap resets to 1", func(t *testing.T) {
		svc, _ := newTestService()
		ctx := context.Background()
		svc.UpdateDailyStreak(ctx, base)
		svc.UpdateDailyStreak(ctx, base.AddDate(0, 0, 1))
		p, _ := svc.UpdateDailyStreak(ctx, base.AddDate(0, 0, 3))
		if p.DailyStreak != 1 {
			t.Errorf("expected streak reset to 1, got %d", p.DailyStreak)
		}
	})

	t.Run("same day is a no-op", func(t *testing.T) {
		svc, repo := newTestService()
		ctx := context.Background()
		svc.UpdateDailyStreak(ctx, base)
		saves := repo.saves
		p, _ := svc.UpdateDailyStreak(ctx, base.Add(5*time.Hour))
		if p.DailyStreak != 1 {
			t.Errorf("expected streak unchanged at 1, got %d", p.DailyStreak)
		}
		if repo.saves != saves {
			t.Errorf("same-day update must not write, saves went %d -> %d", saves, repo.saves)
		}
	})
}
