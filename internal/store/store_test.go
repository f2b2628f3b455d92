package store

import (
	"context"
	"testing"

	"github.com/verbora/verbora/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProfileRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	// No profile yet.
	p, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if p != nil {
		t.Fatal("expected nil profile when none exists")
	}

	in := progress.NewProfile("Asha")
	in.Skills.Vocabulary = 42
	in.Badges = append(in.Badges, "first-steps")
	in.Game("quiz-battle").HighScore = 120

	if err := repo.Save(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out == nil {
		t.Fatal("expected stored profile")
	}
	if out.Name != "Asha" || out.Skills.Vocabulary != 42 {
		t.Errorf("round trip mismatch: %+v", out)
	}
	if out.GamesProgress["quiz-battle"].HighScore != 120 {
		t.Errorf("game progress lost: %+v", out.GamesProgress)
	}
}

func TestProfileSaveIsUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	p := progress.NewProfile("Asha")
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}
	p.TotalScore = 77
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("second save: %v", err)
	}

	out, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.TotalScore != 77 {
		t.Errorf("expected totalScore 77, got %d", out.TotalScore)
	}

	n, err := s.Client().Profile.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("expected a single profile row, got %d", n)
	}
}

func TestEventAppendAndStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionID: "s1", GameID: "quiz-battle", Day: 1, Prompt: "q1", LearnerAnswer: "a", Correct: true, Exact: true, ScoreDelta: 10, Skill: "speed"},
		{SessionID: "s1", GameID: "quiz-battle", Day: 1, Prompt: "q2", LearnerAnswer: "b", Correct: false, ScoreDelta: 0, Skill: "speed"},
		{SessionID: "s2", GameID: "error-detective", Day: 2, Prompt: "q3", LearnerAnswer: "c", Correct: true, ScoreDelta: 15, Skill: "logic"},
	}
	for _, a := range answers {
		if err := repo.AppendAnswer(ctx, a); err != nil {
			t.Fatalf("append answer: %v", err)
		}
	}

	stats, err := repo.PerGameStats(ctx)
	if err != nil {
		t.Fatalf("per-game stats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected stats for 2 games, got %v", stats)
	}
	// Sorted by game ID: error-detective first.
	if stats[0].GameID != "error-detective" || stats[0].Answered != 1 || stats[0].Correct != 1 {
		t.Errorf("unexpected stats[0]: %+v", stats[0])
	}
	if stats[1].GameID != "quiz-battle" || stats[1].Answered != 2 || stats[1].Correct != 1 || stats[1].Exact != 1 {
		t.Errorf("unexpected stats[1]: %+v", stats[1])
	}
	if acc := stats[1].Accuracy(); acc != 0.5 {
		t.Errorf("expected accuracy 0.5, got %f", acc)
	}
}

func TestSessionEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	start := SessionEventData{SessionID: "s1", GameID: "story-builder", Action: ActionStart}
	end := SessionEventData{SessionID: "s1", GameID: "story-builder", Action: ActionEnd, QuestionsServed: 6, CorrectAnswers: 5, Score: 50, DurationSecs: 90}
	if err := repo.AppendSession(ctx, start); err != nil {
		t.Fatalf("append start: %v", err)
	}
	if err := repo.AppendSession(ctx, end); err != nil {
		t.Fatalf("append end: %v", err)
	}

	n, err := s.Client().SessionEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 session events, got %d", n)
	}
}

func TestCredentialRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.CredentialRepo()
	ctx := context.Background()

	c, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if c != nil {
		t.Fatal("expected nil credential when none exists")
	}

	if err := repo.Put(ctx, Credential{Email: "kid@example.com", PasswordDigest: "abc"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	// Re-registration replaces the record.
	if err := repo.Put(ctx, Credential{Email: "kid2@example.com", PasswordDigest: "def"}); err != nil {
		t.Fatalf("second put: %v", err)
	}

	c, err = repo.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if c == nil || c.Email != "kid2@example.com" {
		t.Errorf("unexpected credential: %+v", c)
	}
}

func TestProfileReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.ProfileRepo().Save(ctx, progress.NewProfile("Asha")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.EventRepo().AppendAnswer(ctx, AnswerEventData{SessionID: "s1", GameID: "g", Day: 1, Prompt: "q", Correct: true, Skill: "logic"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := s.ProfileRepo().Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	p, err := s.ProfileRepo().Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p != nil {
		t.Error("expected profile gone after reset")
	}
	n, _ := s.Client().AnswerEvent.Query().Count(ctx)
	if n != 0 {
		t.Errorf("expected answer events gone, got %d", n)
	}
}
