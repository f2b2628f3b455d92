package awards

import (
	"testing"

	"github.com/verbora/verbora/internal/content"
	"github.com/verbora/verbora/internal/progress"
	"github.com/verbora/verbora/internal/store"
)

func has(ids []string, id string) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

func TestEvaluate_PerfectRun(t *testing.T) {
	p := progress.NewProfile("Asha")

	earned := Evaluate(p, nil, true)
	if !has(earned, "perfect-score") {
		t.Errorf("expected perfect-score, got %v", earned)
	}

	p.Badges = []string{"perfect-score"}
	earned = Evaluate(p, nil, true)
	if has(earned, "perfect-score") {
		t.Error("already-earned badge awarded again")
	}
}

func TestEvaluate_StreakKeeper(t *testing.T) {
	p := progress.NewProfile("Asha")
	p.DailyStreak = 6
	if has(Evaluate(p, nil, false), "streak-keeper") {
		t.Error("streak-keeper awarded below 7 days")
	}
	p.DailyStreak = 7
	if !has(Evaluate(p, nil, false), "streak-keeper") {
		t.Error("streak-keeper missing at 7 days")
	}
}

func TestEvaluate_CountBadges(t *testing.T) {
	p := progress.NewProfile("Asha")
	stats := []store.GameStats{
		{GameID: content.GameMatchMeaning, Answered: 25, Correct: 20},
		{GameID: content.GameErrorDetective, Answered: 14, Correct: 14},
	}

	earned := Evaluate(p, stats, false)
	if !has(earned, "word-wizard") {
		t.Errorf("expected word-wizard at 20 correct, got %v", earned)
	}
	if has(earned, "error-hunter") {
		t.Errorf("error-hunter needs 15, got it at 14: %v", earned)
	}
}

func TestEvaluate_StoryTellerAndVillageHero(t *testing.T) {
	p := progress.NewProfile("Asha")
	p.Game(content.GameStoryBuilder).CurrentLevel = 6

	earned := Evaluate(p, nil, false)
	if !has(earned, "story-teller") {
		t.Errorf("expected story-teller after 5 completed stories, got %v", earned)
	}
	if has(earned, "village-hero") {
		t.Error("village-hero requires every game completed")
	}

	for _, g := range content.Games() {
		p.Game(g.ID).Completed = true
	}
	if !has(Evaluate(p, nil, false), "village-hero") {
		t.Error("expected village-hero with all games completed")
	}
}
