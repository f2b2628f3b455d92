// Package awards decides which badges a learner has newly earned, from
// the profile and the per-game answer statistics.
package awards

import (
	"github.com/verbora/verbora/internal/content"
	"github.com/verbora/verbora/internal/progress"
	"github.com/verbora/verbora/internal/store"
)

// Evaluate returns badge IDs earned but not yet on the profile.
// perfectRun marks a just-finished flawless game.
func Evaluate(p *progress.Profile, stats []store.GameStats, perfectRun bool) []string {
	correct := make(map[string]int, len(stats))
	for _, s := range stats {
		correct[s.GameID] = s.Correct
	}

	var earned []string
	award := func(id string, ok bool) {
		if ok && !p.HasBadge(id) {
			earned = append(earned, id)
		}
	}

	award("perfect-score", perfectRun)
	award("streak-keeper", p.DailyStreak >= requirement("streak-keeper"))
	award("grammar-guardian", correct[content.GameConceptLadder] >= requirement("grammar-guardian"))
	award("error-hunter", correct[content.GameErrorDetective] >= requirement("error-hunter"))
	award("word-wizard", correct[content.GameMatchMeaning] >= requirement("word-wizard"))
	award("speed-master", correct[content.GameQuizBattle] >= requirement("speed-master"))
	award("story-teller", storiesCompleted(p) >= requirement("story-teller"))
	award("village-hero", allGamesCompleted(p))

	return earned
}

// storiesCompleted counts finished story-builder runs via the level
// counter, which advances once per completed story.
func storiesCompleted(p *progress.Profile) int {
	gp, ok := p.GamesProgress[content.GameStoryBuilder]
	if !ok {
		return 0
	}
	return gp.CurrentLevel - 1
}

func allGamesCompleted(p *progress.Profile) bool {
	for _, g := range content.Games() {
		gp, ok := p.GamesProgress[g.ID]
		if !ok || !gp.Completed {
			return false
		}
	}
	return true
}

func requirement(badgeID string) int {
	b, ok := content.BadgeByID(badgeID)
	if !ok {
		return 1
	}
	return b.Requirement
}
