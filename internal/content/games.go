package content

import "github.com/verbora/verbora/internal/progress"

// Game IDs, stable across profile records and the event log.
const (
	GameParallelSentence = "parallel-sentence"
	GameStoryBuilder     = "story-builder"
	GameConceptLadder    = "concept-ladder"
	GameVisualWord       = "visual-word"
	GameQuizBattle       = "quiz-battle"
	GameErrorDetective   = "error-detective"
	GameMatchMeaning     = "match-meaning"
	GameTimeTravel       = "time-travel"
)

// Game describes one mini-game in the hub.
type Game struct {
	ID          string
	Name        string
	Skill       progress.Skill
	Description string
	Icon        string
	UnlockLevel int
}

// Games returns the eight mini-games in hub display order.
func Games() []Game {
	return []Game{
		{ID: GameParallelSentence, Name: "Parallel Sentence", Skill: progress.SkillVocabulary, Description: "Match sentences with similar meanings", Icon: "📖", UnlockLevel: 1},
		{ID: GameStoryBuilder, Name: "Story Builder Quest", Skill: progress.SkillCreativity, Description: "Arrange sentences to build stories", Icon: "📚", UnlockLevel: 1},
		{ID: GameConceptLadder, Name: "Concept Ladder", Skill: progress.SkillLogic, Description: "Climb the ladder of knowledge", Icon: "🪜", UnlockLevel: 2},
		{ID: GameVisualWord, Name: "Visual to Word", Skill: progress.SkillVocabulary, Description: "Match pictures with words", Icon: "🖼️", UnlockLevel: 2},
		{ID: GameQuizBattle, Name: "Quiz Battle Arena", Skill: progress.SkillSpeed, Description: "Battle against time and a rival", Icon: "⚔️", UnlockLevel: 3},
		{ID: GameErrorDetective, Name: "Error Detective", Skill: progress.SkillLogic, Description: "Find and fix mistakes", Icon: "🔍", UnlockLevel: 3},
		{ID: GameMatchMeaning, Name: "Match the Meaning", Skill: progress.SkillVocabulary, Description: "Connect words to meanings", Icon: "🔗", UnlockLevel: 4},
		{ID: GameTimeTravel, Name: "Time Travel Questions", Skill: progress.SkillLogic, Description: "Past choices affect the future", Icon: "⏳", UnlockLevel: 5},
	}
}

// GameByID returns the game definition, or false when unknown.
func GameByID(id string) (Game, bool) {
	for _, g := range Games() {
		if g.ID == id {
			return g, true
		}
	}
	return Game{}, false
}

// Badge is an earnable achievement.
type Badge struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Requirement int
}

// Badges returns all badge definitions in display order.
func Badges() []Badge {
	return []Badge{
		{ID: "grammar-guardian", Name: "Grammar Guardian", Description: "Master 10 grammar concepts", Icon: "📚", Requirement: 10},
		{ID: "story-teller", Name: "Story Teller of the Village", Description: "Complete 5 stories", Icon: "📖", Requirement: 5},
		{ID: "math-warrior", Name: "Math Warrior", Description: "Solve 20 math problems", Icon: "🔢", Requirement: 20},
		{ID: "science-explorer", Name: "Science Explorer", Description: "Answer 15 science questions", Icon: "🔬", Requirement: 15},
		{ID: "speed-master", Name: "Speed Master", Description: "Win 10 quick battles", Icon: "⚡", Requirement: 10},
		{ID: "error-hunter", Name: "Error Hunter", Description: "Find 15 errors", Icon: "🔍", Requirement: 15},
		{ID: "word-wizard", Name: "Word Wizard", Description: "Match 20 meanings", Icon: "✨", Requirement: 20},
		{ID: "streak-keeper", Name: "Streak Keeper", Description: "7 day streak", Icon: "🔥", Requirement: 7},
		{ID: "perfect-score", Name: "Perfect Score", Description: "Get 100% in any game", Icon: "💯", Requirement: 1},
		{ID: "village-hero", Name: "Village Hero", Description: "Complete all levels", Icon: "🏆", Requirement: 1},
	}
}

// BadgeByID returns the badge definition, or false when unknown.
func BadgeByID(id string) (Badge, bool) {
	for _, b := range Badges() {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}
