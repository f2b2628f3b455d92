package game

import (
	"fmt"
	"math/rand"

	"github.com/verbora/verbora/internal/content"
)

// New constructs the engine for a registry game ID. threshold is the
// similarity cutoff for free-text validation; values outside (0,1] fall
// back to the default.
func New(gameID string, tables *content.Tables, day int, rng *rand.Rand, threshold float64) (Engine, error) {
	switch gameID {
	case content.GameParallelSentence:
		return NewParallelSentence(tables, day, rng, threshold)
	case content.GameStoryBuilder:
		return NewStoryBuilder(tables, day, rng, threshold)
	case content.GameConceptLadder:
		return NewConceptLadder(tables, day, rng, threshold)
	case content.GameVisualWord:
		return NewVisualWord(tables, day, rng, threshold)
	case content.GameQuizBattle:
		return NewQuizBattle(tables, day, rng, threshold)
	case content.GameErrorDetective:
		return NewErrorDetective(tables, day, rng, threshold)
	case content.GameMatchMeaning:
		return NewMatchMeaning(tables, day, rng, threshold)
	case content.GameTimeTravel:
		return NewTimeTravel(tables, day, rng, threshold)
	}
	return nil, fmt.Errorf("game: unknown game %q", gameID)
}
