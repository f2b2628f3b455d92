package game

import (
	"fmt"
	"math/rand"

	"github.com/verbora/verbora/internal/content"
	"github.com/verbora/verbora/internal/progress"
)

const (
	visualScore      = 10
	visualSkillDelta = 2
)

// visualWord shows the day's pictorial clue and asks for the word it
// depicts.
type visualWord struct {
	mcRun
}

// NewVisualWord builds the visual-to-word round for the given day.
func NewVisualWord(tables *content.Tables, day int, rng *rand.Rand, threshold float64) (Engine, error) {
	item, ok := tables.VisualForDay(day)
	if !ok {
		return nil, fmt.Errorf("%w %d: visual word", ErrNoContent, day)
	}

	correctIdx := 0
	for i, o := range item.Options {
		if o == item.CorrectWord {
			correctIdx = i
			break
		}
	}
	options, correctIdx := shuffledOptions(item.Options, correctIdx, rng)

	e := &visualWord{mcRun{
		tally: newTally(content.GameVisualWord, day, threshold),
		items: []mcQuestion{{
			prompt:     "Which word does this show?",
			context:    item.Clue,
			options:    options,
			correctIdx: correctIdx,
			scoreDelta: visualScore,
			skill:      progress.SkillVocabulary,
			skillDelta: visualSkillDelta,
		}},
	}}
	return e, nil
}

func (e *visualWord) GameID() string { return content.GameVisualWord }
