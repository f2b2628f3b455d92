package game

import (
	"fmt"
	"math/rand"

	"github.com/verbora/verbora/internal/content"
	"github.com/verbora/verbora/internal/progress"
)

const (
	conceptScore      = 10
	conceptSkillDelta = 2
)

// conceptLadder climbs the day's ladder one rung at a time, easiest
// first.
type conceptLadder struct {
	mcRun
}

// NewConceptLadder builds the ladder for the given day.
func NewConceptLadder(tables *content.Tables, day int, rng *rand.Rand, threshold float64) (Engine, error) {
	rungs := tables.ConceptsForDay(day)
	if len(rungs) == 0 {
		return nil, fmt.Errorf("%w %d: concept ladder", ErrNoContent, day)
	}

	items := make([]mcQuestion, 0, len(rungs))
	for _, c := range rungs {
		options, correctIdx := shuffledOptions(c.Options, c.CorrectAnswer, rng)
		items = append(items, mcQuestion{
			prompt:      c.Question,
			context:     fmt.Sprintf("%s · step %d of %d", c.Subject, c.Step, len(rungs)),
			options:     options,
			correctIdx:  correctIdx,
			explanation: c.Explanation,
			scoreDelta:  conceptScore,
			skill:       progress.SkillLogic,
			skillDelta:  conceptSkillDelta,
		})
	}

	e := &conceptLadder{mcRun{tally: newTally(content.GameConceptLadder, day, threshold), items: items}}
	return e, nil
}

func (e *conceptLadder) GameID() string { return content.GameConceptLadder }
