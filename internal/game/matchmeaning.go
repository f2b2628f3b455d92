package game

import (
	"fmt"
	"math/rand"

	"github.com/verbora/verbora/internal/content"
	"github.com/verbora/verbora/internal/progress"
)

const (
	meaningScore      = 10
	meaningSkillDelta = 2
)

// matchMeaning runs through the day's word-meaning pairs, each word
// offered with its meaning hidden among distractors.
type matchMeaning struct {
	mcRun
}

// NewMatchMeaning builds the meaning-matching round for the given day.
func NewMatchMeaning(tables *content.Tables, day int, rng *rand.Rand, threshold float64) (Engine, error) {
	pairs := tables.MeaningsForDay(day)
	if len(pairs) == 0 {
		return nil, fmt.Errorf("%w %d: match meaning", ErrNoContent, day)
	}

	items := make([]mcQuestion, 0, len(pairs))
	for _, p := range pairs {
		options := append([]string{p.Meaning}, p.Distractors...)
		options, correctIdx := shuffledOptions(options, 0, rng)
		items = append(items, mcQuestion{
			prompt:      fmt.Sprintf("What does %q mean?", p.Word),
			options:     options,
			correctIdx:  correctIdx,
			explanation: fmt.Sprintf("%s: %s", p.Word, p.Meaning),
			scoreDelta:  meaningScore,
			skill:       progress.SkillVocabulary,
			skillDelta:  meaningSkillDelta,
		})
	}

	e := &matchMeaning{mcRun{tally: newTally(content.GameMatchMeaning, day, threshold), items: items}}
	return e, nil
}

func (e *matchMeaning) GameID() string { return content.GameMatchMeaning }
