package game

import (
	"fmt"
	"math/rand"

	"github.com/verbora/verbora/internal/content"
	"github.com/verbora/verbora/internal/progress"
)

const timeTravelScore = 10

// timeTravel chains era questions: each answer names the next era, and
// the run continues while that era exists in the table. Score and skill
// gains scale with question difficulty.
type timeTravel struct {
	mcRun
}

// NewTimeTravel builds the era chain starting at the given day.
func NewTimeTravel(tables *content.Tables, day int, rng *rand.Rand, threshold float64) (Engine, error) {
	q, ok := tables.TimeTravelForDay(day)
	if !ok {
		return nil, fmt.Errorf("%w %d: time travel", ErrNoContent, day)
	}

	visited := map[string]bool{}
	var items []mcQuestion
	for {
		visited[q.Era] = true
		options, correctIdx := shuffledOptions(q.Options, q.CorrectAnswer, rng)
		explanation := ""
		if len(q.NextEra) > 0 {
			explanation = fmt.Sprintf("Your choice opens the way to %s.", q.NextEra[0])
		}
		items = append(items, mcQuestion{
			prompt:      q.Question,
			context:     q.Era,
			options:     options,
			correctIdx:  correctIdx,
			explanation: explanation,
			scoreDelta:  timeTravelScore * q.Difficulty,
			skill:       progress.SkillLogic,
			skillDelta:  q.Difficulty,
		})

		next, ok := eraQuestion(tables, q.NextEra, visited)
		if !ok {
			break
		}
		q = next
	}

	e := &timeTravel{mcRun{tally: newTally(content.GameTimeTravel, day, threshold), items: items}}
	return e, nil
}

// eraQuestion finds the first unvisited era from the candidates that has
// a question in the table.
func eraQuestion(tables *content.Tables, eras []string, visited map[string]bool) (content.TimeTravelQuestion, bool) {
	for _, era := range eras {
		if visited[era] {
			continue
		}
		for _, q := range tables.TimeTravel {
			if q.Era == era {
				return q, true
			}
		}
	}
	return content.TimeTravelQuestion{}, false
}

func (e *timeTravel) GameID() string { return content.GameTimeTravel }
