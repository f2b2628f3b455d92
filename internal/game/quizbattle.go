package game

import (
	"fmt"
	"math/rand"

	"github.com/verbora/verbora/internal/content"
	"github.com/verbora/verbora/internal/progress"
)

const (
	quizScore      = 10
	quizSkillDelta = 2

	// QuizTimeLimit is the per-question countdown in seconds. Remaining
	// seconds on a correct answer are added to the score.
	QuizTimeLimit = 15
)

// quizBattle races the learner against a simulated rival. The rival
// answers from the same rng, so a seeded run is fully reproducible.
type quizBattle struct {
	mcRun
	rng          *rand.Rand
	difficulties []int
	rivalScore   int
}

// NewQuizBattle builds the timed battle for the given day.
func NewQuizBattle(tables *content.Tables, day int, rng *rand.Rand, threshold float64) (Engine, error) {
	qs := tables.QuizForDay(day)
	if len(qs) == 0 {
		return nil, fmt.Errorf("%w %d: quiz battle", ErrNoContent, day)
	}

	items := make([]mcQuestion, 0, len(qs))
	difficulties := make([]int, 0, len(qs))
	for _, q := range qs {
		options, correctIdx := shuffledOptions(q.Options, q.CorrectAnswer, rng)
		items = append(items, mcQuestion{
			prompt:     q.Question,
			context:    q.Subject,
			options:    options,
			correctIdx: correctIdx,
			scoreDelta: quizScore,
			skill:      progress.SkillSpeed,
			skillDelta: quizSkillDelta,
		})
		difficulties = append(difficulties, q.Difficulty)
	}

	e := &quizBattle{
		mcRun:        mcRun{tally: newTally(content.GameQuizBattle, day, threshold), items: items, timeBonus: true},
		rng:          rng,
		difficulties: difficulties,
	}
	return e, nil
}

func (e *quizBattle) GameID() string { return content.GameQuizBattle }

func (e *quizBattle) Submit(ans Answer) (Feedback, error) {
	idx := e.idx
	fb, err := e.mcRun.Submit(ans)
	if err != nil {
		return fb, err
	}
	e.rivalAnswers(e.difficulties[idx])
	return fb, nil
}

// rivalAnswers simulates the rival on one question. Harder questions
// trip the rival more often.
func (e *quizBattle) rivalAnswers(difficulty int) {
	chance := 80 - 15*difficulty
	if e.rng.Intn(100) < chance {
		e.rivalScore += quizScore + e.rng.Intn(QuizTimeLimit)
	}
}

func (e *quizBattle) Outcome() Outcome {
	out := e.outcome()
	out.RivalScore = e.rivalScore
	return out
}
