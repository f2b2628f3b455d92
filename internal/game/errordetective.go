package game

import (
	"fmt"
	"math/rand"

	"github.com/verbora/verbora/internal/content"
	"github.com/verbora/verbora/internal/match"
	"github.com/verbora/verbora/internal/progress"
)

const (
	errorScore      = 15
	errorSkillDelta = 3
)

// errorDetective shows the day's faulty sentence and asks for the fixed
// version, typed freely.
type errorDetective struct {
	tally
	item content.ErrorItem
}

// NewErrorDetective builds the correction round for the given day.
func NewErrorDetective(tables *content.Tables, day int, _ *rand.Rand, threshold float64) (Engine, error) {
	item, ok := tables.ErrorForDay(day)
	if !ok {
		return nil, fmt.Errorf("%w %d: error detective", ErrNoContent, day)
	}
	return &errorDetective{
		tally: newTally(content.GameErrorDetective, day, threshold),
		item:  item,
	}, nil
}

func (e *errorDetective) GameID() string { return content.GameErrorDetective }

func (e *errorDetective) Phase() Phase { return e.phase }

func (e *errorDetective) Question() Question {
	return Question{
		Prompt:  fmt.Sprintf("Fix the %s mistake:", e.item.ErrorType),
		Context: e.item.IncorrectSentence,
	}
}

func (e *errorDetective) Submit(ans Answer) (Feedback, error) {
	if e.phase != PhaseAnswering {
		return Feedback{}, errWrongPhase
	}

	verdict, err := match.Validate(ans.Text, []string{e.item.CorrectSentence}, e.threshold)
	if err != nil {
		return Feedback{}, err
	}

	scoreDelta := 0
	skillDelta := 0
	if verdict.IsMatch {
		scoreDelta = errorScore
		skillDelta = errorSkillDelta
	}
	e.record(verdict.IsMatch, verdict.IsExact, scoreDelta)

	return Feedback{
		Correct:     verdict.IsMatch,
		Exact:       verdict.IsExact,
		BestMatch:   verdict.BestMatch,
		Suggestions: verdict.Suggestions,
		Explanation: e.item.Explanation,
		ScoreDelta:  scoreDelta,
		Skill:       progress.SkillLogic,
		SkillDelta:  skillDelta,
	}, nil
}

func (e *errorDetective) Acknowledge() {
	if e.phase != PhaseFeedback {
		return
	}
	e.phase = PhaseComplete
}

func (e *errorDetective) Outcome() Outcome { return e.outcome() }
