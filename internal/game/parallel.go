package game

import (
	"fmt"
	"math/rand"

	"github.com/verbora/verbora/internal/content"
	"github.com/verbora/verbora/internal/match"
	"github.com/verbora/verbora/internal/progress"
)

const (
	parallelScore      = 10
	parallelExactScore = 15
	parallelSkill      = 2
	parallelExactSkill = 3
)

// parallelSentence asks the learner to rephrase the day's sentence.
// Answers can be typed freely or built from the word bank; an exact
// reproduction of the target phrasing earns a bonus.
type parallelSentence struct {
	tally
	sentence content.ParallelSentence
	wordBank []string
}

// NewParallelSentence builds the rephrasing round for the given day.
func NewParallelSentence(tables *content.Tables, day int, rng *rand.Rand, threshold float64) (Engine, error) {
	p, ok := tables.ParallelForDay(day)
	if !ok {
		return nil, fmt.Errorf("%w %d: parallel sentence", ErrNoContent, day)
	}
	return &parallelSentence{
		tally:    newTally(content.GameParallelSentence, day, threshold),
		sentence: p,
		wordBank: content.Shuffle(p.Words, rng),
	}, nil
}

func (e *parallelSentence) GameID() string { return content.GameParallelSentence }

func (e *parallelSentence) Phase() Phase { return e.phase }

func (e *parallelSentence) Question() Question {
	return Question{
		Prompt:   "Say this another way:",
		Context:  e.sentence.English,
		WordBank: e.wordBank,
	}
}

func (e *parallelSentence) Submit(ans Answer) (Feedback, error) {
	if e.phase != PhaseAnswering {
		return Feedback{}, errWrongPhase
	}

	verdict, err := match.Validate(ans.Text, []string{e.sentence.Parallel}, e.threshold)
	if err != nil {
		return Feedback{}, err
	}

	scoreDelta := 0
	skillDelta := 0
	if verdict.IsExact {
		scoreDelta = parallelExactScore
		skillDelta = parallelExactSkill
	} else if verdict.IsMatch {
		scoreDelta = parallelScore
		skillDelta = parallelSkill
	}
	e.record(verdict.IsMatch, verdict.IsExact, scoreDelta)

	return Feedback{
		Correct:     verdict.IsMatch,
		Exact:       verdict.IsExact,
		BestMatch:   verdict.BestMatch,
		Suggestions: verdict.Suggestions,
		ScoreDelta:  scoreDelta,
		Skill:       progress.SkillVocabulary,
		SkillDelta:  skillDelta,
	}, nil
}

func (e *parallelSentence) Acknowledge() {
	if e.phase != PhaseFeedback {
		return
	}
	e.phase = PhaseComplete
}

func (e *parallelSentence) Outcome() Outcome { return e.outcome() }
