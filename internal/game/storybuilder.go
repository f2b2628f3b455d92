package game

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/verbora/verbora/internal/content"
	"github.com/verbora/verbora/internal/match"
	"github.com/verbora/verbora/internal/progress"
)

const (
	storyScore      = 10
	storySkillDelta = 2
)

// storyBuilder rebuilds the day's story one sentence at a time. Each
// step offers the not-yet-placed sentences in shuffled order; the
// learner picks (or types) the one that comes next.
type storyBuilder struct {
	tally
	story   content.Story
	rng     *rand.Rand
	placed  int      // sentences placed so far, in story order
	options []string // shuffled remaining sentences for the current step
}

// NewStoryBuilder builds the story round for the given day.
func NewStoryBuilder(tables *content.Tables, day int, rng *rand.Rand, threshold float64) (Engine, error) {
	s, ok := tables.StoryForDay(day)
	if !ok {
		return nil, fmt.Errorf("%w %d: story builder", ErrNoContent, day)
	}
	e := &storyBuilder{
		tally: newTally(content.GameStoryBuilder, day, threshold),
		story: s,
		rng:   rng,
	}
	e.options = e.remainingShuffled()
	return e, nil
}

func (e *storyBuilder) GameID() string { return content.GameStoryBuilder }

func (e *storyBuilder) Phase() Phase { return e.phase }

func (e *storyBuilder) remainingShuffled() []string {
	return content.Shuffle(e.story.Sentences[e.placed:], e.rng)
}

func (e *storyBuilder) Question() Question {
	return Question{
		Prompt:  fmt.Sprintf("%s — what happens next?", e.story.Title),
		Context: strings.Join(e.story.Sentences[:e.placed], " "),
		Options: e.options,
	}
}

func (e *storyBuilder) Submit(ans Answer) (Feedback, error) {
	if e.phase != PhaseAnswering {
		return Feedback{}, errWrongPhase
	}

	next := e.story.Sentences[e.placed]
	verdict, err := match.Validate(ans.Text, []string{next}, e.threshold)
	if err != nil {
		return Feedback{}, err
	}

	scoreDelta := 0
	skillDelta := 0
	if verdict.IsMatch {
		scoreDelta = storyScore
		skillDelta = storySkillDelta
	}
	e.record(verdict.IsMatch, verdict.IsExact, scoreDelta)

	return Feedback{
		Correct:     verdict.IsMatch,
		Exact:       verdict.IsExact,
		BestMatch:   verdict.BestMatch,
		Suggestions: verdict.Suggestions,
		ScoreDelta:  scoreDelta,
		Skill:       progress.SkillCreativity,
		SkillDelta:  skillDelta,
	}, nil
}

func (e *storyBuilder) Acknowledge() {
	if e.phase != PhaseFeedback {
		return
	}
	e.phase = PhaseAdvancing
	e.placed++
	if e.placed >= len(e.story.Sentences) {
		e.phase = PhaseComplete
		return
	}
	e.options = e.remainingShuffled()
	e.phase = PhaseAnswering
}

func (e *storyBuilder) Outcome() Outcome { return e.outcome() }
