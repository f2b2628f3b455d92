// Package game implements the eight mini-game engines. Each engine is an
// explicit state machine (Selecting → Answering → Feedback → Advancing →
// Complete) driven entirely by the caller: Submit moves Answering to
// Feedback, Acknowledge moves on. No timers live here, so sessions are
// fully deterministic under test.
//
// Engines are pure state. Screens own rendering, persistence and clocks;
// they read the Feedback and Outcome structs and call the progress store
// themselves.
package game

import (
	"errors"

	"github.com/verbora/verbora/internal/match"
	"github.com/verbora/verbora/internal/progress"
)

// Phase is the engine's position in the question cycle.
type Phase int

const (
	PhaseSelecting Phase = iota // choosing the next question
	PhaseAnswering              // waiting for the learner's answer
	PhaseFeedback               // verdict shown, waiting for Acknowledge
	PhaseAdvancing              // moving to the next question
	PhaseComplete               // question sequence exhausted
)

// ErrNoContent is returned by engine constructors when the content table
// has nothing for the requested day.
var ErrNoContent = errors.New("game: no content for day")

// errWrongPhase guards Submit/Acknowledge calls out of order.
var errWrongPhase = errors.New("game: operation not valid in current phase")

// Question is what the learner currently sees.
type Question struct {
	Prompt  string
	Context string   // story so far, era, pictorial clue
	Options []string // nil means free-text answer
	// WordBank, when set, lets the learner build the answer from words.
	WordBank []string
}

// Answer is one submission. Remaining carries the countdown seconds left
// for timed games; untimed games ignore it.
type Answer struct {
	Text      string
	Remaining int
}

// Feedback is the per-answer verdict surfaced to the UI.
type Feedback struct {
	Correct     bool
	Exact       bool
	BestMatch   string
	Suggestions []string
	Explanation string
	ScoreDelta  int
	Skill       progress.Skill
	SkillDelta  int
}

// Outcome is the cumulative result of a run, read at any time and final
// once the engine reaches PhaseComplete.
type Outcome struct {
	GameID     string
	Day        int
	Score      int
	Questions  int
	Correct    int
	AllExact   bool
	RivalScore int // quiz battle only
}

// Perfect reports a flawless run.
func (o Outcome) Perfect() bool {
	return o.Questions > 0 && o.Correct == o.Questions
}

// Engine is the uniform surface every mini-game exposes.
type Engine interface {
	// GameID returns the registry ID of the game.
	GameID() string

	// Phase returns the current phase.
	Phase() Phase

	// Question returns the active question. Valid in PhaseAnswering.
	Question() Question

	// Submit validates the answer and moves to PhaseFeedback.
	Submit(ans Answer) (Feedback, error)

	// Acknowledge consumes the feedback and advances to the next
	// question or PhaseComplete.
	Acknowledge()

	// Outcome returns the cumulative run result.
	Outcome() Outcome
}

// tally is the bookkeeping shared by all engines. threshold is the
// similarity cutoff every free-text validation in the run uses.
type tally struct {
	gameID    string
	day       int
	phase     Phase
	threshold float64
	score     int
	questions int
	correct   int
	allExact  bool
}

func newTally(gameID string, day int, threshold float64) tally {
	if threshold <= 0 || threshold > 1 {
		threshold = match.DefaultThreshold
	}
	return tally{gameID: gameID, day: day, phase: PhaseAnswering, threshold: threshold, allExact: true}
}

func (t *tally) record(correct, exact bool, scoreDelta int) {
	t.questions++
	if correct {
		t.correct++
		t.score += scoreDelta
	}
	if !exact {
		t.allExact = false
	}
	t.phase = PhaseFeedback
}

func (t *tally) outcome() Outcome {
	return Outcome{
		GameID:    t.gameID,
		Day:       t.day,
		Score:     t.score,
		Questions: t.questions,
		Correct:   t.correct,
		AllExact:  t.allExact && t.questions > 0,
	}
}
