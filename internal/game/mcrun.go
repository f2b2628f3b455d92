package game

import (
	"math/rand"

	"github.com/verbora/verbora/internal/match"
	"github.com/verbora/verbora/internal/progress"
)

// mcQuestion is one multiple-choice question inside an mcRun.
type mcQuestion struct {
	prompt      string
	context     string
	options     []string
	correctIdx  int
	explanation string
	scoreDelta  int
	skill       progress.Skill
	skillDelta  int
}

// mcRun drives a fixed sequence of multiple-choice questions. The chosen
// option text goes through the validator like any other answer, so typed
// answers in option form are accepted too.
type mcRun struct {
	tally
	items     []mcQuestion
	idx       int
	timeBonus bool // add remaining seconds to the score when correct
}

func (r *mcRun) Phase() Phase {
	return r.phase
}

func (r *mcRun) Question() Question {
	if r.idx >= len(r.items) {
		return Question{}
	}
	q := r.items[r.idx]
	return Question{Prompt: q.prompt, Context: q.context, Options: q.options}
}

func (r *mcRun) Submit(ans Answer) (Feedback, error) {
	if r.phase != PhaseAnswering {
		return Feedback{}, errWrongPhase
	}
	q := r.items[r.idx]

	verdict, err := match.Validate(ans.Text, []string{q.options[q.correctIdx]}, r.threshold)
	if err != nil {
		return Feedback{}, err
	}

	scoreDelta := 0
	skillDelta := 0
	if verdict.IsMatch {
		scoreDelta = q.scoreDelta
		if r.timeBonus && ans.Remaining > 0 {
			scoreDelta += ans.Remaining
		}
		skillDelta = q.skillDelta
	}
	r.record(verdict.IsMatch, verdict.IsExact, scoreDelta)

	return Feedback{
		Correct:     verdict.IsMatch,
		Exact:       verdict.IsExact,
		BestMatch:   verdict.BestMatch,
		Suggestions: verdict.Suggestions,
		Explanation: q.explanation,
		ScoreDelta:  scoreDelta,
		Skill:       q.skill,
		SkillDelta:  skillDelta,
	}, nil
}

func (r *mcRun) Acknowledge() {
	if r.phase != PhaseFeedback {
		return
	}
	r.phase = PhaseAdvancing
	r.idx++
	if r.idx >= len(r.items) {
		r.phase = PhaseComplete
		return
	}
	r.phase = PhaseAnswering
}

func (r *mcRun) Outcome() Outcome {
	return r.outcome()
}

// shuffledOptions returns the options in rng order plus the new index of
// the correct one.
func shuffledOptions(options []string, correctIdx int, rng *rand.Rand) ([]string, int) {
	correct := options[correctIdx]
	out := make([]string, len(options))
	copy(out, options)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	for i, o := range out {
		if o == correct {
			return out, i
		}
	}
	return out, 0
}
