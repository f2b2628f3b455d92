package store

import "context"

// Session lifecycle actions.
const (
	ActionStart = "start"
	ActionEnd   = "end"
)

// AnswerEventData captures one validated answer for the event log.
type AnswerEventData struct {
	SessionID     string
	GameID        string
	Day           int
	Prompt        string
	LearnerAnswer string
	BestMatch     string
	Correct       bool
	Exact         bool
	ScoreDelta    int
	Skill         string
}

// SessionEventData captures a session start or end.
type SessionEventData struct {
	SessionID       string
	GameID          string
	Action          string
	QuestionsServed int
	CorrectAnswers  int
	Score           int
	DurationSecs    int
}

// GameStats aggregates the answer log for one game.
type GameStats struct {
	GameID   string
	Answered int
	Correct  int
	Exact    int
}

// Accuracy returns the correct ratio, or 0 when nothing was answered.
func (g GameStats) Accuracy() float64 {
	if g.Answered == 0 {
		return 0
	}
	return float64(g.Correct) / float64(g.Answered)
}

// EventRepo provides append and aggregate access to domain events.
type EventRepo interface {
	// AppendAnswer records a validated answer.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AppendSession records a session start or end.
	AppendSession(ctx context.Context, data SessionEventData) error

	// PerGameStats aggregates the answer log per game.
	PerGameStats(ctx context.Context) ([]GameStats, error)
}
