package session

import (
	"time"

	"github.com/verbora/verbora/internal/game"
)

// engineReadyMsg is sent when the engine for the chosen game is built.
type engineReadyMsg struct {
	engine game.Engine
	day    int
	level  int
	err    error
}

// timerTickMsg is sent every second during timed questions.
type timerTickMsg time.Time

// answerSavedMsg confirms the answer event and skill update persisted.
type answerSavedMsg struct {
	err error
}

// runSavedMsg confirms end-of-run persistence and carries the updated
// header numbers plus any newly earned badges.
type runSavedMsg struct {
	score     int
	streak    int
	newBadges []string
	err       error
}
