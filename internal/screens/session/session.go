// Package session runs one game round: it drives the engine's question
// cycle, persists every validated answer to the event log, and applies
// skill, score and badge updates when the round completes.
package session

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/google/uuid"

	"github.com/verbora/verbora/internal/awards"
	"github.com/verbora/verbora/internal/config"
	"github.com/verbora/verbora/internal/content"
	"github.com/verbora/verbora/internal/game"
	"github.com/verbora/verbora/internal/lang"
	"github.com/verbora/verbora/internal/progress"
	"github.com/verbora/verbora/internal/screen"
	"github.com/verbora/verbora/internal/store"
	"github.com/verbora/verbora/internal/ui/components"
	"github.com/verbora/verbora/internal/ui/layout"
)

// Deps bundles the services a session needs.
type Deps struct {
	Progress *progress.Service
	Events   store.EventRepo
	Tables   *content.Tables
	Settings config.Settings
}

// SessionScreen plays one round of one game.
type SessionScreen struct {
	deps   Deps
	gameID string
	lang   lang.Language

	engine    game.Engine
	day       int
	level     int
	sessionID string
	started   time.Time

	input     components.TextInput
	selected  int
	remaining int
	feedback  *game.Feedback
	completed bool
	outcome   game.Outcome
	newBadges []string
	errMsg    string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates a session for the given game.
func New(deps Deps, gameID string) *SessionScreen {
	return &SessionScreen{
		deps:      deps,
		gameID:    gameID,
		lang:      lang.Parse(deps.Settings.Language),
		sessionID: uuid.NewString(),
		started:   time.Now(),
		input:     components.NewTextInput("Type your answer...", false, 80),
	}
}

func (s *SessionScreen) Title() string {
	return lang.GameName(s.lang, s.gameID)
}

// Init builds the engine from the learner's current level and logs the
// session start.
func (s *SessionScreen) Init() tea.Cmd {
	return tea.Batch(s.input.Init(), func() tea.Msg {
		ctx := context.Background()
		p, err := s.deps.Progress.Current(ctx)
		if err != nil {
			return engineReadyMsg{err: err}
		}
		level := p.Game(s.gameID).CurrentLevel
		day := s.deps.Tables.DayForLevel(s.gameID, level)

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		eng, err := game.New(s.gameID, s.deps.Tables, day, rng, s.deps.Settings.Threshold)
		if err != nil {
			return engineReadyMsg{err: err}
		}

		err = s.deps.Events.AppendSession(ctx, store.SessionEventData{
			SessionID: s.sessionID,
			GameID:    s.gameID,
			Action:    store.ActionStart,
		})
		return engineReadyMsg{engine: eng, day: day, level: level, err: err}
	})
}

func (s *SessionScreen) timed() bool {
	return s.gameID == content.GameQuizBattle
}

func (s *SessionScreen) tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.completed:
		return []layout.KeyHint{{Key: "Esc", Description: lang.T(s.lang, "common.back")}}
	case s.feedback != nil:
		return []layout.KeyHint{{Key: "any key", Description: lang.T(s.lang, "common.next")}}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: lang.T(s.lang, "common.submit")},
			{Key: "Esc", Description: lang.T(s.lang, "common.back")},
		}
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case engineReadyMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.engine = msg.engine
		s.day = msg.day
		s.level = msg.level
		if s.timed() {
			s.remaining = game.QuizTimeLimit
			return s, s.tick()
		}
		return s, nil

	case timerTickMsg:
		if s.engine == nil || s.completed || s.feedback != nil {
			return s, nil
		}
		s.remaining--
		if s.remaining <= 0 {
			// Time's up counts as a blank answer.
			return s, s.submit("")
		}
		return s, s.tick()

	case answerSavedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
		}
		return s, nil

	case runSavedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.newBadges = msg.newBadges
		return s, func() tea.Msg {
			return screen.StatsMsg{Score: msg.score, Streak: msg.streak}
		}

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.engine != nil && s.feedback == nil && !s.completed && s.engine.Question().Options == nil {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.engine == nil || s.completed {
		return s, nil
	}

	// Feedback is dismissed by any key.
	if s.feedback != nil {
		s.feedback = nil
		s.engine.Acknowledge()
		if s.engine.Phase() == game.PhaseComplete {
			s.completed = true
			s.outcome = s.engine.Outcome()
			return s, s.persistRun()
		}
		s.selected = 0
		s.input.Model.SetValue("")
		if s.timed() {
			s.remaining = game.QuizTimeLimit
			return s, s.tick()
		}
		return s, nil
	}

	q := s.engine.Question()
	if q.Options != nil {
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(q.Options)-1 {
				s.selected++
			}
		case "enter":
			return s, s.submit(q.Options[s.selected])
		}
		return s, nil
	}

	if msg.String() == "enter" {
		return s, s.submit(s.input.Value())
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submit validates the answer through the engine and persists the
// verdict in the background.
func (s *SessionScreen) submit(text string) tea.Cmd {
	q := s.engine.Question()
	fb, err := s.engine.Submit(game.Answer{Text: text, Remaining: s.remaining})
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.feedback = &fb

	return func() tea.Msg {
		ctx := context.Background()
		if fb.SkillDelta != 0 {
			if _, err := s.deps.Progress.UpdateSkill(ctx, fb.Skill, fb.SkillDelta); err != nil {
				return answerSavedMsg{err: fmt.Errorf("update skill: %w", err)}
			}
		}
		err := s.deps.Events.AppendAnswer(ctx, store.AnswerEventData{
			SessionID:     s.sessionID,
			GameID:        s.gameID,
			Day:           s.day,
			Prompt:        q.Prompt,
			LearnerAnswer: text,
			BestMatch:     fb.BestMatch,
			Correct:       fb.Correct,
			Exact:         fb.Exact,
			ScoreDelta:    fb.ScoreDelta,
			Skill:         string(fb.Skill),
		})
		return answerSavedMsg{err: err}
	}
}

// persistRun applies end-of-round bookkeeping: game progress, completed
// day, badges, and the session end event.
func (s *SessionScreen) persistRun() tea.Cmd {
	outcome := s.outcome
	duration := int(time.Since(s.started).Seconds())
	return func() tea.Msg {
		ctx := context.Background()
		now := time.Now()

		nextLevel := s.level
		if outcome.Correct > 0 {
			nextLevel = s.level + 1
		}
		p, err := s.deps.Progress.UpdateGameProgress(ctx, s.gameID, nextLevel, outcome.Score, now)
		if err != nil {
			return runSavedMsg{err: err}
		}
		if outcome.Perfect() {
			p.Game(s.gameID).Completed = true
			if err := s.deps.Progress.Save(ctx, p); err != nil {
				return runSavedMsg{err: err}
			}
			if err := s.deps.Progress.MarkDayCompleted(ctx, s.day); err != nil {
				return runSavedMsg{err: err}
			}
		}

		stats, err := s.deps.Events.PerGameStats(ctx)
		if err != nil {
			return runSavedMsg{err: err}
		}
		p, err = s.deps.Progress.Current(ctx)
		if err != nil {
			return runSavedMsg{err: err}
		}
		var newBadges []string
		for _, id := range awards.Evaluate(p, stats, outcome.Perfect()) {
			added, err := s.deps.Progress.AddBadge(ctx, id)
			if err != nil {
				return runSavedMsg{err: err}
			}
			if added {
				newBadges = append(newBadges, id)
			}
		}

		err = s.deps.Events.AppendSession(ctx, store.SessionEventData{
			SessionID:       s.sessionID,
			GameID:          s.gameID,
			Action:          store.ActionEnd,
			QuestionsServed: outcome.Questions,
			CorrectAnswers:  outcome.Correct,
			Score:           outcome.Score,
			DurationSecs:    duration,
		})
		if err != nil {
			return runSavedMsg{err: err}
		}

		p, err = s.deps.Progress.Current(ctx)
		if err != nil {
			return runSavedMsg{err: err}
		}
		return runSavedMsg{score: p.TotalScore, streak: p.DailyStreak, newBadges: newBadges}
	}
}
