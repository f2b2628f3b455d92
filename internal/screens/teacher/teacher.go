// Package teacher implements the teacher panel: a class overview built
// from the learner's record, and a mixed quiz room with simulated
// classmates.
package teacher

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/verbora/verbora/internal/classroom"
	"github.com/verbora/verbora/internal/config"
	"github.com/verbora/verbora/internal/content"
	"github.com/verbora/verbora/internal/lang"
	"github.com/verbora/verbora/internal/progress"
	"github.com/verbora/verbora/internal/router"
	"github.com/verbora/verbora/internal/screen"
	"github.com/verbora/verbora/internal/store"
	"github.com/verbora/verbora/internal/ui/layout"
	"github.com/verbora/verbora/internal/ui/theme"
)

const quizSize = 5

// Deps is what the teacher panel needs.
type Deps struct {
	Progress *progress.Service
	Events   store.EventRepo
	Tables   *content.Tables
	Settings config.Settings
}

// overviewMsg delivers the computed class overview.
type overviewMsg struct {
	overview classroom.Overview
	name     string
	err      error
}

// TeacherScreen shows the class overview.
type TeacherScreen struct {
	deps     Deps
	lang     lang.Language
	overview *classroom.Overview
	student  string
	errMsg   string
}

var _ screen.Screen = (*TeacherScreen)(nil)
var _ screen.KeyHintProvider = (*TeacherScreen)(nil)

// New creates the teacher panel.
func New(deps Deps) *TeacherScreen {
	return &TeacherScreen{deps: deps, lang: lang.Parse(deps.Settings.Language)}
}

func (s *TeacherScreen) Title() string {
	return lang.T(s.lang, "nav.teacher")
}

func (s *TeacherScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		p, err := s.deps.Progress.Current(ctx)
		if err != nil {
			return overviewMsg{err: err}
		}
		stats, err := s.deps.Events.PerGameStats(ctx)
		if err != nil {
			return overviewMsg{err: err}
		}
		return overviewMsg{overview: classroom.BuildOverview(p, stats), name: p.Name}
	}
}

func (s *TeacherScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Q", Description: "Start quiz room"},
		{Key: "Esc", Description: lang.T(s.lang, "common.back")},
	}
}

func (s *TeacherScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case overviewMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		ov := msg.overview
		s.overview = &ov
		s.student = msg.name
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "q" {
			rng := rand.New(rand.NewSource(time.Now().UnixNano()))
			quiz := classroom.BuildQuiz(s.deps.Tables, "Mixed Class Quiz", quizSize, rng)
			room := classroom.NewRoom(quiz, s.studentName(), classroom.DefaultPeers(), rng)
			next := newQuizRoomScreen(room, s.lang)
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}
	}
	return s, nil
}

func (s *TeacherScreen) studentName() string {
	if s.student != "" {
		return s.student
	}
	return "Student"
}

func (s *TeacherScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Incorrect.Render(s.errMsg))
	}
	if s.overview == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("loading..."))
	}
	ov := s.overview

	var sections []string
	sections = append(sections, theme.Body.Bold(true).Render("Class Overview"))
	sections = append(sections, theme.Body.Render(fmt.Sprintf(
		"Students: %d   Avg level: %d   Badges: %d   Streak: %d",
		ov.Students, ov.AverageLevel, ov.BadgesEarned, ov.DailyStreak)))
	sections = append(sections, "")

	sections = append(sections, theme.Body.Bold(true).Render("Skill Heatmap"))
	for _, sk := range progress.AllSkills() {
		v := ov.Skills.Get(sk)
		style := theme.Incorrect
		if v > 50 {
			style = theme.Correct
		}
		sections = append(sections, theme.Body.Render(fmt.Sprintf("%-11s ", sk.DisplayName()))+
			style.Render(fmt.Sprintf("%3d%%", v)))
	}
	sections = append(sections, "")

	if len(ov.PerGame) > 0 {
		sections = append(sections, theme.Body.Bold(true).Render("Topic Performance"))
		for _, row := range ov.PerGame {
			sections = append(sections, theme.Body.Render(fmt.Sprintf(
				"%-18s level %-3d best %-4d accuracy %3.0f%%",
				lang.GameName(s.lang, row.GameID), row.Level, row.HighScore, row.Accuracy*100)))
		}
		sections = append(sections, "")
	}

	sections = append(sections, theme.Hint.Render("press Q to run a mixed quiz room"))

	card := theme.Card.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
