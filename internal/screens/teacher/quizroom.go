package teacher

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/verbora/verbora/internal/classroom"
	"github.com/verbora/verbora/internal/lang"
	"github.com/verbora/verbora/internal/screen"
	"github.com/verbora/verbora/internal/ui/layout"
	"github.com/verbora/verbora/internal/ui/theme"
)

// quizRoomScreen runs a classroom.Room: the learner answers each
// question, then the live scoreboard shows where they stand among the
// simulated classmates.
type quizRoomScreen struct {
	room      *classroom.Room
	lang      lang.Language
	selected  int
	showBoard bool
	lastRight bool
}

var _ screen.Screen = (*quizRoomScreen)(nil)
var _ screen.KeyHintProvider = (*quizRoomScreen)(nil)

func newQuizRoomScreen(room *classroom.Room, l lang.Language) *quizRoomScreen {
	return &quizRoomScreen{room: room, lang: l}
}

func (s *quizRoomScreen) Title() string {
	return "Quiz Room"
}

func (s *quizRoomScreen) Init() tea.Cmd {
	return nil
}

func (s *quizRoomScreen) KeyHints() []layout.KeyHint {
	if s.showBoard {
		return []layout.KeyHint{{Key: "any key", Description: lang.T(s.lang, "common.next")}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: lang.T(s.lang, "common.submit")},
		{Key: "Esc", Description: lang.T(s.lang, "common.back")},
	}
}

func (s *quizRoomScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.showBoard {
		s.showBoard = false
		s.selected = 0
		return s, nil
	}

	q, active := s.room.Current()
	if !active {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(q.Options)-1 {
			s.selected++
		}
	case "enter":
		s.lastRight = s.room.Submit(s.selected)
		s.showBoard = true
	}
	return s, nil
}

func (s *quizRoomScreen) View(width, height int) string {
	var sections []string

	if s.showBoard || s.room.Done() {
		if s.room.Done() {
			sections = append(sections, theme.Title.Render("Final Scoreboard"), "")
		} else {
			verdict := theme.Incorrect.Render(lang.T(s.lang, "common.incorrect"))
			if s.lastRight {
				verdict = theme.Correct.Render(lang.T(s.lang, "common.correct"))
			}
			sections = append(sections, verdict, "", theme.Body.Bold(true).Render("Live Scoreboard"), "")
		}
		for i, e := range s.room.Scoreboard() {
			sections = append(sections, theme.Body.Render(
				fmt.Sprintf("%d. %-10s %d pts", i+1, e.Student, e.Score)))
		}
	} else if q, ok := s.room.Current(); ok {
		sections = append(sections, theme.Body.Bold(true).Render(q.Prompt), "")
		for i, opt := range q.Options {
			if i == s.selected {
				sections = append(sections, theme.Selected.Render("▸ "+opt))
			} else {
				sections = append(sections, theme.Unselected.Render("  "+opt))
			}
		}
	}

	card := theme.Card.Width(56).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
