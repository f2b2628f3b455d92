// Package hub implements the game-selection screen. Games unlock as
// the learner's level rises.
package hub

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/verbora/verbora/internal/config"
	"github.com/verbora/verbora/internal/content"
	"github.com/verbora/verbora/internal/lang"
	"github.com/verbora/verbora/internal/progress"
	"github.com/verbora/verbora/internal/router"
	"github.com/verbora/verbora/internal/screen"
	"github.com/verbora/verbora/internal/screens/session"
	"github.com/verbora/verbora/internal/store"
	"github.com/verbora/verbora/internal/ui/layout"
	"github.com/verbora/verbora/internal/ui/theme"
)

// Deps bundles what the hub and the sessions it starts need.
type Deps struct {
	Progress *progress.Service
	Events   store.EventRepo
	Tables   *content.Tables
	Settings config.Settings
}

// profileMsg delivers the loaded profile.
type profileMsg struct {
	profile *progress.Profile
	err     error
}

// HubScreen lists the eight games with lock state and progress.
type HubScreen struct {
	deps     Deps
	lang     lang.Language
	games    []content.Game
	selected int
	profile  *progress.Profile
	errMsg   string
}

var _ screen.Screen = (*HubScreen)(nil)
var _ screen.KeyHintProvider = (*HubScreen)(nil)

// New creates the hub screen.
func New(deps Deps) *HubScreen {
	return &HubScreen{
		deps:  deps,
		lang:  lang.Parse(deps.Settings.Language),
		games: content.Games(),
	}
}

func (s *HubScreen) Title() string {
	return lang.T(s.lang, "nav.games")
}

func (s *HubScreen) Init() tea.Cmd {
	return func() tea.Msg {
		p, err := s.deps.Progress.Current(context.Background())
		return profileMsg{profile: p, err: err}
	}
}

func (s *HubScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: lang.T(s.lang, "common.play")},
		{Key: "Esc", Description: lang.T(s.lang, "common.back")},
	}
}

func (s *HubScreen) unlocked(g content.Game) bool {
	return s.profile != nil && s.profile.Level >= g.UnlockLevel
}

func (s *HubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profileMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.profile = msg.profile
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.games)-1 {
				s.selected++
			}
		case "enter":
			g := s.games[s.selected]
			if !s.unlocked(g) {
				return s, nil
			}
			next := session.New(session.Deps{
				Progress: s.deps.Progress,
				Events:   s.deps.Events,
				Tables:   s.deps.Tables,
				Settings: s.deps.Settings,
			}, g.ID)
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}
	}
	return s, nil
}

func (s *HubScreen) View(width, height int) string {
	var rows []string
	for i, g := range s.games {
		name := lang.GameName(s.lang, g.ID)
		line := fmt.Sprintf("%s  %s", g.Icon, name)

		switch {
		case !s.unlocked(g):
			line += fmt.Sprintf("   🔒 %s (%s %d)",
				lang.T(s.lang, "common.locked"), lang.T(s.lang, "common.level"), g.UnlockLevel)
		case s.profile != nil:
			if gp, ok := s.profile.GamesProgress[g.ID]; ok {
				line += fmt.Sprintf("   %s %d · %s %d",
					lang.T(s.lang, "common.level"), gp.CurrentLevel,
					lang.T(s.lang, "common.score"), gp.HighScore)
			}
		}

		switch {
		case i == s.selected && s.unlocked(g):
			rows = append(rows, theme.Selected.Render("▸ "+line))
		case i == s.selected:
			rows = append(rows, theme.Hint.Render("▸ "+line))
		case !s.unlocked(g):
			rows = append(rows, lipgloss.NewStyle().Foreground(theme.TextDim).Render("  "+line))
		default:
			rows = append(rows, theme.Unselected.Render("  "+line))
		}
	}

	list := lipgloss.JoinVertical(lipgloss.Left, rows...)
	card := theme.Card.Render(list)

	sections := []string{theme.Title.Render(lang.T(s.lang, "nav.games")), "", card}
	if s.errMsg != "" {
		sections = append(sections, "", theme.Incorrect.Render(s.errMsg))
	}
	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
