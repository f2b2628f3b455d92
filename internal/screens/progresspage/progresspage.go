// Package progresspage shows the learner's skills, badges and per-game
// progress.
package progresspage

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/verbora/verbora/internal/config"
	"github.com/verbora/verbora/internal/content"
	"github.com/verbora/verbora/internal/lang"
	"github.com/verbora/verbora/internal/progress"
	"github.com/verbora/verbora/internal/screen"
	"github.com/verbora/verbora/internal/ui/components"
	"github.com/verbora/verbora/internal/ui/theme"
)

// Deps is what the progress page needs.
type Deps struct {
	Progress *progress.Service
	Settings config.Settings
}

type profileMsg struct {
	profile *progress.Profile
	err     error
}

// ProgressScreen renders the learner's record.
type ProgressScreen struct {
	deps    Deps
	lang    lang.Language
	profile *progress.Profile
	errMsg  string
}

var _ screen.Screen = (*ProgressScreen)(nil)

// New creates the progress screen.
func New(deps Deps) *ProgressScreen {
	return &ProgressScreen{deps: deps, lang: lang.Parse(deps.Settings.Language)}
}

func (s *ProgressScreen) Title() string {
	return lang.T(s.lang, "nav.progress")
}

func (s *ProgressScreen) Init() tea.Cmd {
	return func() tea.Msg {
		p, err := s.deps.Progress.Current(context.Background())
		return profileMsg{profile: p, err: err}
	}
}

func (s *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(profileMsg); ok {
		if msg.err != nil {
			s.errMsg = msg.err.Error()
		} else {
			s.profile = msg.profile
		}
	}
	return s, nil
}

func (s *ProgressScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Incorrect.Render(s.errMsg))
	}
	if s.profile == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("loading..."))
	}
	p := s.profile

	var sections []string
	sections = append(sections, theme.Body.Bold(true).Render(fmt.Sprintf(
		"%s · %s %d · %s %d",
		p.Name, lang.T(s.lang, "common.level"), p.Level,
		lang.T(s.lang, "common.score"), p.TotalScore)))
	sections = append(sections, "")

	for _, sk := range progress.AllSkills() {
		bar := components.NewProgressBar(
			fmt.Sprintf("%-11s", sk.DisplayName()),
			float64(p.Skills.Get(sk))/progress.MaxSkill,
			true, 44)
		sections = append(sections, bar.View())
	}
	sections = append(sections, "")

	sections = append(sections, theme.Body.Bold(true).Render("Badges"))
	var badgeLine []string
	for _, b := range content.Badges() {
		if p.HasBadge(b.ID) {
			badgeLine = append(badgeLine, b.Icon+" "+b.Name)
		}
	}
	if len(badgeLine) == 0 {
		sections = append(sections, theme.Hint.Render("none yet, keep playing"))
	} else {
		sections = append(sections, theme.Body.Render(lipgloss.JoinVertical(lipgloss.Left, badgeLine...)))
	}
	sections = append(sections, "")

	sections = append(sections, theme.Body.Bold(true).Render(lang.T(s.lang, "nav.games")))
	for _, g := range content.Games() {
		gp, ok := p.GamesProgress[g.ID]
		if !ok {
			continue
		}
		sections = append(sections, theme.Body.Render(fmt.Sprintf(
			"%s %-18s %s %-3d %s %d",
			g.Icon, lang.GameName(s.lang, g.ID),
			lang.T(s.lang, "common.level"), gp.CurrentLevel,
			lang.T(s.lang, "common.score"), gp.HighScore)))
	}

	sections = append(sections, "", theme.Hint.Render(fmt.Sprintf(
		"★ %d %s · %d days completed",
		p.DailyStreak, lang.T(s.lang, "home.days"), len(p.CompletedDays))))

	card := theme.Card.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
