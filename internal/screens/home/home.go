// Package home implements the main menu screen.
package home

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/verbora/verbora/internal/auth"
	"github.com/verbora/verbora/internal/config"
	"github.com/verbora/verbora/internal/content"
	"github.com/verbora/verbora/internal/lang"
	"github.com/verbora/verbora/internal/progress"
	"github.com/verbora/verbora/internal/router"
	"github.com/verbora/verbora/internal/screen"
	"github.com/verbora/verbora/internal/screens/hub"
	"github.com/verbora/verbora/internal/screens/progresspage"
	"github.com/verbora/verbora/internal/screens/settings"
	"github.com/verbora/verbora/internal/screens/teacher"
	"github.com/verbora/verbora/internal/store"
	"github.com/verbora/verbora/internal/ui/components"
	"github.com/verbora/verbora/internal/ui/theme"
)

// avatars in profile index order (1-based).
var avatars = []string{"🦉", "🐯", "🐼", "🦜", "🐢", "🦊"}

// Deps bundles everything the home screen and its children need.
type Deps struct {
	Progress   *progress.Service
	Events     store.EventRepo
	Tables     *content.Tables
	Auth       *auth.Service
	Settings   config.Settings
	ConfigPath string
}

// profileMsg delivers the loaded profile after the streak update.
type profileMsg struct {
	profile *progress.Profile
	err     error
}

// HomeScreen is the hub menu.
type HomeScreen struct {
	deps    Deps
	lang    lang.Language
	menu    components.Menu
	profile *progress.Profile
	errMsg  string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen.
func New(deps Deps) *HomeScreen {
	s := &HomeScreen{deps: deps, lang: lang.Parse(deps.Settings.Language)}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: lang.T(s.lang, "home.start"), Action: s.openHub},
		{Label: lang.T(s.lang, "nav.progress"), Action: s.openProgress},
		{Label: lang.T(s.lang, "nav.teacher"), Action: s.openTeacher},
		{Label: lang.T(s.lang, "nav.settings"), Action: s.openSettings},
	})
	return s
}

func (s *HomeScreen) Title() string {
	return lang.T(s.lang, "nav.home")
}

// Init bumps the daily streak for today's visit and loads the profile.
func (s *HomeScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if _, err := s.deps.Progress.UpdateDailyStreak(ctx, time.Now()); err != nil {
			return profileMsg{err: err}
		}
		p, err := s.deps.Progress.Current(ctx)
		return profileMsg{profile: p, err: err}
	}
}

func (s *HomeScreen) openHub() tea.Cmd {
	next := hub.New(hub.Deps{
		Progress: s.deps.Progress,
		Events:   s.deps.Events,
		Tables:   s.deps.Tables,
		Settings: s.deps.Settings,
	})
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (s *HomeScreen) openProgress() tea.Cmd {
	next := progresspage.New(progresspage.Deps{
		Progress: s.deps.Progress,
		Settings: s.deps.Settings,
	})
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (s *HomeScreen) openTeacher() tea.Cmd {
	next := teacher.New(teacher.Deps{
		Progress: s.deps.Progress,
		Events:   s.deps.Events,
		Tables:   s.deps.Tables,
		Settings: s.deps.Settings,
	})
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (s *HomeScreen) openSettings() tea.Cmd {
	next := settings.New(settings.Deps{
		Progress:   s.deps.Progress,
		Settings:   s.deps.Settings,
		ConfigPath: s.deps.ConfigPath,
	})
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(profileMsg); ok {
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.profile = msg.profile
		return s, func() tea.Msg {
			return screen.StatsMsg{Score: msg.profile.TotalScore, Streak: msg.profile.DailyStreak}
		}
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *HomeScreen) View(width, height int) string {
	var sections []string

	if s.profile != nil {
		avatar := avatars[0]
		if s.profile.Avatar >= 1 && s.profile.Avatar <= len(avatars) {
			avatar = avatars[s.profile.Avatar-1]
		}
		greeting := theme.Title.Render(avatar + "  " + lang.T(s.lang, "home.welcome"))
		sub := theme.Subtitle.Render(lang.T(s.lang, "home.subtitle"))
		stats := theme.Hint.Render(fmt.Sprintf("%s %d   ★ %d %s",
			lang.T(s.lang, "common.level"), s.profile.Level,
			s.profile.DailyStreak, lang.T(s.lang, "home.days")))
		sections = append(sections, greeting, sub, stats, "")
	} else {
		sections = append(sections, theme.Title.Render("Verbora"), "")
	}

	sections = append(sections, s.menu.View())

	if s.errMsg != "" {
		sections = append(sections, theme.Incorrect.Render(s.errMsg))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
