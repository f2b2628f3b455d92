// Package settings implements the settings screen: UI language, avatar
// and sound, persisted to the YAML config file (and the avatar to the
// profile).
package settings

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/verbora/verbora/internal/config"
	"github.com/verbora/verbora/internal/lang"
	"github.com/verbora/verbora/internal/progress"
	"github.com/verbora/verbora/internal/screen"
	"github.com/verbora/verbora/internal/ui/layout"
	"github.com/verbora/verbora/internal/ui/theme"
)

var avatars = []string{"🦉", "🐯", "🐼", "🦜", "🐢", "🦊"}

const (
	rowLanguage = iota
	rowAvatar
	rowThreshold
	rowSound
	rowCount
)

// Threshold bounds for the strictness row. Values outside make fuzzy
// answers either trivial or impossible.
const (
	minThreshold  = 0.5
	maxThreshold  = 0.95
	thresholdStep = 0.05
)

// Deps is what the settings screen needs.
type Deps struct {
	Progress   *progress.Service
	Settings   config.Settings
	ConfigPath string
}

// savedMsg confirms the config write.
type savedMsg struct {
	err error
}

// SettingsScreen edits and persists user settings.
type SettingsScreen struct {
	deps     Deps
	settings config.Settings
	lang     lang.Language
	row      int
	status   string
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates the settings screen.
func New(deps Deps) *SettingsScreen {
	return &SettingsScreen{
		deps:     deps,
		settings: deps.Settings,
		lang:     lang.Parse(deps.Settings.Language),
	}
}

func (s *SettingsScreen) Title() string {
	return lang.T(s.lang, "nav.settings")
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "←→", Description: "Change"},
		{Key: "Esc", Description: lang.T(s.lang, "common.back")},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		if msg.err != nil {
			s.status = msg.err.Error()
		} else {
			s.status = "saved"
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.row > 0 {
				s.row--
			}
		case "down", "j":
			if s.row < rowCount-1 {
				s.row++
			}
		case "left", "h":
			s.change(-1)
			return s, s.save()
		case "right", "l", "enter":
			s.change(1)
			return s, s.save()
		}
	}
	return s, nil
}

func (s *SettingsScreen) change(dir int) {
	switch s.row {
	case rowLanguage:
		if s.settings.Language == "en" {
			s.settings.Language = "hi"
		} else {
			s.settings.Language = "en"
		}
		s.lang = lang.Parse(s.settings.Language)
	case rowAvatar:
		n := len(avatars)
		s.settings.Avatar = (s.settings.Avatar-1+dir+n)%n + 1
	case rowThreshold:
		v := s.settings.Threshold + float64(dir)*thresholdStep
		if v < minThreshold {
			v = minThreshold
		}
		if v > maxThreshold {
			v = maxThreshold
		}
		s.settings.Threshold = v
	case rowSound:
		s.settings.Sound = !s.settings.Sound
	}
}

func (s *SettingsScreen) save() tea.Cmd {
	settings := s.settings
	return func() tea.Msg {
		if err := config.Save(s.deps.ConfigPath, settings); err != nil {
			return savedMsg{err: err}
		}
		ctx := context.Background()
		p, err := s.deps.Progress.Current(ctx)
		if err != nil {
			return savedMsg{err: err}
		}
		p.Avatar = settings.Avatar
		return savedMsg{err: s.deps.Progress.Save(ctx, p)}
	}
}

func (s *SettingsScreen) View(width, height int) string {
	avatar := avatars[0]
	if s.settings.Avatar >= 1 && s.settings.Avatar <= len(avatars) {
		avatar = avatars[s.settings.Avatar-1]
	}
	sound := "on"
	if !s.settings.Sound {
		sound = "off"
	}

	rows := []string{
		fmt.Sprintf("Language     %s", lang.Parse(s.settings.Language).DisplayName()),
		fmt.Sprintf("Avatar       %s", avatar),
		fmt.Sprintf("Strictness   %.2f", s.settings.Threshold),
		fmt.Sprintf("Sound        %s", sound),
	}

	var lines []string
	for i, r := range rows {
		if i == s.row {
			lines = append(lines, theme.Selected.Render("▸ "+r))
		} else {
			lines = append(lines, theme.Unselected.Render("  "+r))
		}
	}

	sections := []string{
		theme.Title.Render(lang.T(s.lang, "nav.settings")),
		"",
		theme.Card.Width(36).Render(lipgloss.JoinVertical(lipgloss.Left, lines...)),
	}
	if s.status != "" {
		sections = append(sections, "", theme.Hint.Render(s.status))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
