// Package app wires the services into the root Bubble Tea model.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/verbora/verbora/internal/auth"
	"github.com/verbora/verbora/internal/config"
	"github.com/verbora/verbora/internal/content"
	"github.com/verbora/verbora/internal/lang"
	"github.com/verbora/verbora/internal/progress"
	"github.com/verbora/verbora/internal/router"
	"github.com/verbora/verbora/internal/screen"
	"github.com/verbora/verbora/internal/screens/home"
	"github.com/verbora/verbora/internal/screens/login"
	"github.com/verbora/verbora/internal/store"
	"github.com/verbora/verbora/internal/ui/layout"
)

// Options carries the injected services.
type Options struct {
	Progress   *progress.Service
	Events     store.EventRepo
	Auth       *auth.Service
	Tables     *content.Tables
	Settings   config.Settings
	ConfigPath string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	width  int
	height int
	score  int
	streak int
}

// newAppModel creates the root model, starting at the login screen.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(home.Deps{
			Progress:   opts.Progress,
			Events:     opts.Events,
			Tables:     opts.Tables,
			Auth:       opts.Auth,
			Settings:   opts.Settings,
			ConfigPath: opts.ConfigPath,
		})
	}
	loginScreen := login.New(opts.Auth, homeFactory)
	return AppModel{
		router: router.New(loginScreen),
		opts:   opts,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.StatsMsg:
		m.score = msg.Score
		m.streak = msg.Streak
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.score, m.streak, m.width)

	l := lang.Parse(m.opts.Settings.Language)
	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if footerHints == nil {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: lang.T(l, "common.submit")},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
