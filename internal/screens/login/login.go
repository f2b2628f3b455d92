// Package login implements the sign-in screen. The device holds at
// most one credential; first run registers it, later runs log in
// against it.
package login

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/verbora/verbora/internal/auth"
	"github.com/verbora/verbora/internal/router"
	"github.com/verbora/verbora/internal/screen"
	"github.com/verbora/verbora/internal/ui/components"
	"github.com/verbora/verbora/internal/ui/layout"
	"github.com/verbora/verbora/internal/ui/theme"
)

const (
	fieldEmail = iota
	fieldPassword
)

// registeredMsg reports whether a credential already exists.
type registeredMsg struct {
	registered bool
	err        error
}

// authDoneMsg reports the result of a login or register attempt.
type authDoneMsg struct {
	err error
}

// LoginScreen collects email and password and authenticates locally.
type LoginScreen struct {
	auth        *auth.Service
	nextFactory func() screen.Screen

	email        components.TextInput
	password     components.TextInput
	focus        int
	registerMode bool
	errMsg       string
	busy         bool
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates a LoginScreen that moves on to the screen produced by
// nextFactory after a successful login.
func New(authSvc *auth.Service, nextFactory func() screen.Screen) *LoginScreen {
	email := components.NewTextInput("you@example.com", false, 60)
	password := components.NewTextInput("password", false, 60)
	password.Model.Blur()
	return &LoginScreen{
		auth:        authSvc,
		nextFactory: nextFactory,
		email:       email,
		password:    password,
	}
}

func (s *LoginScreen) Title() string {
	if s.registerMode {
		return "Create Account"
	}
	return "Sign In"
}

func (s *LoginScreen) Init() tea.Cmd {
	return tea.Batch(
		s.email.Init(),
		func() tea.Msg {
			registered, err := s.auth.Registered(context.Background())
			return registeredMsg{registered: registered, err: err}
		},
	)
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+R", Description: "Switch login/register"},
	}
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case registeredMsg:
		if msg.err == nil {
			s.registerMode = !msg.registered
		}
		return s, nil

	case authDoneMsg:
		s.busy = false
		if msg.err != nil {
			s.errMsg = friendlyAuthError(msg.err)
			return s, nil
		}
		next := s.nextFactory()
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }

	case tea.KeyMsg:
		if s.busy {
			return s, nil
		}
		switch msg.String() {
		case "tab", "shift+tab":
			s.toggleFocus()
			return s, nil
		case "ctrl+r":
			s.registerMode = !s.registerMode
			s.errMsg = ""
			return s, nil
		case "enter":
			if s.focus == fieldEmail {
				s.toggleFocus()
				return s, nil
			}
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	if s.focus == fieldEmail {
		s.email, cmd = s.email.Update(msg)
	} else {
		s.password, cmd = s.password.Update(msg)
	}
	return s, cmd
}

func (s *LoginScreen) toggleFocus() {
	if s.focus == fieldEmail {
		s.focus = fieldPassword
		s.email.Model.Blur()
		s.password.Model.Focus()
	} else {
		s.focus = fieldEmail
		s.password.Model.Blur()
		s.email.Model.Focus()
	}
}

func (s *LoginScreen) submit() tea.Cmd {
	email := strings.TrimSpace(s.email.Value())
	password := s.password.Value()
	register := s.registerMode
	s.busy = true
	s.errMsg = ""
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		if register {
			err = s.auth.Register(ctx, email, password)
		} else {
			err = s.auth.Login(ctx, email, password)
		}
		return authDoneMsg{err: err}
	}
}

func friendlyAuthError(err error) string {
	switch {
	case errors.Is(err, auth.ErrNoAccount):
		return "No account yet. Press Ctrl+R to create one."
	case errors.Is(err, auth.ErrBadCredentials):
		return "Email or password incorrect."
	case errors.Is(err, auth.ErrInvalidEmail):
		return "That doesn't look like an email address."
	case errors.Is(err, auth.ErrWeakPassword):
		return "Password needs at least 4 characters."
	default:
		return err.Error()
	}
}

func (s *LoginScreen) View(width, height int) string {
	title := theme.Title.Render("Verbora")
	subtitle := theme.Subtitle.Render("Learn through play, even offline")

	mode := "Sign in to continue"
	if s.registerMode {
		mode = "Create your account"
	}

	form := lipgloss.JoinVertical(lipgloss.Left,
		theme.Body.Bold(true).Render(mode),
		"",
		theme.Body.Render("Email")+"\n"+s.email.View(),
		"",
		theme.Body.Render("Password")+"\n"+maskedView(s.password),
	)

	card := theme.Card.Width(48).Render(form)

	sections := []string{title, subtitle, "", card}
	if s.errMsg != "" {
		sections = append(sections, "", theme.Incorrect.Render(s.errMsg))
	}
	if s.busy {
		sections = append(sections, "", theme.Hint.Render("checking..."))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// maskedView hides the password characters.
func maskedView(t components.TextInput) string {
	v := t.Value()
	if v == "" {
		return t.View()
	}
	return strings.Repeat("•", len([]rune(v)))
}
