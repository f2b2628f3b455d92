package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/verbora/verbora/internal/content"
	"github.com/verbora/verbora/internal/lang"
	"github.com/verbora/verbora/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	var body string
	switch {
	case s.errMsg != "":
		body = theme.Incorrect.Render(s.errMsg)
	case s.engine == nil:
		body = theme.Hint.Render("loading...")
	case s.completed:
		body = s.viewSummary()
	case s.feedback != nil:
		body = s.viewFeedback()
	default:
		body = s.viewQuestion()
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (s *SessionScreen) viewQuestion() string {
	q := s.engine.Question()
	var sections []string

	if s.timed() {
		timer := theme.Hint.Render(fmt.Sprintf("⏱ %ds", s.remaining))
		if s.remaining <= 5 {
			timer = theme.Incorrect.Render(fmt.Sprintf("⏱ %ds", s.remaining))
		}
		sections = append(sections, timer, "")
	}

	if q.Context != "" {
		sections = append(sections, theme.Subtitle.Render(q.Context), "")
	}
	sections = append(sections, theme.Body.Bold(true).Render(q.Prompt), "")

	if q.Options != nil {
		for i, opt := range q.Options {
			if i == s.selected {
				sections = append(sections, theme.Selected.Render("▸ "+opt))
			} else {
				sections = append(sections, theme.Unselected.Render("  "+opt))
			}
		}
	} else {
		if len(q.WordBank) > 0 {
			bank := theme.Hint.Render(strings.Join(q.WordBank, " · "))
			sections = append(sections, bank, "")
		}
		sections = append(sections, s.input.View())
	}

	return theme.Card.Width(64).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (s *SessionScreen) viewFeedback() string {
	fb := s.feedback
	var sections []string

	if fb.Correct {
		verdict := lang.T(s.lang, "common.correct")
		if fb.Exact {
			verdict += " ✨"
		}
		sections = append(sections, theme.Correct.Render(verdict))
		sections = append(sections, theme.Body.Render(fmt.Sprintf("+%d %s", fb.ScoreDelta, lang.T(s.lang, "common.score"))))
		if fb.SkillDelta > 0 {
			sections = append(sections, theme.Hint.Render(fmt.Sprintf("+%d %s", fb.SkillDelta, fb.Skill.DisplayName())))
		}
	} else {
		sections = append(sections, theme.Incorrect.Render(lang.T(s.lang, "common.incorrect")))
		if fb.BestMatch != "" {
			sections = append(sections, theme.Body.Render("Closest answer: "+fb.BestMatch))
		}
		for _, alt := range fb.Suggestions {
			sections = append(sections, theme.Hint.Render("also close: "+alt))
		}
	}

	if fb.Explanation != "" {
		sections = append(sections, "", theme.Subtitle.Render(fb.Explanation))
	}

	return theme.Card.Width(64).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (s *SessionScreen) viewSummary() string {
	out := s.outcome
	var sections []string

	sections = append(sections, theme.Title.Render(lang.T(s.lang, "common.completed")))
	sections = append(sections, "")
	sections = append(sections, theme.Body.Render(fmt.Sprintf("%s: %d", lang.T(s.lang, "common.score"), out.Score)))
	sections = append(sections, theme.Body.Render(fmt.Sprintf("%d / %d correct", out.Correct, out.Questions)))

	if s.gameID == content.GameQuizBattle {
		rival := fmt.Sprintf("Rival: %d", out.RivalScore)
		switch {
		case out.Score > out.RivalScore:
			sections = append(sections, theme.Correct.Render("You won the battle!  "+rival))
		case out.Score < out.RivalScore:
			sections = append(sections, theme.Incorrect.Render("The rival won.  "+rival))
		default:
			sections = append(sections, theme.Hint.Render("It's a tie.  "+rival))
		}
	}

	if out.Perfect() {
		sections = append(sections, theme.Correct.Render("💯 Perfect round!"))
	}

	for _, id := range s.newBadges {
		if b, ok := content.BadgeByID(id); ok {
			sections = append(sections, theme.Correct.Render(b.Icon+" New badge: "+b.Name))
		}
	}

	return theme.Card.Width(64).Render(lipgloss.JoinVertical(lipgloss.Center, sections...))
}
