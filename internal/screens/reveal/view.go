package reveal

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/dkasab/unveil/internal/ui/components"
	"github.com/dkasab/unveil/internal/ui/theme"
)

func (s *RevealScreen) View(width, height int) string {
	if len(s.views) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Waiting for code from the assistant...")
	}

	view := s.views[s.selected]
	var b strings.Builder

	// Artifact tabs when the conversation produced more than one.
	if len(s.views) > 1 {
		b.WriteString(s.renderTabs(width))
		b.WriteString("\n")
	}

	// Info line: title and language on the left, unlock progress on the right.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s (%s)", view.Artifact.Title, view.Artifact.Language))
	if view.Artifact.Version > 1 {
		infoLeft += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  v%d", view.Artifact.Version))
	}
	if view.Artifact.Truncated {
		infoLeft += lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("  [truncated]")
	}

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Level %d/%d", view.Progress.UnlockLevel, view.Progress.TotalGates))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Code pane.
	codeStyle := lipgloss.NewStyle().Foreground(theme.Text)
	for _, line := range strings.Split(s.code, "\n") {
		b.WriteString("  ")
		b.WriteString(codeStyle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Unlock progress bar.
	bar := components.NewProgressBar("  Unlocked", float64(view.Progress.Percent)/100, true, min(width-4, 60))
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	if s.showingFeedback {
		b.WriteString(s.renderFeedback(width))
		return b.String()
	}

	b.WriteString(s.renderQuizSection(width, view.Progress.Unlocked))

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("  " + s.errMsg))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *RevealScreen) renderTabs(width int) string {
	parts := make([]string, 0, len(s.views))
	for i, v := range s.views {
		name := v.Artifact.Title
		if name == "" {
			name = v.Slot
		}
		if i == s.selected {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("["+name+"]"))
		} else {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(" "+name+" "))
		}
	}
	return "  " + strings.Join(parts, " ")
}

func (s *RevealScreen) renderQuizSection(width int, unlocked bool) string {
	if unlocked {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Fully unlocked!")
	}
	if s.currentQuiz == nil {
		if s.answering {
			return lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render("Working...")
		}
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Preparing a question...")
	}

	var b strings.Builder
	if len(s.currentQuiz.Options) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("  " + s.currentQuiz.Question))
		b.WriteString("\n\n")
		b.WriteString("  Answer: " + s.input.View())
		b.WriteString("\n")
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))
		b.WriteString("\n")
	}

	if s.showHint && s.currentQuiz.Hint != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("  Hint: " + s.currentQuiz.Hint))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *RevealScreen) renderFeedback(width int) string {
	var b strings.Builder
	b.WriteString("\n")

	if s.feedbackGood {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
	}
	b.WriteString("\n\n")

	if s.feedback != "" {
		fb := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(s.feedback)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, fb))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
