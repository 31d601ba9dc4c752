// Package layout draws the frame around every screen: a status header with
// the running score and session clock, and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/solfa/internal/ui/theme"
)

// Smallest terminal the frame is drawn in.
const (
	MinWidth  = 80
	MinHeight = 24
)

// Below these sizes the header shortens its labels and screens tighten
// their vertical spacing.
const (
	wideWidth  = 100
	tallHeight = 30
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// HeaderStats is the status shown on the right of the header. Clock is the
// formatted remaining session time; an empty Clock hides it.
type HeaderStats struct {
	Correct  int
	Attempts int
	Streak   int
	Clock    string
	Paused   bool
}

// IsTooSmall reports whether the terminal cannot fit the frame.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// Cramped reports whether screens should drop blank spacer lines.
func Cramped(height int) bool {
	return height < tallHeight
}

// TooSmall fills the terminal with a centered resize request.
func TooSmall(width, height int) string {
	msg := theme.Body.Render(fmt.Sprintf("Solfa needs a %dx%d terminal (now %dx%d).",
		MinWidth, MinHeight, width, height))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// Header renders the brand on the left, the screen title centered and the
// status on the right.
func Header(title string, st HeaderStats, width int) string {
	brand := theme.Selected.Render(" Solfa")
	name := theme.Body.Render(title)
	info := status(st, width)

	inner := max(width-4, 0)
	used := lipgloss.Width(brand) + lipgloss.Width(name) + lipgloss.Width(info)
	left := max((inner-lipgloss.Width(name))/2-lipgloss.Width(brand), 1)
	right := max(inner-used-left, 1)

	return bar(width).Render(brand + strings.Repeat(" ", left) + name +
		strings.Repeat(" ", right) + info)
}

// status renders score, accuracy, streak and, when set, the session clock.
func status(st HeaderStats, width int) string {
	wide := width >= wideWidth

	score := fmt.Sprintf("✓ %d/%d", st.Correct, st.Attempts)
	if st.Attempts > 0 {
		score += fmt.Sprintf(" %.0f%%", float64(st.Correct)/float64(st.Attempts)*100)
	}
	streak := fmt.Sprintf("♪ %d", st.Streak)
	if wide {
		streak += " streak"
	}
	parts := []string{
		lipgloss.NewStyle().Foreground(theme.Success).Render(score),
		lipgloss.NewStyle().Foreground(theme.Accent).Render(streak),
	}

	if st.Clock != "" {
		clock := "⏱ " + st.Clock
		if st.Paused {
			clock += " paused"
		}
		parts = append(parts, theme.Timer.Render(clock))
	}
	return strings.Join(parts, "  ")
}

// Footer renders the key hints in a single bar.
func Footer(hints []KeyHint, width int) string {
	keyStyle := theme.Body.Bold(true)
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = keyStyle.Render(h.Key) + " " + theme.Hint.Render(h.Description)
	}
	return bar(width).Render(" " + strings.Join(parts, "  "))
}

// BodyHeight is what remains for the screen once header and footer are
// drawn.
func BodyHeight(header, footer string, height int) int {
	return max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
}

// Frame stacks header, body and footer, padding or clipping the body so the
// footer sits on the last rows.
func Frame(header, body, footer string, width, height int) string {
	h := BodyHeight(header, footer, height)
	body = lipgloss.NewStyle().Width(width).Height(h).MaxHeight(h).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
