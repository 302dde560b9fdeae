package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/ava-cli/ava/icon"
	"github.com/ava-cli/ava/style"
	"github.com/ava-cli/ava/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

func (b *statefulBubble) View() string {
	if b.options.Headless {
		return ""
	}

	var status string

	switch b.state {
	case loadingState:
		status = b.spinnerC.View() + " Starting engine"
	case playingState:
		status = icon.Get(icon.Progress) + " " + style.Fg(b.positionColor())(formatPosition(b.position))
	case endedState:
		status = icon.Get(icon.Success) + " Finished at " + formatPosition(b.position)
	case errorState:
		status = b.viewError()
	}

	return paddingStyle.Render(b.notifier.View(b.renderLines([]string{
		b.surface.View(),
		"",
		status,
	})))
}

// positionColor follows the confirmed playing state.
func (b *statefulBubble) positionColor() lipgloss.Color {
	if b.surface.State().IsPlaying {
		return style.PlayingColor
	}
	return style.PausedColor
}

func (b *statefulBubble) viewError() string {
	errorStyle := style.New().Foreground(style.ErrorColor).Bold(true)

	var text string
	if b.lastError != nil {
		text = b.lastError.Error()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		style.ErrorTitle("Error"),
		icon.Get(icon.Fail)+" "+errorStyle.Render(wrap.String(text, util.Max(b.width-2, 1))),
	)
}

// renderLines stacks lines and pins the help to the bottom of the screen.
func (b *statefulBubble) renderLines(lines []string) string {
	content := strings.Join(lines, "\n")
	helpView := b.helpC.View(b.keymap)

	if gap := b.height - lipgloss.Height(content) - lipgloss.Height(helpView); gap > 0 {
		content += strings.Repeat("\n", gap)
	}

	return content + "\n" + helpView
}

// formatPosition renders seconds as mm:ss, or h:mm:ss past the hour.
func formatPosition(seconds float64) string {
	d := time.Duration(seconds * float64(time.Second)).Round(time.Second)

	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
