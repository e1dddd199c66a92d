package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizduel/internal/ui/theme"
)

// SuccessBar displays a success percentage as a horizontal bar. Bars below
// the weak threshold use the error color.
type SuccessBar struct {
	Label     string
	Percent   float64 // 0-100
	Threshold float64
	Width     int
}

// NewSuccessBar creates a new success bar.
func NewSuccessBar(label string, percent, threshold float64, width int) SuccessBar {
	return SuccessBar{
		Label:     label,
		Percent:   percent,
		Threshold: threshold,
		Width:     width,
	}
}

// View renders the bar.
func (p SuccessBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Width(18).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 8 // "  100.0%"

	barWidth := p.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent / 100)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	fill := theme.Secondary
	if p.Percent < p.Threshold {
		fill = theme.Error
	}

	filledStr := lipgloss.NewStyle().
		Background(fill).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	result += filledStr + emptyStr
	result += lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %5.1f%%", p.Percent))

	return result
}
