package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestSuccessBar_Width(t *testing.T) {
	for _, pct := range []float64{0, 42.5, 100, 150, -10} {
		view := NewSuccessBar("Math", pct, 50, 60).View()
		if w := lipgloss.Width(view); w != 60 {
			t.Errorf("percent %v: width = %d, want 60", pct, w)
		}
	}
}

func TestSuccessBar_ShowsPercent(t *testing.T) {
	view := NewSuccessBar("Science", 37.5, 50, 60).View()
	if !strings.Contains(view, "37.5%") {
		t.Errorf("view %q does not show the percentage", view)
	}
}
