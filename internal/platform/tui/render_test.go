package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestScreenRendererPlainText(t *testing.T) {
	// A renderer writing to a non-terminal has no colour profile, so the
	// output is the bare cell runes.
	sr := NewScreenRenderer(lipgloss.NewRenderer(io.Discard))

	s := core.NewScreen(6, 3)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.SetColored(3, 0, '▲', core.ColorBrightWhite)
	s.DrawText(1, 2, "xyz")

	got := sr.Render(s)
	if got != s.String() {
		t.Errorf("Render() = %q, want %q", got, s.String())
	}
}

func TestScreenRendererRows(t *testing.T) {
	sr := NewScreenRenderer(nil)

	tests := []struct {
		name string
		w, h int
	}{
		{"single cell", 1, 1},
		{"wide", 40, 2},
		{"tall", 3, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := core.NewScreen(tt.w, tt.h)
			s.Fill('#')
			if lines := strings.Split(sr.Render(s), "\n"); len(lines) != tt.h {
				t.Errorf("got %d lines, want %d", len(lines), tt.h)
			}
		})
	}
}

func TestScreenRendererEmptyScreen(t *testing.T) {
	sr := NewScreenRenderer(nil)
	if got := sr.Render(core.NewScreen(0, 0)); got != "" {
		t.Errorf("Render(empty) = %q, want empty", got)
	}
}

func TestScreenRendererUnknownColor(t *testing.T) {
	sr := NewScreenRenderer(lipgloss.NewRenderer(io.Discard))

	s := core.NewScreen(3, 1)
	s.SetColored(1, 0, 'x', core.Color(200))

	if got := sr.Render(s); got != " x " {
		t.Errorf("Render() = %q, want %q", got, " x ")
	}
}
