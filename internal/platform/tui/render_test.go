package tui

import (
	"strings"
	"testing"

	"github.com/qbakra/escape-arcade/internal/core"
)

func TestRenderScreenShape(t *testing.T) {
	s := core.NewScreen(8, 3)
	s.DrawTextColored(0, 0, "hello", core.ColorGreen)
	s.DrawTextColored(0, 2, "world", core.ColorRed)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, want 3", len(lines))
	}
	if !strings.Contains(out, "hello") || !strings.Contains(out, "world") {
		t.Errorf("rendered output missing text: %q", out)
	}
}

func TestRenderScreenUnknownColorFallsBack(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.SetCell(0, 0, 'x', core.Color(200))
	out := RenderScreen(s)
	if !strings.Contains(out, "x") {
		t.Errorf("cell with unknown color dropped: %q", out)
	}
}
