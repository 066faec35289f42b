package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/dodge-blocks/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "Score: 7", core.ColorWhite)
	s.Set(3, 1, core.BlockRune, core.ColorRed)

	out := RenderScreen(s)

	if !strings.Contains(out, "Score: 7") {
		t.Errorf("rendered output lost the text: %q", out)
	}
	if !strings.ContainsRune(out, core.BlockRune) {
		t.Error("rendered output lost the block")
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("expected 2 lines, got %d newlines", got)
	}
}
