package tui

import (
	"context"

	"github.com/vovakirdan/dodge-blocks/internal/registry"
)

func init() {
	registry.Register("tui", func() registry.Frontend { return frontend{} })
}

// frontend plays in the terminal through Bubble Tea.
type frontend struct{}

func (frontend) ID() string    { return "tui" }
func (frontend) Title() string { return "Terminal (Bubble Tea)" }

func (frontend) Run(ctx context.Context, env registry.Env) error {
	return Run(ctx, env)
}
