package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dodge-blocks/internal/registry"
)

var (
	flagFrontend string
	flagSound    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Dodge the Blocks",
	Long: `Start the game on the chosen frontend.

Controls:
  Arrows/WASD/hjkl  - Move
  1                 - Time Trial (menu)
  2                 - Endless (menu)
  R                 - Restart (after game over)
  M                 - Back to menu (after game over)
  Tab               - Session log (terminal, outside gameplay)
  Q/Esc/Ctrl+C      - Quit

Frontends:
  tui      - Bubble Tea in the terminal (default)
  console  - raw tcell terminal
  window   - 800x600 desktop window

Examples:
  dodge play
  dodge play --frontend window --sound
  dodge play --frontend console --fps 30
  dodge play --config ./my-dodge.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagFrontend, "frontend", "f", "tui", "Frontend: tui, console, window")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if !registry.Exists(flagFrontend) {
		return fmt.Errorf("unknown frontend %q, run 'dodge list' to see available frontends", flagFrontend)
	}

	frontend, err := registry.Create(flagFrontend)
	if err != nil {
		return err
	}

	// Terminal frontends own the screen, so logs are dropped unless --log-file is set.
	var fallback io.Writer = io.Discard
	if flagFrontend == "window" {
		fallback = os.Stderr
	}
	logger, closeLog, err := newLogger("dodge", fallback)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size early so the first frame fits; zero keeps the defaults
	var width, height int
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	env, err := newEnv(logger, width, height)
	if err != nil {
		return err
	}
	if env.Store != nil {
		defer env.Store.Close()
	}
	env.Sound = flagSound

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "frontend", frontend.ID(), "fps", flagFPS, "seed", flagSeed)
	if err := frontend.Run(ctx, env); err != nil {
		return fmt.Errorf("running %s: %w", frontend.ID(), err)
	}
	return nil
}
