// dodge is the Dodge the Blocks arcade game for the terminal, the desktop and SSH.
//
// Usage:
//
//	dodge list                          - List available frontends
//	dodge play [--frontend tui]         - Play locally
//	dodge serve                         - Start SSH server for remote play
//	dodge config                        - Print the default game config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Game config YAML
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"os"

	"github.com/spf13/cobra"

	// Import frontends to register them
	_ "github.com/vovakirdan/dodge-blocks/internal/platform/console"
	_ "github.com/vovakirdan/dodge-blocks/internal/platform/tui"
	_ "github.com/vovakirdan/dodge-blocks/internal/platform/window"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodge",
	Short: "Dodge the Blocks - steer clear of falling blocks",
	Long: `Dodge the Blocks is an arcade game: move your block around and avoid
the red and blue blocks falling from the top of the screen.

Modes:
  1 - Time Trial  survive as long as you can for 30 seconds
  2 - Endless     play until you are hit; every 5 points speeds the blocks up

Available commands:
  list     - Show all available frontends
  play     - Play locally
  serve    - Start SSH server for remote play
  config   - Print the default game config

Examples:
  dodge play
  dodge play --frontend window --sound
  dodge play --frontend console --seed 42
  dodge serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
