// breakout plays Breakout in the terminal.
//
// Usage:
//
//	breakout                  - Pick a variant from the menu
//	breakout play [variant]   - Play a variant (default: breakout)
//	breakout list             - List available variants
//	breakout config           - Print the default configuration
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--log-file <path>  - Write logs to a file
//	--debug            - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/vovakirdan/tui-breakout/internal/breakout"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout in your terminal",
	Long: `Break every brick with the ball without letting it fall past your paddle.
Catch falling powerups to change the paddle or the ball for a few seconds.

Available commands:
  play     - Play a variant directly
  list     - Show all variants
  config   - Print the default configuration

Run without a command to pick a variant from a menu.

Examples:
  breakout
  breakout play
  breakout play breakout_chaos --difficulty hard
  breakout config > ~/.arcade/configs/breakout.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagFont, "font", "", "Path to a banner font YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
