package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant (default: breakout).

Controls:
  Mouse          - Move the paddle
  Left/Right/A/D - Nudge the paddle
  P/Space/Esc    - Pause
  R              - Restart (after the game ends)
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - More lives, wider paddle, slower ball
  normal - The configured values
  hard   - Fewer lives, narrower paddle, faster ball

Examples:
  breakout play
  breakout play breakout_chaos
  breakout play --difficulty easy --seed 42
  breakout play --config ./my-breakout.yaml --log-file breakout.log --debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	variant := breakout.VariantClassic
	if len(args) > 0 {
		variant = args[0]
	}

	if !registry.Exists(variant) {
		return fmt.Errorf("unknown variant %q, run 'breakout list' to see available variants", variant)
	}

	env, closeLog, err := newEnv()
	defer closeLog()
	if err != nil {
		return err
	}

	env.Logger.Info("session started", "variant", variant, "seed", env.Runtime.Seed)
	return tui.Run(variant, env)
}
