package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

// runMenu shows the variant picker, then plays the chosen variant. Finishing
// or quitting a game returns to the picker.
func runMenu(_ *cobra.Command, _ []string) error {
	env, closeLog, err := newEnv()
	defer closeLog()
	if err != nil {
		return err
	}

	for {
		result, err := tui.RunMenu(env.Runtime)
		if err != nil {
			return err
		}
		if result.Quit {
			return nil
		}
		env.Runtime = result.Config

		env.Logger.Info("session started", "variant", result.Variant, "seed", env.Runtime.Seed)
		if err := tui.Run(result.Variant, env); err != nil {
			return err
		}
	}
}
