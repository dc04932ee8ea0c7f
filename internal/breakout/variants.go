package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Variant IDs.
const (
	VariantClassic = "breakout"
	VariantChaos   = "breakout_chaos"
)

func init() {
	registry.Register(VariantClassic, "Breakout", variantFactory(VariantClassic, "Breakout", nil))
	registry.Register(VariantChaos, "Breakout (Chaos)", variantFactory(VariantChaos, "Breakout (Chaos)", chaos))
}

// chaos spawns powerups far more often and shakes harder.
func chaos(cfg *config.BreakoutConfig) {
	cfg.Powerups.SpawnFrequency = 3
	cfg.Powerups.SpawnChance = 90
	cfg.Powerups.EffectDuration = 7
	cfg.Shake.Strength = 2
	cfg.Shake.Duration = 0.4
}

func variantFactory(id, title string, tweak func(*config.BreakoutConfig)) registry.Factory {
	return func(env registry.Env) (registry.Game, error) {
		cfg := env.Config
		if tweak != nil {
			tweak(&cfg)
		}

		c, err := New(cfg, env.Window, env.Input,
			WithSeed(env.Runtime.Seed),
			WithLogger(env.Logger),
			WithVariant(id, title))
		if err != nil {
			return nil, err
		}
		if err := c.Initialize(); err != nil {
			return nil, err
		}
		return c, nil
	}
}
