package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// PowerupKind identifies a powerup effect.
type PowerupKind int

const (
	PowerupNone PowerupKind = iota
	PowerupBigPaddle
	PowerupSmallPaddle
	PowerupFastBall
	PowerupSlowBall
	PowerupFireBall
	powerupKindCount
)

// Effect multipliers.
const (
	bigPaddleFactor   = 1.5
	smallPaddleFactor = 0.6
	fastBallFactor    = 1.5
	slowBallFactor    = 0.6
)

// String returns the label shown in the HUD.
func (k PowerupKind) String() string {
	switch k {
	case PowerupBigPaddle:
		return "big paddle"
	case PowerupSmallPaddle:
		return "small paddle"
	case PowerupFastBall:
		return "fast ball"
	case PowerupSlowBall:
		return "slow ball"
	case PowerupFireBall:
		return "fireball"
	default:
		return "none"
	}
}

// Glyph returns the rune a falling pickup of this kind is drawn with.
func (k PowerupKind) Glyph() rune {
	switch k {
	case PowerupBigPaddle:
		return 'W'
	case PowerupSmallPaddle:
		return 'n'
	case PowerupFastBall:
		return '»'
	case PowerupSlowBall:
		return '«'
	case PowerupFireBall:
		return '✦'
	default:
		return '?'
	}
}

// Color returns the pickup and HUD color of this kind.
func (k PowerupKind) Color() core.Color {
	switch k {
	case PowerupBigPaddle:
		return core.ColorBrightGreen
	case PowerupSmallPaddle:
		return core.ColorBrightRed
	case PowerupFastBall:
		return core.ColorBrightMagenta
	case PowerupSlowBall:
		return core.ColorBrightBlue
	case PowerupFireBall:
		return core.ColorOrange
	default:
		return core.ColorWhite
	}
}

// PowerupStatus is the effect currently applied and its remaining seconds.
type PowerupStatus struct {
	Kind      PowerupKind
	Remaining float64
}

// Active reports whether an effect is running.
func (s PowerupStatus) Active() bool {
	return s.Kind != PowerupNone && s.Remaining > 0
}

// Pickup is a falling powerup that has not been collected yet.
type Pickup struct {
	Kind PowerupKind
	X, Y float64
}

// Bounds returns the pickup's collision box.
func (p Pickup) Bounds() core.RectF {
	return core.NewRectF(p.X, p.Y, 1, 1)
}

// PowerupManager spawns pickups, collects them with the paddle and applies
// their effects to the paddle or ball.
type PowerupManager struct {
	window *core.Window
	paddle *Paddle
	ball   *Ball
	rng    Rand

	effectDuration float64
	fallSpeed      float64

	pickups  []Pickup
	inEffect PowerupStatus
}

// NewPowerupManager creates a manager acting on paddle and ball.
func NewPowerupManager(window *core.Window, paddle *Paddle, ball *Ball, rng Rand, cfg config.PowerupConfig) *PowerupManager {
	return &PowerupManager{
		window:         window,
		paddle:         paddle,
		ball:           ball,
		rng:            rng,
		effectDuration: cfg.EffectDuration,
		fallSpeed:      cfg.FallSpeed,
	}
}

// SpawnPowerup drops a pickup of a random kind from a random column just
// below the HUD.
func (m *PowerupManager) SpawnPowerup() Pickup {
	kind := PowerupKind(1 + m.rng.Intn(int(powerupKindCount)-1))
	maxX := float64(core.Max(m.window.Width()-1, 1))
	p := Pickup{
		Kind: kind,
		X:    float64(int(m.rng.Float64() * maxX)),
		Y:    hudHeight,
	}
	m.pickups = append(m.pickups, p)
	return p
}

// Update moves pickups down, collects those touching the paddle, drops those
// that left the window, and counts down the running effect.
func (m *PowerupManager) Update(dt float64) {
	if m.inEffect.Kind != PowerupNone {
		m.inEffect.Remaining -= dt
		if m.inEffect.Remaining <= 0 {
			m.inEffect = PowerupStatus{}
		}
	}

	h := float64(m.window.Height())
	paddle := m.paddle.Bounds()
	live := m.pickups[:0]
	for _, p := range m.pickups {
		p.Y += m.fallSpeed * dt
		if p.Bounds().Intersects(paddle) {
			m.apply(p.Kind)
			continue
		}
		if p.Y < h {
			live = append(live, p)
		}
	}
	m.pickups = live
}

func (m *PowerupManager) apply(kind PowerupKind) {
	d := m.effectDuration
	switch kind {
	case PowerupBigPaddle:
		m.paddle.SetWidth(bigPaddleFactor, d)
	case PowerupSmallPaddle:
		m.paddle.SetWidth(smallPaddleFactor, d)
	case PowerupFastBall:
		m.ball.SetVelocity(fastBallFactor, d)
	case PowerupSlowBall:
		m.ball.SetVelocity(slowBallFactor, d)
	case PowerupFireBall:
		m.ball.SetFireBall(d)
	default:
		return
	}
	m.inEffect = PowerupStatus{Kind: kind, Remaining: d}
}

// PowerupInEffect returns a copy of the running effect.
func (m *PowerupManager) PowerupInEffect() PowerupStatus {
	return m.inEffect
}

// Pickups returns a copy of the falling pickups.
func (m *PowerupManager) Pickups() []Pickup {
	out := make([]Pickup, len(m.pickups))
	copy(out, m.pickups)
	return out
}

// Render draws the falling pickups.
func (m *PowerupManager) Render() {
	for _, p := range m.pickups {
		m.window.Draw(int(p.X), int(p.Y), p.Kind.Glyph(), p.Kind.Color())
	}
}
