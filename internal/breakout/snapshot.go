package breakout

import "math"

// Snapshot captures the game state for determinism testing.
// Uses primitive types only for stable hashing.
type Snapshot struct {
	Lives         int
	Points        int
	Elapsed       float64
	Paused        bool
	LevelComplete bool
	StatusText    string

	PauseCooldown  float64
	LastSpawn      float64
	ShakeRemaining float64
	ViewCenterX    float64

	PaddleX     float64
	PaddleWidth float64
	BallX       float64
	BallY       float64

	BricksRemaining int

	// Pickup state (each pickup is 3 values: Kind, X, Y)
	PickupCount int
	PickupData  []float64

	PowerupKind      int
	PowerupRemaining float64

	// RNG state when the source is a SimpleRNG
	RNGState uint64
}

// Snapshot returns the current game state. It must not be called before
// Initialize.
func (c *Coordinator) Snapshot() Snapshot {
	bx, by := c.ball.Position()
	pickups := c.powerups.Pickups()
	data := make([]float64, 0, len(pickups)*3)
	for _, p := range pickups {
		data = append(data, float64(p.Kind), p.X, p.Y)
	}
	effect := c.powerups.PowerupInEffect()

	snap := Snapshot{
		Lives:            c.lives,
		Points:           c.points,
		Elapsed:          c.elapsedTime,
		Paused:           c.paused,
		LevelComplete:    c.levelComplete,
		StatusText:       c.statusText,
		PauseCooldown:    c.pauseInputCooldown,
		LastSpawn:        c.lastPowerupSpawnTime,
		ShakeRemaining:   c.shakeTimeRemaining,
		ViewCenterX:      c.window.View().CenterX,
		PaddleX:          c.paddle.X(),
		PaddleWidth:      c.paddle.Width(),
		BallX:            bx,
		BallY:            by,
		BricksRemaining:  c.bricks.Remaining(),
		PickupCount:      len(pickups),
		PickupData:       data,
		PowerupKind:      int(effect.Kind),
		PowerupRemaining: effect.Remaining,
	}
	if r, ok := c.rng.(*SimpleRNG); ok {
		snap.RNGState = r.State()
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Lives)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Points) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Elapsed)
	h = h*31 + boolBits(snap.Paused)
	h = h*31 + boolBits(snap.LevelComplete)
	for _, r := range snap.StatusText {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	h = h*31 + math.Float64bits(snap.PauseCooldown)
	h = h*31 + math.Float64bits(snap.LastSpawn)
	h = h*31 + math.Float64bits(snap.ShakeRemaining)
	h = h*31 + math.Float64bits(snap.ViewCenterX)
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.PaddleWidth)
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + uint64(snap.BricksRemaining) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PickupCount)     //#nosec G115 -- hash computation

	for _, v := range snap.PickupData {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + uint64(snap.PowerupKind) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PowerupRemaining)
	h = h*31 + snap.RNGState

	return h
}

func boolBits(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
