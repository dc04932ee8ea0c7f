package breakout

// Rand is the random source the game draws from. It is injected so runs can
// be reproduced from a seed.
type Rand interface {
	// Intn returns a value in [0, n). n <= 0 returns 0.
	Intn(n int) int
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// SimpleRNG is a deterministic pseudo-random number generator.
// It steps a 64-bit LCG and mixes the state on output so the low bits used by
// small moduli are well distributed.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407

	x := r.state
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a random float64 in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// State returns the generator state for snapshots.
func (r *SimpleRNG) State() uint64 {
	return r.state
}
