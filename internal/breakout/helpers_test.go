package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/assets"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

const (
	testW = 80
	testH = 24
)

// newTestGame builds an initialized coordinator on an 80x24 window with the
// pointer centered. The returned frame is the live input source.
func newTestGame(t *testing.T, mutate func(*config.BreakoutConfig), opts ...Option) (*Coordinator, *core.InputFrame) {
	t.Helper()

	cfg := config.DefaultBreakoutConfig()
	if mutate != nil {
		mutate(&cfg)
	}

	in := core.NewInputFrame()
	in.MoveTo(testW/2, 0)

	opts = append([]Option{WithSeed(42), WithFont(assets.MustBuiltinFont())}, opts...)
	c, err := New(cfg, core.NewWindow(testW, testH), &in, opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := c.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	return c, &in
}

// rowText returns the runes of row y.
func rowText(s *core.Screen, y int) string {
	runes := make([]rune, s.Width())
	for x := range runes {
		runes[x] = s.GetCell(x, y).Rune
	}
	return string(runes)
}

// fixedRand always returns the same values.
type fixedRand struct {
	n int
	f float64
}

func (r fixedRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.n % n
}

func (r fixedRand) Float64() float64 {
	return r.f
}

// fakeHost records callbacks from collaborators.
type fakeHost struct {
	window    *core.Window
	paddle    *Paddle
	bricks    *BrickField
	points    int
	livesLost int
	completed int
}

func newFakeHost(w, h int) *fakeHost {
	win := core.NewWindow(w, h)
	host := &fakeHost{window: win}
	host.paddle = NewPaddle(win, 10, 2)
	host.bricks = NewBrickField(win, host, 10, 3)
	return host
}

func (h *fakeHost) AddPoints(n int) { h.points += n }
func (h *fakeHost) LoseLife() { h.livesLost++ }
func (h *fakeHost) CompleteLevel() { h.completed++ }
func (h *fakeHost) Window() *core.Window { return h.window }
func (h *fakeHost) Paddle() *Paddle { return h.paddle }
func (h *fakeHost) BrickField() *BrickField { return h.bricks }
