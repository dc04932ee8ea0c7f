package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

const (
	// BallChar is the glyph the ball is drawn with.
	BallChar = '●'
	// ballSize is the ball's collision box edge in cells.
	ballSize = 1.0
	// minBounceX keeps the ball from settling into a vertical loop after a
	// dead-center paddle hit.
	minBounceX = 0.15
)

// Ball moves in cells per second and bounces off walls, the paddle and bricks.
type Ball struct {
	window *core.Window
	host   Host

	x, y   float64 // Top-left of the collision box
	dx, dy float64 // Unit direction
	speed  float64

	velocityFactor float64
	velocityTimer  float64
	fireballTimer  float64
}

// NewBall creates a ball at the spawn point moving down and to the right.
func NewBall(window *core.Window, host Host, speed float64) *Ball {
	b := &Ball{
		window:         window,
		host:           host,
		speed:          speed,
		velocityFactor: 1,
	}
	b.reset()
	return b
}

func (b *Ball) reset() {
	b.x = float64(b.window.Width()) / 2
	b.y = float64(b.window.Height()) / 2
	b.dx, b.dy = normalize(1, 1)
}

// SetVelocity scales the ball speed by factor for duration seconds.
func (b *Ball) SetVelocity(factor, duration float64) {
	b.velocityFactor = factor
	b.velocityTimer = duration
}

// SetFireBall lets the ball pass through bricks for duration seconds.
func (b *Ball) SetFireBall(duration float64) {
	b.fireballTimer = duration
}

// FireBall reports whether the ball currently passes through bricks.
func (b *Ball) FireBall() bool {
	return b.fireballTimer > 0
}

// Speed returns the effective speed in cells per second.
func (b *Ball) Speed() float64 {
	return b.speed * b.velocityFactor
}

// Position returns the top-left corner of the ball.
func (b *Ball) Position() (x, y float64) {
	return b.x, b.y
}

// Direction returns the unit direction of travel.
func (b *Ball) Direction() (dx, dy float64) {
	return b.dx, b.dy
}

// Place moves the ball and sets its direction. The direction is normalized.
func (b *Ball) Place(x, y, dx, dy float64) {
	b.x, b.y = x, y
	b.dx, b.dy = normalize(dx, dy)
}

// Bounds returns the ball's collision box.
func (b *Ball) Bounds() core.RectF {
	return core.NewRectF(b.x, b.y, ballSize, ballSize)
}

// Update advances the ball and resolves collisions.
func (b *Ball) Update(dt float64) {
	if b.velocityTimer > 0 {
		b.velocityTimer -= dt
		if b.velocityTimer <= 0 {
			b.velocityTimer = 0
			b.velocityFactor = 1
		}
	}
	if b.fireballTimer > 0 {
		b.fireballTimer = math.Max(0, b.fireballTimer-dt)
	}

	// Travel is split into steps no longer than the ball so one-row
	// bricks and the paddle are never jumped over.
	travel := b.Speed() * dt
	n := int(math.Ceil(travel / ballSize))
	if n < 1 {
		n = 1
	}
	step := travel / float64(n)
	for i := 0; i < n; i++ {
		if !b.advance(step) {
			return
		}
	}
}

// advance moves the ball by step cells and resolves collisions. It returns
// false when the ball left the bottom edge and was reset.
func (b *Ball) advance(step float64) bool {
	b.x += b.dx * step
	b.y += b.dy * step

	w := float64(b.window.Width())
	h := float64(b.window.Height())

	if b.x < 0 {
		b.x = 0
		b.dx = math.Abs(b.dx)
	} else if b.x > w-ballSize {
		b.x = w - ballSize
		b.dx = -math.Abs(b.dx)
	}
	if b.y < hudHeight {
		b.y = hudHeight
		b.dy = math.Abs(b.dy)
	}
	if b.y >= h {
		b.host.LoseLife()
		b.reset()
		return false
	}

	b.bouncePaddle()

	switch b.host.BrickField().CheckCollision(b.Bounds()) {
	case CollisionHorizontal:
		if !b.FireBall() {
			b.dx = -b.dx
		}
	case CollisionVertical:
		if !b.FireBall() {
			b.dy = -b.dy
		}
	}
	return true
}

// bouncePaddle reflects the ball upwards, steering it by where it struck the
// paddle: the edges send it out at 45 degrees, the center nearly straight up.
func (b *Ball) bouncePaddle() {
	paddle := b.host.Paddle()
	pb := paddle.Bounds()
	if b.dy <= 0 || !b.Bounds().Intersects(pb) {
		return
	}

	cx, _ := b.Bounds().Center()
	rel := core.ClampF((cx-paddle.X())/(paddle.Width()/2), -1, 1)
	if math.Abs(rel) < minBounceX {
		rel = math.Copysign(minBounceX, b.dx)
	}
	b.dx, b.dy = normalize(rel, -1)
	b.y = pb.Y - ballSize
}

// Render draws the ball.
func (b *Ball) Render() {
	b.window.Draw(int(math.Floor(b.x)), int(math.Floor(b.y)), BallChar, core.ColorBrightWhite)
}

func normalize(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0
	}
	return x / l, y / l
}
