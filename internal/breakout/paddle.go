package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// PaddleChar is the glyph the paddle is drawn with.
const PaddleChar = '='

// Paddle is the player's bat. It follows the pointer horizontally on a fixed
// row and can be temporarily resized by powerups.
type Paddle struct {
	window     *core.Window
	x          float64 // Center X
	row        int
	baseWidth  float64
	width      float64
	widthTimer float64 // Seconds until width returns to base
}

// NewPaddle creates a paddle centered on the window, rowOffset rows above the
// bottom edge.
func NewPaddle(window *core.Window, width, rowOffset int) *Paddle {
	p := &Paddle{
		window:    window,
		x:         float64(window.Width()) / 2,
		row:       window.Height() - 1 - rowOffset,
		baseWidth: float64(width),
		width:     float64(width),
	}
	return p
}

// MoveTo centers the paddle on x, keeping it inside the window.
func (p *Paddle) MoveTo(x float64) {
	half := p.width / 2
	p.x = core.ClampF(x, half, float64(p.window.Width())-half)
}

// SetWidth scales the paddle by factor for duration seconds.
func (p *Paddle) SetWidth(factor, duration float64) {
	p.width = p.baseWidth * factor
	p.widthTimer = duration
	p.MoveTo(p.x)
}

// Update counts down a temporary width change.
func (p *Paddle) Update(dt float64) {
	if p.widthTimer <= 0 {
		return
	}
	p.widthTimer -= dt
	if p.widthTimer <= 0 {
		p.widthTimer = 0
		p.width = p.baseWidth
		p.MoveTo(p.x)
	}
}

// X returns the paddle center.
func (p *Paddle) X() float64 {
	return p.x
}

// Width returns the current paddle width in cells.
func (p *Paddle) Width() float64 {
	return p.width
}

// Row returns the row the paddle sits on.
func (p *Paddle) Row() int {
	return p.row
}

// Bounds returns the paddle's collision box.
func (p *Paddle) Bounds() core.RectF {
	return core.NewRectF(p.x-p.width/2, float64(p.row), p.width, 1)
}

// Render draws the paddle.
func (p *Paddle) Render() {
	p.window.FillRect(p.Bounds().Cell(), PaddleChar, core.ColorBrightCyan)
}
