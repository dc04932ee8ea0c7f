package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// BrickChar is the glyph bricks are drawn with.
const BrickChar = '█'

// CollisionResponse tells the ball which velocity component to reflect.
type CollisionResponse int

const (
	CollisionNone CollisionResponse = iota
	CollisionHorizontal
	CollisionVertical
)

// String returns the response name.
func (r CollisionResponse) String() string {
	switch r {
	case CollisionHorizontal:
		return "horizontal"
	case CollisionVertical:
		return "vertical"
	default:
		return "none"
	}
}

var rowColors = []core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorCyan,
	core.ColorBlue,
	core.ColorMagenta,
}

// Brick is a single destructible block.
type Brick struct {
	Bounds core.RectF
	Points int
	Color  core.Color
	Alive  bool
}

// BrickField owns the bricks of a level.
type BrickField struct {
	window     *core.Window
	host       Host
	basePoints int
	top        int

	bricks    []*Brick
	remaining int
}

// NewBrickField creates an empty field whose first row starts at top.
// Bricks in row r of n are worth basePoints*(n-r).
func NewBrickField(window *core.Window, host Host, basePoints, top int) *BrickField {
	return &BrickField{
		window:     window,
		host:       host,
		basePoints: basePoints,
		top:        core.Max(top, hudHeight),
	}
}

// CreateBricks lays out a rows x cols grid centered horizontally. Brick width
// shrinks when the grid does not fit the window.
func (f *BrickField) CreateBricks(rows, cols int, width, height, spacing float64) {
	f.bricks = f.bricks[:0]
	f.remaining = 0
	if rows <= 0 || cols <= 0 {
		return
	}

	avail := float64(f.window.Width())
	total := float64(cols)*width + float64(cols-1)*spacing
	if total > avail {
		width = math.Floor((avail - float64(cols-1)*spacing) / float64(cols))
		if width < 1 {
			width, spacing = 1, 0
		}
		total = float64(cols)*width + float64(cols-1)*spacing
	}
	left := math.Floor((avail - total) / 2)

	for r := 0; r < rows; r++ {
		y := float64(f.top) + float64(r)*(height+spacing)
		for c := 0; c < cols; c++ {
			x := left + float64(c)*(width+spacing)
			f.bricks = append(f.bricks, &Brick{
				Bounds: core.NewRectF(x, y, width, height),
				Points: f.basePoints * (rows - r),
				Color:  rowColors[r%len(rowColors)],
				Alive:  true,
			})
			f.remaining++
		}
	}
}

// CheckCollision destroys the first live brick overlapping bounds, awards its
// points, and reports which axis the hit was on. Destroying the last brick
// completes the level.
func (f *BrickField) CheckCollision(bounds core.RectF) CollisionResponse {
	for _, b := range f.bricks {
		if !b.Alive || !bounds.Intersects(b.Bounds) {
			continue
		}

		b.Alive = false
		f.remaining--
		f.host.AddPoints(b.Points)
		if f.remaining == 0 {
			f.host.CompleteLevel()
		}

		dx, dy := bounds.Overlap(b.Bounds)
		if dx < dy {
			return CollisionHorizontal
		}
		return CollisionVertical
	}
	return CollisionNone
}

// Remaining returns the number of live bricks.
func (f *BrickField) Remaining() int {
	return f.remaining
}

// Bricks returns the bricks in layout order, including destroyed ones.
func (f *BrickField) Bricks() []*Brick {
	return f.bricks
}

// Render draws the live bricks.
func (f *BrickField) Render() {
	for _, b := range f.bricks {
		if b.Alive {
			f.window.FillRect(b.Bounds.Cell(), BrickChar, b.Color)
		}
	}
}
