package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestCreateBricksLayout(t *testing.T) {
	host := newFakeHost(80, 24)
	f := host.bricks
	f.CreateBricks(5, 10, 6, 1, 1)

	if f.Remaining() != 50 {
		t.Fatalf("Remaining = %d, want 50", f.Remaining())
	}

	bricks := f.Bricks()
	first := bricks[0]
	if first.Bounds.X != 5 || first.Bounds.Y != 3 {
		t.Errorf("first brick at (%v, %v), want (5, 3)", first.Bounds.X, first.Bounds.Y)
	}
	last := bricks[len(bricks)-1]
	if last.Bounds.X != 68 || last.Bounds.Y != 11 {
		t.Errorf("last brick at (%v, %v), want (68, 11)", last.Bounds.X, last.Bounds.Y)
	}

	if first.Points != 50 {
		t.Errorf("top row points = %d, want 50", first.Points)
	}
	if last.Points != 10 {
		t.Errorf("bottom row points = %d, want 10", last.Points)
	}
	if first.Color != core.ColorRed {
		t.Errorf("top row color = %v, want red", first.Color)
	}
}

func TestCreateBricksShrinksToFit(t *testing.T) {
	host := newFakeHost(20, 24)
	f := host.bricks
	f.CreateBricks(2, 10, 6, 1, 1)

	for i, b := range f.Bricks() {
		if b.Bounds.X < 0 || b.Bounds.Right() > 20 {
			t.Errorf("brick %d spans %v..%v, outside window", i, b.Bounds.X, b.Bounds.Right())
		}
		if b.Bounds.W != 1 {
			t.Errorf("brick %d width = %v, want 1", i, b.Bounds.W)
		}
	}
}

func TestCreateBricksReplacesLayout(t *testing.T) {
	host := newFakeHost(80, 24)
	f := host.bricks
	f.CreateBricks(5, 10, 6, 1, 1)
	f.CreateBricks(1, 2, 6, 1, 1)

	if f.Remaining() != 2 || len(f.Bricks()) != 2 {
		t.Errorf("Remaining = %d, len = %d, want 2", f.Remaining(), len(f.Bricks()))
	}
}

func TestCheckCollision(t *testing.T) {
	host := newFakeHost(80, 24)
	f := host.bricks
	f.CreateBricks(1, 2, 6, 1, 1)
	// Bricks at x 33..39 and 40..46 on row 3.

	if got := f.CheckCollision(core.NewRectF(10, 10, 1, 1)); got != CollisionNone {
		t.Errorf("miss = %v, want none", got)
	}

	if got := f.CheckCollision(core.NewRectF(35, 3.5, 1, 1)); got != CollisionVertical {
		t.Errorf("hit = %v, want vertical", got)
	}
	if f.Remaining() != 1 || host.points != 10 {
		t.Errorf("Remaining = %d, points = %d, want 1, 10", f.Remaining(), host.points)
	}
	if host.completed != 0 {
		t.Error("level completed too early")
	}

	if got := f.CheckCollision(core.NewRectF(35, 3.5, 1, 1)); got != CollisionNone {
		t.Errorf("destroyed brick still collides: %v", got)
	}

	if got := f.CheckCollision(core.NewRectF(45.6, 3, 1, 1)); got != CollisionHorizontal {
		t.Errorf("side hit = %v, want horizontal", got)
	}
	if f.Remaining() != 0 || host.completed != 1 {
		t.Errorf("Remaining = %d, completed = %d, want 0, 1", f.Remaining(), host.completed)
	}
}

func TestBrickFieldRender(t *testing.T) {
	host := newFakeHost(80, 24)
	f := host.bricks
	f.CreateBricks(1, 1, 6, 1, 1)
	f.Render()

	scr := host.window.Screen()
	if got := scr.GetCell(37, 3); got.Rune != BrickChar || got.Color != core.ColorRed {
		t.Errorf("brick cell = %+v", got)
	}

	f.CheckCollision(core.NewRectF(38, 3, 1, 1))
	host.window.Clear()
	f.Render()
	if got := scr.GetCell(37, 3).Rune; got == BrickChar {
		t.Error("destroyed brick still drawn")
	}
}
