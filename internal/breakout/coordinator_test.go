package breakout

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/assets"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestUseBeforeInitialize(t *testing.T) {
	in := core.NewInputFrame()
	c, err := New(config.DefaultBreakoutConfig(), core.NewWindow(testW, testH), &in,
		WithFont(assets.MustBuiltinFont()))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := c.Update(0.016); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Update before Initialize = %v, want ErrNotInitialized", err)
	}
	if err := c.Render(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Render before Initialize = %v, want ErrNotInitialized", err)
	}

	if err := c.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if err := c.Initialize(); !errors.Is(err, ErrAlreadyInitialized) {
		t.Errorf("second Initialize = %v, want ErrAlreadyInitialized", err)
	}
	if err := c.Update(0.016); err != nil {
		t.Errorf("Update after Initialize: %v", err)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Powerups.SpawnChance = 0

	in := core.NewInputFrame()
	if _, err := New(cfg, core.NewWindow(testW, testH), &in); err == nil {
		t.Error("expected error for zero spawn chance")
	}
}

func TestNewMissingFont(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.UI.Font = "/nonexistent/font.yaml"

	in := core.NewInputFrame()
	_, err := New(cfg, core.NewWindow(testW, testH), &in)

	var loadErr *assets.ResourceLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("New error = %v, want *assets.ResourceLoadError", err)
	}
	if loadErr.Path != cfg.UI.Font {
		t.Errorf("Path = %q, want %q", loadErr.Path, cfg.UI.Font)
	}
}

func TestInitializeBuildsLevel(t *testing.T) {
	c, _ := newTestGame(t, nil)

	if c.Paddle() == nil || c.Ball() == nil || c.BrickField() == nil ||
		c.PowerupManager() == nil || c.UI() == nil {
		t.Fatal("Initialize should create every game object")
	}
	if got := c.BrickField().Remaining(); got != 50 {
		t.Errorf("Remaining = %d, want 50", got)
	}
	if c.Lives() != 3 {
		t.Errorf("Lives = %d, want 3", c.Lives())
	}
	if c.ID() != "breakout" || c.Title() != "Breakout" {
		t.Errorf("ID/Title = %q/%q", c.ID(), c.Title())
	}
}

func TestAddPoints(t *testing.T) {
	c, _ := newTestGame(t, nil)

	c.AddPoints(50)
	c.AddPoints(25)
	if c.Points() != 75 {
		t.Errorf("Points = %d, want 75", c.Points())
	}

	if err := c.Update(0.016); err != nil {
		t.Fatal(err)
	}
	if got := c.UI().PointsText(); got != "Score: 75" {
		t.Errorf("PointsText = %q, want %q", got, "Score: 75")
	}
	if c.State().Score != 75 {
		t.Errorf("State().Score = %d, want 75", c.State().Score)
	}
}

func TestThreeLivesLostEndsGame(t *testing.T) {
	c, _ := newTestGame(t, nil)

	for i := 0; i < 3; i++ {
		c.LoseLife()
	}
	if c.Lives() != 0 {
		t.Fatalf("Lives = %d, want 0", c.Lives())
	}

	if err := c.Update(0.1); err != nil {
		t.Fatal(err)
	}
	if c.StatusText() != MsgGameOver {
		t.Errorf("StatusText = %q, want %q", c.StatusText(), MsgGameOver)
	}
	if c.Elapsed() != 0 {
		t.Errorf("Elapsed = %v, want 0 after game over", c.Elapsed())
	}
	if !c.State().GameOver || !c.State().Finished() {
		t.Error("State should report game over")
	}

	c.LoseLife()
	if c.Lives() != 0 {
		t.Errorf("Lives = %d, should not go below 0", c.Lives())
	}
	if c.UI().Lives() != 0 {
		t.Errorf("UI lives = %d, want 0", c.UI().Lives())
	}
}

func TestLoseLastLife(t *testing.T) {
	c, _ := newTestGame(t, func(cfg *config.BreakoutConfig) {
		cfg.Gameplay.Lives = 1
	})

	c.LoseLife()
	if err := c.Update(0.016); err != nil {
		t.Fatal(err)
	}
	if c.StatusText() != MsgGameOver {
		t.Errorf("StatusText = %q, want %q", c.StatusText(), MsgGameOver)
	}
}

func TestTerminalStatesFreeze(t *testing.T) {
	tests := []struct {
		name   string
		finish func(c *Coordinator)
		status string
	}{
		{
			name: "game over",
			finish: func(c *Coordinator) {
				for c.Lives() > 0 {
					c.LoseLife()
				}
			},
			status: MsgGameOver,
		},
		{
			name:   "level complete",
			finish: func(c *Coordinator) { c.CompleteLevel() },
			status: MsgLevelComplete,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, in := newTestGame(t, nil)

			for i := 0; i < 10; i++ {
				if err := c.Update(1.0 / 60); err != nil {
					t.Fatal(err)
				}
			}

			tt.finish(c)
			if err := c.Update(1.0 / 60); err != nil {
				t.Fatal(err)
			}
			if c.StatusText() != tt.status {
				t.Fatalf("StatusText = %q, want %q", c.StatusText(), tt.status)
			}
			before := c.Snapshot()

			in.Set(core.ActionPause)
			in.MoveTo(3, 0)
			for i := 0; i < 120; i++ {
				if err := c.Update(1.0 / 60); err != nil {
					t.Fatal(err)
				}
			}

			after := c.Snapshot()
			if before.Hash() != after.Hash() {
				t.Errorf("state changed after %s: %+v -> %+v", tt.name, before, after)
			}
			if c.Paused() {
				t.Error("pause should not toggle in a terminal state")
			}
		})
	}
}

func TestCompleteLevelIrreversible(t *testing.T) {
	c, _ := newTestGame(t, nil)

	c.CompleteLevel()
	c.CompleteLevel()
	if !c.LevelComplete() || !c.State().LevelComplete {
		t.Error("level should stay complete")
	}
}

func TestPauseDebounce(t *testing.T) {
	const dt = 0.125
	c, in := newTestGame(t, func(cfg *config.BreakoutConfig) {
		cfg.Gameplay.PauseBuffer = 0.5
		cfg.Ball.Speed = 0.5
	})

	in.Set(core.ActionPause)

	var toggles []float64
	wasPaused := c.Paused()
	for i := 1; i <= 40; i++ {
		if err := c.Update(dt); err != nil {
			t.Fatal(err)
		}
		if c.Paused() != wasPaused {
			toggles = append(toggles, float64(i)*dt)
			wasPaused = c.Paused()

			want := ""
			if c.Paused() {
				want = MsgPaused
			}
			if c.StatusText() != want {
				t.Errorf("frame %d: StatusText = %q, want %q", i, c.StatusText(), want)
			}
		}
	}

	if len(toggles) < 2 {
		t.Fatalf("holding pause should re-toggle after the buffer, got %d toggles", len(toggles))
	}
	if toggles[0] != dt {
		t.Errorf("first toggle at %v, want %v", toggles[0], dt)
	}
	for i := 1; i < len(toggles); i++ {
		if gap := toggles[i] - toggles[i-1]; gap < 0.5-1e-9 {
			t.Errorf("toggles %d and %d only %v apart", i-1, i, gap)
		}
	}
}

func TestPausedFreezesSimulation(t *testing.T) {
	c, in := newTestGame(t, nil)

	in.Set(core.ActionPause)
	if err := c.Update(0.016); err != nil {
		t.Fatal(err)
	}
	in.Release(core.ActionPause)
	if !c.Paused() {
		t.Fatal("expected paused")
	}

	before := c.Snapshot()
	in.MoveTo(5, 0)
	for i := 0; i < 10; i++ {
		if err := c.Update(0.016); err != nil {
			t.Fatal(err)
		}
	}
	after := c.Snapshot()

	if after.Elapsed != before.Elapsed {
		t.Errorf("Elapsed advanced while paused: %v -> %v", before.Elapsed, after.Elapsed)
	}
	if after.BallX != before.BallX || after.BallY != before.BallY {
		t.Error("ball moved while paused")
	}
	if after.PaddleX != before.PaddleX {
		t.Error("paddle moved while paused")
	}
	if !c.State().Paused {
		t.Error("State should report paused")
	}
}

func TestShakeScreen(t *testing.T) {
	c, _ := newTestGame(t, nil)
	base := c.Window().DefaultView()
	strength := 1.0

	c.LoseLife()
	if c.ShakeRemaining() != 0.2 {
		t.Fatalf("ShakeRemaining = %v, want 0.2", c.ShakeRemaining())
	}

	moved := false
	for i := 0; i < 10; i++ {
		shaking := c.ShakeRemaining() > 0
		c.ShakeScreen(0.05)
		v := c.Window().View()

		if v.CenterY != base.CenterY {
			t.Errorf("step %d: CenterY = %v, want %v", i, v.CenterY, base.CenterY)
		}
		off := v.CenterX - base.CenterX
		if math.Abs(off) > strength {
			t.Errorf("step %d: offset %v exceeds strength %v", i, off, strength)
		}
		if shaking && off != 0 {
			moved = true
		}
		if !shaking && v != base {
			t.Errorf("step %d: settled view = %+v, want %+v", i, v, base)
		}
	}

	if !moved {
		t.Error("view never moved during shake")
	}
	if v := c.Window().View(); v != base {
		t.Errorf("final view = %+v, want default %+v", v, base)
	}
}

func TestPowerupSpawnWaitsForFrequency(t *testing.T) {
	c, _ := newTestGame(t, func(cfg *config.BreakoutConfig) {
		cfg.Powerups.SpawnFrequency = 10
		cfg.Ball.Speed = 0.01
	}, WithRand(fixedRand{n: 0, f: 0.5}))

	for i := 0; i < 10; i++ {
		if err := c.Update(1); err != nil {
			t.Fatal(err)
		}
	}
	if n := len(c.PowerupManager().Pickups()); n != 0 {
		t.Fatalf("spawned %d pickups before the frequency elapsed", n)
	}

	if err := c.Update(1); err != nil {
		t.Fatal(err)
	}
	if n := len(c.PowerupManager().Pickups()); n != 1 {
		t.Fatalf("pickups = %d, want 1", n)
	}
	if c.lastPowerupSpawnTime != 11 {
		t.Errorf("lastPowerupSpawnTime = %v, want 11", c.lastPowerupSpawnTime)
	}
}

func TestPowerupSpawnRate(t *testing.T) {
	const (
		frames = 70000
		chance = 100
	)
	c, _ := newTestGame(t, func(cfg *config.BreakoutConfig) {
		cfg.Powerups.SpawnFrequency = 0
		cfg.Powerups.SpawnChance = chance
		cfg.Ball.Speed = 0.0001
	})

	spawns := 0
	last := c.lastPowerupSpawnTime
	for i := 0; i < frames; i++ {
		if err := c.Update(1.0 / 60); err != nil {
			t.Fatal(err)
		}
		if c.lastPowerupSpawnTime != last {
			spawns++
			last = c.lastPowerupSpawnTime
		}
	}

	want := frames / chance
	if diff := spawns - want; diff < -110 || diff > 110 {
		t.Errorf("spawns = %d, want %d +/- 110", spawns, want)
	}
}

func TestActivePowerupIsDisplayCopy(t *testing.T) {
	c, in := newTestGame(t, nil)
	c.PowerupManager().apply(PowerupBigPaddle)

	in.Set(core.ActionPause)
	if err := c.Update(0.1); err != nil {
		t.Fatal(err)
	}
	in.Release(core.ActionPause)
	for i := 0; i < 4; i++ {
		if err := c.Update(0.1); err != nil {
			t.Fatal(err)
		}
	}

	if got := c.PowerupManager().PowerupInEffect(); got.Remaining != 5 {
		t.Errorf("manager Remaining = %v, want 5 while paused", got.Remaining)
	}
	if got := c.ActivePowerup(); math.Abs(got.Remaining-4.9) > 1e-9 || got.Kind != PowerupBigPaddle {
		t.Errorf("ActivePowerup = %+v, want big paddle with 4.9 remaining", got)
	}
	if got := c.UI().PowerupText(); got != "big paddle 5.0s" {
		t.Errorf("PowerupText = %q, want %q", got, "big paddle 5.0s")
	}
}

func TestPaddleFollowsPointer(t *testing.T) {
	c, in := newTestGame(t, func(cfg *config.BreakoutConfig) {
		cfg.Ball.Speed = 0.01
	})

	in.MoveTo(20, 0)
	if err := c.Update(0.016); err != nil {
		t.Fatal(err)
	}
	if c.Paddle().X() != 20 {
		t.Errorf("paddle X = %v, want 20", c.Paddle().X())
	}

	in.MoveTo(-100, 0)
	if err := c.Update(0.016); err != nil {
		t.Fatal(err)
	}
	if c.Paddle().X() != 5 {
		t.Errorf("paddle X = %v, want 5 (clamped to half width)", c.Paddle().X())
	}
}

func TestRender(t *testing.T) {
	c, in := newTestGame(t, nil)

	if err := c.Update(0.016); err != nil {
		t.Fatal(err)
	}
	if err := c.Render(); err != nil {
		t.Fatal(err)
	}

	scr := c.Window().Screen()
	if got := scr.GetCell(40, c.Paddle().Row()).Rune; got != PaddleChar {
		t.Errorf("paddle cell = %q, want %q", got, PaddleChar)
	}
	if got := rowText(scr, 0); got[1:9] != "Score: 0" {
		t.Errorf("HUD row = %q, want score at column 1", got)
	}
	if got := scr.GetCell(testW-2, 0).Rune; got != heartChar {
		t.Errorf("last heart = %q, want %q", got, heartChar)
	}
	if got := scr.GetCell(5, 3).Rune; got != BrickChar {
		t.Errorf("first brick cell = %q, want %q", got, BrickChar)
	}

	in.Set(core.ActionPause)
	if err := c.Update(0.016); err != nil {
		t.Fatal(err)
	}
	if err := c.Render(); err != nil {
		t.Fatal(err)
	}

	statusRow := testH*2/3 - c.font.Height()/2 + 1
	colored := 0
	for x := 0; x < testW; x++ {
		if scr.GetCell(x, statusRow).Color == c.statusColor {
			colored++
		}
	}
	if colored == 0 {
		t.Errorf("status text %q not drawn on row %d", MsgPaused, statusRow)
	}
}

func TestRenderPaintOrder(t *testing.T) {
	c, in := newTestGame(t, nil)
	in.Set(core.ActionPause)
	if err := c.Update(0.016); err != nil {
		t.Fatal(err)
	}
	scr := c.Window().Screen()
	render := func() {
		t.Helper()
		if err := c.Render(); err != nil {
			t.Fatal(err)
		}
	}

	// Find a cell of the paused banner to cover with a pickup later.
	render()
	statusX, statusY, statusRune := -1, -1, ' '
	top := testH*2/3 - c.font.Height()/2
	for y := top; y < top+c.font.Height() && statusX < 0; y++ {
		for x := 0; x < testW; x++ {
			if cell := scr.GetCell(x, y); cell.Rune != ' ' && cell.Color == c.statusColor {
				statusX, statusY, statusRune = x, y, cell.Rune
				break
			}
		}
	}
	if statusX < 0 {
		t.Fatal("paused banner not drawn")
	}

	row := c.Paddle().Row()
	c.Ball().Place(38, float64(row), 0, -1)
	c.powerups.pickups = append(c.powerups.pickups,
		Pickup{Kind: PowerupBigPaddle, X: 42, Y: float64(row)},
		Pickup{Kind: PowerupFireBall, X: 10, Y: hudHeight - 1},
		Pickup{Kind: PowerupSlowBall, X: float64(statusX), Y: float64(statusY)},
	)
	render()

	tests := []struct {
		name string
		x, y int
		want rune
	}{
		{"ball over paddle", 38, row, BallChar},
		{"pickup over paddle", 42, row, PowerupBigPaddle.Glyph()},
		{"separator over pickup", 10, hudHeight - 1, separatorChar},
		{"banner over pickup", statusX, statusY, statusRune},
	}
	for _, tt := range tests {
		if got := scr.GetCell(tt.x, tt.y).Rune; got != tt.want {
			t.Errorf("%s: cell (%d, %d) = %q, want %q", tt.name, tt.x, tt.y, got, tt.want)
		}
	}

	c.Ball().Place(5, 3, 0, -1)
	render()
	if got := scr.GetCell(5, 3).Rune; got != BrickChar {
		t.Errorf("brick over ball: cell (5, 3) = %q, want %q", got, BrickChar)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		c, in := newTestGame(t, func(cfg *config.BreakoutConfig) {
			cfg.Powerups.SpawnFrequency = 1
			cfg.Powerups.SpawnChance = 20
		}, WithSeed(12345))

		for i := 0; i < 900; i++ {
			in.MoveTo(float64(20+(i*7)%40), 0)
			if err := c.Update(1.0 / 60); err != nil {
				t.Fatal(err)
			}
		}
		return c.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Points != snap2.Points {
		t.Errorf("Determinism failed: points differ. Run1=%d, Run2=%d", snap1.Points, snap2.Points)
	}
}
