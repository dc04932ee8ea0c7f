// Package breakout implements the Breakout game: a coordinator owning the
// paddle, ball, brick field, powerups and HUD, and driving them each frame.
package breakout

import (
	"errors"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/assets"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

var (
	// ErrNotInitialized is returned by Update and Render before Initialize.
	ErrNotInitialized = errors.New("breakout: coordinator not initialized")
	// ErrAlreadyInitialized is returned by a second call to Initialize.
	ErrAlreadyInitialized = errors.New("breakout: coordinator already initialized")
)

// Status messages.
const (
	MsgGameOver      = "Game over."
	MsgLevelComplete = "Level completed."
	MsgPaused        = "paused."
)

// hudHeight is the number of rows reserved for the scoreboard.
const hudHeight = 2

// Host is the view of the coordinator its collaborators call back into.
// They must not keep it beyond the coordinator's lifetime.
type Host interface {
	AddPoints(points int)
	LoseLife()
	CompleteLevel()
	Window() *core.Window
	Paddle() *Paddle
	BrickField() *BrickField
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithRand sets the random source.
func WithRand(r Rand) Option {
	return func(c *Coordinator) {
		c.rng = r
	}
}

// WithSeed seeds the default random source.
func WithSeed(seed int64) Option {
	return func(c *Coordinator) {
		c.rng = NewSimpleRNG(seed)
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Coordinator) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithFont uses f for status text instead of loading the configured font.
func WithFont(f *assets.Font) Option {
	return func(c *Coordinator) {
		c.font = f
	}
}

// WithVariant overrides the ID and title reported to the host.
func WithVariant(id, title string) Option {
	return func(c *Coordinator) {
		c.id = id
		c.title = title
	}
}

// Coordinator owns the game objects and the game state.
type Coordinator struct {
	id    string
	title string

	cfg    config.BreakoutConfig
	window *core.Window
	input  core.InputSource
	rng    Rand
	logger *log.Logger

	font        *assets.Font
	statusColor core.Color

	paddle   *Paddle
	ball     *Ball
	bricks   *BrickField
	powerups *PowerupManager
	ui       *ScoreboardUI

	initialized bool

	lives                int
	points               int
	elapsedTime          float64
	paused               bool
	pauseInputCooldown   float64
	levelComplete        bool
	activePowerup        PowerupStatus
	lastPowerupSpawnTime float64
	shakeTimeRemaining   float64
	statusText           string
}

// New creates a coordinator. The status font is loaded here so a bad path
// fails before the game starts.
func New(cfg config.BreakoutConfig, window *core.Window, input core.InputSource, opts ...Option) (*Coordinator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if window == nil {
		return nil, errors.New("breakout: nil window")
	}
	if input == nil {
		return nil, errors.New("breakout: nil input source")
	}

	c := &Coordinator{
		id:     "breakout",
		title:  "Breakout",
		cfg:    cfg,
		window: window,
		input:  input,
		rng:    NewSimpleRNG(time.Now().UnixNano()),
		logger: log.New(io.Discard),
		lives:  cfg.Gameplay.Lives,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.font == nil {
		font, err := assets.LoadFont(cfg.UI.Font)
		if err != nil {
			return nil, fmt.Errorf("breakout: %w", err)
		}
		c.font = font
	}
	c.logger.Debug("status font ready", "font", c.font.Name())

	color, ok := core.ParseColor(cfg.UI.Color)
	if !ok {
		color = core.ColorYellow
	}
	c.statusColor = color

	return c, nil
}

// Initialize creates the game objects and lays out the bricks.
func (c *Coordinator) Initialize() error {
	if c.initialized {
		return ErrAlreadyInitialized
	}

	c.paddle = NewPaddle(c.window, c.cfg.Paddle.Width, c.cfg.Paddle.RowOffset)
	c.bricks = NewBrickField(c.window, c, c.cfg.Gameplay.BrickPoints, c.cfg.Bricks.Top)
	c.ball = NewBall(c.window, c, c.cfg.Ball.Speed)
	c.powerups = NewPowerupManager(c.window, c.paddle, c.ball, c.rng, c.cfg.Powerups)
	c.ui = NewScoreboardUI(c.window, c.lives)

	layout := c.cfg.Bricks
	c.bricks.CreateBricks(layout.Rows, layout.Cols,
		float64(layout.Width), float64(layout.Height), float64(layout.Spacing))

	c.initialized = true
	c.logger.Debug("initialized",
		"variant", c.id,
		"bricks", c.bricks.Remaining(),
		"lives", c.lives,
		"width", c.window.Width(),
		"height", c.window.Height())
	return nil
}

// Update advances the game by dt seconds.
func (c *Coordinator) Update(dt float64) error {
	if !c.initialized {
		return ErrNotInitialized
	}

	c.activePowerup = c.powerups.PowerupInEffect()
	c.ui.UpdatePowerupText(c.activePowerup)
	c.ui.UpdatePointsText(c.points)
	c.activePowerup.Remaining -= dt

	if c.lives <= 0 {
		c.statusText = MsgGameOver
		return nil
	}
	if c.levelComplete {
		c.statusText = MsgLevelComplete
		return nil
	}

	if c.pauseInputCooldown > 0 {
		c.pauseInputCooldown -= dt
	}
	if c.input.IsPressed(core.ActionPause) && c.pauseInputCooldown <= 0 {
		c.paused = !c.paused
		c.pauseInputCooldown = c.cfg.Gameplay.PauseBuffer
		if c.paused {
			c.statusText = MsgPaused
		} else {
			c.statusText = ""
		}
		c.logger.Debug("pause toggled", "paused", c.paused, "elapsed", c.elapsedTime)
	}

	if c.paused {
		return nil
	}

	c.elapsedTime += dt

	if c.elapsedTime > c.lastPowerupSpawnTime+c.cfg.Powerups.SpawnFrequency &&
		c.rng.Intn(c.cfg.Powerups.SpawnChance) == 0 {
		p := c.powerups.SpawnPowerup()
		c.lastPowerupSpawnTime = c.elapsedTime
		c.logger.Debug("powerup spawned", "kind", p.Kind, "x", p.X, "elapsed", c.elapsedTime)
	}

	x, _ := c.input.Pointer()
	c.paddle.MoveTo(x)
	c.paddle.Update(dt)
	c.ball.Update(dt)
	c.powerups.Update(dt)
	c.ShakeScreen(dt)

	return nil
}

// LoseLife removes a life and starts a screen shake.
func (c *Coordinator) LoseLife() {
	if c.lives > 0 {
		c.lives--
	}
	c.ui.LifeLost(c.lives)
	c.shakeTimeRemaining = c.cfg.Shake.Duration

	if c.lives == 0 {
		c.logger.Info("game over", "points", c.points, "elapsed", c.elapsedTime)
		return
	}
	c.logger.Debug("life lost", "lives", c.lives)
}

// AddPoints adds n to the score.
func (c *Coordinator) AddPoints(n int) {
	c.points += n
}

// CompleteLevel ends the level. It cannot be undone.
func (c *Coordinator) CompleteLevel() {
	if c.levelComplete {
		return
	}
	c.levelComplete = true
	c.logger.Info("level completed", "points", c.points, "elapsed", c.elapsedTime)
}

// ShakeScreen jitters the view horizontally while a shake is running and
// snaps it back to the default view once it has run out.
func (c *Coordinator) ShakeScreen(dt float64) {
	base := c.window.DefaultView()
	if c.shakeTimeRemaining > 0 {
		c.shakeTimeRemaining -= dt
		strength := c.cfg.Shake.Strength
		offset := (c.rng.Float64()*2 - 1) * strength
		c.window.SetView(core.View{CenterX: base.CenterX + offset, CenterY: base.CenterY})
		return
	}
	c.window.SetView(base)
}

// Render draws the frame into the window.
func (c *Coordinator) Render() error {
	if !c.initialized {
		return ErrNotInitialized
	}

	c.window.Clear()
	c.paddle.Render()
	c.ball.Render()
	c.bricks.Render()
	c.powerups.Render()
	c.renderStatus()
	c.ui.Render()
	return nil
}

func (c *Coordinator) renderStatus() {
	if c.statusText == "" {
		return
	}

	w := c.window.Width()
	if c.font.Width(c.statusText) > w {
		x := (w - utf8.RuneCountInString(c.statusText)) / 2
		c.window.DrawText(x, c.window.Height()*2/3, c.statusText, c.statusColor)
		return
	}
	y := c.window.Height()*2/3 - c.font.Height()/2
	c.font.DrawCentered(c.window, y, c.statusText, c.statusColor)
}

// ID returns the variant identifier.
func (c *Coordinator) ID() string {
	return c.id
}

// Title returns the display name.
func (c *Coordinator) Title() string {
	return c.title
}

// Window returns the render target.
func (c *Coordinator) Window() *core.Window {
	return c.window
}

// UI returns the scoreboard.
func (c *Coordinator) UI() *ScoreboardUI {
	return c.ui
}

// Paddle returns the paddle.
func (c *Coordinator) Paddle() *Paddle {
	return c.paddle
}

// Ball returns the ball.
func (c *Coordinator) Ball() *Ball {
	return c.ball
}

// BrickField returns the brick field.
func (c *Coordinator) BrickField() *BrickField {
	return c.bricks
}

// PowerupManager returns the powerup manager.
func (c *Coordinator) PowerupManager() *PowerupManager {
	return c.powerups
}

// Lives returns the remaining lives.
func (c *Coordinator) Lives() int {
	return c.lives
}

// Points returns the score.
func (c *Coordinator) Points() int {
	return c.points
}

// Elapsed returns the seconds accumulated since Initialize, pauses included.
func (c *Coordinator) Elapsed() float64 {
	return c.elapsedTime
}

// Paused reports whether the game is paused.
func (c *Coordinator) Paused() bool {
	return c.paused
}

// LevelComplete reports whether every brick has been destroyed.
func (c *Coordinator) LevelComplete() bool {
	return c.levelComplete
}

// StatusText returns the banner message, or "" while playing.
func (c *Coordinator) StatusText() string {
	return c.statusText
}

// ShakeRemaining returns the seconds left on the current screen shake.
func (c *Coordinator) ShakeRemaining() float64 {
	return c.shakeTimeRemaining
}

// ActivePowerup returns the display copy of the running effect taken at the
// start of the last Update.
func (c *Coordinator) ActivePowerup() PowerupStatus {
	return c.activePowerup
}

// State returns the summary the host shows outside the game view.
func (c *Coordinator) State() core.GameState {
	return core.GameState{
		Score:         c.points,
		Lives:         c.lives,
		GameOver:      c.lives <= 0,
		LevelComplete: c.levelComplete,
		Paused:        c.paused,
	}
}
