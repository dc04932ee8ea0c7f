package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// footerHeight is the number of terminal rows below the game window.
const footerHeight = 1

// Model is the Bubble Tea model that runs one game variant.
type Model struct {
	variant string
	env     registry.Env
	game    registry.Game
	keys    *KeyState
	keyMap  KeyMap
	help    help.Model
	logger  *log.Logger

	interval   time.Duration
	lastTick   time.Time
	timeSeeded bool // Reseed from the clock on restart
	quitting   bool
	err        error
}

// NewModel creates the game for variant, sized to the terminal in
// env.Runtime. env.Window and env.Input are replaced by the model's own.
func NewModel(variant string, env registry.Env) (Model, error) {
	if env.Logger == nil {
		env.Logger = log.New(io.Discard)
	}

	timeSeeded := env.Runtime.Seed == 0
	if timeSeeded {
		env.Runtime.Seed = time.Now().UnixNano()
	}

	w, h := gameSize(env.Runtime.ScreenW, env.Runtime.ScreenH)
	env.Window = core.NewWindow(w, h)

	hold := time.Duration(env.Config.Input.KeyHold * float64(time.Second))
	keys := NewKeyState(hold, env.Config.Input.PointerStep, w, h)
	env.Input = keys

	game, err := registry.Create(variant, env)
	if err != nil {
		return Model{}, err
	}

	hm := help.New()
	hm.Width = w

	return Model{
		variant:    variant,
		env:        env,
		game:       game,
		keys:       keys,
		keyMap:     DefaultKeyMap(),
		help:       hm,
		logger:     env.Logger,
		interval:   env.Runtime.FrameInterval(),
		timeSeeded: timeSeeded,
	}, nil
}

func gameSize(termW, termH int) (int, int) {
	return core.Max(termW, 1), core.Max(termH-footerHeight, 1)
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and advances the game.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keys.MoveTo(float64(msg.X), float64(msg.Y))
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keyMap.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionRestart:
		if m.game.State().Finished() {
			return m.restart()
		}

	default:
		m.keys.Press(action)
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	w, h := gameSize(msg.Width, msg.Height)
	m.help.Width = w
	if w == m.env.Window.Width() && h == m.env.Window.Height() {
		return m, nil
	}

	m.env.Runtime.ScreenW = msg.Width
	m.env.Runtime.ScreenH = msg.Height
	m.logger.Debug("terminal resized", "width", w, "height", h)

	// Layout depends on the window size, so the level is rebuilt.
	return m.restart()
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.interval)
	m.lastTick = now

	if err := m.game.Update(dt); err != nil {
		m.err = fmt.Errorf("update: %w", err)
		return m, tea.Quit
	}
	return m, tickCmd(m.interval)
}

func (m Model) restart() (tea.Model, tea.Cmd) {
	w, h := gameSize(m.env.Runtime.ScreenW, m.env.Runtime.ScreenH)
	m.env.Window.Resize(w, h)
	m.keys.Reset(w, h)
	if m.timeSeeded {
		m.env.Runtime.Seed = time.Now().UnixNano()
	}

	game, err := registry.Create(m.variant, m.env)
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	m.game = game
	m.lastTick = time.Time{}
	m.logger.Debug("game restarted", "variant", m.variant, "seed", m.env.Runtime.Seed)
	return m, nil
}

// View renders the game window and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if err := m.game.Render(); err != nil {
		return err.Error()
	}
	return RenderFrame(m.env.Window.Screen(), m.help.View(m.keyMap))
}

// Game returns the running game.
func (m Model) Game() registry.Game {
	return m.game
}

// Err returns the error that stopped the loop, if any.
func (m Model) Err() error {
	return m.err
}

// Run plays variant until the user quits.
func Run(variant string, env registry.Env) error {
	model, err := NewModel(variant, env)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Paddle follows the mouse
	)

	final, err := p.Run()
	if err != nil {
		return err
	}

	if fm, ok := final.(Model); ok {
		if fm.err != nil {
			return fm.err
		}
		st := fm.game.State()
		model.logger.Info("session ended",
			"variant", variant,
			"score", st.Score,
			"lives", st.Lives,
			"level_complete", st.LevelComplete)
	}
	return nil
}
