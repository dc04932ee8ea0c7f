package breakout

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

const (
	heartChar     = '♥'
	separatorChar = '─'
)

// ScoreboardUI draws the HUD: score on the left, the running powerup in the
// middle, remaining lives on the right and a separator below.
type ScoreboardUI struct {
	window      *core.Window
	lives       int
	pointsText  string
	powerupText string
	powerupKind PowerupKind
}

// NewScoreboardUI creates a HUD showing lives hearts.
func NewScoreboardUI(window *core.Window, lives int) *ScoreboardUI {
	return &ScoreboardUI{
		window:     window,
		lives:      lives,
		pointsText: formatPoints(0),
	}
}

// UpdatePowerupText shows the effect and its remaining time, or clears the
// slot when nothing is running.
func (u *ScoreboardUI) UpdatePowerupText(status PowerupStatus) {
	if !status.Active() {
		u.powerupText = ""
		u.powerupKind = PowerupNone
		return
	}
	u.powerupText = fmt.Sprintf("%s %.1fs", status.Kind, status.Remaining)
	u.powerupKind = status.Kind
}

// UpdatePointsText shows points as the score.
func (u *ScoreboardUI) UpdatePointsText(points int) {
	u.pointsText = formatPoints(points)
}

// LifeLost updates the hearts to lives.
func (u *ScoreboardUI) LifeLost(lives int) {
	u.lives = core.Max(lives, 0)
}

// PointsText returns the score label.
func (u *ScoreboardUI) PointsText() string {
	return u.pointsText
}

// PowerupText returns the powerup label.
func (u *ScoreboardUI) PowerupText() string {
	return u.powerupText
}

// Lives returns the number of hearts shown.
func (u *ScoreboardUI) Lives() int {
	return u.lives
}

// Render draws the HUD.
func (u *ScoreboardUI) Render() {
	w := u.window.Width()

	u.window.DrawText(1, 0, u.pointsText, core.ColorBrightWhite)

	if u.powerupText != "" {
		x := (w - utf8.RuneCountInString(u.powerupText)) / 2
		u.window.DrawText(x, 0, u.powerupText, u.powerupKind.Color())
	}

	hearts := strings.Repeat(string(heartChar), u.lives)
	u.window.DrawText(w-u.lives-1, 0, hearts, core.ColorBrightRed)

	u.window.DrawHLine(0, hudHeight-1, w, separatorChar, core.ColorGray)
}

func formatPoints(points int) string {
	return fmt.Sprintf("Score: %d", points)
}
