package core

import "math"

// View is a camera looking at the playfield. Its center is expressed in
// world cell coordinates; the default view is centered on the window.
type View struct {
	CenterX float64
	CenterY float64
}

// Window is the drawing target the game renders into. It owns a Screen and
// a camera View. All drawing goes through the window so the camera offset is
// applied uniformly to every element.
type Window struct {
	screen *Screen
	view   View
}

// NewWindow creates a window of the given size with the default view.
func NewWindow(width, height int) *Window {
	w := &Window{screen: NewScreen(width, height)}
	w.view = w.DefaultView()
	return w
}

// Width returns the window width in cells.
func (w *Window) Width() int {
	return w.screen.Width()
}

// Height returns the window height in cells.
func (w *Window) Height() int {
	return w.screen.Height()
}

// Screen returns the underlying character buffer.
func (w *Window) Screen() *Screen {
	return w.screen
}

// Resize changes the window size and resets the camera.
func (w *Window) Resize(width, height int) {
	w.screen.Resize(width, height)
	w.view = w.DefaultView()
}

// DefaultView returns the unshaken view centered on the window.
func (w *Window) DefaultView() View {
	return View{
		CenterX: float64(w.screen.Width()) / 2,
		CenterY: float64(w.screen.Height()) / 2,
	}
}

// View returns the current camera view.
func (w *Window) View() View {
	return w.view
}

// SetView replaces the camera view.
func (w *Window) SetView(v View) {
	w.view = v
}

// Offset returns the whole-cell camera displacement from the default view.
func (w *Window) Offset() (dx, dy int) {
	def := w.DefaultView()
	dx = int(math.Round(w.view.CenterX - def.CenterX))
	dy = int(math.Round(w.view.CenterY - def.CenterY))
	return dx, dy
}

// Clear blanks the screen.
func (w *Window) Clear() {
	w.screen.Clear()
}

// Draw places a colored rune at world coordinates, shifted by the camera.
func (w *Window) Draw(x, y int, r rune, c Color) {
	dx, dy := w.Offset()
	w.screen.SetColored(x-dx, y-dy, r, c)
}

// DrawText writes text at world coordinates, shifted by the camera.
func (w *Window) DrawText(x, y int, text string, c Color) {
	dx, dy := w.Offset()
	w.screen.DrawTextColored(x-dx, y-dy, text, c)
}

// DrawHLine draws a horizontal run of length cells at world coordinates,
// shifted by the camera.
func (w *Window) DrawHLine(x, y, length int, r rune, c Color) {
	dx, dy := w.Offset()
	w.screen.DrawHLine(x-dx, y-dy, length, r, c)
}

// FillRect fills a world-space rectangle with a colored rune.
func (w *Window) FillRect(r Rect, fill rune, c Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			w.Draw(x, y, fill, c)
		}
	}
}
