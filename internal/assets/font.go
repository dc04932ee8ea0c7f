// Package assets loads the game's external resources.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

//go:embed fonts/block.yaml
var builtinFontYAML []byte

// BuiltinFontPath is the path reported for the embedded font.
const BuiltinFontPath = "builtin:block"

// ResourceLoadError reports an asset that is missing, unreadable or malformed.
type ResourceLoadError struct {
	Path string
	Err  error
}

func (e *ResourceLoadError) Error() string {
	return fmt.Sprintf("assets: cannot load %s: %v", e.Path, e.Err)
}

func (e *ResourceLoadError) Unwrap() error {
	return e.Err
}

// fontFile is the on-disk YAML layout of a font.
type fontFile struct {
	Name    string              `yaml:"name"`
	Height  int                 `yaml:"height"`
	Spacing int                 `yaml:"spacing"`
	Glyphs  map[string][]string `yaml:"glyphs"`
}

// glyph is a decoded character bitmap.
type glyph struct {
	rows  [][]rune
	width int
}

// Font draws multi-row banner text into a window.
// Characters without a glyph are drawn as themselves on the middle row.
type Font struct {
	name    string
	height  int
	spacing int
	glyphs  map[rune]glyph
}

// LoadFont reads a font from path. An empty path loads the built-in font.
func LoadFont(path string) (*Font, error) {
	if path == "" {
		return parseFont(BuiltinFontPath, builtinFontYAML)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ResourceLoadError{Path: path, Err: err}
	}
	return parseFont(path, data)
}

// MustBuiltinFont returns the embedded font. It panics if the embedded file is
// broken, which the package tests rule out.
func MustBuiltinFont() *Font {
	f, err := LoadFont("")
	if err != nil {
		panic(err)
	}
	return f
}

func parseFont(path string, data []byte) (*Font, error) {
	var ff fontFile
	if err := yaml.Unmarshal(data, &ff); err != nil {
		return nil, &ResourceLoadError{Path: path, Err: err}
	}
	if ff.Height <= 0 {
		return nil, &ResourceLoadError{Path: path, Err: errors.New("font height must be positive")}
	}
	if len(ff.Glyphs) == 0 {
		return nil, &ResourceLoadError{Path: path, Err: errors.New("font has no glyphs")}
	}

	f := &Font{
		name:    ff.Name,
		height:  ff.Height,
		spacing: ff.Spacing,
		glyphs:  make(map[rune]glyph, len(ff.Glyphs)),
	}

	for key, rows := range ff.Glyphs {
		if utf8.RuneCountInString(key) != 1 {
			return nil, &ResourceLoadError{Path: path, Err: fmt.Errorf("glyph key %q must be a single character", key)}
		}
		if len(rows) != ff.Height {
			return nil, &ResourceLoadError{Path: path, Err: fmt.Errorf("glyph %q has %d rows, want %d", key, len(rows), ff.Height)}
		}

		g := glyph{rows: make([][]rune, len(rows))}
		for i, row := range rows {
			g.rows[i] = []rune(row)
			if i == 0 {
				g.width = len(g.rows[i])
			} else if len(g.rows[i]) != g.width {
				return nil, &ResourceLoadError{Path: path, Err: fmt.Errorf("glyph %q has ragged rows", key)}
			}
		}

		r, _ := utf8.DecodeRuneInString(key)
		f.glyphs[unicode.ToLower(r)] = g
	}

	return f, nil
}

// Name returns the font name.
func (f *Font) Name() string {
	return f.name
}

// Height returns the number of rows a line of text occupies.
func (f *Font) Height() int {
	return f.height
}

// Width returns the number of cells text occupies.
func (f *Font) Width(text string) int {
	w := 0
	n := 0
	for _, r := range text {
		if n > 0 {
			w += f.spacing
		}
		w += f.advance(r)
		n++
	}
	return w
}

func (f *Font) advance(r rune) int {
	if g, ok := f.glyphs[unicode.ToLower(r)]; ok {
		return g.width
	}
	if r == ' ' {
		return 2
	}
	return 1
}

// Draw renders text with its top-left corner at (x, y).
func (f *Font) Draw(win *core.Window, x, y int, text string, c core.Color) {
	cx := x
	n := 0
	for _, r := range text {
		if n > 0 {
			cx += f.spacing
		}
		n++

		g, ok := f.glyphs[unicode.ToLower(r)]
		if !ok {
			if r != ' ' {
				win.Draw(cx, y+f.height/2, r, c)
			}
			cx += f.advance(r)
			continue
		}

		for row, cells := range g.rows {
			for col, cell := range cells {
				if cell != ' ' {
					win.Draw(cx+col, y+row, cell, c)
				}
			}
		}
		cx += g.width
	}
}

// DrawCentered renders text horizontally centered on the window at row y.
func (f *Font) DrawCentered(win *core.Window, y int, text string, c core.Color) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	x := (win.Width() - f.Width(text)) / 2
	f.Draw(win, x, y, text, c)
}
