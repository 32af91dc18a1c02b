package main

import (
	"math"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/critter/constants"
	"github.com/lixenwraith/critter/critter"
	"github.com/lixenwraith/critter/facing"
	"github.com/lixenwraith/critter/vmath"
)

// statusRows are reserved above the playfield
const statusRows = 1

// viewport maps pixel space onto terminal cells
type viewport struct {
	cols, rows int
}

// playfield returns the pixel size covered by the cells below the status line
func (v viewport) playfield() critter.Screen {
	rows := v.rows - statusRows
	if rows < 1 {
		rows = 1
	}
	cols := v.cols
	if cols < 1 {
		cols = 1
	}
	return critter.Screen{Width: float64(cols) * constants.CellWidthPx, Height: float64(rows) * constants.CellHeightPx}
}

// toCell returns the cell containing p
func (v viewport) toCell(p vmath.Point) (col, row int) {
	return int(math.Floor(p[0] / constants.CellWidthPx)), int(math.Floor(p[1]/constants.CellHeightPx)) + statusRows
}

// toPixel returns the pixel center of a cell, ok is false on the status line
func (v viewport) toPixel(col, row int) (vmath.Point, bool) {
	if row < statusRows || col < 0 || col >= v.cols || row >= v.rows {
		return vmath.Point{}, false
	}
	return vmath.Pt((float64(col)+0.5)*constants.CellWidthPx, (float64(row-statusRows)+0.5)*constants.CellHeightPx), true
}

func (v viewport) inside(col, row int) bool {
	return col >= 0 && col < v.cols && row >= statusRows && row < v.rows
}

// assetRune decodes a twemoji hex code, multi-codepoint codes keep the first
func assetRune(c facing.AssetCode) rune {
	s := string(c.Normalize())
	for i := 0; i < len(s); i++ {
		if s[i] == '-' {
			s = s[:i]
			break
		}
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil || n == 0 || n > 0x10ffff {
		return '●'
	}
	return rune(n)
}

// fade scales a color toward black by opacity
func fade(r, g, b int32, opacity float64) tcell.Color {
	o := vmath.Clamp(opacity, 0, 1)
	return tcell.NewRGBColor(int32(float64(r)*o), int32(float64(g)*o), int32(float64(b)*o))
}

// drawSprite shades the scaled footprint and places the glyph at its center
func drawSprite(s tcell.Screen, v viewport, tr critter.Transform, size float64, glyph rune) {
	if !tr.Visible || tr.Scale <= 0 || tr.Opacity <= 0 {
		return
	}
	half := size * tr.Scale / 2
	cx, cy := tr.X+size/2, tr.Y+size/2

	c0, r0 := v.toCell(vmath.Pt(cx-half, cy-half))
	c1, r1 := v.toCell(vmath.Pt(cx+half, cy+half))
	shade := tcell.StyleDefault.Background(fade(40, 44, 60, tr.Opacity))
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if v.inside(col, row) {
				s.SetContent(col, row, ' ', nil, shade)
			}
		}
	}

	col, row := v.toCell(vmath.Pt(cx, cy))
	if v.inside(col, row) {
		s.SetContent(col, row, glyph, nil, shade.Foreground(fade(255, 255, 255, tr.Opacity)))
	}
}

var boxFrames = [critter.BoxStyles][6]rune{
	{'┌', '┐', '└', '┘', '─', '│'},
	{'╔', '╗', '╚', '╝', '═', '║'},
	{'╭', '╮', '╰', '╯', '─', '│'},
}

// drawBox outlines the box dash launcher
func drawBox(s tcell.Screen, v viewport, b critter.Box, style int) {
	frame := boxFrames[vmath.ClampInt(style, 0, critter.BoxStyles-1)]
	c0, r0 := v.toCell(vmath.Pt(b.X, b.Y))
	c1, r1 := v.toCell(vmath.Pt(b.X+b.Size, b.Y+b.Size))
	st := tcell.StyleDefault.Foreground(tcell.ColorOlive)

	put := func(col, row int, r rune) {
		if v.inside(col, row) {
			s.SetContent(col, row, r, nil, st)
		}
	}
	for col := c0 + 1; col < c1; col++ {
		put(col, r0, frame[4])
		put(col, r1, frame[4])
	}
	for row := r0 + 1; row < r1; row++ {
		put(c0, row, frame[5])
		put(c1, row, frame[5])
	}
	put(c0, r0, frame[0])
	put(c1, r0, frame[1])
	put(c0, r1, frame[2])
	put(c1, r1, frame[3])
}

// drawText writes a single line, clipped to the screen width
func drawText(s tcell.Screen, col, row int, text string, st tcell.Style) {
	w, _ := s.Size()
	for _, r := range text {
		if col >= w {
			return
		}
		s.SetContent(col, row, r, nil, st)
		col++
	}
}
