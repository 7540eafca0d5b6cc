package terminal

import (
	"image/color"
	"testing"

	"github.com/cbodonnell/pong/pkg/game"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

type cell struct {
	r     rune
	style tcell.Style
}

type fakeCells struct {
	cols, rows int
	cells      map[[2]int]cell
}

func newFakeCells(cols, rows int) *fakeCells {
	return &fakeCells{cols: cols, rows: rows, cells: make(map[[2]int]cell)}
}

func (f *fakeCells) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	f.cells[[2]int{x, y}] = cell{r: primary, style: style}
}

func (f *fakeCells) Size() (int, int) {
	return f.cols, f.rows
}

func (f *fakeCells) background(x, y int) tcell.Color {
	_, bg, _ := f.cells[[2]int{x, y}].style.Decompose()
	return bg
}

func (f *fakeCells) row(y int) string {
	out := make([]rune, f.cols)
	for x := range out {
		c, ok := f.cells[[2]int{x, y}]
		if !ok {
			out[x] = '.'
			continue
		}
		out[x] = c.r
	}
	return string(out)
}

var red = color.RGBA{0xff, 0, 0, 0xff}

func TestSurface_FillRect(t *testing.T) {
	// 80x41 screen: one header row and a 80x40 court, so each cell is 10x10 court units
	cells := newFakeCells(80, 41)
	s := NewSurface(cells, 800, 400)

	s.FillRect(0, 150, 15, 100, red)

	want := tcell.NewRGBColor(0xff, 0, 0)
	// x 0..15 covers columns 0 and 1, y 150..250 covers court rows 15..24
	assert.Equal(t, want, cells.background(0, 16))
	assert.Equal(t, want, cells.background(1, 25))
	assert.NotEqual(t, want, cells.background(2, 16))
	assert.NotEqual(t, want, cells.background(0, 26))
	// the header row is untouched
	_, ok := cells.cells[[2]int{0, 0}]
	assert.False(t, ok)
}

func TestSurface_FillRectTinyStillVisible(t *testing.T) {
	cells := newFakeCells(8, 5)
	s := NewSurface(cells, 800, 400)

	s.FillRect(395, 195, 5, 5, red)

	assert.Len(t, cells.cells, 1)
}

func TestSurface_StrokeDashedLine(t *testing.T) {
	cells := newFakeCells(3, 11)
	s := NewSurface(cells, 30, 100)

	s.StrokeDashedLine(15, 0, 15, 100, 10, 15, red)

	// court rows of 10 units: dashes at 0-10, 25-35, 50-60, 75-85
	var marked []int
	for row := 1; row <= 10; row++ {
		if []rune(cells.row(row))[1] != '.' {
			marked = append(marked, row-HeaderRows)
		}
	}
	assert.Equal(t, []int{0, 1, 2, 3, 5, 6, 7, 8}, marked)
}

func TestSurface_FillText(t *testing.T) {
	cells := newFakeCells(20, 11)
	s := NewSurface(cells, 200, 100)

	s.FillRect(0, 0, 200, 100, color.Black)
	s.FillText("Win!", 100, 50, game.TextSizeLarge, red)

	// baseline at court row 5, text in row 4, centered on column 10
	assert.Equal(t, "        Win!        ", cells.row(4+HeaderRows)[:20])
	_, bg, _ := cells.cells[[2]int{8, 4 + HeaderRows}].style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(0, 0, 0), bg)
}

func TestSurface_ToCourt(t *testing.T) {
	cells := newFakeCells(80, 41)
	s := NewSurface(cells, 800, 400)

	x, y, ok := s.ToCourt(0, HeaderRows)
	assert.True(t, ok)
	assert.Equal(t, 5.0, x)
	assert.Equal(t, 5.0, y)

	_, _, ok = s.ToCourt(10, 0)
	assert.False(t, ok)
	_, _, ok = s.ToCourt(80, 10)
	assert.False(t, ok)
}

func TestToColor(t *testing.T) {
	assert.Equal(t, tcell.NewRGBColor(0x34, 0x98, 0xdb), toColor(color.RGBA{0x34, 0x98, 0xdb, 0xff}))
	// premultiplied translucent black stays black
	assert.Equal(t, tcell.NewRGBColor(0, 0, 0), toColor(color.RGBA{0, 0, 0, 0xb3}))
}
