package terminal

import (
	"image/color"
	"math"

	"github.com/cbodonnell/pong/pkg/game"
	"github.com/cbodonnell/pong/pkg/kinematic"
	"github.com/gdamore/tcell/v2"
)

// HeaderRows is the number of rows above the court
const HeaderRows = 1

// CellWriter is the part of tcell.Screen a Surface draws through.
type CellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// Surface scales court units onto the cells below the header.
// Text keeps the background of the cells it is written over.
type Surface struct {
	cells  CellWriter
	width  float64
	height float64

	cols int
	rows int
	bg   []tcell.Color
}

var _ game.Surface = &Surface{}

// NewSurface creates a surface for a court of the given size. Call Resize before drawing.
func NewSurface(cells CellWriter, width, height float64) *Surface {
	s := &Surface{
		cells:  cells,
		width:  width,
		height: height,
	}
	s.Resize()
	return s
}

// Resize picks up the current size of the screen.
func (s *Surface) Resize() {
	cols, rows := s.cells.Size()
	s.cols = cols
	s.rows = rows - HeaderRows
	if s.rows < 0 {
		s.rows = 0
	}
	s.bg = make([]tcell.Color, s.cols*s.rows)
}

// ToCourt maps a screen cell to the court position at its center.
// ok is false for cells outside the court.
func (s *Surface) ToCourt(col, row int) (x, y float64, ok bool) {
	row -= HeaderRows
	if col < 0 || col >= s.cols || row < 0 || row >= s.rows {
		return 0, 0, false
	}
	x = (float64(col) + 0.5) * s.width / float64(s.cols)
	y = (float64(row) + 0.5) * s.height / float64(s.rows)
	return x, y, true
}

func (s *Surface) FillRect(x, y, width, height float64, clr color.Color) {
	c := toColor(clr)
	col0, col1 := s.span(x, width, s.width, s.cols)
	row0, row1 := s.span(y, height, s.height, s.rows)
	for row := row0; row < row1; row++ {
		for col := col0; col < col1; col++ {
			s.bg[row*s.cols+col] = c
			s.cells.SetContent(col, row+HeaderRows, ' ', nil, tcell.StyleDefault.Background(c))
		}
	}
}

func (s *Surface) StrokeDashedLine(x0, y0, x1, y1, dash, gap float64, clr color.Color) {
	c := toColor(clr)
	for _, seg := range kinematic.DashSegments(kinematic.Vector{X: x0, Y: y0}, kinematic.Vector{X: x1, Y: y1}, dash, gap) {
		// a dash covers every cell its endpoints fall in
		fromCol, fromRow := s.cell(seg.From)
		toCol, toRow := s.cell(seg.To)
		for row := min(fromRow, toRow); row <= max(fromRow, toRow); row++ {
			for col := min(fromCol, toCol); col <= max(fromCol, toCol); col++ {
				s.setRune(col, row, '│', c)
			}
		}
	}
}

func (s *Surface) FillText(text string, x, y float64, size game.TextSize, clr color.Color) {
	c := toColor(clr)
	runes := []rune(text)
	col, row := s.cell(kinematic.Vector{X: x, Y: y})
	// y is the baseline, so the text sits in the row above it
	if row > 0 {
		row--
	}
	start := col - len(runes)/2
	for i, r := range runes {
		s.setRune(start+i, row, r, c)
	}
}

func (s *Surface) setRune(col, row int, r rune, fg tcell.Color) {
	if col < 0 || col >= s.cols || row < 0 || row >= s.rows {
		return
	}
	style := tcell.StyleDefault.Foreground(fg).Background(s.bg[row*s.cols+col])
	s.cells.SetContent(col, row+HeaderRows, r, nil, style)
}

// cell returns the cell containing the court point p, clamped to the court.
func (s *Surface) cell(p kinematic.Vector) (col, row int) {
	col = int(math.Floor(p.X * float64(s.cols) / s.width))
	row = int(math.Floor(p.Y * float64(s.rows) / s.height))
	return clampInt(col, 0, s.cols-1), clampInt(row, 0, s.rows-1)
}

// span returns the half-open cell range covered by [start, start+length) on an axis of the given size.
// Anything visible covers at least one cell.
func (s *Surface) span(start, length, size float64, cells int) (int, int) {
	scale := float64(cells) / size
	from := clampInt(int(math.Floor(start*scale)), 0, cells)
	to := clampInt(int(math.Ceil((start+length)*scale)), 0, cells)
	if to <= from && from < cells && start+length > 0 {
		to = from + 1
	}
	return from, to
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// toColor drops alpha. Translucent colors come out as if drawn over black.
func toColor(clr color.Color) tcell.Color {
	r, g, b, _ := clr.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
