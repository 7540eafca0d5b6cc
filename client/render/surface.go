package render

import (
	"image/color"

	"github.com/cbodonnell/pong/client/fonts"
	"github.com/cbodonnell/pong/pkg/game"
	"github.com/cbodonnell/pong/pkg/kinematic"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// LineWidth is the stroke width of dashed lines
const LineWidth float32 = 1

// Surface draws court units 1:1 onto an ebiten image.
type Surface struct {
	dst *ebiten.Image
}

var _ game.Surface = &Surface{}

func NewSurface(dst *ebiten.Image) *Surface {
	return &Surface{dst: dst}
}

func (s *Surface) FillRect(x, y, width, height float64, clr color.Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(width), float32(height), clr, false)
}

func (s *Surface) StrokeDashedLine(x0, y0, x1, y1, dash, gap float64, clr color.Color) {
	for _, seg := range kinematic.DashSegments(kinematic.Vector{X: x0, Y: y0}, kinematic.Vector{X: x1, Y: y1}, dash, gap) {
		vector.StrokeLine(s.dst, float32(seg.From.X), float32(seg.From.Y), float32(seg.To.X), float32(seg.To.Y), LineWidth, clr, false)
	}
}

func (s *Surface) FillText(t string, x, y float64, size game.TextSize, clr color.Color) {
	f := faceFor(size)
	bounds, _ := font.BoundString(f, t)
	width := (bounds.Max.X - bounds.Min.X).Ceil()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x-float64(width)/2, y)
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(s.dst, t, f, op)
}

func faceFor(size game.TextSize) font.Face {
	if size == game.TextSizeSmall {
		return fonts.TTFSmallFont
	}
	return fonts.TTFLargeFont
}
