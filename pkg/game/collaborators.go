package game

import (
	"image/color"

	"github.com/cbodonnell/pong/pkg/frames"
	"github.com/cbodonnell/pong/pkg/game/types"
)

// TextSize selects one of the two font sizes a Surface must support.
type TextSize int

const (
	// TextSizeLarge is the 24px headline size
	TextSizeLarge TextSize = iota
	// TextSizeSmall is the 16px hint size
	TextSizeSmall
)

// Surface is the drawing target of a frame, in court units.
type Surface interface {
	FillRect(x, y, width, height float64, clr color.Color)
	StrokeDashedLine(x0, y0, x1, y1, dash, gap float64, clr color.Color)
	// FillText draws text horizontally centered on x with its baseline at y.
	FillText(text string, x, y float64, size TextSize, clr color.Color)
}

// ScoreSink observes score changes.
type ScoreSink interface {
	SetScores(player, opponent int)
}

// StatsSink receives the result of a finished game. Submit must not block.
type StatsSink interface {
	Submit(result types.GameResult)
}

// FrameScheduler arms the next frame callback.
type FrameScheduler interface {
	RequestFrame(callback func()) frames.ID
	CancelFrame(id frames.ID)
}

// RandomSource supplies uniform values in [0, 1).
type RandomSource interface {
	Float64() float64
}

// PaddleTarget yields the latest player paddle top requested by input handlers.
type PaddleTarget interface {
	Set(y float64)
	Take() (float64, bool)
	Clear()
}

type noopScoreSink struct{}

func (noopScoreSink) SetScores(int, int) {}

type noopStatsSink struct{}

func (noopStatsSink) Submit(types.GameResult) {}
