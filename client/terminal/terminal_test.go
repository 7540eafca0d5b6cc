package terminal

import (
	"testing"

	"github.com/cbodonnell/pong/pkg/frames"
	"github.com/cbodonnell/pong/pkg/game"
	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/cbodonnell/pong/pkg/input"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

// newTestTerminal builds a Terminal without a screen, enough for key and mouse handling.
func newTestTerminal(cols, rows int) *Terminal {
	cfg := types.DefaultConfig()
	t := &Terminal{
		surface: NewSurface(newFakeCells(cols, rows), cfg.SurfaceWidth, cfg.SurfaceHeight),
		frames:  frames.NewScheduler(),
		pointer: input.NewPointerTracker(cfg.SurfaceWidth, cfg.SurfaceHeight, cfg.PaddleHeight),
	}
	t.session = game.NewSession(game.NewSessionOptions{
		Config:    &cfg,
		Frames:    t.frames,
		ScoreSink: t,
	})
	return t
}

func TestTerminal_handleKey(t *testing.T) {
	term := newTestTerminal(80, 41)

	assert.False(t, term.handleKey(tcell.KeyRune, 's'))
	assert.True(t, term.session.State().Running)
	assert.True(t, term.frames.Pending())

	assert.False(t, term.handleKey(tcell.KeyRune, 'r'))
	assert.False(t, term.session.State().Running)
	assert.False(t, term.frames.Pending())

	assert.False(t, term.handleKey(tcell.KeyRune, 'x'))
	assert.True(t, term.handleKey(tcell.KeyRune, 'q'))
	assert.True(t, term.handleKey(tcell.KeyEscape, 0))
	assert.True(t, term.handleKey(tcell.KeyCtrlC, 0))
}

func TestTerminal_handleMouse(t *testing.T) {
	term := newTestTerminal(80, 41)
	term.handleKey(tcell.KeyRune, 's')

	// court row 29 is centered on y 295, so the paddle top is 245
	term.handleMouse(10, 29+HeaderRows)
	term.frames.Tick()
	assert.Equal(t, 245.0, term.session.State().PlayerY)

	// header clicks are ignored
	term.handleMouse(10, 0)
	term.frames.Tick()
	assert.Equal(t, 245.0, term.session.State().PlayerY)
}

func TestTerminal_SetScores(t *testing.T) {
	term := newTestTerminal(80, 41)
	term.SetScores(3, 4)
	assert.Equal(t, 3, term.playerScore)
	assert.Equal(t, 4, term.opponentScore)
}
