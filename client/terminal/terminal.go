package terminal

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/cbodonnell/pong/pkg/frames"
	"github.com/cbodonnell/pong/pkg/game"
	"github.com/cbodonnell/pong/pkg/game/constants"
	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/cbodonnell/pong/pkg/input"
	"github.com/cbodonnell/pong/pkg/log"
	"github.com/gdamore/tcell/v2"
)

// DefaultTickInterval is roughly one display refresh
const DefaultTickInterval = 16 * time.Millisecond

const helpText = "[s]tart [r]eset [q]uit"

// Terminal runs a session on a tcell screen.
type Terminal struct {
	screen       tcell.Screen
	surface      *Surface
	session      *game.Session
	frames       *frames.Scheduler
	pointer      *input.PointerTracker
	tickInterval time.Duration

	playerScore   int
	opponentScore int
}

type NewTerminalOptions struct {
	// Screen must already be initialized. The caller is responsible for calling Fini.
	Screen       tcell.Screen
	StatsSink    game.StatsSink
	TickInterval time.Duration
}

var _ game.ScoreSink = &Terminal{}

func NewTerminal(opts NewTerminalOptions) *Terminal {
	cfg := types.DefaultConfig()
	scheduler := frames.NewScheduler()

	t := &Terminal{
		screen:       opts.Screen,
		surface:      NewSurface(opts.Screen, cfg.SurfaceWidth, cfg.SurfaceHeight),
		frames:       scheduler,
		pointer:      input.NewPointerTracker(cfg.SurfaceWidth, cfg.SurfaceHeight, cfg.PaddleHeight),
		tickInterval: opts.TickInterval,
	}
	if t.tickInterval <= 0 {
		t.tickInterval = DefaultTickInterval
	}
	t.session = game.NewSession(game.NewSessionOptions{
		Config:    &cfg,
		Frames:    scheduler,
		ScoreSink: t,
		StatsSink: opts.StatsSink,
	})
	return t
}

func (t *Terminal) SetScores(player, opponent int) {
	t.playerScore = player
	t.opponentScore = opponent
}

// Run polls screen events on their own goroutine and drives the session from a ticker
// until the user quits or ctx is done.
func (t *Terminal) Run(ctx context.Context) error {
	t.screen.EnableMouse()
	t.screen.HideCursor()

	events := make(chan tcell.Event, 100)
	go func() {
		defer close(events)
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				// screen finalized
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(t.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if quit := t.handleEvent(ev); quit {
				return nil
			}
		case <-ticker.C:
			t.frames.Tick()
			t.draw()
		}
	}
}

func (t *Terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		col, row := ev.Position()
		t.handleMouse(col, row)
	case *tcell.EventResize:
		t.surface.Resize()
		t.screen.Sync()
	}
	return false
}

func (t *Terminal) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		switch r {
		case 'q':
			return true
		case 's', ' ':
			log.Debug("Starting game")
			t.session.Start()
		case 'r':
			log.Debug("Resetting game")
			t.session.Reset()
		}
	}
	return false
}

func (t *Terminal) handleMouse(col, row int) {
	x, y, ok := t.surface.ToCourt(col, row)
	if !ok {
		return
	}
	if paddleY, ok := t.pointer.Observe(x, y); ok {
		t.session.SetPlayerTarget(paddleY)
	}
}

func (t *Terminal) draw() {
	t.screen.Clear()
	t.drawHeader()
	t.session.Draw(t.surface)
	t.screen.Show()
}

func (t *Terminal) drawHeader() {
	cols, _ := t.screen.Size()
	col := 0
	col = t.drawString(col, fmt.Sprintf("Player: %d", t.playerScore), constants.PlayerColor)
	col = t.drawString(col+2, fmt.Sprintf("Computer: %d", t.opponentScore), constants.OpponentColor)
	t.drawString(max(col+2, cols-len(helpText)), helpText, constants.TextColor)
}

func (t *Terminal) drawString(col int, s string, clr color.Color) int {
	style := tcell.StyleDefault.Foreground(toColor(clr))
	for _, r := range s {
		t.screen.SetContent(col, 0, r, nil, style)
		col++
	}
	return col
}
