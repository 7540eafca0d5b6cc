package game

import (
	"fmt"
	"strings"

	"github.com/cbodonnell/pong/client/input"
	"github.com/cbodonnell/pong/client/render"
	"github.com/cbodonnell/pong/client/ui"
	"github.com/cbodonnell/pong/pkg/frames"
	"github.com/cbodonnell/pong/pkg/game"
	"github.com/cbodonnell/pong/pkg/game/types"
	pointer "github.com/cbodonnell/pong/pkg/input"
	"github.com/cbodonnell/pong/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// session is the simulation drawn into the court area.
	session *game.Session
	// frames fires the session's pending frame once per tick.
	frames *frames.Scheduler
	// pointer turns cursor and touch positions into paddle targets.
	pointer *pointer.PointerTracker
	// controls is the bar under the court.
	controls *ui.Controls
	// court is the offscreen image the session draws into.
	court *ebiten.Image
	cfg   types.Config
}

type NewGameOptions struct {
	Debug     bool
	StatsSink game.StatsSink
}

func NewGame(opts NewGameOptions) ebiten.Game {
	cfg := types.DefaultConfig()
	scheduler := frames.NewScheduler()

	g := &Game{
		debug:   opts.Debug,
		frames:  scheduler,
		pointer: pointer.NewPointerTracker(cfg.SurfaceWidth, cfg.SurfaceHeight, cfg.PaddleHeight),
		court:   ebiten.NewImage(int(cfg.SurfaceWidth), int(cfg.SurfaceHeight)),
		cfg:     cfg,
	}
	g.controls = ui.NewControls(ui.NewControlsOptions{
		Top:     int(cfg.SurfaceHeight),
		OnStart: g.start,
		OnReset: g.reset,
	})
	g.session = game.NewSession(game.NewSessionOptions{
		Config:    &cfg,
		Frames:    scheduler,
		ScoreSink: g.controls,
		StatsSink: opts.StatsSink,
	})

	return g
}

func (g *Game) start() {
	log.Debug("Starting game")
	g.session.Start()
}

func (g *Game) reset() {
	log.Debug("Resetting game")
	g.session.Reset()
}

func (g *Game) Update() error {
	if input.IsNegativeJustPressed() {
		return ebiten.Termination
	}

	g.controls.Update()
	g.handleInput()

	g.frames.Tick()

	return nil
}

func (g *Game) handleInput() {
	if input.IsStartJustPressed() {
		g.start()
	}
	if input.IsResetJustPressed() {
		g.reset()
	}

	x, y, touched := input.PointerPosition()
	if paddleY, ok := g.pointer.Observe(x, y); ok {
		g.session.SetPlayerTarget(paddleY)
	}
	if touched && input.IsTouchJustReleased() {
		g.pointer.Forget()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.session.Draw(render.NewSurface(g.court))
	screen.DrawImage(g.court, nil)
	g.controls.Draw(screen)

	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))

	state := g.session.State()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   Ball: (%0.1f, %0.1f) v=(%0.2f, %0.2f)", state.Ball.X, state.Ball.Y, state.Velocity.X, state.Velocity.Y))

	court := g.session.Court()
	space := court.Space()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   Cells: %dx%d of %dpx", space.Width(), space.Height(), space.CellWidth))
	if contacts := court.BallContacts(); len(contacts) > 0 {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n   Near: %s", strings.Join(contacts, ", ")))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return int(g.cfg.SurfaceWidth), int(g.cfg.SurfaceHeight) + ui.BarHeight
}
