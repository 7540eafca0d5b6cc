package game

import (
	"math/rand"
	"time"

	"github.com/cbodonnell/pong/pkg/collisions"
	"github.com/cbodonnell/pong/pkg/frames"
	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/cbodonnell/pong/pkg/input"
	"github.com/cbodonnell/pong/pkg/kinematic"
	"github.com/cbodonnell/pong/pkg/log"
)

// Session owns the state of one game and advances it one frame at a time.
// All methods except SetPlayerTarget must be called from the display loop goroutine.
type Session struct {
	cfg     types.Config
	state   types.SessionState
	court   *collisions.Court
	target  PaddleTarget
	scores  ScoreSink
	stats   StatsSink
	frames  FrameScheduler
	random  RandomSource
	frameID frames.ID
}

// NewSessionOptions contains options for creating a new Session.
// Every collaborator left nil falls back to a default.
type NewSessionOptions struct {
	Config    *types.Config
	Frames    FrameScheduler
	Target    PaddleTarget
	ScoreSink ScoreSink
	StatsSink StatsSink
	Random    RandomSource
}

func NewSession(opts NewSessionOptions) *Session {
	cfg := types.DefaultConfig()
	if opts.Config != nil {
		cfg = *opts.Config
	}

	s := &Session{
		cfg:    cfg,
		state:  types.NewSessionState(cfg),
		court:  collisions.NewCourt(cfg),
		target: opts.Target,
		scores: opts.ScoreSink,
		stats:  opts.StatsSink,
		frames: opts.Frames,
		random: opts.Random,
	}
	if s.target == nil {
		s.target = input.NewTarget()
	}
	if s.scores == nil {
		s.scores = noopScoreSink{}
	}
	if s.stats == nil {
		s.stats = noopStatsSink{}
	}
	if s.frames == nil {
		s.frames = frames.NewScheduler()
	}
	if s.random == nil {
		s.random = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s
}

// Config returns the session geometry.
func (s *Session) Config() types.Config {
	return s.cfg
}

// State returns a copy of the session record.
func (s *Session) State() types.SessionState {
	return s.state
}

// Court returns the court mirroring the session bodies.
func (s *Session) Court() *collisions.Court {
	return s.court
}

// SetPlayerTarget records the latest requested top edge of the player paddle.
// It is safe to call from input goroutines; the next frame applies it.
func (s *Session) SetPlayerTarget(y float64) {
	s.target.Set(y)
}

// Start begins the game. It is a no-op while the game is running.
func (s *Session) Start() {
	if s.state.Running {
		return
	}
	log.Debug("Starting session at %d-%d", s.state.PlayerScore, s.state.OpponentScore)
	s.target.Clear()
	s.state.Running = true
	s.Frame()
}

// Reset cancels the pending frame and restores the initial record.
func (s *Session) Reset() {
	s.cancelFrame()
	s.target.Clear()
	s.state = types.NewSessionState(s.cfg)
	s.scores.SetScores(s.state.PlayerScore, s.state.OpponentScore)
	s.court.Sync(s.state)
	log.Debug("Session reset")
}

// Frame is the scheduled callback: it advances one frame and re-arms itself while running.
func (s *Session) Frame() {
	s.frameID = 0
	if !s.state.Running {
		return
	}
	s.Update()
	if s.state.Running {
		s.frameID = s.frames.RequestFrame(s.Frame)
	}
}

// Update advances the simulation by one frame.
// Velocities are per frame, so game speed follows the frame rate.
func (s *Session) Update() {
	s.applyPlayerTarget()

	s.state.Ball = s.state.Ball.Add(s.state.Velocity)

	s.moveOpponent()
	s.bounceOffWalls()
	s.bounceOffPlayer()
	s.bounceOffOpponent()
	s.checkScore()

	s.court.Sync(s.state)
}

func (s *Session) applyPlayerTarget() {
	y, ok := s.target.Take()
	if !ok {
		return
	}
	s.state.PlayerY = kinematic.Clamp(y, 0, s.cfg.MaxPaddleY())
}

// checkScore awards a point when the ball leaves the court on either side.
func (s *Session) checkScore() {
	switch {
	case s.state.Ball.X < 0:
		s.state.OpponentScore++
		s.scores.SetScores(s.state.PlayerScore, s.state.OpponentScore)
		log.Debug("Opponent scored: %d-%d", s.state.PlayerScore, s.state.OpponentScore)
		if s.state.OpponentScore >= s.cfg.WinningScore {
			s.endGame(types.WinnerOpponent)
			return
		}
		s.serve()
	case s.state.Ball.X > s.cfg.SurfaceWidth:
		s.state.PlayerScore++
		s.scores.SetScores(s.state.PlayerScore, s.state.OpponentScore)
		log.Debug("Player scored: %d-%d", s.state.PlayerScore, s.state.OpponentScore)
		if s.state.PlayerScore >= s.cfg.WinningScore {
			s.endGame(types.WinnerPlayer)
			return
		}
		s.serve()
	}
}

// serve puts the ball back at the center with a random direction.
func (s *Session) serve() {
	s.state.Ball = kinematic.Vector{
		X: s.cfg.SurfaceWidth / 2,
		Y: s.cfg.SurfaceHeight / 2,
	}

	direction := -1.0
	if s.random.Float64() > 0.5 {
		direction = 1.0
	}
	s.state.Velocity = kinematic.Vector{
		X: s.cfg.InitialBallSpeed * direction,
		Y: s.cfg.InitialBallSpeed * (s.random.Float64()*2 - 1),
	}
}

// endGame stops the loop and hands the result to the stats sink.
func (s *Session) endGame(winner types.Winner) {
	s.state.Running = false
	s.state.Winner = winner
	s.cancelFrame()

	result := types.GameResult{
		Result: winner.Result(),
		Score:  s.state.HighestScore(),
	}
	log.Info("Game over: %s wins %d-%d", winner, s.state.PlayerScore, s.state.OpponentScore)
	s.stats.Submit(result)
}

func (s *Session) cancelFrame() {
	if s.frameID == 0 {
		return
	}
	s.frames.CancelFrame(s.frameID)
	s.frameID = 0
}
