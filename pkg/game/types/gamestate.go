package types

import "github.com/cbodonnell/pong/pkg/kinematic"

// SessionState is the mutable record of a single game session.
// It is owned by the session loop.
type SessionState struct {
	// PlayerY is the top edge of the player paddle
	PlayerY float64
	// OpponentY is the top edge of the opponent paddle
	OpponentY float64
	// Ball is the top-left corner of the ball
	Ball kinematic.Vector
	// Velocity is the ball displacement per frame
	Velocity      kinematic.Vector
	PlayerScore   int
	OpponentScore int
	// Running gates whether frames advance the state
	Running bool
	// Winner is set when a score reaches the winning threshold
	Winner Winner
}

// NewSessionState returns the initial record for the given config:
// centered paddles, centered ball moving toward the opponent, no score.
func NewSessionState(cfg Config) SessionState {
	return SessionState{
		PlayerY:   cfg.SurfaceHeight/2 - cfg.PaddleHeight/2,
		OpponentY: cfg.SurfaceHeight/2 - cfg.PaddleHeight/2,
		Ball: kinematic.Vector{
			X: cfg.SurfaceWidth / 2,
			Y: cfg.SurfaceHeight / 2,
		},
		Velocity: kinematic.Vector{
			X: cfg.InitialBallSpeed,
			Y: 0,
		},
	}
}

// HighestScore returns the larger of the two scores.
func (s SessionState) HighestScore() int {
	if s.PlayerScore > s.OpponentScore {
		return s.PlayerScore
	}
	return s.OpponentScore
}
