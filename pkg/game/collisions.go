package game

import (
	"math"

	"github.com/cbodonnell/pong/pkg/game/constants"
	"github.com/cbodonnell/pong/pkg/kinematic"
)

// moveOpponent steps the opponent paddle toward the ball unless its center
// is already within the dead zone.
func (s *Session) moveOpponent() {
	center := s.state.OpponentY + s.cfg.PaddleHeight/2
	step := s.cfg.PaddleSpeed * constants.OpponentSpeedFactor
	if center < s.state.Ball.Y-constants.OpponentDeadZone {
		s.state.OpponentY += step
	} else if center > s.state.Ball.Y+constants.OpponentDeadZone {
		s.state.OpponentY -= step
	}
	s.state.OpponentY = kinematic.Clamp(s.state.OpponentY, 0, s.cfg.MaxPaddleY())
}

// bounceOffWalls reflects the vertical velocity when the ball reaches the top or bottom.
func (s *Session) bounceOffWalls() {
	if s.state.Ball.Y <= 0 || s.state.Ball.Y >= s.cfg.SurfaceHeight-s.cfg.BallSize {
		s.state.Velocity.Y = -s.state.Velocity.Y
	}
}

// bounceOffPlayer sends the ball back toward the opponent when it reaches the player paddle.
func (s *Session) bounceOffPlayer() {
	if s.state.Ball.X > s.cfg.PaddleWidth || !s.withinPaddle(s.state.PlayerY) {
		return
	}
	velocity := s.deflect(s.state.PlayerY)
	velocity.X = math.Abs(velocity.X)
	s.state.Velocity = velocity
	s.state.Ball.X = s.cfg.PaddleWidth
}

// bounceOffOpponent sends the ball back toward the player when it reaches the opponent paddle.
func (s *Session) bounceOffOpponent() {
	edge := s.cfg.SurfaceWidth - s.cfg.PaddleWidth - s.cfg.BallSize
	if s.state.Ball.X < edge || !s.withinPaddle(s.state.OpponentY) {
		return
	}
	velocity := s.deflect(s.state.OpponentY)
	velocity.X = -math.Abs(velocity.X)
	s.state.Velocity = velocity
	s.state.Ball.X = edge
}

func (s *Session) withinPaddle(paddleY float64) bool {
	return s.state.Ball.Y >= paddleY && s.state.Ball.Y <= paddleY+s.cfg.PaddleHeight
}

// deflect returns the post-contact velocity: the angle follows where the ball
// struck the paddle and the speed grows by BallSpeedup.
func (s *Session) deflect(paddleY float64) kinematic.Vector {
	hit := kinematic.HitPosition(s.state.Ball.Y, paddleY, s.cfg.PaddleHeight)
	angle := kinematic.BounceAngle(hit)
	speed := s.state.Velocity.Magnitude() * constants.BallSpeedup
	return kinematic.FromAngle(angle, speed)
}
