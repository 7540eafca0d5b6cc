package types

import "github.com/cbodonnell/pong/pkg/game/constants"

// Config holds the fixed geometry and tuning of a session.
type Config struct {
	PaddleWidth      float64
	PaddleHeight     float64
	BallSize         float64
	PaddleSpeed      float64
	InitialBallSpeed float64
	WinningScore     int
	SurfaceWidth     float64
	SurfaceHeight    float64
}

// DefaultConfig returns the standard court.
func DefaultConfig() Config {
	return Config{
		PaddleWidth:      constants.PaddleWidth,
		PaddleHeight:     constants.PaddleHeight,
		BallSize:         constants.BallSize,
		PaddleSpeed:      constants.PaddleSpeed,
		InitialBallSpeed: constants.InitialBallSpeed,
		WinningScore:     constants.WinningScore,
		SurfaceWidth:     constants.SurfaceWidth,
		SurfaceHeight:    constants.SurfaceHeight,
	}
}

// MaxPaddleY is the lowest top edge a paddle may have.
func (c Config) MaxPaddleY() float64 {
	return c.SurfaceHeight - c.PaddleHeight
}

// OpponentX is the left edge of the opponent paddle.
func (c Config) OpponentX() float64 {
	return c.SurfaceWidth - c.PaddleWidth
}
