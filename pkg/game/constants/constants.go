package constants

import "image/color"

const (

	// SurfaceWidth is the width of the court
	SurfaceWidth float64 = 800.0
	// SurfaceHeight is the height of the court
	SurfaceHeight float64 = 400.0

	// PaddleWidth is the width of both paddles
	PaddleWidth float64 = 15.0
	// PaddleHeight is the height of both paddles
	PaddleHeight float64 = 100.0
	// PaddleSpeed is the distance a paddle moves per frame
	PaddleSpeed float64 = 8.0

	// OpponentSpeedFactor scales PaddleSpeed for the opponent so it is slightly slower than the player
	OpponentSpeedFactor float64 = 0.7
	// OpponentDeadZone is how far the opponent paddle center may drift from the ball before it moves
	OpponentDeadZone float64 = 15.0

	// BallSize is the side of the square ball
	BallSize float64 = 15.0
	// InitialBallSpeed is the horizontal speed of a fresh serve, per frame
	InitialBallSpeed float64 = 5.0
	// BallSpeedup is applied to the ball speed on every paddle contact
	BallSpeedup float64 = 1.05

	// WinningScore ends the game as soon as either side reaches it
	WinningScore int = 5

	// CenterLineDash is the length of a center line dash
	CenterLineDash float64 = 10.0
	// CenterLineGap is the space between center line dashes
	CenterLineGap float64 = 15.0

	// OverlayWidth is the width of the win overlay box
	OverlayWidth float64 = 300.0
	// OverlayHeight is the height of the win overlay box
	OverlayHeight float64 = 100.0

	// PlayerWinMessage is shown when the player wins
	PlayerWinMessage = "You Win!"
	// OpponentWinMessage is shown when the opponent wins
	OpponentWinMessage = "Computer Wins!"
	// ResetHintMessage is shown under the win message
	ResetHintMessage = "Click Reset to play again"
)

var (
	BackgroundColor = color.RGBA{0x1a, 0x25, 0x30, 0xff}
	// CenterLineColor is white at 20% opacity, premultiplied
	CenterLineColor = color.RGBA{0x33, 0x33, 0x33, 0x33}
	PlayerColor     = color.RGBA{0x34, 0x98, 0xdb, 0xff}
	OpponentColor   = color.RGBA{0xe7, 0x4c, 0x3c, 0xff}
	BallColor       = color.RGBA{0xff, 0xff, 0xff, 0xff}
	// OverlayColor is black at 70% opacity, premultiplied
	OverlayColor = color.RGBA{0x00, 0x00, 0x00, 0xb3}
	TextColor    = color.RGBA{0xff, 0xff, 0xff, 0xff}
)
