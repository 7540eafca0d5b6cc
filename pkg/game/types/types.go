package types

const (
	CollisionSpaceTagPlayer   string = "player"
	CollisionSpaceTagOpponent string = "opponent"
	CollisionSpaceTagPaddle   string = "paddle"
	CollisionSpaceTagBall     string = "ball"
)

// Winner identifies the side that reached the winning score.
type Winner uint8

const (
	WinnerNone Winner = iota
	WinnerPlayer
	WinnerOpponent
)

func (w Winner) String() string {
	switch w {
	case WinnerNone:
		return "none"
	case WinnerPlayer:
		return "player"
	case WinnerOpponent:
		return "ai"
	}
	return "unknown"
}

// Result is the outcome reported to the stats service.
type Result string

const (
	ResultPlayerWin Result = "player_win"
	ResultAIWin     Result = "ai_win"
)

// Result returns the stats result for the winner.
// It returns an empty Result for WinnerNone.
func (w Winner) Result() Result {
	switch w {
	case WinnerPlayer:
		return ResultPlayerWin
	case WinnerOpponent:
		return ResultAIWin
	}
	return ""
}

// GameResult is the record forwarded to the stats sink when a session ends.
type GameResult struct {
	Result Result `json:"result"`
	Score  int    `json:"score"`
}
