package models

import (
	"time"

	"github.com/google/uuid"
)

// Stats is the aggregate over every recorded game.
type Stats struct {
	TotalGames   int64 `json:"total_games"`
	PlayerWins   int64 `json:"player_wins"`
	AIWins       int64 `json:"ai_wins"`
	HighestScore int64 `json:"highest_score"`
}

// GameRecord is one accepted stats submission.
// A nil Result means the submission carried no result and does not count as a game.
// A nil Score means it carried no usable score.
type GameRecord struct {
	ID        uuid.UUID `json:"id"`
	Result    *string   `json:"result,omitempty"`
	Score     *int64    `json:"score,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
