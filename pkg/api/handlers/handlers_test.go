package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mockrepositories "github.com/cbodonnell/pong/mocks/github.com/cbodonnell/pong/pkg/repositories"
	"github.com/cbodonnell/pong/pkg/repositories"
	"github.com/cbodonnell/pong/pkg/repositories/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	published []models.Stats
}

func (p *recordingPublisher) Publish(stats models.Stats) {
	p.published = append(p.published, stats)
}

func TestHandleGetStats(t *testing.T) {
	repo := mockrepositories.NewMockRepository(t)
	repo.EXPECT().GetStats(mock.Anything).Return(&models.Stats{TotalGames: 2, PlayerWins: 1, AIWins: 1, HighestScore: 5}, nil)

	rec := httptest.NewRecorder()
	HandleGetStats(repo)(rec, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"total_games":2,"player_wins":1,"ai_wins":1,"highest_score":5}`, rec.Body.String())
}

func TestHandleGetStats_repositoryError(t *testing.T) {
	repo := mockrepositories.NewMockRepository(t)
	repo.EXPECT().GetStats(mock.Anything).Return(nil, errors.New("database is locked"))

	rec := httptest.NewRecorder()
	HandleGetStats(repo)(rec, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)
}

func TestHandleUpdateStats(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantStats  string
	}{
		{
			name:       "player win",
			body:       `{"result":"player_win","score":5}`,
			wantStatus: http.StatusOK,
			wantStats:  `{"total_games":1,"player_wins":1,"ai_wins":0,"highest_score":5}`,
		},
		{
			name:       "ai win",
			body:       `{"result":"ai_win","score":5}`,
			wantStatus: http.StatusOK,
			wantStats:  `{"total_games":1,"player_wins":0,"ai_wins":1,"highest_score":5}`,
		},
		{
			name:       "unknown result counts the game only",
			body:       `{"result":"draw"}`,
			wantStatus: http.StatusOK,
			wantStats:  `{"total_games":1,"player_wins":0,"ai_wins":0,"highest_score":0}`,
		},
		{
			name:       "non-string result counts the game",
			body:       `{"result":7}`,
			wantStatus: http.StatusOK,
			wantStats:  `{"total_games":1,"player_wins":0,"ai_wins":0,"highest_score":0}`,
		},
		{
			name:       "score without result",
			body:       `{"score":12}`,
			wantStatus: http.StatusOK,
			wantStats:  `{"total_games":0,"player_wins":0,"ai_wins":0,"highest_score":12}`,
		},
		{
			name:       "fractional score ignored",
			body:       `{"result":"player_win","score":5.5}`,
			wantStatus: http.StatusOK,
			wantStats:  `{"total_games":1,"player_wins":1,"ai_wins":0,"highest_score":0}`,
		},
		{
			name:       "string score ignored",
			body:       `{"result":"player_win","score":"5"}`,
			wantStatus: http.StatusOK,
			wantStats:  `{"total_games":1,"player_wins":1,"ai_wins":0,"highest_score":0}`,
		},
		{
			name:       "empty object",
			body:       `{}`,
			wantStatus: http.StatusOK,
			wantStats:  `{"total_games":0,"player_wins":0,"ai_wins":0,"highest_score":0}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repositories.NewInMemoryRepository()
			publisher := &recordingPublisher{}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/stats", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			HandleUpdateStats(repo, publisher)(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, `{"message":"Stats updated!","stats":`+tt.wantStats+`}`, rec.Body.String())
			require.Len(t, publisher.published, 1)
		})
	}
}

func TestHandleUpdateStats_noJSONData(t *testing.T) {
	for _, body := range []string{"", "null", "not json", `[1,2]`, `"player_win"`} {
		t.Run(body, func(t *testing.T) {
			repo := mockrepositories.NewMockRepository(t)
			publisher := &recordingPublisher{}

			rec := httptest.NewRecorder()
			HandleUpdateStats(repo, publisher)(rec, httptest.NewRequest(http.MethodPost, "/api/stats", strings.NewReader(body)))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"No JSON data provided"}`, rec.Body.String())
			assert.Empty(t, publisher.published)
		})
	}
}

func TestHandleUpdateStats_recordsGame(t *testing.T) {
	repo := mockrepositories.NewMockRepository(t)
	repo.EXPECT().
		RecordResult(mock.Anything, mock.MatchedBy(func(record models.GameRecord) bool {
			return record.ID != uuid.Nil &&
				record.Result != nil && *record.Result == "ai_win" &&
				record.Score != nil && *record.Score == 5 &&
				!record.CreatedAt.IsZero()
		})).
		Return(&models.Stats{TotalGames: 1, AIWins: 1, HighestScore: 5}, nil)

	rec := httptest.NewRecorder()
	HandleUpdateStats(repo, nil)(rec, httptest.NewRequest(http.MethodPost, "/api/stats", strings.NewReader(`{"result":"ai_win","score":5}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleUpdateStats_repositoryError(t *testing.T) {
	repo := mockrepositories.NewMockRepository(t)
	repo.EXPECT().RecordResult(mock.Anything, mock.Anything).Return(nil, errors.New("disk full"))
	publisher := &recordingPublisher{}

	rec := httptest.NewRecorder()
	HandleUpdateStats(repo, publisher)(rec, httptest.NewRequest(http.MethodPost, "/api/stats", strings.NewReader(`{"result":"player_win"}`)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)
	assert.Empty(t, publisher.published)
}

func TestHandlePreflight(t *testing.T) {
	rec := httptest.NewRecorder()
	HandlePreflight(rec, httptest.NewRequest(http.MethodOptions, "/api/stats", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
