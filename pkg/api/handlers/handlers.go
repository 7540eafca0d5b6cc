package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/cbodonnell/pong/pkg/log"
	"github.com/cbodonnell/pong/pkg/repositories"
	"github.com/cbodonnell/pong/pkg/repositories/models"
	"github.com/google/uuid"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

// MaxBodyBytes caps the size of a stats update
const MaxBodyBytes = 1 << 16

// StreamWriteTimeout bounds a single stats frame on the stream
const StreamWriteTimeout = 5 * time.Second

type StatsPublisher interface {
	Publish(stats models.Stats)
}

type StatsSubscriber interface {
	Subscribe() (<-chan models.Stats, func())
}

type UpdateStatsResponse struct {
	Message string        `json:"message"`
	Stats   *models.Stats `json:"stats"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func HandleGetStats(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := repository.GetStats(r.Context())
		if err != nil {
			log.Error("failed to get stats: %v", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Failed to get stats"})
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}

// HandleUpdateStats records a game. A "result" key counts the game and an integer "score" can raise the highest score.
func HandleUpdateStats(repository repositories.Repository, publisher StatsPublisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
		if err != nil {
			log.Error("failed to read request body: %v", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Failed to read request body"})
			return
		}

		var data map[string]json.RawMessage
		if err := json.Unmarshal(body, &data); err != nil || data == nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "No JSON data provided"})
			return
		}

		record := models.GameRecord{
			ID:        uuid.New(),
			Result:    parseResult(data),
			Score:     parseScore(data),
			CreatedAt: time.Now().UTC(),
		}

		stats, err := repository.RecordResult(r.Context(), record)
		if err != nil {
			log.Error("failed to record game %s: %v", record.ID, err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Failed to record game"})
			return
		}

		if publisher != nil {
			publisher.Publish(*stats)
		}

		log.Debug("Recorded game %s", record.ID)
		writeJSON(w, http.StatusOK, UpdateStatsResponse{Message: "Stats updated!", Stats: stats})
	}
}

func HandlePreflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// HandleStatsStream sends the current stats over a websocket, then every update until the client goes away.
func HandleStatsStream(repository repositories.Repository, subscriber StatsSubscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"},
		})
		if err != nil {
			log.Error("failed to accept websocket: %v", err)
			return
		}
		defer conn.CloseNow()

		updates, unsubscribe := subscriber.Subscribe()
		defer unsubscribe()

		// the stream is write-only; reading handles control frames and detects close
		ctx := conn.CloseRead(r.Context())

		stats, err := repository.GetStats(ctx)
		if err != nil {
			log.Error("failed to get stats: %v", err)
			conn.Close(websocket.StatusInternalError, "failed to get stats")
			return
		}
		if err := writeStats(ctx, conn, *stats); err != nil {
			log.Debug("failed to write stats: %v", err)
			return
		}

		for {
			select {
			case <-ctx.Done():
				return
			case stats := <-updates:
				if err := writeStats(ctx, conn, stats); err != nil {
					log.Debug("failed to write stats: %v", err)
					return
				}
			}
		}
	}
}

func writeStats(ctx context.Context, conn *websocket.Conn, stats models.Stats) error {
	ctx, cancel := context.WithTimeout(ctx, StreamWriteTimeout)
	defer cancel()
	return wsjson.Write(ctx, conn, stats)
}

func parseResult(data map[string]json.RawMessage) *string {
	raw, ok := data["result"]
	if !ok {
		return nil
	}
	// a present but non-string result still counts the game
	var result string
	if err := json.Unmarshal(raw, &result); err != nil {
		result = ""
	}
	return &result
}

func parseScore(data map[string]json.RawMessage) *int64 {
	raw, ok := data["score"]
	if !ok {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil
	}
	n, ok := v.(json.Number)
	if !ok {
		return nil
	}
	// rejects fractions and exponents
	score, err := n.Int64()
	if err != nil {
		return nil
	}
	return &score
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response: %v", err)
	}
}
