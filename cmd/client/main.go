package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cbodonnell/pong/client/game"
	"github.com/cbodonnell/pong/pkg/log"
	"github.com/cbodonnell/pong/pkg/stats"
	"github.com/cbodonnell/pong/pkg/version"
	"github.com/cbodonnell/pong/pkg/workers"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	backendURL := flag.String("backend", "http://localhost:5000", "Stats service URL")
	logLevel := flag.String("log-level", "info", "Log level")
	debug := flag.Bool("debug", false, "Show the debug overlay")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting client version %s", version.Get())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	statsClient := stats.NewClient(stats.NewClientOptions{BackendURL: *backendURL})
	go fetchStats(ctx, statsClient)

	statsWorker := workers.NewStatsWorker(workers.NewStatsWorkerOptions{
		Reporter: statsClient,
	})
	go statsWorker.Start(ctx)

	g := game.NewGame(game.NewGameOptions{
		Debug:     *debug,
		StatsSink: statsWorker,
	})

	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Pong")
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
}

// fetchStats logs the stats at startup. Failures do not affect play.
func fetchStats(ctx context.Context, client *stats.Client) {
	s, err := client.Fetch(ctx)
	if err != nil {
		log.Warn("Failed to fetch stats: %v", err)
		return
	}
	log.Info("Stats: %d games, %d player wins, %d ai wins, highest score %d", s.TotalGames, s.PlayerWins, s.AIWins, s.HighestScore)
}
