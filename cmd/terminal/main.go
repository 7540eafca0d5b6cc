package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cbodonnell/pong/client/terminal"
	"github.com/cbodonnell/pong/pkg/log"
	"github.com/cbodonnell/pong/pkg/stats"
	"github.com/cbodonnell/pong/pkg/version"
	"github.com/cbodonnell/pong/pkg/workers"
	"github.com/gdamore/tcell/v2"
)

func main() {
	backendURL := flag.String("backend", "http://localhost:5000", "Stats service URL")
	logLevel := flag.String("log-level", "info", "Log level")
	logFile := flag.String("log-file", "pong-terminal.log", "Log file, since the screen belongs to the game")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	out, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		panic(fmt.Sprintf("Failed to open log file: %v", err))
	}
	defer out.Close()

	logger := log.New(out, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting terminal client version %s", version.Get())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	statsClient := stats.NewClient(stats.NewClientOptions{BackendURL: *backendURL})
	go func() {
		s, err := statsClient.Fetch(ctx)
		if err != nil {
			log.Warn("Failed to fetch stats: %v", err)
			return
		}
		log.Info("Stats: %d games, %d player wins, %d ai wins, highest score %d", s.TotalGames, s.PlayerWins, s.AIWins, s.HighestScore)
	}()

	statsWorker := workers.NewStatsWorker(workers.NewStatsWorkerOptions{
		Reporter: statsClient,
	})
	go statsWorker.Start(ctx)

	screen, err := tcell.NewScreen()
	if err != nil {
		panic(fmt.Sprintf("Failed to create screen: %v", err))
	}
	if err := screen.Init(); err != nil {
		panic(fmt.Sprintf("Failed to initialize screen: %v", err))
	}
	defer screen.Fini()

	t := terminal.NewTerminal(terminal.NewTerminalOptions{
		Screen:    screen,
		StatsSink: statsWorker,
	})
	if err := t.Run(ctx); err != nil {
		log.Error("Terminal client error: %v", err)
	}
}
