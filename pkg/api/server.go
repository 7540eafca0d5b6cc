package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cbodonnell/pong/pkg/api/handlers"
	"github.com/cbodonnell/pong/pkg/api/middleware"
	"github.com/cbodonnell/pong/pkg/log"
	"github.com/cbodonnell/pong/pkg/repositories"
	"github.com/gorilla/mux"
	"github.com/klauspost/compress/gzhttp"
)

const (
	StatsPath       = "/api/stats"
	StatsStreamPath = "/api/stats/stream"
)

type APIServer struct {
	server *http.Server
	tls    *TLSConfig
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

// StatsBroadcaster publishes updated stats to stream subscribers
type StatsBroadcaster interface {
	handlers.StatsPublisher
	handlers.StatsSubscriber
}

type NewAPIServerOptions struct {
	Port        int
	TLS         *TLSConfig
	Repository  repositories.Repository
	Broadcaster StatsBroadcaster
}

// NewAPIServer creates a new http.Server for handling API requests
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: NewRouter(opts.Repository, opts.Broadcaster),
	}
	return &APIServer{
		server: server,
		tls:    opts.TLS,
	}
}

// NewRouter wires the stats routes.
// The stream route is left uncompressed since it hijacks the connection.
func NewRouter(repository repositories.Repository, broadcaster StatsBroadcaster) http.Handler {
	router := mux.NewRouter()
	router.Use(middleware.LogRequests, middleware.CORS)

	router.Handle(StatsPath, gzhttp.GzipHandler(handlers.HandleGetStats(repository))).Methods(http.MethodGet)
	router.Handle(StatsPath, gzhttp.GzipHandler(handlers.HandleUpdateStats(repository, broadcaster))).Methods(http.MethodPost)
	router.HandleFunc(StatsPath, handlers.HandlePreflight).Methods(http.MethodOptions)
	router.HandleFunc(StatsStreamPath, handlers.HandleStatsStream(repository, broadcaster)).Methods(http.MethodGet)
	router.HandleFunc(StatsStreamPath, handlers.HandlePreflight).Methods(http.MethodOptions)

	return router
}

// Start starts the APIServer
func (s *APIServer) Start() {
	var listenAndServe func() error
	if s.tls != nil {
		log.Info("API server listening on %s with TLS", s.server.Addr)
		listenAndServe = func() error {
			return s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("API server listening on %s", s.server.Addr)
		listenAndServe = s.server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("API server closed")
			return
		}
		log.Error("API server error: %v", err)
	}
}

// Stop stops the APIServer
func (s *APIServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
