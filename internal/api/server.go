package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/swatchfile/swatch/internal/config"
)

// Server wraps the HTTP server for the local web view.
type Server struct {
	httpServer *http.Server
	watcher    *Watcher
	wsHub      *WebSocketHub
}

// NewServer creates a new server with the given handler and port.
func NewServer(handler *Handler, port int, paths *config.Paths) *Server {
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	wsHub := NewWebSocketHub()
	mux.HandleFunc("GET /api/v1/ws", wsHub.ServeWS)

	watcher, err := NewWatcher(paths)
	if err != nil {
		log.Printf("Warning: failed to create watcher: %v", err)
	} else {
		watcher.Subscribe(wsHub)
	}

	wrapped := Logging(Cors(mux))

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", port),
			Handler:      wrapped,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		watcher: watcher,
		wsHub:   wsHub,
	}
}

// Start begins listening for HTTP requests. Blocks until shutdown.
func (s *Server) Start() error {
	if s.watcher != nil {
		if err := s.watcher.Start(); err != nil {
			log.Printf("Warning: failed to start watcher: %v", err)
		}
	}

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.watcher != nil {
		s.watcher.Stop()
	}

	return s.httpServer.Shutdown(ctx)
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}
