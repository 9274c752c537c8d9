// Package server implements the deterministic draw service: a websocket
// endpoint that evaluates seeded generation requests for distributed test
// harnesses that need shared reproducible randomness.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Server serves draw requests over websocket connections.
type Server struct {
	logger     zerolog.Logger
	cfg        Config
	clock      quartz.Clock
	upgrader   websocket.Upgrader
	httpServer *http.Server
}

// New creates a draw server. A nil clock uses the real one; tests inject a
// mock to drive ping and idle behavior.
func New(logger zerolog.Logger, cfg Config, clock quartz.Clock) *Server {
	if clock == nil {
		clock = quartz.NewReal()
	}
	s := &Server{
		logger: logger,
		cfg:    cfg,
		clock:  clock,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/draw", s.handleDraw)
	mux.HandleFunc("/health", s.handleHealth)
	s.httpServer = &http.Server{Addr: cfg.Addr, Handler: mux}
	return s
}

// Handler exposes the HTTP handler for tests.
func (s *Server) Handler() http.Handler { return s.httpServer.Handler }

// Serve listens on the configured address until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	s.logger.Info().Str("address", ln.Addr().String()).Msg("Draw service listening")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.httpServer.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleDraw(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error().Err(err).Msg("Websocket upgrade failed")
		return
	}
	defer conn.Close()

	logger := s.logger.With().Str("remote", conn.RemoteAddr().String()).Logger()
	logger.Debug().Msg("Client connected")

	// Idle connections are closed after cfg.IdleTimeout without a request;
	// the timer is reset on every message.
	idle := s.clock.AfterFunc(s.cfg.IdleTimeout, func() {
		logger.Info().Msg("Closing idle connection")
		conn.Close()
	})
	defer idle.Stop()

	done := make(chan struct{})
	defer close(done)
	go s.pingLoop(conn, logger, done)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Debug().Err(err).Msg("Connection closed")
			}
			return
		}
		idle.Reset(s.cfg.IdleTimeout)

		var req DrawRequest
		resp := DrawResponse{}
		if err := json.Unmarshal(data, &req); err != nil {
			resp.Error = "malformed request: " + err.Error()
		} else {
			resp = evaluate(req, s.cfg.MaxOps)
		}
		if resp.Error != "" {
			logger.Debug().Str("error", resp.Error).Msg("Request rejected")
		}
		if err := conn.WriteJSON(resp); err != nil {
			logger.Debug().Err(err).Msg("Write failed")
			return
		}
	}
}

// pingLoop keeps the connection alive between requests.
func (s *Server) pingLoop(conn *websocket.Conn, logger zerolog.Logger, done <-chan struct{}) {
	ticker := s.clock.NewTicker(s.cfg.PingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			deadline := time.Now().Add(5 * time.Second)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				logger.Debug().Err(err).Msg("Ping failed")
				return
			}
		}
	}
}
