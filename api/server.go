// Package api exposes the solver over a websocket so a long-running
// solve's progress can be streamed to a connected client. This is
// enrichment around solver.Solve, not part of its contract: the core
// solve entry point stays free of any transport concern.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/lox/nlhe-solver/action"
	"github.com/lox/nlhe-solver/handrange"
	"github.com/lox/nlhe-solver/poker"
	"github.com/lox/nlhe-solver/solver"
)

// MessageType identifies the kind of frame sent to a connected client.
type MessageType string

const (
	MessageTypeProgress MessageType = "progress"
	MessageTypeResult   MessageType = "result"
	MessageTypeError    MessageType = "error"
)

// Message is the single JSON envelope every frame is sent as.
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// ProgressData is the payload of a MessageTypeProgress frame.
type ProgressData struct {
	Iteration  uint32  `json:"iteration"`
	Convergence float64 `json:"convergence"`
}

// ResultData is the payload of a MessageTypeResult frame.
type ResultData struct {
	Report solver.StrategyReport `json:"report"`
}

// ErrorData is the payload of a MessageTypeError frame.
type ErrorData struct {
	Message string `json:"message"`
}

// Server streams solve progress over a single websocket endpoint. Each
// connection triggers exactly one Solve call against the request's
// GameState and Config, read as the first JSON message on the socket.
type Server struct {
	upgrader websocket.Upgrader
	logger   zerolog.Logger
	mux      *http.ServeMux
}

// NewServer returns a Server ready to handle connections.
func NewServer(logger zerolog.Logger) *Server {
	s := &Server{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger: logger,
		mux:    http.NewServeMux(),
	}
	s.mux.HandleFunc("/solve", s.handleSolve)
	s.mux.HandleFunc("/health", s.handleHealth)
	return s
}

// Handler returns the server's http.Handler for embedding in a larger
// mux or starting directly with http.ListenAndServe.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// SolveRequest is the first and only message a client sends: the
// decision to solve, in the same plain-string notation the CLI accepts
// (card strings, a range notation string), rather than the solver's
// internal bit-packed types.
type SolveRequest struct {
	HeroCards      []string  `json:"hero_cards"`
	Board          []string  `json:"board"`
	VillainRange   string    `json:"villain_range"`
	Pot            float64   `json:"pot"`
	EffectiveStack float64   `json:"effective_stack"`
	ToCall         float64   `json:"to_call"`
	Position       string    `json:"position"`
	BetSizing      []float64 `json:"bet_sizing"`

	Iterations            uint32  `json:"iterations"`
	SamplesPerIteration   uint    `json:"samples_per_iteration"`
	ConvergenceThreshold  float64 `json:"convergence_threshold"`
	ConvergenceCheckEvery uint32  `json:"convergence_check_every"`
	Seed                  *uint64 `json:"seed"`
}

func (req SolveRequest) toGameState() (solver.GameState, error) {
	var hero, board poker.Hand
	for _, s := range req.HeroCards {
		c, err := poker.ParseCard(s)
		if err != nil {
			return solver.GameState{}, fmt.Errorf("parsing hero card %q: %w", s, err)
		}
		hero.AddCard(c)
	}
	for _, s := range req.Board {
		c, err := poker.ParseCard(s)
		if err != nil {
			return solver.GameState{}, fmt.Errorf("parsing board card %q: %w", s, err)
		}
		board.AddCard(c)
	}
	villainRange, err := handrange.Parse(req.VillainRange)
	if err != nil {
		return solver.GameState{}, fmt.Errorf("parsing villain range: %w", err)
	}

	return solver.GameState{
		HeroHand:       hero,
		Board:          board,
		Pot:            req.Pot,
		EffectiveStack: req.EffectiveStack,
		ToCall:         req.ToCall,
		Position:       action.PositionFromString(req.Position),
		VillainRange:   villainRange,
		BetSizing:      req.BetSizing,
	}, nil
}

func (req SolveRequest) toConfig() solver.Config {
	return solver.Config{
		Iterations:            req.Iterations,
		SamplesPerIteration:   req.SamplesPerIteration,
		ConvergenceThreshold:  req.ConvergenceThreshold,
		ConvergenceCheckEvery: req.ConvergenceCheckEvery,
		Seed:                  req.Seed,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	var req SolveRequest
	if err := conn.ReadJSON(&req); err != nil {
		s.sendError(conn, "reading solve request: "+err.Error())
		return
	}

	gameState, err := req.toGameState()
	if err != nil {
		s.sendError(conn, err.Error())
		return
	}
	cfg := req.toConfig()
	cfg.OnProgress = func(iteration uint32, metric float64) {
		s.send(conn, MessageTypeProgress, ProgressData{Iteration: iteration, Convergence: metric})
	}

	report, err := solver.Solve(r.Context(), gameState, cfg)
	if err != nil {
		s.sendError(conn, err.Error())
		return
	}

	s.send(conn, MessageTypeResult, ResultData{Report: report})
}

func (s *Server) sendError(conn *websocket.Conn, msg string) {
	s.send(conn, MessageTypeError, ErrorData{Message: msg})
}

func (s *Server) send(conn *websocket.Conn, msgType MessageType, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error().Err(err).Msg("marshalling websocket payload")
		return
	}
	msg := Message{Type: msgType, Data: data, Timestamp: time.Now().UTC()}
	if err := conn.WriteJSON(msg); err != nil {
		s.logger.Debug().Err(err).Msg("writing websocket message")
	}
}

// Serve starts the server on addr and blocks until ctx is cancelled.
func Serve(ctx context.Context, addr string, logger zerolog.Logger) error {
	s := NewServer(logger)
	httpServer := &http.Server{Addr: addr, Handler: s.Handler()}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
