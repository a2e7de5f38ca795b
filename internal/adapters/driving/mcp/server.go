package mcp

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/oddart/internal/core/domain"
)

// Version is the MCP server version.
const Version = "0.1.0"

// maxPendingRounds bounds the rounds kept for answering.
const maxPendingRounds = 64

// Server is the MCP server for oddart.
type Server struct {
	ports  *Ports
	server *mcp.Server

	mu     sync.Mutex
	rounds map[string]*domain.Round
	order  []string
}

// NewServer creates a new MCP server with the given ports.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "oddart",
		Version: Version,
	}

	s := &Server{
		ports:  ports,
		server: mcp.NewServer(impl, nil),
		rounds: make(map[string]*domain.Round),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP starts the MCP server over HTTP on the specified address.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	err := httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// keepRound stores a drawn round until it is answered, evicting the oldest
// when full.
func (s *Server) keepRound(round *domain.Round) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.order) >= maxPendingRounds {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.rounds, oldest)
	}
	s.rounds[round.ID] = round
	s.order = append(s.order, round.ID)
}

// takeRound removes and returns a pending round.
func (s *Server) takeRound(id string) (*domain.Round, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	round, ok := s.rounds[id]
	if !ok {
		return nil, false
	}
	delete(s.rounds, id)
	for i, rid := range s.order {
		if rid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return round, true
}
