// Package server binds a TCP endpoint, accepts connections, and spawns a
// handler per connection sharing one queue.Handle (spec.md §4.E, §4.F).
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	"golang.org/x/sync/errgroup"

	"pqueue/internal/queue"
)

// Server is the listener/accept loop. It binds once; Start blocks until
// ctx is canceled. Accept errors other than the listener being closed are
// logged and do not end the loop.
type Server struct {
	handle   queue.Handle
	logger   *slog.Logger
	listener net.Listener
	ready    chan struct{}
}

// New constructs a Server bound to the given shared queue handle.
func New(h queue.Handle, logger *slog.Logger) *Server {
	return &Server{handle: h, logger: logger, ready: make(chan struct{})}
}

// Start binds addr and runs the accept loop until ctx is canceled. A bind
// failure is returned immediately and is the only condition under which
// Start returns without having served at least one Accept attempt.
func (s *Server) Start(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("pqueue: listen on %s: %w", addr, err)
	}
	s.listener = ln
	close(s.ready)
	s.logger.Info("listening", "addr", ln.Addr().String())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		return s.listener.Close()
	})
	g.Go(s.acceptLoop)

	return g.Wait()
}

// Addr returns the bound address. Only valid once Start has begun
// listening; used by tests that bind to an ephemeral port.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Ready is closed once the listener is bound and Addr is safe to call.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// acceptLoop accepts connections until the listener closes, cloning the
// shared handle for each one (spec.md §4.F). A per-connection accept
// error is logged and the loop continues; only the listener's own closure
// ends it.
func (s *Server) acceptLoop() error {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			s.logger.Warn("accept error", "err", err)
			continue
		}

		go handleConnection(conn, s.handle.Clone(), s.logger)
	}
}
