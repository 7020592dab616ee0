package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/zeptools/medoc/svc"
	"go.uber.org/zap"
)

const DefaultShutdownTimeout = 10 * time.Second

// Service runs an http.Server until its context is canceled, then shuts it
// down giving in-flight requests ShutdownTimeout to finish.
type Service struct {
	Ctx             context.Context    // Service Context
	Cancel          context.CancelFunc // Service Context CancelFunc
	Server          *http.Server
	ShutdownTimeout time.Duration

	mu    sync.Mutex // guards state and addr
	state int        // internal service state
	addr  net.Addr
	done  chan error
	log   *zap.Logger
}

// Ensure Service implements svc.Service
var _ svc.Service = (*Service)(nil)

func NewService(parentCtx context.Context, addr string, router http.Handler) *Service {
	svcCtx, svcCancel := context.WithCancel(parentCtx)
	return &Service{
		Ctx:    svcCtx,
		Cancel: svcCancel,
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		ShutdownTimeout: DefaultShutdownTimeout,
		state:           svc.StateREADY,
		done:            make(chan error, 1),
		log:             zap.L().Named("web"),
	}
}

func (s *Service) Name() string {
	return "WebService"
}

// Start binds the listen address and serves in the background. Bind errors
// are returned here; serve errors arrive on Done.
func (s *Service) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == svc.StateRUNNING {
		return fmt.Errorf("already started")
	}
	if s.state != svc.StateREADY {
		return fmt.Errorf("cannot start. not ready")
	}
	ln, err := net.Listen("tcp", s.Server.Addr)
	if err != nil {
		return fmt.Errorf("web: listen %s: %w", s.Server.Addr, err)
	}
	s.addr = ln.Addr()
	s.state = svc.StateRUNNING

	serveErr := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", ln.Addr().String()))
		if err := s.Server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
			return
		}
		serveErr <- nil
	}()
	go s.run(serveErr)
	return nil
}

func (s *Service) run(serveErr <-chan error) {
	select {
	case err := <-serveErr:
		// server died on its own
		s.log.Error("server stopped unexpectedly", zap.Error(err))
		s.done <- err
		return
	case <-s.Ctx.Done():
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.ShutdownTimeout)
	defer cancel()
	// Shutdown stops accepting new requests at once; in-flight ones get until the timeout
	if err := s.Server.Shutdown(ctx); err != nil {
		s.log.Error("server shutdown failed", zap.Error(err))
	}
	err := <-serveErr
	s.log.Info("shutdown complete")
	s.done <- err
}

func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != svc.StateRUNNING {
		s.log.Error("cannot stop. not running")
		return
	}
	s.Cancel()
	s.state = svc.StateSTOPPED
}

func (s *Service) Done() <-chan error {
	return s.done
}

// Addr is the bound address once started, e.g. when Server.Addr used port 0.
func (s *Service) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}
