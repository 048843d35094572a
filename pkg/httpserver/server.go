package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/nesaranaeem/qr-box/pkg/logger"
)

type config struct {
	addr            string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	shutdownTimeout time.Duration
	server          *http.Server
	logger          *slog.Logger
	startHooks      []func(*slog.Logger)
	stopHooks       []func(*slog.Logger)
}

// Server runs one http.Server until its context is cancelled or Shutdown is
// called. Signal handling belongs to the caller (see signal.NotifyContext).
type Server struct {
	cfg config
	log *slog.Logger

	mu   sync.Mutex
	srv  *http.Server
	ln   net.Listener
	stop sync.Once
	err  error
}

func New(opts ...Option) *Server {
	cfg := config{addr: ":8080", shutdownTimeout: 10 * time.Second}
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
		cfg.logger = log
	}
	return &Server{cfg: cfg, log: log.With(logger.Component("httpserver"))}
}

// Addr returns the bound listener address, or "" before Run has started listening.
// With an addr of ":0" it reports the port the kernel picked.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// prepare applies the configured fields to the target http.Server. Fields
// already set on a server passed via WithServer are left alone.
func (s *Server) prepare(handler http.Handler) *http.Server {
	srv := s.cfg.server
	if srv == nil {
		srv = &http.Server{}
	}
	if srv.Addr == "" {
		srv.Addr = s.cfg.addr
	}
	setDefault(&srv.ReadTimeout, s.cfg.readTimeout)
	setDefault(&srv.WriteTimeout, s.cfg.writeTimeout)
	setDefault(&srv.IdleTimeout, s.cfg.idleTimeout)
	if handler == nil {
		handler = http.NotFoundHandler()
	}
	srv.Handler = handler
	return srv
}

func setDefault(field *time.Duration, v time.Duration) {
	if *field == 0 {
		*field = v
	}
}

// Run listens, serves handler and blocks until ctx is done or Shutdown is
// called. Listen and serve failures are wrapped with ErrStart; a failed
// graceful shutdown triggered by ctx is wrapped with ErrShutdown.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, errors.New("server already running"))
	}
	srv := s.prepare(handler)
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, err)
	}
	s.srv, s.ln = srv, ln
	s.mu.Unlock()

	s.log.InfoContext(ctx, "http server listening", slog.String("addr", ln.Addr().String()))
	for _, h := range s.cfg.startHooks {
		h(s.cfg.logger)
	}

	served := make(chan error, 1)
	go func() { served <- srv.Serve(ln) }()

	select {
	case err = <-served:
	case <-ctx.Done():
		s.log.InfoContext(ctx, "shutdown requested", logger.Error(context.Cause(ctx)))
		if serr := s.Shutdown(context.WithoutCancel(ctx)); serr != nil {
			<-served
			return serr
		}
		err = <-served
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrStart, err)
	}
	return nil
}

// Shutdown drains in-flight requests within the configured timeout and runs
// the stop hooks. Later calls return the first result.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	s.stop.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, s.cfg.shutdownTimeout)
		defer cancel()

		started := time.Now()
		err := srv.Shutdown(ctx)
		s.log.InfoContext(ctx, "http server stopped", logger.Duration(time.Since(started)), logger.Error(err))
		for _, h := range s.cfg.stopHooks {
			h(s.cfg.logger)
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.err = errors.Join(ErrShutdown, err)
		}
	})
	return s.err
}
