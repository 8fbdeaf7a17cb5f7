// Package fileserver serves a pod directory over HTTP. The dashboard starts
// it as a detached process on pods without GPUs so files stay reachable.
package fileserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/bernd/poddash/config"
	"github.com/bernd/poddash/tui"
	"golang.org/x/time/rate"
)

// Handler serves files read-only behind a request rate limit.
type Handler struct {
	files   http.Handler
	limiter *rate.Limiter
	log     *tui.StatusWriter
}

func NewHandler(dir string, limit rate.Limit, burst int, log *tui.StatusWriter) *Handler {
	return &Handler{
		files:   http.FileServer(http.Dir(dir)),
		limiter: rate.NewLimiter(limit, burst),
		log:     log,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if !h.limiter.Allow() {
		h.logf("limited", "%s %s from %s", req.Method, req.URL.Path, req.RemoteAddr)
		http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
		return
	}
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	h.logf("serving", "%s %s from %s", req.Method, req.URL.Path, req.RemoteAddr)
	h.files.ServeHTTP(w, req)
}

func (h *Handler) logf(verb, format string, args ...any) {
	if h.log != nil {
		h.log.Status(verb, format, args...)
	}
}

// Server serves one directory until its context is cancelled.
type Server struct {
	cfg config.FileServerConfig
	log *tui.StatusWriter
}

func NewServer(cfg config.FileServerConfig, log *tui.StatusWriter) (*Server, error) {
	info, err := os.Stat(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("file server dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("file server dir: %s is not a directory", cfg.Dir)
	}
	return &Server{cfg: cfg, log: log}, nil
}

// Run listens on the configured port and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.Port))
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done. It closes ln.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      NewHandler(s.cfg.Dir, rate.Limit(s.cfg.Rate), s.cfg.Burst, s.log),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	if s.log != nil {
		s.log.Status("listening", "%s on %s", s.cfg.Dir, ln.Addr())
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
