package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"toolbox/go-backend/internal/adapters/web"
	"toolbox/go-backend/internal/domains/contracts"
	"toolbox/go-backend/internal/platform/metrics"
	"toolbox/go-backend/internal/platform/ratelimiter"
)

const (
	DefaultRPCAddr             = "127.0.0.1:8787"
	DefaultMaxBodyBytes  int64 = 16 << 20
	shutdownGracePeriod        = 5 * time.Second
)

// Options configures NewServer. Zero values fall back to defaults; a zero
// RateLimit disables limiting.
type Options struct {
	Addr         string
	MaxBodyBytes int64
	RateLimit    ratelimiter.Config
	Metrics      *metrics.Recorder
	Logger       *slog.Logger
}

type Server struct {
	httpServer   *http.Server
	service      contracts.ToolboxService
	logger       *slog.Logger
	metrics      *metrics.Recorder
	maxBodyBytes int64
	rpcLimiter   *ratelimiter.MapLimiter
	now          func() time.Time
}

func NewServer(svc contracts.ToolboxService, opts Options) *Server {
	if opts.Addr == "" {
		opts.Addr = DefaultRPCAddr
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	s := &Server{
		service:      svc,
		logger:       opts.Logger,
		metrics:      opts.Metrics,
		maxBodyBytes: opts.MaxBodyBytes,
		rpcLimiter:   ratelimiter.FromConfig(opts.RateLimit),
		now:          time.Now,
	}
	s.httpServer = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// NewServerWithService serves svc on rpcAddr with default limits.
func NewServerWithService(rpcAddr string, svc contracts.ToolboxService) *Server {
	return NewServer(svc, Options{Addr: rpcAddr})
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Method(http.MethodGet, "/", web.IndexHandler())
	r.Method(http.MethodHead, "/", web.IndexHandler())
	r.HandleFunc("/healthz", s.handleHealth)
	r.HandleFunc("/rpc", s.handleRPC)
	r.HandleFunc("/files/{name}", s.handleFileDownload)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	return r
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Addr() string {
	return s.httpServer.Addr
}

func (s *Server) Run(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return nil
	default:
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("rpc server listening", "addr", s.httpServer.Addr)
		err := s.httpServer.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
			return
		}
		errCh <- err
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-errCh
	case err := <-errCh:
		return err
	}
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	s.handleHealth(w, r)
}

func (s *Server) HandleRPC(w http.ResponseWriter, r *http.Request) {
	s.handleRPC(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !s.applyCORS(w, r) {
		return
	}
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) applyCORS(w http.ResponseWriter, r *http.Request) bool {
	origin := strings.TrimSpace(r.Header.Get("Origin"))
	if origin != "" && !isAllowedOrigin(origin) {
		http.Error(w, "origin is not allowed", http.StatusForbidden)
		return false
	}
	if origin != "" {
		w.Header().Set("Access-Control-Allow-Origin", origin)
	}
	w.Header().Set("Vary", "Origin")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept")
	return true
}

// handleFileDownload serves the static deploy artifacts as attachments.
func (s *Server) handleFileDownload(w http.ResponseWriter, r *http.Request) {
	if !s.applyCORS(w, r) {
		return
	}
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.service == nil {
		http.Error(w, "service is not initialized", http.StatusServiceUnavailable)
		return
	}
	name := strings.TrimSpace(chi.URLParam(r, "name"))
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		http.Error(w, "invalid file name", http.StatusBadRequest)
		return
	}

	data, mimeType, err := s.service.DeployFile(name)
	if err != nil {
		http.Error(w, "file not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(name))
	_, _ = w.Write(data)
}

func isAllowedOrigin(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	switch strings.TrimSpace(u.Hostname()) {
	case "localhost", "127.0.0.1", "::1":
		return true
	default:
		return false
	}
}
