// Package server adapts the contract router onto an HTTP listener and owns
// transport-level concerns: port binding, system endpoints and contract
// reloads.
package server

import (
	"fmt"
	"net"
	"net/http"
	"sync/atomic"

	"github.com/specmock-project/specmock-go/internal/config"
	"github.com/specmock-project/specmock-go/internal/handler"
	"github.com/specmock-project/specmock-go/internal/metrics"
	"github.com/specmock-project/specmock-go/internal/spec"
	"github.com/specmock-project/specmock-go/pkg/logger"
)

// Server hosts the route table built from the contract. Reloads swap the
// whole router atomically, so every in-flight request keeps the table it
// started with.
type Server struct {
	cfg      *config.Config
	specPath string
	router   atomic.Pointer[http.ServeMux]
}

// New builds a Server around an already-loaded contract.
func New(cfg *config.Config, specPath string, contract *spec.Contract) *Server {
	s := &Server{
		cfg:      cfg,
		specPath: specPath,
	}
	s.router.Store(handler.BuildRouter(contract))
	return s
}

// Start binds the listener and serves until the process exits. An empty port
// binds a dynamically assigned one.
func (s *Server) Start() error {
	metrics.Init()

	if s.cfg.WatchEnabled {
		if err := s.watchSpec(); err != nil {
			return err
		}
	}

	addr := ":" + s.cfg.ServerPort
	if s.cfg.ServerPort == "" {
		addr = ":0"
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to bind %s: %w", addr, err)
	}

	logger.Infof("server is listening on %s", listener.Addr())
	return http.Serve(listener, s.rootHandler())
}

// rootHandler layers the system endpoints over the swappable contract router.
func (s *Server) rootHandler() http.Handler {
	root := http.NewServeMux()
	if s.cfg.MetricsEnabled {
		root.Handle("GET /metrics", metrics.Handler())
		logger.Infof("metrics endpoint enabled at /metrics")
	}
	root.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		s.router.Load().ServeHTTP(w, r)
	})
	return root
}

// Reload re-parses the specification and swaps in a freshly built route
// table. A failed parse keeps the current table serving.
func (s *Server) Reload() bool {
	logger.Infof("reloading specification %s", s.specPath)

	contract, err := spec.Load(s.specPath)
	if err != nil {
		logger.Errorf("specification reload failed, keeping current routes: %v", err)
		metrics.ContractReloads.WithLabelValues("failure").Inc()
		return false
	}

	s.router.Store(handler.BuildRouter(contract))
	metrics.ContractReloads.WithLabelValues("success").Inc()
	logger.Infof("specification reloaded with %d operations", len(contract.Operations))
	return true
}
