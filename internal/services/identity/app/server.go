// Package app wires the identity runtime and gRPC lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"

	identityv1 "github.com/oakwell/identityd/api/gen/go/identity/v1"
	"github.com/oakwell/identityd/internal/platform/config"
	"github.com/oakwell/identityd/internal/platform/timeouts"
	identityservice "github.com/oakwell/identityd/internal/services/identity/api/grpc/identity"
	"github.com/oakwell/identityd/internal/services/identity/link"
	"github.com/oakwell/identityd/internal/services/identity/session"
	identitysqlite "github.com/oakwell/identityd/internal/services/identity/storage/sqlite"
	"github.com/oakwell/identityd/internal/services/identity/verification"
)

type serverEnv struct {
	DBPath        string        `env:"IDENTITYD_DB_PATH"`
	SweepInterval time.Duration `env:"IDENTITYD_SWEEP_INTERVAL"`
}

func loadServerEnv() serverEnv {
	var cfg serverEnv
	_ = config.ParseEnv(&cfg)
	if strings.TrimSpace(cfg.DBPath) == "" {
		cfg.DBPath = filepath.Join("data", "identity.db")
	}
	return cfg
}

// Server hosts the identity gRPC API and storage lifecycle.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	store      *identitysqlite.Store

	sessions      *session.Manager
	verifications *verification.Manager
	sweepInterval time.Duration
}

// New creates a configured identity server listening on the provided port.
func New(port int) (*Server, error) {
	return NewWithAddr(fmt.Sprintf(":%d", port))
}

// NewWithAddr creates a configured identity server for the provided address.
func NewWithAddr(addr string) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	env := loadServerEnv()
	store, err := openIdentityStore(env.DBPath)
	if err != nil {
		_ = listener.Close()
		return nil, err
	}

	links := link.NewManager(store, store)
	sessions := session.NewManager(store)
	verifications := verification.NewManager(store)

	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	apiService := identityservice.NewService(store, links, sessions, verifications)
	healthServer := health.NewServer()
	identityv1.RegisterIdentityServiceServer(grpcServer, apiService)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("identity.v1.IdentityService", grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		listener:      listener,
		grpcServer:    grpcServer,
		health:        healthServer,
		store:         store,
		sessions:      sessions,
		verifications: verifications,
		sweepInterval: env.SweepInterval,
	}, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves an identity server until context cancellation.
func Run(ctx context.Context, port int) error {
	server, err := New(port)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the gRPC server until context cancellation. When a sweep
// interval is configured a background loop reaps expired sessions and
// verification tokens; expiry stays correct without it because reads enforce
// it lazily.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	log.Printf("identity server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	if s.sweepInterval > 0 {
		go s.sweepLoop(sweepCtx)
	}

	select {
	case <-ctx.Done():
		if s.health != nil {
			s.health.Shutdown()
		}
		s.grpcServer.GracefulStop()
		err := <-serveErr
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	case err := <-serveErr:
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}
}

func (s *Server) sweepLoop(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweepOnce(ctx)
		}
	}
}

func (s *Server) sweepOnce(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
	defer cancel()
	if removed, err := s.sessions.Sweep(ctx); err != nil {
		log.Printf("sweep sessions: %v", err)
	} else if removed > 0 {
		log.Printf("swept %d expired sessions", removed)
	}
	if removed, err := s.verifications.Sweep(ctx); err != nil {
		log.Printf("sweep verification tokens: %v", err)
	} else if removed > 0 {
		log.Printf("swept %d expired verification tokens", removed)
	}
}

// Close releases identity server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close identity store: %v", err)
		}
	}
}

func openIdentityStore(path string) (*identitysqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := identitysqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open identity store: %w", err)
	}
	return store, nil
}
