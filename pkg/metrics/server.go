package metrics

import (
	"errors"
	"net"
	"net/http"
	"time"

	gometrics "github.com/armon/go-metrics"
	gmprometheus "github.com/armon/go-metrics/prometheus"
	"github.com/cometbft/cometbft/libs/log"
	"github.com/cometbft/cometbft/libs/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const serviceName = "shardrecover"

// Server exposes /metrics over HTTP. go-metrics samples emitted by the
// engine are bridged into the same prometheus registry.
type Server struct {
	service.BaseService

	addr   string
	logger log.Logger

	sink *gmprometheus.PrometheusSink
	srv  *http.Server
	ln   net.Listener
}

func NewServer(logger log.Logger, addr string) *Server {
	s := &Server{
		addr:   addr,
		logger: logger,
	}
	s.BaseService = *service.NewBaseService(logger, "MetricsServer", s)
	return s
}

// Addr returns the bound listen address once the server has started.
func (s *Server) Addr() string {
	if s.ln == nil {
		return s.addr
	}
	return s.ln.Addr().String()
}

// OnStart binds the listener and serves in the background.
func (s *Server) OnStart() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.ln = ln

	sink, err := gmprometheus.NewPrometheusSinkFrom(gmprometheus.DefaultPrometheusOpts)
	if err != nil {
		s.logger.Error("Could not configure go-metrics sink", "err", err)
	} else {
		s.sink = sink
		if _, err := gometrics.NewGlobal(gometrics.DefaultConfig(serviceName), sink); err != nil {
			s.logger.Error("Could not add go-metrics", "err", err)
		}
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	s.srv = &http.Server{
		Handler:           mux,
		ReadTimeout:       1 * time.Second,
		WriteTimeout:      1 * time.Second,
		IdleTimeout:       30 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	s.logger.Info("Prometheus Metrics Listening", "address", ln.Addr().String())
	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Prometheus Endpoint failed", "err", err)
		}
	}()
	return nil
}

func (s *Server) OnStop() {
	if s.srv != nil {
		if err := s.srv.Close(); err != nil {
			s.logger.Error("Failed to close metrics server", "err", err)
		}
	}
	if s.sink != nil {
		prometheus.Unregister(s.sink)
	}
}
