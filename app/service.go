package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dimasea19961/powerplant-coding-challenge/api/plan"
	"github.com/dimasea19961/powerplant-coding-challenge/config"
	coremetrics "github.com/dimasea19961/powerplant-coding-challenge/core/metrics"
	"github.com/dimasea19961/powerplant-coding-challenge/core/planlog"
	"github.com/dimasea19961/powerplant-coding-challenge/core/solver"
	"github.com/dimasea19961/powerplant-coding-challenge/infra/logger"
	"github.com/dimasea19961/powerplant-coding-challenge/infra/metrics"
	"github.com/dimasea19961/powerplant-coding-challenge/infra/mqtt"
)

// Service wires the solver with its HTTP surface, plan store, metrics
// sinks and the optional plan publisher.
type Service struct {
	cfg   *config.Config
	srv   *http.Server
	store planlog.PlanStore
	sink  coremetrics.MetricsSink
	pub   *mqtt.PlanPublisher
	log   logger.Logger
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	cfg.Logging.Apply()
	logg := logger.New("service")

	var sinks []coremetrics.MetricsSink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(nil)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink coremetrics.MetricsSink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	store, err := planlog.NewStore(cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("plan store: %w", err)
	}

	var pub *mqtt.PlanPublisher
	if cfg.MQTT.Enabled {
		pub, err = mqtt.NewPlanPublisher(cfg.MQTT)
		if err != nil {
			return nil, fmt.Errorf("plan publisher: %w", err)
		}
	}
	var planPub plan.Publisher
	if pub != nil {
		planPub = pub
	}

	sv := solver.New(cfg.Solver)
	mux := http.NewServeMux()
	mux.Handle("/productionplan", plan.NewPlanHandler(sv, store, sink, planPub, logger.New("api")))
	mux.Handle("/api/plans/logs", plan.NewLogHandler(store, cfg.Server.AuthToken))

	return &Service{
		cfg:   cfg,
		srv:   &http.Server{Addr: cfg.Server.Addr, Handler: mux},
		store: store,
		sink:  sink,
		pub:   pub,
		log:   logg,
	}, nil
}

// Run serves HTTP until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("listening on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.srv.Shutdown(shutdownCtx)
}

// Close releases the store, sinks and publisher.
func (s *Service) Close() error {
	var first error
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			first = err
		}
	}
	if err := s.sink.Close(); err != nil && first == nil {
		first = err
	}
	if s.pub != nil {
		if err := s.pub.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
