// Package daemon wires config, logger, generator and web service together.
package daemon

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/GoNanoID/GoNanoID/internal/config"
	"github.com/GoNanoID/GoNanoID/internal/generator"
	"github.com/GoNanoID/GoNanoID/internal/logger"
	"github.com/GoNanoID/GoNanoID/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
}

// Start runs the web service until SIGINT or SIGTERM.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	addr := fmt.Sprintf(":%d", d.cfg.Webserver.Port)
	log.Info().Str("addr", addr).Str("url", d.cfg.Webserver.URL).Msg("starting web service")

	return d.webService.Start(addr)
}

// WebService returns the web service of the daemon.
func (d *Daemon) WebService() *web.Service {
	return d.webService
}

// New creates a new Daemon instance with the provided configuration.
// Metrics are registered with the prometheus default registry.
func New(cfg *config.Config) (*Daemon, error) {
	return NewWithRegistry(cfg, prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
}

// NewWithRegistry creates a Daemon registering its metrics with reg and serving them from gatherer.
func NewWithRegistry(cfg *config.Config, reg prometheus.Registerer, gatherer prometheus.Gatherer) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	if err := logger.Init(cfg.Log); err != nil {
		return nil, errors.Wrap(err, "init logger")
	}

	gen, err := generator.New(cfg.Generator, reg)
	if err != nil {
		return nil, errors.Wrap(err, "init generator")
	}

	return &Daemon{
		cfg:        cfg,
		webService: web.New(cfg, gen, gatherer),
	}, nil
}
