// Package web runs the fiber http front end of the id generator.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/GoNanoID/GoNanoID/internal/config"
	"github.com/GoNanoID/GoNanoID/internal/generator"
	accesslog "github.com/GoNanoID/GoNanoID/internal/logger/adapter/fiber"
	"github.com/GoNanoID/GoNanoID/internal/web/handler"
	"github.com/GoNanoID/GoNanoID/internal/web/handler/id"
)

const (
	// CheckAlivePath answers 200 while the service takes traffic and 503 while it drains.
	CheckAlivePath = handler.RootPath + "checkalive"

	// MetricsPath exposes prometheus metrics.
	MetricsPath = handler.RootPath + "metrics"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
}

// Start listens on addr and blocks until the server was shut down.
func (s *Service) Start(addr string) error {
	s.alive.Store(true)

	if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err //nolint:wrapcheck
	}

	return nil
}

// Alive reports whether checkalive answers 200.
func (s *Service) Alive() bool {
	return s.alive.Load()
}

// WaitShutdown waits for SIGINT or SIGTERM and shuts the server down gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	s.Shutdown()
}

// Shutdown drains and stops the server.
func (s *Service) Shutdown() {
	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

func (s *Service) checkAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.Status(fiber.StatusServiceUnavailable).SendString("FAIL")
	}

	return c.SendString("OK")
}

// New creates a new web service with the given configuration.
// Metrics are served from gatherer.
func New(cfg *config.Config, gen *generator.Service, gatherer prometheus.Gatherer) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if gen == nil {
		panic("generator cannot be nil")
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192, //nolint:mnd
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
		},
	)

	app.Use(accesslog.New(accesslog.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New())
	}

	service := &Service{
		cfg: cfg,
		App: app,
		// dev mode skips the drain delay
		fastShutDown: cfg.DevMode,
	}

	service.alive.Store(true)

	app.Get(CheckAlivePath, service.checkAlive)
	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	new(id.Service).Init(app, cfg, gen)

	return service
}
