// Package fiber provides a zerolog access log middleware for fiber.
package fiber

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/GoNanoID/GoNanoID/internal/logger"
)

const (
	// PerformanceHeader carries the request duration in seconds.
	PerformanceHeader = "X-Performance"

	logDirPerm = 0o750
)

// Config implements fiber middleware struct.
type Config struct {
	// Next defines a function to skip this middleware when returned true.
	//
	// Optional. Default: nil
	Next func(c *fiber.Ctx) bool

	// Config of the logger.
	Config logger.Log

	// CacheControlError max-age caching on chain errors.
	CacheControlError string

	// CheckAliveURI for disabling logging of check alive http calls.
	CheckAliveURI string
}

// ConfigDefault is the default config for fiber.
var ConfigDefault = Config{
	Next:              nil,
	CacheControlError: "max-age=0",
}

func configDefault(config ...Config) Config {
	if len(config) < 1 {
		return ConfigDefault
	}

	cfg := config[0]

	if cfg.CacheControlError == "" {
		cfg.CacheControlError = ConfigDefault.CacheControlError
	}

	return cfg
}

// accessWriters returns the outputs enabled for the access log.
func accessWriters(cfg *logger.Log) []io.Writer {
	var writers []io.Writer

	if cfg.File.Enabled {
		if err := os.MkdirAll(cfg.File.Path, logDirPerm); err != nil {
			log.Error().Err(err).Str("path", cfg.File.Path).Msg("can't create log directory")
		} else {
			writers = append(writers, logger.RollingFile(cfg.File.Path, cfg.File.AccessLog,
				cfg.File.AccessMaxSize, cfg.File.AccessMaxAge, cfg.File.AccessMaxBackups))
		}
	}

	// console access log needs both the console and the access log switch
	if cfg.Console.Enabled && cfg.EnableAccessLogToConsole {
		if cfg.Console.UseConsoleWriter {
			writers = append(writers, zerolog.ConsoleWriter{
				Out:          os.Stdout,
				NoColor:      false,
				TimeFormat:   zerolog.TimeFieldFormat,
				PartsExclude: []string{"level"},
			})
		} else {
			writers = append(writers, os.Stdout)
		}
	}

	return writers
}

// New creates a new fiber access logging middleware using zerolog.
func New(config ...Config) fiber.Handler {
	var (
		cfg        = configDefault(config...)
		once       sync.Once
		errHandler fiber.ErrorHandler
	)

	accessLogger := zerolog.New(zerolog.MultiLevelWriter(accessWriters(&cfg.Config)...)).
		With().
		Timestamp().
		Logger().
		Level(zerolog.NoLevel)

	return func(ctx *fiber.Ctx) error {
		// Don't execute middleware if Next returns true
		if cfg.Next != nil && cfg.Next(ctx) {
			return ctx.Next()
		}

		once.Do(func() {
			errHandler = ctx.App().ErrorHandler
		})

		start := time.Now()

		chainErr := ctx.Next()
		if chainErr != nil {
			if errH := errHandler(ctx, chainErr); errH != nil {
				_ = ctx.SendStatus(fiber.StatusInternalServerError)
				// ensure also 500 has a Cache-Control
				ctx.Response().Header.Set(fiber.HeaderCacheControl, cfg.CacheControlError)
			}
		}

		elapsed := time.Since(start).Seconds()
		ctx.Response().Header.Set(PerformanceHeader, strconv.FormatFloat(elapsed, 'f', 6, 64))

		uri := ctx.Request().RequestURI()
		if cfg.Config.DisableCheckAlive && bytes.Equal(uri, []byte(cfg.CheckAliveURI)) {
			return nil
		}

		// fasthttp normalizes the path, log the raw one
		p := ctx.Path()
		if qs := ctx.Request().URI().QueryString(); len(qs) > 0 {
			p = p + "?" + string(qs)
		}

		entry := accessLogger.Log().
			Str("IP", ctx.IP()).
			Int("status", ctx.Response().StatusCode()).
			Float64(PerformanceHeader, elapsed).
			Str("URI", p).
			Str("method", ctx.Method()).
			Bytes("host", ctx.Request().Host()).
			Str(fiber.HeaderXForwardedFor, ctx.Get(fiber.HeaderXForwardedFor)).
			Str(fiber.HeaderUserAgent, ctx.Get(fiber.HeaderUserAgent))

		if chainErr != nil {
			entry.Err(chainErr)
		}

		entry.Send()

		return nil
	}
}
