// Package logger sets up the global zerolog logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"gopkg.in/natefinch/lumberjack.v2"
)

const logDirPerm = 0o750

// LevelWriter splits log output by level.
// See WriteLevel about the separation.
type LevelWriter struct {
	ErrorWriter io.Writer
	InfoWriter  io.Writer
	TraceWriter io.Writer
	WarnWriter  io.Writer
}

// WriteLevel writes p to the writer responsible for level l.
func (lw *LevelWriter) WriteLevel(l zerolog.Level, p []byte) (n int, err error) {
	var w io.Writer

	switch {
	case l == zerolog.Disabled:
		return 0, nil
	case l == zerolog.TraceLevel:
		w = lw.TraceWriter
	case l == zerolog.WarnLevel:
		w = lw.WarnWriter
	case l > zerolog.WarnLevel: // error, fatal and panic
		w = lw.ErrorWriter
	default:
		w = lw.InfoWriter // debug and info
	}

	return w.Write(p) //nolint:wrapcheck
}

// Write sends entries without a level to the info writer.
func (lw *LevelWriter) Write(p []byte) (n int, err error) {
	return lw.InfoWriter.Write(p) //nolint:wrapcheck
}

// Init the zerolog logger.
// Depending on the config it enables all, some or no logger at all.
func Init(cfg Log) error {
	var (
		logLevel, err = zerolog.ParseLevel(cfg.LogLevel)
		writers       []io.Writer
		stack         bool
	)

	if err != nil {
		return errors.Wrap(err, fmt.Sprintf("loglevel %s is not supported", cfg.LogLevel))
	}

	if cfg.ServiceName == "" {
		return ErrServiceNameIsEmpty
	}

	if cfg.AppName == "" {
		return ErrAppNameIsEmpty
	}

	// use zerolog stack marshal func if trace level is set
	if logLevel == zerolog.TraceLevel {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack //nolint:reassign
		stack = true
	}

	zerolog.SetGlobalLevel(logLevel)
	zerolog.ErrorHandler = ErrorHandler //nolint:reassign

	if cfg.Console.Enabled {
		writers = append(writers, NewConsoleWriter(cfg))
	}

	if cfg.File.Enabled {
		if w := newRollingFiles(cfg); w != nil {
			writers = append(writers, w)
		}
	}

	ctx := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Hook(NewPrometheusHook(cfg.ServiceName)).
		With().
		Timestamp().
		Str("app", cfg.AppName)

	switch {
	case cfg.ReportCaller && stack:
		ctx = ctx.Stack()
	case cfg.ReportCaller:
		ctx = ctx.Caller()
	}

	log.Logger = ctx.Logger()

	return nil
}

// RollingFile returns a lumberjack writer for name below dir.
func RollingFile(dir, name string, maxSize, maxAge, maxBackups int) io.Writer {
	return &lumberjack.Logger{
		Filename:   path.Join(dir, name),
		MaxSize:    maxSize,
		MaxAge:     maxAge,
		MaxBackups: maxBackups,
		LocalTime:  false,
		Compress:   false,
	}
}

// newRollingFiles creates one rolling file per level group.
func newRollingFiles(cfg Log) io.Writer {
	f := cfg.File

	if err := os.MkdirAll(f.Path, logDirPerm); err != nil {
		log.Error().Err(err).Str("path", f.Path).Msg("can't create log directory")

		return nil
	}

	return &LevelWriter{
		ErrorWriter: RollingFile(f.Path, f.ErrorLog, f.ErrorMaxSize, f.ErrorMaxAge, f.ErrorMaxBackups),
		InfoWriter:  RollingFile(f.Path, f.InfoLog, f.InfoMaxSize, f.InfoMaxAge, f.InfoMaxBackups),
		TraceWriter: RollingFile(f.Path, f.TraceLog, f.TraceMaxSize, f.TraceMaxAge, f.TraceMaxBackups),
		WarnWriter:  RollingFile(f.Path, f.WarnLog, f.WarnMaxSize, f.WarnMaxAge, f.WarnMaxBackups),
	}
}

func consoleWriter(out io.Writer, useConsoleWriter bool) io.Writer {
	if !useConsoleWriter {
		return out
	}

	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    false,
		TimeFormat: zerolog.TimeFieldFormat,
	}
}

// NewConsoleWriter sends debug and info to stdout and everything else to stderr.
func NewConsoleWriter(cfg Log) io.Writer {
	pretty := cfg.Console.UseConsoleWriter

	return &LevelWriter{
		ErrorWriter: consoleWriter(os.Stderr, pretty),
		InfoWriter:  consoleWriter(os.Stdout, pretty),
		TraceWriter: consoleWriter(os.Stderr, pretty),
		WarnWriter:  consoleWriter(os.Stderr, pretty),
	}
}
