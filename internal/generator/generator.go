package generator

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	pkgerrors "github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/GoNanoID/GoNanoID/internal/config"
	"github.com/GoNanoID/GoNanoID/nanoid"
)

// Request asks for Count ids of Size symbols over Alphabet.
type Request struct {
	Size     int    `json:"size"     validate:"gte=0"`
	Alphabet string `json:"alphabet" validate:"required,max=256"`
	Count    int    `json:"count"    validate:"gte=1"`
}

// Response holds the generated ids.
type Response struct {
	IDs      []string `json:"ids"`
	Size     int      `json:"size"`
	Strategy string   `json:"strategy"`
}

// Service generates ids within the limits of a generator config.
type Service struct {
	cfg       config.Generator
	random    nanoid.Random
	validator *validator.Validate
	metrics   *Metrics
}

// New creates a generator service. Its metrics are registered with reg.
func New(cfg config.Generator, reg prometheus.Registerer) (*Service, error) {
	if cfg.Alphabet == "" {
		cfg.Alphabet = nanoid.SafeSymbols
	}

	gen := cfg.NanoIDGenerator()
	if err := gen.Validate(); err != nil {
		return nil, pkgerrors.Wrap(err, "generator config")
	}

	s := &Service{
		cfg:       cfg,
		random:    gen.Random,
		validator: validator.New(validator.WithRequiredStructEnabled()),
		metrics:   NewMetrics(reg),
	}

	s.validator.RegisterStructValidation(s.validateLimits, Request{})

	log.Debug().
		Int("size", gen.Size).
		Int("alphabet", len(gen.Alphabet)).
		Bool("nonSecure", cfg.NonSecure).
		Str("strategy", gen.Strategy().String()).
		Msg("generator service created")

	return s, nil
}

// WithRandom replaces the random source, for tests and debugging.
// It is not synchronised and must be called before the service is shared,
// e.g. before it is handed to the web service.
func (s *Service) WithRandom(random nanoid.Random) *Service {
	s.random = random

	return s
}

// Metrics returns the service collectors.
func (s *Service) Metrics() *Metrics {
	return s.metrics
}

// Defaults returns a request for a single id with the configured alphabet and size.
func (s *Service) Defaults() Request {
	return Request{
		Size:     s.cfg.Size,
		Alphabet: s.cfg.Alphabet,
		Count:    1,
	}
}

func (s *Service) validateLimits(sl validator.StructLevel) {
	req, ok := sl.Current().Interface().(Request)
	if !ok {
		return
	}

	if req.Size > s.cfg.MaxSize {
		sl.ReportError(req.Size, "Size", "size", "lte", strconv.Itoa(s.cfg.MaxSize))
	}

	if req.Count > s.cfg.MaxCount {
		sl.ReportError(req.Count, "Count", "count", "lte", strconv.Itoa(s.cfg.MaxCount))
	}
}

// Validate checks req against the configured limits.
func (s *Service) Validate(req Request) error {
	err := s.validator.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return pkgerrors.Wrap(err, "validate id request")
	}

	verr := &ValidationError{Errors: make([]ErrorResponse, len(validationErrors))}
	for i, fe := range validationErrors {
		verr.Errors[i] = ErrorResponse{
			FailedField: fe.Field(),
			Tag:         fe.Tag(),
			Param:       fe.Param(),
			Value:       fe.Value(),
		}
	}

	return verr
}

// Generate returns req.Count ids. An empty alphabet falls back to the configured one.
func (s *Service) Generate(req Request) (Response, error) {
	if req.Alphabet == "" {
		req.Alphabet = s.cfg.Alphabet
	}

	if err := s.Validate(req); err != nil {
		s.metrics.Errors.WithLabelValues(reasonInvalidRequest).Inc()

		return Response{}, err
	}

	gen := nanoid.Generator{
		Alphabet: nanoid.Alphabet(req.Alphabet),
		Size:     req.Size,
		Random:   s.random,
	}

	var (
		strategy = gen.Strategy().String()
		ids      = make([]string, 0, req.Count)
		start    = time.Now()
	)

	for range req.Count {
		id, err := gen.Generate()
		if err != nil {
			s.metrics.Errors.WithLabelValues(reasonRandomSource).Inc()
			log.Error().Err(err).Str("strategy", strategy).Msg("id generation failed")

			return Response{}, pkgerrors.Wrap(err, "generate id")
		}

		ids = append(ids, id)
	}

	s.metrics.Duration.WithLabelValues(strategy).Observe(time.Since(start).Seconds())
	s.metrics.Generated.WithLabelValues(strategy).Add(float64(len(ids)))

	log.Debug().
		Int("count", len(ids)).
		Int("size", req.Size).
		Str("strategy", strategy).
		Msg("ids generated")

	return Response{
		IDs:      ids,
		Size:     req.Size,
		Strategy: strategy,
	}, nil
}
