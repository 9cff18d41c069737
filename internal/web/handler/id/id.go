// Package id serves generated ids over http.
package id

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GoNanoID/GoNanoID/internal/config"
	"github.com/GoNanoID/GoNanoID/internal/generator"
	"github.com/GoNanoID/GoNanoID/internal/web/handler"
)

const (
	// Path returns a JSON batch of ids.
	Path = handler.APIPath + "ids"

	// SinglePath returns one id as plain text.
	SinglePath = handler.APIPath + "id"
)

// Service is the id handler service.
type Service struct {
	handler.Service
	gen *generator.Service
}

// Init registers the id routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, gen *generator.Service) {
	if app == nil || cfg == nil || gen == nil {
		log.Fatal().Msg(handler.ErrNilFatalLogMsg)
		return
	}

	s.gen = gen

	app.Get(Path, s.List)
	app.Get(SinglePath, s.Single)
}

// parseRequest builds a generator request from the query, falling back to the configured defaults.
func (s *Service) parseRequest(c *fiber.Ctx) (generator.Request, error) {
	req := s.gen.Defaults()

	if v := c.Query("alphabet"); v != "" {
		req.Alphabet = v
	}

	for _, p := range []struct {
		key    string
		target *int
	}{
		{"size", &req.Size},
		{"count", &req.Count},
	} {
		v := c.Query(p.key)
		if v == "" {
			continue
		}

		n, err := strconv.Atoi(v)
		if err != nil {
			return req, fiber.NewError(fiber.StatusBadRequest, "query parameter "+p.key+" must be an integer")
		}

		*p.target = n
	}

	return req, nil
}

func (s *Service) generate(c *fiber.Ctx) (generator.Response, error) {
	req, err := s.parseRequest(c)
	if err != nil {
		return generator.Response{}, err
	}

	return s.gen.Generate(req)
}

// sendError maps generator errors to http status codes.
func sendError(c *fiber.Ctx, err error) error {
	var (
		verr     *generator.ValidationError
		fiberErr *fiber.Error
	)

	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(handler.ErrorResponse{
			Message: generator.ErrInvalidRequest.Error(),
			Errors:  verr.Errors,
		})
	case errors.As(err, &fiberErr):
		return c.Status(fiberErr.Code).JSON(handler.ErrorResponse{
			Message: fiberErr.Message,
		})
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("failed to generate ids")

		return c.Status(fiber.StatusInternalServerError).JSON(handler.ErrorResponse{
			Message: "failed to generate ids",
		})
	}
}

// List handles GET /api/v1/ids?size=&alphabet=&count=.
func (s *Service) List(c *fiber.Ctx) error {
	resp, err := s.generate(c)
	if err != nil {
		return sendError(c, err)
	}

	c.Set(fiber.HeaderCacheControl, "no-store")

	return c.JSON(resp)
}

// Single handles GET /api/v1/id?size=&alphabet=. The count parameter is ignored.
func (s *Service) Single(c *fiber.Ctx) error {
	req, err := s.parseRequest(c)
	if err != nil {
		return sendError(c, err)
	}

	req.Count = 1

	resp, err := s.gen.Generate(req)
	if err != nil {
		return sendError(c, err)
	}

	c.Set(fiber.HeaderCacheControl, "no-store")

	return c.SendString(resp.IDs[0])
}
