// Package handler holds what the web handlers share.
package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/GoNanoID/GoNanoID/internal/config"
	"github.com/GoNanoID/GoNanoID/internal/generator"
)

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, cfg *config.Config, gen *generator.Service)
}

// ErrorResponse is the JSON body of a failed API call.
type ErrorResponse struct {
	Success bool                      `json:"success"`
	Message string                    `json:"message"`
	Errors  []generator.ErrorResponse `json:"errors,omitempty"`
}
