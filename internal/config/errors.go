package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrInvalidGeneratorSize error if generator.size is negative or above generator.maxSize.
	ErrInvalidGeneratorSize = errors.New("toml config generator.size must be between 0 and generator.maxSize")

	// ErrInvalidGeneratorAlphabet error if generator.alphabet can not be addressed by a byte.
	ErrInvalidGeneratorAlphabet = errors.New("toml config generator.alphabet must contain between 1 and 256 symbols")
)
