// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/GoNanoID/GoNanoID/internal/logger"
	"github.com/GoNanoID/GoNanoID/nanoid"
)

const (
	// EnvConfigJSON is the env variable holding a JSON document merged over the toml config.
	EnvConfigJSON = "GO_NANOID_CONFIG_JSON"

	defaultMaxSize      = 1024
	defaultMaxCount     = 1000
	defaultShutDownTime = 5
	defaultAppName      = "go-nanoid"
)

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c             Config
		JSONConfigEnv string
		err           error
	)

	// unset in the file means the default length, an explicit 0 is kept
	c.Generator.Size = nanoid.DefaultSize

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	if _, err = toml.DecodeFile(filepath.Join(path, "main.toml"), &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	// override it from env
	JSONConfigEnv = os.Getenv(EnvConfigJSON)

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	if err = validate(&c); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Default returns a config usable without any config file.
func Default() Config {
	c := Config{
		Title: "GoNanoID",
		Generator: Generator{
			Alphabet: nanoid.SafeSymbols,
			Size:     nanoid.DefaultSize,
		},
		Log: logger.Log{
			LogLevel:                 "info",
			AppName:                  defaultAppName,
			ServiceName:              defaultAppName,
			EnableAccessLogToConsole: true,
			DisableCheckAlive:        true,
			Console:                  logger.Console{Enabled: true},
		},
		Webserver: Webserver{
			Port: 8080, //nolint:mnd
			URL:  "http://localhost:8080",
		},
	}

	applyDefaults(&c)

	return c
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// NanoIDGenerator returns the library generator described by the generator section.
// An empty alphabet leaves the generator on nanoid.SafeAlphabet.
func (g Generator) NanoIDGenerator() nanoid.Generator {
	gen := nanoid.Generator{
		Size:   g.Size,
		Random: nanoid.RandomFor(g.NonSecure),
	}

	if g.Alphabet != "" {
		gen.Alphabet = nanoid.Alphabet(g.Alphabet)
	}

	return gen
}

func applyDefaults(c *Config) {
	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = defaultShutDownTime
	}

	if c.Generator.Alphabet == "" {
		c.Generator.Alphabet = nanoid.SafeSymbols
	}

	if c.Generator.MaxSize == 0 {
		c.Generator.MaxSize = defaultMaxSize
	}

	if c.Generator.MaxCount == 0 {
		c.Generator.MaxCount = defaultMaxCount
	}
}

// validate minimal config settings and fill in defaults.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	// validate webserver listening port
	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	applyDefaults(c)

	if err := nanoid.ValidateAlphabet(nanoid.Alphabet(c.Generator.Alphabet)); err != nil {
		return errors.Wrap(ErrInvalidGeneratorAlphabet, err.Error())
	}

	if c.Generator.Size < 0 || c.Generator.Size > c.Generator.MaxSize {
		return errors.Wrapf(ErrInvalidGeneratorSize, "%s: size %d, maxSize %d",
			invalidErrMessage, c.Generator.Size, c.Generator.MaxSize)
	}

	return nil
}
