package config

import (
	"github.com/GoNanoID/GoNanoID/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	Generator Generator
	Log       logger.Log
	Title     string
	Webserver Webserver
}

// Generator holds the id generation defaults.
type Generator struct {
	Alphabet  string // symbols ids are built from, empty means the url-safe default
	Size      int    // default id length, 21 if missing in main.toml, 0 yields empty ids
	NonSecure bool   // use math/rand instead of crypto/rand
	MaxSize   int    // largest id length a client may request
	MaxCount  int    // largest number of ids per request
}

// Webserver implement webserver settings.
type Webserver struct {
	DisableRecover bool   // disable recover middleware
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown
	URL            string // base url for the webserver
}
