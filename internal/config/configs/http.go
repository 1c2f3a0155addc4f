package configs

import "time"

// HTTP defines configuration for the HTTP server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`

	// CORSOrigins lists the origins allowed to call the campaign API from a
	// browser. Comma separated; empty disables cross-origin access.
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
