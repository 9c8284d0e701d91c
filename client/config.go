package main

import "time"

// Config defines the client-side environment variables.
// Every value has a default so the binary runs against a local server
// with no setup at all.
type Config struct {
	ServerURL    string        `env:"CHAT_SERVER_URL,default=http://localhost:8080"`
	PollInterval time.Duration `env:"POLL_INTERVAL,default=2s"`
	HTTPTimeout  time.Duration `env:"HTTP_TIMEOUT,default=5s"`
	LogLevel     string        `env:"LOG_LEVEL,default=WARN"`
}
