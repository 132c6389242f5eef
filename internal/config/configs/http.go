package configs

import "time"

// HTTP defines configuration for the HTTP server. Port selects the listen
// port; the timeouts bound slow clients and graceful shutdown. ExportRPS
// and ExportBurst rate limit CSV downloads across all clients.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`

	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	ExportRPS   float64 `env:"EXPORT_RPS" envDefault:"5"`
	ExportBurst int     `env:"EXPORT_BURST" envDefault:"10"`
}
