// Package constants defines default configuration values for basicstats:
// serializer names, management HTTP timeouts and environment settings used by the CLI.
package constants

import "time"

const (
	// DefaultSerializer is the serializer used when none is requested.
	DefaultSerializer = "default"
	// DefaultMgmtReadTimeout is the read timeout of the management HTTP server.
	DefaultMgmtReadTimeout = 5 * time.Second
	// DefaultMgmtWriteTimeout is the write timeout of the management HTTP server.
	DefaultMgmtWriteTimeout = 5 * time.Second
	// DefaultShutdownTimeout bounds the graceful shutdown of the management HTTP server.
	DefaultShutdownTimeout = 5 * time.Second
	// EnvPrefix is the prefix of the environment variables read by the CLI.
	EnvPrefix = "BASICSTATS"
)
