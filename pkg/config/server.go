package config

import "time"

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	// Host is the bind address.
	Host string `yaml:"host"`

	// Port is the listen port.
	Port int `yaml:"port"`

	// ReadTimeout bounds request header + body reads.
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout bounds response writes. WebSocket connections are
	// exempt: the upgrade hijacks the connection.
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// WSWriteTimeout bounds individual WebSocket frame writes.
	WSWriteTimeout time.Duration `yaml:"ws_write_timeout"`
}

// DefaultServerConfig returns the built-in server defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Host:           "0.0.0.0",
		Port:           8080,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		WSWriteTimeout: 10 * time.Second,
	}
}
