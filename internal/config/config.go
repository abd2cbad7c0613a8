package config

import "time"

// ChannelConfig names one channel and the rooms inside it.
type ChannelConfig struct {
	Name  string   `mapstructure:"name" yaml:"name"`
	Rooms []string `mapstructure:"rooms" yaml:"rooms"`
}

// Config holds server configuration values.
type Config struct {
	Addr              string          `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration   `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration   `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	LogLevel          string          `mapstructure:"log_level" yaml:"log_level"`
	LogFormat         string          `mapstructure:"log_format" yaml:"log_format"`
	Channels          []ChannelConfig `mapstructure:"channels" yaml:"channels"`
}

// Default returns configuration with reasonable starter defaults.
// The channel table is fixed for the lifetime of the process once loaded.
func Default() Config {
	return Config{
		Addr:              ":8080",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		LogLevel:          "info",
		LogFormat:         "console",
		Channels:          DefaultChannels(),
	}
}

// DefaultChannels is the stock topology: three channels of five rooms each.
func DefaultChannels() []ChannelConfig {
	rooms := []string{"Room1", "Room2", "Room3", "Room4", "Room5"}
	return []ChannelConfig{
		{Name: "General", Rooms: rooms},
		{Name: "Tech", Rooms: rooms},
		{Name: "Random", Rooms: rooms},
	}
}

// UpdateFrom overwrites non-zero values from other config into receiver.
func (c *Config) UpdateFrom(other Config) {
	if other.Addr != "" {
		c.Addr = other.Addr
	}
	if other.ReadHeaderTimeout != 0 {
		c.ReadHeaderTimeout = other.ReadHeaderTimeout
	}
	if other.ShutdownTimeout != 0 {
		c.ShutdownTimeout = other.ShutdownTimeout
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.LogFormat != "" {
		c.LogFormat = other.LogFormat
	}
	if len(other.Channels) > 0 {
		c.Channels = other.Channels
	}
}
