package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	envConfigDefaultPath = "TOPICHAT_CONFIG_DEFAULT_PATH"
	defaultConfigName    = "config.yaml"
)

// Load builds configuration from defaults, optional config file, env vars, and returns the resolved path.
// Precedence: defaults < config file < env vars < caller overrides.
func Load(logger *zerolog.Logger, explicitPath string) (Config, string, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("addr", cfg.Addr)
	v.SetDefault("read_header_timeout", cfg.ReadHeaderTimeout)
	v.SetDefault("shutdown_timeout", cfg.ShutdownTimeout)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("log_format", cfg.LogFormat)

	v.SetEnvPrefix("TOPICHAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath := resolveConfigPath(explicitPath)
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			if writeErr := writeDefaultConfig(configPath, cfg); writeErr != nil && logger != nil {
				logger.Warn().Err(writeErr).Str("path", configPath).Msg("failed to write default config")
			} else if logger != nil {
				logger.Info().Str("path", configPath).Msg("created default config")
			}
			// try reading again in case it was just written
			if readErr := v.ReadInConfig(); readErr != nil && logger != nil {
				logger.Warn().Err(readErr).Str("path", configPath).Msg("failed to read config after writing default")
			}
		} else {
			return cfg, configPath, fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, configPath, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validateChannels(cfg.Channels); err != nil {
		return cfg, configPath, err
	}

	return cfg, configPath, nil
}

// validateChannels rejects a topology the hub cannot build: no channels,
// duplicate names, or rooms duplicated within one channel.
func validateChannels(channels []ChannelConfig) error {
	if len(channels) == 0 {
		return errors.New("config: at least one channel is required")
	}
	seen := make(map[string]struct{}, len(channels))
	for _, ch := range channels {
		if strings.TrimSpace(ch.Name) == "" {
			return errors.New("config: channel name must not be empty")
		}
		if _, dup := seen[ch.Name]; dup {
			return fmt.Errorf("config: duplicate channel %q", ch.Name)
		}
		seen[ch.Name] = struct{}{}

		if len(ch.Rooms) == 0 {
			return fmt.Errorf("config: channel %q has no rooms", ch.Name)
		}
		rooms := make(map[string]struct{}, len(ch.Rooms))
		for _, room := range ch.Rooms {
			if strings.TrimSpace(room) == "" {
				return fmt.Errorf("config: channel %q has an empty room name", ch.Name)
			}
			if _, dup := rooms[room]; dup {
				return fmt.Errorf("config: duplicate room %q in channel %q", room, ch.Name)
			}
			rooms[room] = struct{}{}
		}
	}
	return nil
}

func resolveConfigPath(explicitPath string) string {
	if explicitPath != "" {
		return explicitPath
	}

	if base := os.Getenv(envConfigDefaultPath); base != "" {
		if err := os.MkdirAll(base, 0o755); err == nil {
			return filepath.Join(base, defaultConfigName)
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return defaultConfigName
	}
	return filepath.Join(cwd, defaultConfigName)
}

func writeDefaultConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
