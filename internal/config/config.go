package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// DefaultServerURL is used when neither flag, environment, nor config
	// file provides a server address.
	DefaultServerURL = "http://localhost:3000/api/brain"

	configName   = "config"
	configType   = "toml"
	configDir    = "brainctl"
	configFile   = "config.toml"
	serverURLKey = "server.url"
	serverEnvVar = "BRAINCTL_SERVER"

	configFileMode = 0o644
	configDirMode  = 0o755
)

type Config struct {
	ServerURL string
}

// Load resolves the server URL from, in increasing precedence, the
// built-in default, the config file, and the BRAINCTL_SERVER environment
// variable. A missing config file is not an error.
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	dir, err := Dir()
	if err != nil {
		return Config{}, err
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(dir)
	cfg.SetDefault(serverURLKey, DefaultServerURL)
	if err := cfg.BindEnv(serverURLKey, serverEnvVar); err != nil {
		return Config{}, fmt.Errorf("bind server env var: %w", err)
	}

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	serverURL := cfg.GetString(serverURLKey)
	if serverURL == "" {
		return Config{}, errors.New("server url is empty")
	}

	return Config{ServerURL: serverURL}, nil
}

// Dir returns the directory searched for the config file.
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", configDir), nil
}

type fileSchema struct {
	Server serverSchema `toml:"server"`
}

type serverSchema struct {
	URL string `toml:"url"`
}

// WriteDefault writes a config file with the built-in defaults and returns
// its path. It refuses to overwrite an existing file unless force is set.
func WriteDefault(force bool) (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, configFile)

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("config file already exists at %s", path)
		}
	}

	encoded, err := toml.Marshal(fileSchema{Server: serverSchema{URL: DefaultServerURL}})
	if err != nil {
		return "", fmt.Errorf("encode default config: %w", err)
	}

	if err := os.MkdirAll(dir, configDirMode); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, encoded, configFileMode); err != nil {
		return "", fmt.Errorf("write config file: %w", err)
	}

	return path, nil
}
