// Package core wires configuration and logging into the fx application.
package core

import (
	"fmt"
	"os"
	"path/filepath"

	uberconfig "go.uber.org/config"
	"go.uber.org/fx"
)

// ConfigModule provides the layered YAML configuration.
var ConfigModule = fx.Options(
	fx.Provide(NewConfig),
)

const (
	_envConfigDir     = "WEAVER_CONFIG_DIR"
	_defaultConfigDir = "src/weaver/config"
	_metaFile         = "meta.yaml"
)

// Config wraps a provider so callers can depend on a named component.
type Config struct {
	provider uberconfig.Provider
}

// Get returns the value at the given dotted path.
func (c Config) Get(path string) uberconfig.Value {
	return c.provider.Get(path)
}

// Name identifies the provider.
func (c Config) Name() string {
	return "config"
}

// NewConfig loads meta.yaml from the config directory, then layers every
// listed file that exists, with environment variable expansion.
func NewConfig() (uberconfig.Provider, error) {
	configDir := configDirPath()

	metaProvider, err := uberconfig.NewYAML(
		uberconfig.File(filepath.Join(configDir, _metaFile)),
		uberconfig.Expand(os.LookupEnv),
	)
	if err != nil {
		return nil, fmt.Errorf("loading meta configuration: %w", err)
	}

	var configFiles []string
	if err := metaProvider.Get("files").Populate(&configFiles); err != nil {
		return nil, fmt.Errorf("reading files list from %s: %w", _metaFile, err)
	}

	var options []uberconfig.YAMLOption
	for _, file := range configFiles {
		fullPath := filepath.Join(configDir, file)
		if _, err := os.Stat(fullPath); err == nil {
			options = append(options, uberconfig.File(fullPath))
		}
	}
	if len(options) == 0 {
		return nil, fmt.Errorf("no configuration files found in %s", configDir)
	}
	options = append(options, uberconfig.Expand(os.LookupEnv))

	provider, err := uberconfig.NewYAML(options...)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	return Config{provider: provider}, nil
}

func configDirPath() string {
	if configDir := os.Getenv(_envConfigDir); configDir != "" {
		return configDir
	}
	// Assumes the binary is run from the repository root.
	return _defaultConfigDir
}
