package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoaderOption customizes Load.
type LoaderOption func(*loaderConfig)

type loaderConfig struct {
	configFile string
	envFile    string
}

// WithConfigFile sets an explicit config file path instead of the
// standard search locations.
func WithConfigFile(path string) LoaderOption {
	return func(lc *loaderConfig) { lc.configFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *loaderConfig) { lc.envFile = path }
}

// Load reads configuration into cfg. An optional YAML file provides
// the base values, a .env file (if present) seeds the environment,
// and environment variables override both. Missing files are not an
// error; a malformed config file is.
func Load(serviceName string, cfg any, opts ...LoaderOption) error {
	var lc loaderConfig
	for _, opt := range opts {
		opt(&lc)
	}

	if lc.envFile == "" {
		lc.envFile = findFirst(".env." + serviceName, ".env")
	}
	if lc.envFile != "" {
		if err := godotenv.Load(lc.envFile); err != nil {
			return fmt.Errorf("loading env file %s: %w", lc.envFile, err)
		}
	}

	v := viper.New()
	if lc.configFile == "" {
		lc.configFile = findFirst(
			fmt.Sprintf("./cmd/%s/config.yml", serviceName),
			"./config.yml",
			"./config/config.yml",
		)
	}
	if lc.configFile != "" {
		v.SetConfigFile(lc.configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", lc.configFile, err)
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	bindEnvKeys(v)

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unmarshaling config for %s: %w", serviceName, err)
	}
	return nil
}

// findFirst returns the first path that exists, or "".
func findFirst(paths ...string) string {
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// bindEnvKeys explicitly binds every environment variable whose name
// maps onto a nested config key, so AutomaticEnv covers keys absent
// from the config file.
func bindEnvKeys(v *viper.Viper) {
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 {
			continue
		}
		key := strings.ToLower(pair[0])
		if !strings.Contains(key, "_") {
			continue
		}
		v.Set(strings.Replace(key, "_", ".", 1), pair[1])
	}
}
