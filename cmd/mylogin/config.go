package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"mylogin/adapters"

	"gopkg.in/yaml.v3"
)

// Env variable names.
const (
	envConfigPath      = "CONFIG_PATH"
	envHTTPPort        = "SERVICE_PORT_HTTP"
	envGRPCPort        = "SERVICE_PORT_GRPC"
	envStoreURI        = "STORE_URI"
	envStoreDatabase   = "STORE_DATABASE"
	envStoreCollection = "STORE_COLLECTION"
	envStoreTimeout    = "STORE_TIMEOUT"
	envStaticDir       = "STATIC_DIR"
	envStaticIndex     = "STATIC_INDEX"
	envHealthInterval  = "HEALTH_INTERVAL"
	envLogLevel        = "LOG_LEVEL"
)

// Config holds the mylogin configuration. Values come from defaults, then the YAML file named
// by CONFIG_PATH, then environment variables.
type Config struct {
	HTTPPort int          `yaml:"http_port"`
	GRPCPort int          `yaml:"grpc_port"`
	Store    StoreConfig  `yaml:"store"`
	Static   StaticConfig `yaml:"static"`
	Health   HealthConfig `yaml:"health"`
	LogLevel string       `yaml:"log_level"`
}

// StoreConfig selects the credential store and bounds the store work of one request.
type StoreConfig struct {
	adapters.StoreConfig `yaml:",inline"`
	Timeout              time.Duration `yaml:"timeout"`
}

// StaticConfig names the static directory and the document served for GET /, relative to Dir.
type StaticConfig struct {
	Dir   string `yaml:"dir"`
	Index string `yaml:"index"`
}

type HealthConfig struct {
	Interval time.Duration `yaml:"interval"`
}

func defaultConfig() *Config {
	return &Config{
		HTTPPort: 3000,
		GRPCPort: 3001,
		Store: StoreConfig{
			StoreConfig: adapters.StoreConfig{
				URI:        "redis://localhost:6379/0",
				Database:   "login",
				Collection: "credential",
			},
			Timeout: 5 * time.Second,
		},
		Static: StaticConfig{
			Dir:   "public",
			Index: "index.html",
		},
		Health: HealthConfig{
			Interval: 10 * time.Second,
		},
		LogLevel: "info",
	}
}

// loadYAMLConfig reads the YAML file at path over cfg. Keys missing from the file keep their values.
func loadYAMLConfig(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// LoadConfig builds the configuration and validates it.
func LoadConfig() (*Config, error) {
	cfg := defaultConfig()

	if configPath := strings.TrimSpace(os.Getenv(envConfigPath)); configPath != "" {
		if !filepath.IsAbs(configPath) {
			abs, err := filepath.Abs(configPath)
			if err != nil {
				return nil, err
			}
			configPath = abs
		}
		if err := loadYAMLConfig(configPath, cfg); err != nil {
			return nil, fmt.Errorf("load config %s: %w", configPath, err)
		}
	}

	var err error
	if cfg.HTTPPort, err = envInt(envHTTPPort, cfg.HTTPPort); err != nil {
		return nil, err
	}
	if cfg.GRPCPort, err = envInt(envGRPCPort, cfg.GRPCPort); err != nil {
		return nil, err
	}
	if cfg.Store.Timeout, err = envDuration(envStoreTimeout, cfg.Store.Timeout); err != nil {
		return nil, err
	}
	if cfg.Health.Interval, err = envDuration(envHealthInterval, cfg.Health.Interval); err != nil {
		return nil, err
	}
	cfg.Store.URI = envString(envStoreURI, cfg.Store.URI)
	cfg.Store.Database = envString(envStoreDatabase, cfg.Store.Database)
	cfg.Store.Collection = envString(envStoreCollection, cfg.Store.Collection)
	cfg.Static.Dir = envString(envStaticDir, cfg.Static.Dir)
	cfg.Static.Index = envString(envStaticIndex, cfg.Static.Index)
	cfg.LogLevel = strings.ToLower(envString(envLogLevel, cfg.LogLevel))

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("%s must be 1-65535, got %d", envHTTPPort, c.HTTPPort)
	}
	if c.GRPCPort < 0 || c.GRPCPort > 65535 {
		return fmt.Errorf("%s must be 0-65535, got %d", envGRPCPort, c.GRPCPort)
	}
	if c.Store.Timeout <= 0 {
		return fmt.Errorf("%s must be positive, got %s", envStoreTimeout, c.Store.Timeout)
	}
	if c.Health.Interval <= 0 {
		return fmt.Errorf("%s must be positive, got %s", envHealthInterval, c.Health.Interval)
	}
	if err := validateName(envStoreDatabase, c.Store.Database); err != nil {
		return err
	}
	if err := validateName(envStoreCollection, c.Store.Collection); err != nil {
		return err
	}
	switch {
	case strings.HasPrefix(c.Store.URI, "redis://"),
		strings.HasPrefix(c.Store.URI, "rediss://"),
		strings.HasPrefix(c.Store.URI, "sqlite://"):
	default:
		return fmt.Errorf("%s must start with redis://, rediss:// or sqlite://, got %q", envStoreURI, c.Store.URI)
	}
	if strings.TrimSpace(c.Static.Dir) == "" {
		return fmt.Errorf("%s is required", envStaticDir)
	}
	if strings.TrimSpace(c.Static.Index) == "" {
		return fmt.Errorf("%s is required", envStaticIndex)
	}
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func validateName(env, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", env)
	}
	if strings.Contains(value, ":") {
		return fmt.Errorf("%s must not contain ':', got %q", env, value)
	}
	return nil
}

func envString(name, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return fallback
}

func envInt(name string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return n, nil
}

func envDuration(name string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return d, nil
}
