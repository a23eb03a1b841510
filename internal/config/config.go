// Package config loads pokelookup's YAML configuration file.
//
// Every key is optional; missing keys keep the values from Default. Unknown
// keys are rejected so typos surface instead of being ignored.
package config

import (
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/pokelookup/internal/clients/pokeapi"
	entities "github.com/KirkDiggler/pokelookup/internal/entities/pokeapi"
	"github.com/KirkDiggler/pokelookup/internal/errors"
	"github.com/KirkDiggler/pokelookup/internal/pkg/batch"
	"github.com/KirkDiggler/pokelookup/internal/repositories/responsecache"
	"github.com/KirkDiggler/pokelookup/internal/services/matchup"
)

// Cache backends
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendNone   = "none"
)

// Backends lists the accepted cache.backend values
var Backends = []string{BackendSQLite, BackendRedis, BackendNone}

const (
	appName         = "pokelookup"
	fileName        = "config.yaml"
	defaultTimeout  = 30 * time.Second
	defaultRedis    = "localhost:6379"
	defaultGRPCAddr = "localhost:50051"
)

// Config holds all runtime configuration
type Config struct {
	Language string       `yaml:"language"`
	API      APIConfig    `yaml:"api"`
	Cache    CacheConfig  `yaml:"cache"`
	Render   RenderConfig `yaml:"render"`
	Server   ServerConfig `yaml:"server"`
}

// APIConfig configures the PokeAPI client
type APIConfig struct {
	BaseURL     string        `yaml:"base_url"`
	Timeout     time.Duration `yaml:"timeout"`
	Concurrency int           `yaml:"concurrency"`
}

// CacheConfig configures the response cache
type CacheConfig struct {
	Backend   string        `yaml:"backend"`
	Dir       string        `yaml:"dir"`
	TTL       time.Duration `yaml:"ttl"`
	RedisAddr string        `yaml:"redis_addr"`
}

// RenderConfig configures text output
type RenderConfig struct {
	ColumnWidth int `yaml:"column_width"`
}

// ServerConfig configures the gRPC server and client commands
type ServerConfig struct {
	Address string `yaml:"address"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Language: entities.DefaultLanguage,
		API: APIConfig{
			BaseURL:     pokeapi.DefaultBaseURL,
			Timeout:     defaultTimeout,
			Concurrency: batch.DefaultLimit,
		},
		Cache: CacheConfig{
			Backend:   BackendSQLite,
			Dir:       DefaultCacheDir(),
			TTL:       responsecache.DefaultTTL,
			RedisAddr: defaultRedis,
		},
		Render: RenderConfig{
			ColumnWidth: matchup.DefaultColumnWidth,
		},
		Server: ServerConfig{
			Address: defaultGRPCAddr,
		},
	}
}

// DefaultCacheDir is ~/.cache/pokelookup, or the platform cache directory
// when the home directory is unknown
func DefaultCacheDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".cache", appName)
	}
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, appName)
	}
	return filepath.Join(os.TempDir(), appName)
}

// DefaultPath is $XDG_CONFIG_HOME/pokelookup/config.yaml
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appName, fileName)
}

// Load reads the file at path. An empty path means DefaultPath, and a
// missing default file yields Default.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return Default(), nil
		}
	}

	f, err := os.Open(path)
	if err != nil {
		if !explicit && stderrors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "config: open %q", path)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, errors.Wrapf(err, "config: parse %q", path)
	}
	return cfg, nil
}

// LoadFromReader decodes YAML from r over Default and validates the result
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "config: decode yaml")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is coherent
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("language", c.Language, entities.Languages, vb)
	errors.ValidateRequired("api.base_url", c.API.BaseURL, vb)
	if c.API.Timeout <= 0 {
		vb.Fieldf("api.timeout", "must be positive, got %s", c.API.Timeout)
	}
	errors.ValidatePositive("api.concurrency", c.API.Concurrency, vb)

	errors.ValidateEnum("cache.backend", c.Cache.Backend, Backends, vb)
	switch c.Cache.Backend {
	case BackendSQLite:
		errors.ValidateRequired("cache.dir", c.Cache.Dir, vb)
	case BackendRedis:
		errors.ValidateRequired("cache.redis_addr", c.Cache.RedisAddr, vb)
	}
	if c.Cache.TTL <= 0 {
		vb.Fieldf("cache.ttl", "must be positive, got %s", c.Cache.TTL)
	}

	errors.ValidatePositive("render.column_width", c.Render.ColumnWidth, vb)
	errors.ValidateRequired("server.address", c.Server.Address, vb)

	return vb.Build()
}
