// Package config loads server configuration from an optional YAML file and
// WARD_* environment overrides. Environment values win over the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"gopkg.in/yaml.v3"
)

// DefaultTimezone is the ward's civil time; date filters and case-number years
// are read in it.
const DefaultTimezone = "Asia/Ho_Chi_Minh"

// Config is the full server configuration.
type Config struct {
	Server   Server   `yaml:"server"`
	Log      Log      `yaml:"log"`
	Registry Registry `yaml:"registry"`
	Redis    Redis    `yaml:"redis"`
	Export   Export   `yaml:"export"`
}

// Server captures HTTP listener configuration.
type Server struct {
	Addr            string        `yaml:"addr"`
	MetricsAddr     string        `yaml:"metrics_addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	DefaultActor    string        `yaml:"default_actor"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Registry tunes list views, reports and seeding.
type Registry struct {
	PageSize          int    `yaml:"page_size"`
	DrillDownPageSize int    `yaml:"drilldown_page_size"`
	Timezone          string `yaml:"timezone"`
	MilitaryHighlight string `yaml:"military_highlight"`
	SeedPath          string `yaml:"seed_path"`
	AuditBuffer       int    `yaml:"audit_buffer"`
}

// Redis backs the case-number sequence. An empty URL keeps the sequence in
// memory.
type Redis struct {
	URL          string        `yaml:"url"`
	KeyPrefix    string        `yaml:"key_prefix"`
	PoolSize     int           `yaml:"pool_size"`
	MinIdleConns int           `yaml:"min_idle_conns"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// Export locates the bucket uploads go to. An empty bucket disables uploads.
type Export struct {
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	Prefix    string `yaml:"prefix"`
	PathStyle bool   `yaml:"path_style"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Server: Server{
			Addr:            ":8080",
			MetricsAddr:     ":9090",
			ShutdownTimeout: 10 * time.Second,
			DefaultActor:    "system",
		},
		Log: Log{Level: "info", Format: "text"},
		Registry: Registry{
			PageSize:          10,
			DrillDownPageSize: 5,
			Timezone:          DefaultTimezone,
		},
		Redis: Redis{
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Export: Export{Region: "ap-southeast-1"},
	}
}

// Load reads path (skipped when empty), applies environment overrides and
// validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

type lookupFunc func(string) (string, bool)

func (c *Config) applyEnv(lookup lookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = strings.TrimSpace(v)
		}
	}
	var errs []error
	num := func(key string, dst *int) {
		if v, ok := lookup(key); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = n
		}
	}
	flag := func(key string, dst *bool) {
		if v, ok := lookup(key); ok {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = b
		}
	}

	str("WARD_ADDR", &c.Server.Addr)
	str("WARD_METRICS_ADDR", &c.Server.MetricsAddr)
	str("WARD_DEFAULT_ACTOR", &c.Server.DefaultActor)
	str("WARD_LOG_LEVEL", &c.Log.Level)
	str("WARD_LOG_FORMAT", &c.Log.Format)
	num("WARD_PAGE_SIZE", &c.Registry.PageSize)
	num("WARD_DRILLDOWN_PAGE_SIZE", &c.Registry.DrillDownPageSize)
	str("WARD_TIMEZONE", &c.Registry.Timezone)
	str("WARD_MILITARY_HIGHLIGHT", &c.Registry.MilitaryHighlight)
	str("WARD_SEED_PATH", &c.Registry.SeedPath)
	num("WARD_AUDIT_BUFFER", &c.Registry.AuditBuffer)
	str("WARD_REDIS_URL", &c.Redis.URL)
	str("WARD_EXPORT_BUCKET", &c.Export.Bucket)
	str("WARD_EXPORT_REGION", &c.Export.Region)
	str("WARD_EXPORT_ENDPOINT", &c.Export.Endpoint)
	str("WARD_EXPORT_PREFIX", &c.Export.Prefix)
	flag("WARD_EXPORT_PATH_STYLE", &c.Export.PathStyle)
	return errors.Join(errs...)
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr is required")
	}
	if c.Registry.PageSize < 1 || c.Registry.DrillDownPageSize < 1 {
		return errors.New("registry page sizes must be positive")
	}
	if c.Registry.AuditBuffer < 0 {
		return errors.New("registry.audit_buffer must not be negative")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

// Location resolves Registry.Timezone.
func (c Config) Location() (*time.Location, error) {
	tz := c.Registry.Timezone
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("registry.timezone: %w", err)
	}
	return loc, nil
}
