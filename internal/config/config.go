// Package config loads pathfs CLI settings from YAML, .env files and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/pathfs/host/minio"
)

// Supported backends.
const (
	BackendLocal  = "local"
	BackendMemory = "memory"
	BackendMinIO  = "minio"
)

// Config selects and configures the host the CLI runs against.
type Config struct {
	// Backend is one of "local", "memory" or "minio".
	Backend string `yaml:"backend"`
	// Root confines the local backend. Empty means the working directory.
	Root  string      `yaml:"root"`
	MinIO MinIOConfig `yaml:"minio"`
}

// MinIOConfig holds the settings for the minio backend.
type MinIOConfig struct {
	Endpoint             string `yaml:"endpoint"`
	Bucket               string `yaml:"bucket"`
	AccessKey            string `yaml:"access_key"`
	SecretKey            string `yaml:"secret_key"`
	UseSSL               bool   `yaml:"use_ssl"`
	Prefix               string `yaml:"prefix"`
	MaxDeleteConcurrency int    `yaml:"max_delete_concurrency"`
}

// HostConfig converts the settings to a minio.Config.
func (m MinIOConfig) HostConfig() minio.Config {
	return minio.Config{
		Endpoint:             m.Endpoint,
		Bucket:               m.Bucket,
		AccessKey:            m.AccessKey,
		SecretKey:            m.SecretKey,
		UseSSL:               m.UseSSL,
		Prefix:               m.Prefix,
		MaxDeleteConcurrency: m.MaxDeleteConcurrency,
	}
}

func DefaultConfig() *Config {
	return &Config{
		Backend: BackendLocal,
		MinIO: MinIOConfig{
			MaxDeleteConcurrency: 10,
		},
	}
}

// ConfigPath returns the default config file location.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".pathfs", "config.yaml")
}

// LoadDotEnv loads .env files into the environment without overriding
// variables that are already set. Missing files are ignored.
// With no arguments it loads ".env" in the working directory.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// Load reads the config file at path (ConfigPath if empty) and applies
// environment overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = ConfigPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides settings from PATHFS_* and MINIO_* variables.
// Empty variables are ignored.
func (c *Config) applyEnv() error {
	set := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	set(&c.Backend, "PATHFS_BACKEND")
	set(&c.Root, "PATHFS_ROOT")
	set(&c.MinIO.Endpoint, "MINIO_ENDPOINT")
	set(&c.MinIO.Bucket, "MINIO_BUCKET")
	set(&c.MinIO.AccessKey, "MINIO_ACCESS_KEY")
	set(&c.MinIO.SecretKey, "MINIO_SECRET_KEY")
	set(&c.MinIO.Prefix, "MINIO_PREFIX")

	if v := os.Getenv("MINIO_USE_SSL"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("MINIO_USE_SSL: %w", err)
		}
		c.MinIO.UseSSL = b
	}
	return nil
}

// Validate checks that the backend is known and fully configured.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendLocal, BackendMemory:
		return nil
	case BackendMinIO:
		m := c.MinIO
		switch {
		case m.Endpoint == "":
			return errors.New("minio: endpoint is required")
		case m.Bucket == "":
			return errors.New("minio: bucket is required")
		case m.AccessKey == "" || m.SecretKey == "":
			return errors.New("minio: access key and secret key are required")
		case m.MaxDeleteConcurrency < 0:
			return errors.New("minio: max_delete_concurrency must not be negative")
		}
		return nil
	}
	return fmt.Errorf("unknown backend %q", c.Backend)
}

func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
