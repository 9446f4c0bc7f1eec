// Package config loads process configuration for the fileaccess command.
//
// Configuration comes from an optional YAML file, then environment variables
// prefixed with FILEACCESS_, then command line flags applied by the caller.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	ferrors "github.com/jmgilman/fileaccess/errors"
	"github.com/jmgilman/fileaccess/fs/billy"
	"github.com/jmgilman/fileaccess/fs/core"
	"github.com/jmgilman/fileaccess/fs/minio"
	"github.com/jmgilman/fileaccess/internal/logging"
)

// Supported backends.
const (
	BackendLocal  = "local"
	BackendMemory = "memory"
	BackendMinIO  = "minio"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "FILEACCESS_"

// Config is the process configuration.
type Config struct {
	BaseDir  string      `yaml:"base_dir"`
	Backend  string      `yaml:"backend"`
	LogLevel string      `yaml:"log_level"`
	Quiet    bool        `yaml:"quiet"`
	MinIO    MinIOConfig `yaml:"minio"`
}

// MinIOConfig configures the object store backend.
type MinIOConfig struct {
	Endpoint  string `yaml:"endpoint"`
	Bucket    string `yaml:"bucket"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	UseSSL    bool   `yaml:"use_ssl"`
	// Prefix acts as the base directory inside the bucket.
	Prefix string `yaml:"prefix"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		BaseDir:  ".",
		Backend:  BackendLocal,
		LogLevel: logging.LevelWarn,
	}
}

// Load reads the YAML file at path over the defaults and applies the
// environment. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			kind := ferrors.Classify(err)
			return nil, ferrors.WrapWithContext(err, kind, "failed to read config file",
				map[string]interface{}{"path": path})
		}
		if err := Parse(data, cfg); err != nil {
			return nil, ferrors.WithContext(err, "path", path)
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML into cfg. Unknown keys are rejected.
func Parse(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !ferrors.Is(err, io.EOF) {
		return ferrors.Wrap(ferrors.Malformed(err), ferrors.KindMalformedContent, "failed to parse config")
	}
	return nil
}

// ApplyEnv overrides fields from environment variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}
	boolean := func(name string, dst *bool) error {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return ferrors.Wrapf(err, ferrors.KindInvalidRequest, "invalid value for %s%s", EnvPrefix, name)
		}
		*dst = b
		return nil
	}

	str("BASE_DIR", &c.BaseDir)
	str("BACKEND", &c.Backend)
	str("LOG_LEVEL", &c.LogLevel)
	str("MINIO_ENDPOINT", &c.MinIO.Endpoint)
	str("MINIO_BUCKET", &c.MinIO.Bucket)
	str("MINIO_ACCESS_KEY", &c.MinIO.AccessKey)
	str("MINIO_SECRET_KEY", &c.MinIO.SecretKey)
	str("MINIO_PREFIX", &c.MinIO.Prefix)
	if err := boolean("QUIET", &c.Quiet); err != nil {
		return err
	}
	return boolean("MINIO_USE_SSL", &c.MinIO.UseSSL)
}

// Validate checks that the configuration can build a filesystem.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return ferrors.Wrap(err, ferrors.KindInvalidRequest, "invalid log level")
	}

	switch c.Backend {
	case BackendLocal:
		if strings.TrimSpace(c.BaseDir) == "" {
			return ferrors.New(ferrors.KindInvalidRequest, "base_dir is required for the local backend")
		}
	case BackendMemory:
	case BackendMinIO:
		var missing []string
		if c.MinIO.Endpoint == "" {
			missing = append(missing, "endpoint")
		}
		if c.MinIO.Bucket == "" {
			missing = append(missing, "bucket")
		}
		if c.MinIO.AccessKey == "" {
			missing = append(missing, "access_key")
		}
		if c.MinIO.SecretKey == "" {
			missing = append(missing, "secret_key")
		}
		if len(missing) > 0 {
			return ferrors.Newf(ferrors.KindInvalidRequest, "minio backend requires %s", strings.Join(missing, ", "))
		}
	default:
		return ferrors.Newf(ferrors.KindInvalidRequest, "unknown backend %q", c.Backend)
	}
	return nil
}

// BaseDirAbs returns the absolute base directory for the local backend.
func (c *Config) BaseDirAbs() (string, error) {
	abs, err := filepath.Abs(c.BaseDir)
	if err != nil {
		return "", ferrors.Wrap(err, ferrors.KindGenericOSFailure, "failed to resolve base directory")
	}
	return abs, nil
}

// NewFS builds the filesystem selected by cfg.
func NewFS(cfg *Config) (core.FS, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Backend {
	case BackendMemory:
		return billy.NewMemory(), nil
	case BackendMinIO:
		mfs, err := minio.NewMinIO(minio.Config{
			Endpoint:  cfg.MinIO.Endpoint,
			Bucket:    cfg.MinIO.Bucket,
			AccessKey: cfg.MinIO.AccessKey,
			SecretKey: cfg.MinIO.SecretKey,
			UseSSL:    cfg.MinIO.UseSSL,
			Prefix:    cfg.MinIO.Prefix,
		})
		if err != nil {
			return nil, ferrors.Wrap(err, ferrors.KindInvalidRequest, "failed to configure minio backend")
		}
		return mfs, nil
	default:
		base, err := cfg.BaseDirAbs()
		if err != nil {
			return nil, err
		}
		return billy.NewLocal(base), nil
	}
}

// String renders the configuration with secrets masked.
func (c *Config) String() string {
	masked := *c
	if masked.MinIO.SecretKey != "" {
		masked.MinIO.SecretKey = "****"
	}
	out, err := yaml.Marshal(&masked)
	if err != nil {
		return fmt.Sprintf("%+v", masked)
	}
	return string(out)
}
