package client

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the client configuration
type Config struct {
	// URL is the CIMOM endpoint, for example https://host:5989/cimom
	URL string `yaml:"url"`
	// Namespace is the default namespace of operations naming none
	Namespace string `yaml:"namespace"`
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
	// Timeout bounds each HTTP exchange
	Timeout time.Duration `yaml:"timeout"`
	// ClassCacheSize is the number of GetClass results kept. Zero
	// disables the cache.
	ClassCacheSize  int    `yaml:"class_cache_size"`
	ProtocolVersion string `yaml:"protocol_version"`
}

// Defaults
const (
	DefaultNamespace       = "root/cimv2"
	DefaultProtocolVersion = "1.0"
	DefaultTimeout         = 60 * time.Second
)

func (c *Config) setDefaults() {
	if c.Namespace == "" {
		c.Namespace = DefaultNamespace
	}
	if c.ProtocolVersion == "" {
		c.ProtocolVersion = DefaultProtocolVersion
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
}

// LoadConfig reads a YAML configuration file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	if c.ClassCacheSize < 0 {
		return nil, errors.Errorf("%s: class_cache_size must not be negative", path)
	}
	c.setDefaults()
	return &c, nil
}
