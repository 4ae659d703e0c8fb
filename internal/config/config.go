package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alan-mat/kgsearch/internal/api"
	"github.com/goccy/go-yaml"
)

const (
	DefaultConfigPath = "kgsearch.yaml"
	DefaultTimeout    = 30 * time.Second

	TokenEnv = "KG_API_KEY"

	OutputTable = "table"
	OutputJSON  = "json"
)

var (
	ErrInvalidOutput  = errors.New("output must be 'table' or 'json'")
	ErrInvalidTimeout = errors.New("invalid timeout")
)

type Config struct {
	Token    string `yaml:"token"`
	Endpoint string `yaml:"endpoint"`
	Language string `yaml:"language"`
	Limit    int    `yaml:"limit"`
	Timeout  string `yaml:"timeout"`
	Output   string `yaml:"output"`

	timeout time.Duration
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	conf := &Config{}
	conf.applyDefaults()
	return conf
}

// ReadConfig loads a YAML config file. Errors from reading the file are
// returned unwrapped so callers can test for fs.ErrNotExist.
func ReadConfig(path string) (*Config, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var conf Config
	if err := yaml.Unmarshal(file, &conf); err != nil {
		return nil, fmt.Errorf("failed to parse config '%s': %w", path, err)
	}

	if conf.Timeout != "" {
		d, err := time.ParseDuration(conf.Timeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w '%s'", ErrInvalidTimeout, conf.Timeout)
		}
		conf.timeout = d
	}

	switch conf.Output {
	case "", OutputTable, OutputJSON:
	default:
		return nil, ErrInvalidOutput
	}

	conf.applyDefaults()
	return &conf, nil
}

func (c *Config) applyDefaults() {
	if c.Token == "" {
		c.Token = os.Getenv(TokenEnv)
	}
	if c.Limit == 0 {
		c.Limit = api.EntitySearchDefaultLimit
	}
	if c.timeout == 0 {
		c.timeout = DefaultTimeout
	}
	if c.Output == "" {
		c.Output = OutputTable
	}
}

func (c *Config) TimeoutDuration() time.Duration {
	return c.timeout
}
