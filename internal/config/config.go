// Package config loads the gsperm HCL configuration file.
package config

import (
	"fmt"
	"os"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"

	"github.com/chrisstoll1/Square9APIHelperLibrary-sub000/pkg/globalsearch"
)

const (
	DefaultLogLevel = "info"
	DefaultOutput   = "text"
)

// Config is the contents of a gsperm configuration file.
type Config struct {
	// LogLevel is one of trace, debug, info, warn, error or off.
	LogLevel string `hcl:"log_level,optional"`

	// Output is the default output format: text, json or yaml.
	Output string `hcl:"output,optional"`

	// Server holds the GlobalSearch connection settings.
	Server *Server `hcl:"server,block"`
}

// Server configures the GlobalSearch API connection.
type Server struct {
	BaseURL  string `hcl:"base_url"`
	Username string `hcl:"username"`
	Password string `hcl:"password,optional"`

	// Timeout and RetryDelay are Go duration strings such as "30s".
	Timeout    string `hcl:"timeout,optional"`
	RetryDelay string `hcl:"retry_delay,optional"`

	MaxRetries *int  `hcl:"max_retries,optional"`
	TLSVerify  *bool `hcl:"tls_verify,optional"`
}

// Load reads and validates the configuration file at path. String
// expressions may call env("NAME") to read environment variables.
func Load(fs afero.Fs, path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("configuration file path is required")
	}

	src, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("configuration file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	var cfg Config
	if err := hclsimple.Decode(path, src, evalContext(), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.LogLevel,
			validation.In("trace", "debug", "info", "warn", "error", "off")),
		validation.Field(&c.Output, validation.In("text", "json", "yaml")),
		validation.Field(&c.Server),
	)
}

// Validate checks the server block.
func (s *Server) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.BaseURL, validation.Required),
		validation.Field(&s.Username, validation.Required),
		validation.Field(&s.Timeout, validation.By(isDuration)),
		validation.Field(&s.RetryDelay, validation.By(isDuration)),
		validation.Field(&s.MaxRetries, validation.Min(0)),
	)
}

// Level returns the configured log level.
func (c *Config) Level() hclog.Level {
	return hclog.LevelFromString(c.LogLevel)
}

// ClientConfig converts the server block into a GlobalSearch client config.
func (c *Config) ClientConfig() (*globalsearch.Config, error) {
	if c.Server == nil {
		return nil, fmt.Errorf("configuration has no server block")
	}
	s := c.Server

	cfg := globalsearch.DefaultConfig()
	cfg.BaseURL = s.BaseURL
	cfg.Username = s.Username
	cfg.Password = s.Password

	if s.TLSVerify != nil {
		cfg.TLSVerify = s.TLSVerify
	}
	if s.MaxRetries != nil {
		cfg.MaxRetries = s.MaxRetries
	}
	if s.Timeout != "" {
		d, err := time.ParseDuration(s.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout: %w", err)
		}
		cfg.Timeout = d
	}
	if s.RetryDelay != "" {
		d, err := time.ParseDuration(s.RetryDelay)
		if err != nil {
			return nil, fmt.Errorf("invalid retry_delay: %w", err)
		}
		cfg.RetryDelay = d
	}

	return cfg, nil
}

func isDuration(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := time.ParseDuration(s); err != nil {
		return fmt.Errorf("must be a duration such as \"30s\"")
	}
	return nil
}

func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"env": envFunc,
		},
	}
}

// envFunc returns the value of an environment variable, or "" if unset.
var envFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "name", Type: cty.String},
	},
	Type: function.StaticReturnType(cty.String),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		return cty.StringVal(os.Getenv(args[0].AsString())), nil
	},
})
