package service

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete advisor service configuration.
type Config struct {
	Server ServerSettings `hcl:"server,block"`
	Oracle OracleSettings `hcl:"oracle,block"`
}

// ServerSettings contains listener-level configuration.
type ServerSettings struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// OracleSettings configures the generative oracle endpoint and the
// agreement protocol around it.
type OracleSettings struct {
	URL       string `hcl:"url,optional"`
	Model     string `hcl:"model,optional"`
	APIKeyEnv string `hcl:"api_key_env,optional"`
	TimeoutMs int    `hcl:"timeout_ms,optional"`

	// Validators is the number of independent validator runs per request.
	Validators int `hcl:"validators,optional"`
}

// DefaultConfig returns the default service configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerSettings{
			Address:  "localhost",
			Port:     8080,
			LogLevel: "info",
		},
		Oracle: OracleSettings{
			Model:      "gpt-4o-mini",
			APIKeyEnv:  "OPENAI_API_KEY",
			TimeoutMs:  30000,
			Validators: 1,
		},
	}
}

// LoadConfig loads configuration from an HCL file. A missing file yields
// the defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if config.Server.Address == "" {
		config.Server.Address = "localhost"
	}
	if config.Server.Port == 0 {
		config.Server.Port = 8080
	}
	if config.Server.LogLevel == "" {
		config.Server.LogLevel = "info"
	}
	if config.Oracle.Model == "" {
		config.Oracle.Model = "gpt-4o-mini"
	}
	if config.Oracle.APIKeyEnv == "" {
		config.Oracle.APIKeyEnv = "OPENAI_API_KEY"
	}
	if config.Oracle.TimeoutMs == 0 {
		config.Oracle.TimeoutMs = 30000
	}
	if config.Oracle.Validators == 0 {
		config.Oracle.Validators = 1
	}

	return &config, nil
}

// Validate validates the service configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if c.Oracle.TimeoutMs < 0 {
		return fmt.Errorf("oracle timeout cannot be negative")
	}
	if c.Oracle.Validators < 1 {
		return fmt.Errorf("at least one validator run is required")
	}
	return nil
}

// ListenAddr returns the full listener address.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

// OracleTimeout returns the oracle deadline as a duration.
func (c *Config) OracleTimeout() time.Duration {
	return time.Duration(c.Oracle.TimeoutMs) * time.Millisecond
}
