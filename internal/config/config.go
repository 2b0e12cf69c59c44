package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bryanwahyu/behavior-assessor/internal/domain/assessment"
)

type Config struct {
	Server Server `yaml:"server"`
	LLM    LLM    `yaml:"llm"`
	Schema struct {
		Variant string `yaml:"variant"`
	} `yaml:"schema"`
	Log struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"log"`
}

type Server struct {
	Port           int           `yaml:"port"`
	ReadTimeout    time.Duration `yaml:"readTimeout"`
	WriteTimeout   time.Duration `yaml:"writeTimeout"`
	IdleTimeout    time.Duration `yaml:"idleTimeout"`
	AllowedOrigins []string      `yaml:"allowedOrigins"`
	RateLimit      struct {
		PerSecond float64 `yaml:"perSecond"`
		Burst     int     `yaml:"burst"`
	} `yaml:"rateLimit"`
}

type LLM struct {
	Provider   string        `yaml:"provider"`
	APIKey     string        `yaml:"apiKey"`
	BaseURL    string        `yaml:"baseURL"`
	Model      string        `yaml:"model"`
	MaxRetries int           `yaml:"maxRetries"`
	MaxTokens  int           `yaml:"maxTokens"`
	RPM        float64       `yaml:"rpm"`
	Burst      int           `yaml:"burst"`
	Timeout    time.Duration `yaml:"timeout"`
}

const (
	ProviderNone   = "none"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderCompat = "compat"
)

// BackendVariant is the schema a provider's client is bound to. Backends
// that reject deep nesting are bound to the flat schema.
func (l LLM) BackendVariant() assessment.Variant {
	switch l.Provider {
	case ProviderGemini, ProviderCompat:
		return assessment.VariantFlat
	}
	return assessment.VariantNested
}

// Variant is the wire variant served by this deployment.
func (c *Config) Variant() assessment.Variant {
	return assessment.Variant(c.Schema.Variant)
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	var cfg Config
	cfg.Server.Port = 8000
	cfg.Server.ReadTimeout = 15 * time.Second
	cfg.Server.WriteTimeout = 90 * time.Second
	cfg.Server.IdleTimeout = 60 * time.Second
	cfg.Server.AllowedOrigins = []string{"http://localhost:3000", "http://localhost:3001"}
	cfg.Server.RateLimit.PerSecond = 2
	cfg.Server.RateLimit.Burst = 10
	cfg.LLM.Provider = ProviderOpenAI
	cfg.LLM.Model = "gpt-4o"
	cfg.LLM.MaxRetries = 3
	cfg.LLM.MaxTokens = 4096
	cfg.LLM.RPM = 60
	cfg.LLM.Burst = 1
	cfg.LLM.Timeout = 60 * time.Second
	cfg.Schema.Variant = string(assessment.VariantNested)
	cfg.Log.Level = "info"
	return &cfg
}

// Load reads the yaml file at path over the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PORT: %w", err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.LLM.Provider = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		c.LLM.BaseURL = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if c.LLM.APIKey == "" {
		switch c.LLM.Provider {
		case ProviderOpenAI, ProviderCompat:
			c.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		case ProviderGemini:
			c.LLM.APIKey = os.Getenv("GEMINI_API_KEY")
		}
	}
	if v := os.Getenv("SCHEMA_VARIANT"); v != "" {
		c.Schema.Variant = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	return nil
}

// Validate rejects unknown providers and variants, and deployments that
// would have to expand a flat backend reply into the nested variant.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderNone, ProviderOpenAI, ProviderGemini, ProviderCompat:
	default:
		return fmt.Errorf("llm.provider %q: want one of none, openai, gemini, compat", c.LLM.Provider)
	}
	v, err := assessment.ParseVariant(c.Schema.Variant)
	if err != nil {
		return fmt.Errorf("schema.variant: %w", err)
	}
	if c.LLM.Provider != ProviderNone && v == assessment.VariantNested && c.LLM.BackendVariant() == assessment.VariantFlat {
		return fmt.Errorf("llm.provider %s only supports the flat schema, set schema.variant to flat", c.LLM.Provider)
	}
	if c.LLM.MaxRetries < 0 {
		return fmt.Errorf("llm.maxRetries must not be negative")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	return nil
}
