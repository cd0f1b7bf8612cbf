package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Environment variable names for credentials. Credentials never live in
// config.yaml so the file can be committed.
const (
	EnvFirefliesAPIKey = "FF_API_KEY"
	EnvGeminiAPIKey    = "GEMINI_API_KEY"
	EnvGeminiModel     = "GEMINI_MODEL"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Gemini     GeminiConfig     `yaml:"gemini"`
	Fireflies  FirefliesConfig  `yaml:"fireflies"`
	Paths      PathsConfig      `yaml:"paths"`
	Logging    LoggingConfig    `yaml:"logging"`
	Extraction ExtractionConfig `yaml:"extraction"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type GeminiConfig struct {
	// APIKey is populated from GEMINI_API_KEY, never from YAML.
	APIKey string `yaml:"-"`
	Model  string `yaml:"model"`
	// SchemaMode enables Gemini-side JSON schema enforcement. When off the
	// extractor falls back to prompt-only JSON instructions.
	SchemaMode      *bool `yaml:"schema_mode"`
	MaxOutputTokens int   `yaml:"max_output_tokens"`
}

type FirefliesConfig struct {
	// APIKey is populated from FF_API_KEY, never from YAML.
	APIKey      string `yaml:"-"`
	APIURL      string `yaml:"api_url"`
	Limit       int    `yaml:"limit"`
	TitleFilter string `yaml:"title_filter"`
}

type PathsConfig struct {
	Transcripts string `yaml:"transcripts"`
	Results     string `yaml:"results"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ExtractionConfig struct {
	DefaultMaxItems int `yaml:"default_max_items"`
	MaxConcurrent   int `yaml:"max_concurrent"`
}

// SchemaModeEnabled reports whether Gemini-side schema enforcement is on.
// Defaults to true when unset.
func (g *GeminiConfig) SchemaModeEnabled() bool {
	return g.SchemaMode == nil || *g.SchemaMode
}

// Load reads a YAML config file, overlays credentials from the environment,
// and applies defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.Gemini.APIKey = os.Getenv(EnvGeminiAPIKey)
	cfg.Fireflies.APIKey = os.Getenv(EnvFirefliesAPIKey)
	if model := os.Getenv(EnvGeminiModel); model != "" {
		cfg.Gemini.Model = model
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8000"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.MaxOutputTokens == 0 {
		c.Gemini.MaxOutputTokens = 800
	}
	if c.Fireflies.APIURL == "" {
		c.Fireflies.APIURL = "https://api.fireflies.ai/graphql"
	}
	if c.Fireflies.Limit <= 0 {
		c.Fireflies.Limit = 6
	}
	if c.Paths.Transcripts == "" {
		c.Paths.Transcripts = "data/transcripts"
	}
	if c.Paths.Results == "" {
		c.Paths.Results = "data/results"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Extraction.DefaultMaxItems <= 0 {
		c.Extraction.DefaultMaxItems = 12
	}
	if c.Extraction.DefaultMaxItems > 50 {
		return fmt.Errorf("extraction.default_max_items must be at most 50")
	}
	if c.Extraction.MaxConcurrent <= 0 {
		c.Extraction.MaxConcurrent = 2
	}

	return nil
}
