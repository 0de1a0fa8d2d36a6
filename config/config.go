package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"videogpt/saver"
	"videogpt/summary"
	"videogpt/transcript"
)

const (
	SupadataEnv  = "SUPADATA_KEY"
	AnthropicEnv = "ANTHROPIC_KEY"
	OpenAiEnv    = "OPENAI_API_KEY"
)

var ErrMissingKey = errors.New("missing required credential")

type Config struct {
	Provider string         `yaml:"provider"`
	Level    string         `yaml:"level"`
	Output   OutputConfig   `yaml:"output"`
	Supadata SupadataConfig `yaml:"supadata"`
	HTTP     HTTPConfig     `yaml:"http"`

	Keys Keys `yaml:"-"`
}

type OutputConfig struct {
	Folder string `yaml:"folder"`
}

type SupadataConfig struct {
	BaseURL string `yaml:"base_url"`
}

type HTTPConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

// Keys are only ever read from the environment.
type Keys struct {
	Supadata string
	LLM      string
}

// Load reads the YAML file at path; an empty path yields defaults. The result
// is not validated yet so that flags can still override it.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects unknown values and fills defaults.
func (c *Config) Validate() error {
	service, err := summary.ParseServiceType(c.Provider)
	if err != nil {
		return err
	}
	c.Provider = string(service)

	level, err := summary.ParseLevel(c.Level)
	if err != nil {
		return err
	}
	c.Level = level.String()

	if c.Output.Folder == "" {
		c.Output.Folder = saver.DefaultFolder
	}
	if c.Supadata.BaseURL == "" {
		c.Supadata.BaseURL = transcript.DefaultBaseURL
	}
	if c.HTTP.Timeout <= 0 {
		c.HTTP.Timeout = transcript.DefaultTimeout
	}
	return nil
}

func (c *Config) ServiceType() summary.ServiceType {
	return summary.ServiceType(c.Provider)
}

// LevelValue assumes Validate has run.
func (c *Config) LevelValue() summary.Level {
	level, _ := summary.ParseLevel(c.Level)
	return level
}

// LoadEnv loads a .env file when one exists. A missing file is fine.
func LoadEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", name, err)
		}
	}
	return nil
}

// ResolveKeys reads the credentials needed for the configured provider and
// fails before any network call when one is missing.
func (c *Config) ResolveKeys() error {
	supadataKey := os.Getenv(SupadataEnv)
	if supadataKey == "" {
		return fmt.Errorf("%w: %s must be set", ErrMissingKey, SupadataEnv)
	}

	llmEnv := AnthropicEnv
	if c.ServiceType() == summary.OpenAiServiceType {
		llmEnv = OpenAiEnv
	}
	llmKey := os.Getenv(llmEnv)
	if llmKey == "" {
		return fmt.Errorf("%w: %s must be set", ErrMissingKey, llmEnv)
	}

	c.Keys = Keys{Supadata: supadataKey, LLM: llmKey}
	return nil
}
