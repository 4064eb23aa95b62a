package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"draftgen/internal/domain"
)

type Config struct {
	Database DatabaseConfig  `yaml:"database"`
	RabbitMQ RabbitMQConfig  `yaml:"rabbitmq"`
	Provider ProviderConfig  `yaml:"provider"`
	Pipeline PipelineConfig  `yaml:"pipeline"`
	Sections []SectionConfig `yaml:"sections"`
	LogLevel string          `yaml:"log_level"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

// ProviderConfig describes the text-generation provider.
type ProviderConfig struct {
	APIKey    string        `yaml:"api_key"`
	Model     string        `yaml:"model"`
	MaxTokens int           `yaml:"max_tokens"`
	Timeout   time.Duration `yaml:"timeout"`
}

// PipelineConfig bounds a single generation run.
type PipelineConfig struct {
	Timezone         string `yaml:"timezone"`
	MaxPerRun        int    `yaml:"max_per_run"`
	DailyTokenBudget int    `yaml:"daily_token_budget"`
	LookbackDays     int    `yaml:"lookback_days"`
	MinContentWords  int    `yaml:"min_content_words"`
	FocusMode        string `yaml:"focus_mode"`

	location *time.Location `yaml:"-"`
}

// Location resolves the pipeline timezone; schedule slots and "today" are
// always evaluated in this civil time zone.
func (p PipelineConfig) Location() *time.Location {
	if p.location != nil {
		return p.location
	}
	return time.UTC
}

// SectionConfig maps one section to its daily quota and feed URLs.
type SectionConfig struct {
	Name        string   `yaml:"name"`
	DailyTarget int      `yaml:"daily_target"`
	Feeds       []string `yaml:"feeds"`
}

// SectionTargets returns the fixed section -> daily quota mapping.
func (c *Config) SectionTargets() map[string]int {
	targets := make(map[string]int, len(c.Sections))
	for _, s := range c.Sections {
		targets[domain.NormalizeSection(s.Name)] = s.DailyTarget
	}
	return targets
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	loc, err := time.LoadLocation(cfg.Pipeline.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Pipeline.Timezone, err)
	}
	cfg.Pipeline.location = loc

	return &cfg, nil
}

// Validate checks requirements for generation runs; a missing provider
// credential aborts before any run starts.
func (c *Config) Validate() error {
	if c.Provider.APIKey == "" {
		return fmt.Errorf("provider api_key is required (set OPENAI_API_KEY)")
	}
	if len(c.Sections) == 0 {
		return fmt.Errorf("at least one section must be configured")
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.Provider.Model == "" {
		c.Provider.Model = "gpt-4o-mini"
	}
	if c.Provider.MaxTokens == 0 {
		c.Provider.MaxTokens = 2048
	}
	if c.Provider.Timeout == 0 {
		c.Provider.Timeout = 60 * time.Second
	}
	if c.Pipeline.Timezone == "" {
		c.Pipeline.Timezone = "America/New_York"
	}
	if c.Pipeline.MaxPerRun == 0 {
		c.Pipeline.MaxPerRun = 10
	}
	if c.Pipeline.DailyTokenBudget == 0 {
		c.Pipeline.DailyTokenBudget = 150000
	}
	if c.Pipeline.LookbackDays == 0 {
		c.Pipeline.LookbackDays = 30
	}
	if c.Pipeline.MinContentWords == 0 {
		c.Pipeline.MinContentWords = 250
	}
	if c.Pipeline.FocusMode == "" {
		c.Pipeline.FocusMode = "auto"
	}
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "draftgen"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "drafts"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "review_drafts"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
