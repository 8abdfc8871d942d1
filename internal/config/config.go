package config

import "strings"

// AppConfig holds application-level settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
}

// LunarCrushConfig holds credentials and connection settings for the
// LunarCrush public API.
type LunarCrushConfig struct {
	APIKey  string `mapstructure:"api_key" yaml:"api_key"`
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
	Timeout string `mapstructure:"timeout" yaml:"timeout"` // duration string, e.g., "15s"
}

// GeminiConfig holds settings for the Gemini generative API.
type GeminiConfig struct {
	APIKey string `mapstructure:"api_key" yaml:"api_key"`
	Model  string `mapstructure:"model" yaml:"model"`
}

// OpenAIConfig holds settings for an OpenAI-compatible chat API.
type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key" yaml:"api_key"`
	Model   string `mapstructure:"model" yaml:"model"`
	BaseURL string `mapstructure:"base_url" yaml:"base_url"` // optional, for compatible gateways
}

// InsightConfig selects and configures the narrative analysis backend.
type InsightConfig struct {
	Provider string       `mapstructure:"provider" yaml:"provider"` // "gemini" or "openai"
	Gemini   GeminiConfig `mapstructure:"gemini" yaml:"gemini"`
	OpenAI   OpenAIConfig `mapstructure:"openai" yaml:"openai"`
}

// TrendsConfig controls the market snapshot report.
type TrendsConfig struct {
	IgnoredSymbols []string `mapstructure:"ignored_symbols" yaml:"ignored_symbols"` // majors excluded from the altcoin board
}

// Config is the top-level configuration structure.
type Config struct {
	App        AppConfig        `mapstructure:"app" yaml:"app"`
	LunarCrush LunarCrushConfig `mapstructure:"lunarcrush" yaml:"lunarcrush"`
	Insight    InsightConfig    `mapstructure:"insight" yaml:"insight"`
	Trends     TrendsConfig     `mapstructure:"trends" yaml:"trends"`
}

// FillDefaults applies default values if not provided.
func (c *Config) FillDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.LunarCrush.BaseURL == "" {
		c.LunarCrush.BaseURL = "https://lunarcrush.com/api4/public"
	}
	if c.LunarCrush.Timeout == "" {
		c.LunarCrush.Timeout = "15s"
	}
	if c.Insight.Provider == "" {
		c.Insight.Provider = "gemini"
	}
	if c.Insight.Gemini.Model == "" {
		c.Insight.Gemini.Model = "gemini-2.0-flash"
	}
	if c.Insight.OpenAI.Model == "" {
		c.Insight.OpenAI.Model = "gpt-4o-mini"
	}
	if len(c.Trends.IgnoredSymbols) == 0 {
		c.Trends.IgnoredSymbols = []string{"BTC", "ETH", "USDT", "USDC", "SOL"}
	}
}

// Redacted returns a copy of the config with every secret masked,
// safe for printing.
func (c Config) Redacted() Config {
	c.LunarCrush.APIKey = Mask(c.LunarCrush.APIKey)
	c.Insight.Gemini.APIKey = Mask(c.Insight.Gemini.APIKey)
	c.Insight.OpenAI.APIKey = Mask(c.Insight.OpenAI.APIKey)
	return c
}

// Mask hides the middle of a secret, keeping a short prefix and
// suffix so operators can tell keys apart. Short secrets are fully
// masked.
func Mask(secret string) string {
	r := []rune(secret)
	if len(r) == 0 {
		return ""
	}
	if len(r) <= 10 {
		return strings.Repeat("*", len(r))
	}
	return string(r[:5]) + "..." + string(r[len(r)-5:])
}
