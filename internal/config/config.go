package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv     = "BRANDWATCH_CONFIG"
	newsdataKeyEnv    = "NEWSDATA_API_KEY"
	mediastackKeyEnv  = "MEDIASTACK_API_KEY"
	huggingfaceKeyEnv = "HUGGINGFACE_API_KEY"
	slackWebhookEnv   = "SLACK_WEBHOOK_URL"
	serverAddrEnv     = "BRANDWATCH_ADDR"
	frontendOriginEnv = "FRONTEND_URL"
	defaultQuery      = "DS Automobiles"
)

// Config holds high-level settings required across the application.
type Config struct {
	Query     string          `yaml:"query"`
	Logging   LoggingConfig   `yaml:"logging"`
	Server    ServerConfig    `yaml:"server"`
	Providers ProvidersConfig `yaml:"providers"`
	Sentiment SentimentConfig `yaml:"sentiment"`
	Slack     SlackConfig     `yaml:"slack"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// ServerConfig describes the HTTP presentation surface.
type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

// ProvidersConfig groups the news-search providers. Order determines the
// order of the merged article lists.
type ProvidersConfig struct {
	Newsdata   NewsdataConfig   `yaml:"newsdata"`
	Mediastack MediastackConfig `yaml:"mediastack"`
	RSS        RSSConfig        `yaml:"rss"`
	// Order lists the provider names to query, in merge order.
	Order []string `yaml:"order"`
}

// NewsdataConfig wires the newsdata.io REST API.
type NewsdataConfig struct {
	BaseURL string `yaml:"baseUrl"`
	APIKey  string `yaml:"apiKey"`
}

// MediastackConfig wires the mediastack REST API.
type MediastackConfig struct {
	BaseURL string `yaml:"baseUrl"`
	APIKey  string `yaml:"apiKey"`
}

// RSSConfig lists plain feeds queried alongside the search APIs.
type RSSConfig struct {
	Feeds []string `yaml:"feeds"`
}

// SentimentConfig describes the text-classification inference endpoint.
type SentimentConfig struct {
	InferenceURL string `yaml:"inferenceUrl"`
	APIKey       string `yaml:"apiKey"`
}

// SlackConfig wires the incoming-webhook notifications.
type SlackConfig struct {
	WebhookURL string `yaml:"webhookUrl"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()

	if len(cfg.Providers.Order) == 0 {
		cfg.Providers.Order = defaultConfig().Providers.Order
	}

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(newsdataKeyEnv); v != "" {
		c.Providers.Newsdata.APIKey = v
	}

	if v := os.Getenv(mediastackKeyEnv); v != "" {
		c.Providers.Mediastack.APIKey = v
	}

	if v := os.Getenv(huggingfaceKeyEnv); v != "" {
		c.Sentiment.APIKey = v
	}

	if v := os.Getenv(slackWebhookEnv); v != "" {
		c.Slack.WebhookURL = v
	}

	if v := os.Getenv(serverAddrEnv); v != "" {
		c.Server.Addr = v
	}

	if v := os.Getenv(frontendOriginEnv); v != "" {
		c.Server.AllowedOrigins = append(c.Server.AllowedOrigins, v)
	}
}

func mergeConfig(base, override Config) Config {
	if override.Query != "" {
		base.Query = override.Query
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	if override.Server.Addr != "" {
		base.Server.Addr = override.Server.Addr
	}
	if len(override.Server.AllowedOrigins) > 0 {
		base.Server.AllowedOrigins = override.Server.AllowedOrigins
	}

	if override.Providers.Newsdata.BaseURL != "" {
		base.Providers.Newsdata.BaseURL = override.Providers.Newsdata.BaseURL
	}
	if override.Providers.Newsdata.APIKey != "" {
		base.Providers.Newsdata.APIKey = override.Providers.Newsdata.APIKey
	}
	if override.Providers.Mediastack.BaseURL != "" {
		base.Providers.Mediastack.BaseURL = override.Providers.Mediastack.BaseURL
	}
	if override.Providers.Mediastack.APIKey != "" {
		base.Providers.Mediastack.APIKey = override.Providers.Mediastack.APIKey
	}
	if len(override.Providers.RSS.Feeds) > 0 {
		base.Providers.RSS.Feeds = override.Providers.RSS.Feeds
	}
	if len(override.Providers.Order) > 0 {
		base.Providers.Order = override.Providers.Order
	}

	if override.Sentiment.InferenceURL != "" {
		base.Sentiment.InferenceURL = override.Sentiment.InferenceURL
	}
	if override.Sentiment.APIKey != "" {
		base.Sentiment.APIKey = override.Sentiment.APIKey
	}

	if override.Slack.WebhookURL != "" {
		base.Slack.WebhookURL = override.Slack.WebhookURL
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Query:   defaultQuery,
		Logging: LoggingConfig{Level: "info"},
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Providers: ProvidersConfig{
			Newsdata:   NewsdataConfig{BaseURL: "https://newsdata.io/api/1/news"},
			Mediastack: MediastackConfig{BaseURL: "http://api.mediastack.com/v1/news"},
			RSS: RSSConfig{Feeds: []string{
				"https://news.google.com/rss/search?q=DS+Automobiles&hl=fr&gl=FR&ceid=FR:fr",
				"https://www.leblogauto.com/feed",
			}},
			Order: []string{"newsdata", "mediastack"},
		},
		Sentiment: SentimentConfig{
			InferenceURL: "https://api-inference.huggingface.co/models/cardiffnlp/twitter-roberta-base-sentiment",
		},
		Slack: SlackConfig{WebhookURL: ""},
	}
}
