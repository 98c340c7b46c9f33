package app

import (
	"log/slog"

	"brandwatch/internal/config"
	"brandwatch/internal/enrich"
	"brandwatch/internal/fetch"
	"brandwatch/internal/infrastructure/huggingface"
	"brandwatch/internal/infrastructure/provider"
	"brandwatch/internal/infrastructure/slack"
	"brandwatch/internal/logging"
	"brandwatch/internal/ports"
	"brandwatch/internal/usecase"
)

// Application wires configuration to adapters and the scan pipeline.
type Application struct {
	cfg      config.Config
	pipeline *usecase.Pipeline
}

// New builds a runnable application instance. The classifier client is
// created once here and shared across all runs in the process.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	registry := fetch.NewRegistry()
	registry.Register(provider.NewNewsdataClient(cfg.Providers.Newsdata.BaseURL, cfg.Providers.Newsdata.APIKey, nil))
	registry.Register(provider.NewMediastackClient(cfg.Providers.Mediastack.BaseURL, cfg.Providers.Mediastack.APIKey, nil))
	registry.Register(provider.NewRSSClient(cfg.Providers.RSS.Feeds, logging.Component(baseLogger, "provider.rss")))

	fetchers := make([]fetch.Fetcher, 0, len(cfg.Providers.Order))
	for _, name := range cfg.Providers.Order {
		f, err := registry.Resolve(name)
		if err != nil {
			baseLogger.Warn("unknown provider in config, skipping", "provider", name)
			continue
		}
		fetchers = append(fetchers, f)
	}

	source := provider.NewMultiSource(fetchers, logging.Component(baseLogger, "source"))

	classifier := huggingface.NewClient(cfg.Sentiment.InferenceURL, cfg.Sentiment.APIKey)
	enricher := enrich.NewEnricher(enrich.NewToneNormalizer(classifier, logging.Component(baseLogger, "tone")))

	var notifier ports.Notifier
	if cfg.Slack.WebhookURL != "" {
		notifier = slack.NewNotifier(cfg.Slack.WebhookURL)
	}

	pipeline := usecase.NewPipeline(usecase.Deps{
		Source:   source,
		Enricher: enricher,
		Notifier: notifier,
		Logger:   logging.Component(baseLogger, "pipeline"),
	})

	return &Application{cfg: cfg, pipeline: pipeline}
}

// Pipeline exposes the scan entry point to the presentation surfaces.
func (a *Application) Pipeline() *usecase.Pipeline {
	return a.pipeline
}

// Config returns the loaded configuration.
func (a *Application) Config() config.Config {
	return a.cfg
}
