package di

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sapphire-arches/mccraft/application/dispatcher"
	"github.com/sapphire-arches/mccraft/infrastructure/catalog"
	"github.com/sapphire-arches/mccraft/infrastructure/config"
	"github.com/sapphire-arches/mccraft/infrastructure/observability"
	"github.com/sapphire-arches/mccraft/infrastructure/visualizer"
	"github.com/sapphire-arches/mccraft/pkg/random"
)

const metricsNamespace = "mccraft"

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

// ProvideMetrics creates the Prometheus collector
func ProvideMetrics() *observability.Collector {
	return observability.NewCollector(metricsNamespace)
}

// ProvideCatalogClient creates the catalog search client
func ProvideCatalogClient(cfg *config.Config, logger *zap.Logger, metrics *observability.Collector) *catalog.Client {
	return catalog.NewClient(cfg.CatalogBaseURL, cfg.CatalogTimeout(), logger, metrics)
}

// ProvideNotifier connects the visualizer feed, or disables it when no
// endpoint is configured
func ProvideNotifier(ctx context.Context, cfg *config.Config, logger *zap.Logger) (visualizer.Notifier, error) {
	if cfg.VisualizerURL == "" {
		logger.Info("Visualizer feed disabled")
		return visualizer.Nop{}, nil
	}
	return visualizer.Connect(ctx, cfg.VisualizerURL, cfg.VisualizerNamespace, logger)
}

// ProvideRandomSource creates the draw source for the graph generators
func ProvideRandomSource() random.Source {
	return random.New()
}

// ProvideDispatcher creates the event dispatcher
func ProvideDispatcher(
	client *catalog.Client,
	notifier visualizer.Notifier,
	rng random.Source,
	logger *zap.Logger,
	metrics *observability.Collector,
) *dispatcher.Dispatcher {
	return dispatcher.New(client, notifier, rng, logger, metrics)
}
