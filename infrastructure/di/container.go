package di

import (
	"go.uber.org/zap"

	"github.com/sapphire-arches/mccraft/application/dispatcher"
	"github.com/sapphire-arches/mccraft/infrastructure/catalog"
	"github.com/sapphire-arches/mccraft/infrastructure/config"
	"github.com/sapphire-arches/mccraft/infrastructure/observability"
	"github.com/sapphire-arches/mccraft/infrastructure/visualizer"
)

// Container holds all application dependencies
type Container struct {
	Config        *config.Config
	Logger        *zap.Logger
	Metrics       *observability.Collector
	CatalogClient *catalog.Client
	Notifier      visualizer.Notifier
	Dispatcher    *dispatcher.Dispatcher
}

// Close releases the container's long-lived resources
func (c *Container) Close() {
	if c.Notifier != nil {
		c.Notifier.Close()
	}
	if c.Logger != nil {
		c.Logger.Sync()
	}
}
