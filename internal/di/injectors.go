//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"globalpass/internal"
	"globalpass/internal/catalog"
	"globalpass/internal/controllers"
	"globalpass/internal/generation"
	"globalpass/internal/models"
	"globalpass/internal/providers"
	"globalpass/internal/services"
	"globalpass/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		catalog.NewCatalogProvider,
		catalog.NewZstdCompressor,
		catalog.NewFileManager,
		catalog.NewScheduler,

		models.DefaultCompatibility,
		services.NewCompatibilityService,

		generation.NewGeminiClient,
		services.NewAssistantService,

		controllers.NewApiController,
		controllers.NewChatController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
