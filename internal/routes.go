package internal

import (
	"net/http"

	"globalpass/internal/controllers"
	"globalpass/internal/providers"
	"globalpass/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, chatController *controllers.ChatController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Post("/api/chat", http.HandlerFunc(chatController.Ask))
	routers.Get("/api/compatibility", http.HandlerFunc(apiController.CheckCompatibility))
	routers.Get("/api/compatibility/brands", http.HandlerFunc(apiController.GetBrands))
	routers.Get("/api/countries", http.HandlerFunc(apiController.GetCountries))
	routers.Get("/api/packages", http.HandlerFunc(apiController.GetPackages))
	routers.Get("/api/packages/stats", http.HandlerFunc(apiController.GetStats))
	return routers
}
