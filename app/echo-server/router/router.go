package router

import (
	"starryNight/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetTrackingRoutes(api *echo.Group, handler *rest.TrackingHandler) {
	api.POST("/tracking", handler.Collect)
}

func SetRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler, optionalAuth echo.MiddlewareFunc) {
	api.GET("/recommendations", handler.Recommendations, optionalAuth)
}

func SetPreferencesRoutes(api *echo.Group, handler *rest.PreferencesHandler) {
	preferences := api.Group("/user/preferences")
	preferences.GET("", handler.Get)
	preferences.POST("", handler.Update)
}

func SetCatalogRoutes(api *echo.Group, handler *rest.CatalogHandler) {
	api.GET("/artworks", handler.Artworks)
	api.GET("/artworks/:id", handler.ArtworkByID)
	api.GET("/categories", handler.Categories)
	api.GET("/artists", handler.Artists)
	api.GET("/curation/featured", handler.FeaturedCollections)
}
