package rest

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"starryNight/business/catalog"
	"starryNight/domain"
	"starryNight/pkg/response"
)

type (
	CatalogHandler struct {
		catalogService CatalogService
	}

	CatalogService interface {
		GetAllArtworks(ctx context.Context, filter catalog.Filter) ([]domain.Artwork, error)
		GetArtworkByID(ctx context.Context, id string) (*domain.Artwork, error)
		GetCategories(ctx context.Context) ([]domain.Category, error)
		GetArtists(ctx context.Context) ([]domain.Artist, error)
		GetFeaturedCollections(ctx context.Context) ([]domain.CuratedCollection, error)
	}

	ArtworksQuery struct {
		Category string `query:"category"`
		Featured bool   `query:"featured"`
	}
)

func NewCatalogHandler(svc CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: svc,
	}
}

// Artworks handles GET /api/artworks.
func (h *CatalogHandler) Artworks(c echo.Context) error {
	var q ArtworksQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest,
			response.Error("INVALID_QUERY", "invalid query parameters"))
	}

	artworks, err := h.catalogService.GetAllArtworks(c.Request().Context(), catalog.Filter{
		Category: q.Category,
		Featured: q.Featured,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError,
			response.Error("INTERNAL_ERROR", "Failed to fetch artworks"))
	}

	return c.JSON(http.StatusOK, response.OK(artworks))
}

// ArtworkByID handles GET /api/artworks/:id.
func (h *CatalogHandler) ArtworkByID(c echo.Context) error {
	artwork, err := h.catalogService.GetArtworkByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound,
			response.Error("NOT_FOUND", "Artwork not found"))
	}

	return c.JSON(http.StatusOK, response.OK(artwork))
}

// Categories handles GET /api/categories.
func (h *CatalogHandler) Categories(c echo.Context) error {
	categories, err := h.catalogService.GetCategories(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError,
			response.Error("INTERNAL_ERROR", "Failed to fetch categories"))
	}

	return c.JSON(http.StatusOK, response.OK(categories))
}

// Artists handles GET /api/artists.
func (h *CatalogHandler) Artists(c echo.Context) error {
	artists, err := h.catalogService.GetArtists(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError,
			response.Error("INTERNAL_ERROR", "Failed to fetch artists"))
	}

	return c.JSON(http.StatusOK, response.OK(artists))
}

// FeaturedCollections handles GET /api/curation/featured.
func (h *CatalogHandler) FeaturedCollections(c echo.Context) error {
	collections, err := h.catalogService.GetFeaturedCollections(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError,
			response.Error("INTERNAL_ERROR", "Failed to fetch featured collections"))
	}

	return c.JSON(http.StatusOK, response.OK(collections))
}
