package catalog

import (
	"context"
	"fmt"

	"starryNight/domain"
	"starryNight/pkg/logger"
)

// ArtworkRepository contract interface
type ArtworkRepository interface {
	FindByID(ctx context.Context, id string) (domain.Artwork, error)
	FindAll(ctx context.Context) ([]domain.Artwork, error)
}

// CollectionRepository contract interface
type CollectionRepository interface {
	FindFeatured(ctx context.Context) ([]domain.CuratedCollection, error)
}

// TaxonomyRepository contract interface
type TaxonomyRepository interface {
	FindCategories(ctx context.Context) ([]domain.Category, error)
	FindArtists(ctx context.Context) ([]domain.Artist, error)
}

// Filter narrows the artwork listing. Zero values mean no filtering.
type Filter struct {
	Category string
	Featured bool
}

type catalogService struct {
	artworkRepo    ArtworkRepository
	collectionRepo CollectionRepository
	taxonomyRepo   TaxonomyRepository
}

func NewCatalogService(artworkRepo ArtworkRepository, collectionRepo CollectionRepository, taxonomyRepo TaxonomyRepository) *catalogService {
	return &catalogService{
		artworkRepo:    artworkRepo,
		collectionRepo: collectionRepo,
		taxonomyRepo:   taxonomyRepo,
	}
}

func (s *catalogService) GetAllArtworks(ctx context.Context, filter Filter) ([]domain.Artwork, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when listing artworks")
		return nil, fmt.Errorf("context error: %w", err)
	}

	artworks, err := s.artworkRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to find all artworks", err.Error())
		return nil, err
	}

	if filter.Category == "" && !filter.Featured {
		return artworks, nil
	}

	out := make([]domain.Artwork, 0, len(artworks))
	for _, a := range artworks {
		if filter.Category != "" && a.Category != filter.Category {
			continue
		}
		if filter.Featured && !a.Featured {
			continue
		}
		out = append(out, a)
	}

	return out, nil
}

func (s *catalogService) GetArtworkByID(ctx context.Context, id string) (*domain.Artwork, error) {
	if id == "" {
		logger.Error("invalid artwork id")
		return nil, fmt.Errorf("invalid artwork id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when finding artwork")
		return nil, fmt.Errorf("context error: %w", err)
	}

	artwork, err := s.artworkRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find artwork by id", err.Error())
		return nil, err
	}

	return &artwork, nil
}

func (s *catalogService) GetCategories(ctx context.Context) ([]domain.Category, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when listing categories")
		return nil, fmt.Errorf("context error: %w", err)
	}

	categories, err := s.taxonomyRepo.FindCategories(ctx)
	if err != nil {
		logger.Error("failed to find categories", err.Error())
		return nil, err
	}

	return categories, nil
}

func (s *catalogService) GetArtists(ctx context.Context) ([]domain.Artist, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when listing artists")
		return nil, fmt.Errorf("context error: %w", err)
	}

	artists, err := s.taxonomyRepo.FindArtists(ctx)
	if err != nil {
		logger.Error("failed to find artists", err.Error())
		return nil, err
	}

	return artists, nil
}

func (s *catalogService) GetFeaturedCollections(ctx context.Context) ([]domain.CuratedCollection, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when listing collections")
		return nil, fmt.Errorf("context error: %w", err)
	}

	collections, err := s.collectionRepo.FindFeatured(ctx)
	if err != nil {
		logger.Error("failed to find featured collections", err.Error())
		return nil, err
	}

	return collections, nil
}
