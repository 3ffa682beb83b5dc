package memory

import (
	"context"
	"errors"

	"starryNight/domain"
)

var ErrArtworkNotFound = errors.New("artwork not found")

// ArtworkRepository serves the seeded catalog from process memory.
type ArtworkRepository struct {
	artworks []domain.Artwork
	byID     map[string]domain.Artwork
}

func NewArtworkRepository(artworks []domain.Artwork) *ArtworkRepository {
	byID := make(map[string]domain.Artwork, len(artworks))
	for _, a := range artworks {
		byID[a.ID] = a
	}

	return &ArtworkRepository{artworks: artworks, byID: byID}
}

func (r *ArtworkRepository) FindByID(ctx context.Context, id string) (domain.Artwork, error) {
	if err := ctx.Err(); err != nil {
		return domain.Artwork{}, err
	}

	artwork, ok := r.byID[id]
	if !ok {
		return domain.Artwork{}, ErrArtworkNotFound
	}

	return artwork, nil
}

func (r *ArtworkRepository) FindAll(ctx context.Context) ([]domain.Artwork, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]domain.Artwork, len(r.artworks))
	copy(out, r.artworks)

	return out, nil
}

// FindFeatured preserves seed order; the trending scorer depends on it.
func (r *ArtworkRepository) FindFeatured(ctx context.Context) ([]domain.Artwork, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []domain.Artwork
	for _, a := range r.artworks {
		if a.Featured {
			out = append(out, a)
		}
	}

	return out, nil
}
