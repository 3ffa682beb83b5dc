package memory

import (
	"context"

	"starryNight/domain"
)

// TaxonomyRepository serves the browse taxonomy (categories, artists).
type TaxonomyRepository struct {
	categories []domain.Category
	artists    []domain.Artist
}

func NewTaxonomyRepository(categories []domain.Category, artists []domain.Artist) *TaxonomyRepository {
	return &TaxonomyRepository{
		categories: categories,
		artists:    artists,
	}
}

func (r *TaxonomyRepository) FindCategories(ctx context.Context) ([]domain.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]domain.Category, len(r.categories))
	copy(out, r.categories)

	return out, nil
}

func (r *TaxonomyRepository) FindArtists(ctx context.Context) ([]domain.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]domain.Artist, len(r.artists))
	copy(out, r.artists)

	return out, nil
}
