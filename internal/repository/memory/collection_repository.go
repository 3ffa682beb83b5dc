package memory

import (
	"context"

	"starryNight/domain"
)

type CollectionRepository struct {
	collections []domain.CuratedCollection
}

func NewCollectionRepository(collections []domain.CuratedCollection) *CollectionRepository {
	return &CollectionRepository{collections: collections}
}

func (r *CollectionRepository) FindFeatured(ctx context.Context) ([]domain.CuratedCollection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []domain.CuratedCollection
	for _, c := range r.collections {
		if c.Featured {
			out = append(out, c)
		}
	}

	return out, nil
}
