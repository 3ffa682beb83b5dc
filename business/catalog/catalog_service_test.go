package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starryNight/internal/repository/memory"
)

func newTestService() *catalogService {
	return NewCatalogService(
		memory.NewArtworkRepository(memory.SeedArtworks()),
		memory.NewCollectionRepository(memory.SeedCollections()),
		memory.NewTaxonomyRepository(memory.SeedCategories(), memory.SeedArtists()),
	)
}

func TestGetAllArtworksFiltering(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	all, err := svc.GetAllArtworks(ctx, Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 6)

	renaissance, err := svc.GetAllArtworks(ctx, Filter{Category: "Renaissance"})
	require.NoError(t, err)
	require.Len(t, renaissance, 2)
	for _, a := range renaissance {
		assert.Equal(t, "Renaissance", a.Category)
	}

	none, err := svc.GetAllArtworks(ctx, Filter{Category: "Cubism"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetArtworkByID(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	artwork, err := svc.GetArtworkByID(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, "The Great Wave", artwork.Title)

	_, err = svc.GetArtworkByID(ctx, "999")
	assert.Error(t, err)

	_, err = svc.GetArtworkByID(ctx, "")
	assert.Error(t, err)
}

func TestGetFeaturedCollections(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	collections, err := svc.GetFeaturedCollections(ctx)
	require.NoError(t, err)
	require.Len(t, collections, 3)
	for _, c := range collections {
		assert.True(t, c.Featured)
	}
}

func TestGetTaxonomy(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	categories, err := svc.GetCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 8)

	artists, err := svc.GetArtists(ctx)
	require.NoError(t, err)
	assert.Len(t, artists, 4)
}
