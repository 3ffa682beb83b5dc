package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"starryNight/domain"
	"starryNight/pkg/logger"
)

const (
	// DefaultLimit is applied when the caller does not ask for a count.
	DefaultLimit = 6

	// Confidence reported on every result set. The scorer has no
	// feedback loop yet, so this is a fixed estimate.
	confidence = 0.75
)

var ErrMissingSessionID = errors.New("sessionId is required")

// ArtworkRepository contract interface
type ArtworkRepository interface {
	FindByID(ctx context.Context, id string) (domain.Artwork, error)
	FindAll(ctx context.Context) ([]domain.Artwork, error)
	FindFeatured(ctx context.Context) ([]domain.Artwork, error)
}

// Request describes one recommendation query.
type Request struct {
	SessionID        string
	UserID           string
	Context          string
	CurrentArtworkID string
	Limit            int
}

type Service struct {
	artworkRepo ArtworkRepository
	now         func() time.Time
}

func NewService(artworkRepo ArtworkRepository) *Service {
	return &Service{
		artworkRepo: artworkRepo,
		now:         time.Now,
	}
}

// Recommend serves similar artworks on the artwork_detail context and
// trending artworks everywhere else. A similar request whose reference
// artwork cannot be resolved falls back to the trending list, but keeps
// the content_based algorithm tag of its context.
func (s *Service) Recommend(ctx context.Context, req Request) (*domain.RecommendationResponse, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when recommending")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if req.SessionID == "" {
		return nil, ErrMissingSessionID
	}

	limit := req.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	start := s.now()

	var (
		recommendations []domain.RecommendedArtwork
		err             error
	)

	if req.Context == domain.ContextArtworkDetail && req.CurrentArtworkID != "" {
		recommendations, err = s.similarArtworks(ctx, req.CurrentArtworkID, limit)
	} else {
		recommendations, err = s.trending(ctx, limit)
	}
	if err != nil {
		return nil, err
	}

	algorithm := domain.AlgorithmTrending
	if req.Context == domain.ContextArtworkDetail {
		algorithm = domain.AlgorithmContentBased
	}

	generatedAt := s.now()
	resp := &domain.RecommendationResponse{
		Recommendations: recommendations,
		Metadata: domain.RecommendationMetadata{
			Algorithm:    algorithm,
			Confidence:   confidence,
			GeneratedAt:  generatedAt.UnixMilli(),
			ResponseTime: generatedAt.Sub(start).Milliseconds(),
		},
	}

	RecommendationsServedTotal.WithLabelValues(req.Context, algorithm).Inc()

	tid := TraceIDFromContext(ctx)
	logger.Debug("recommendations_served",
		"trace_id", tid,
		"session_id", req.SessionID,
		"context", req.Context,
		"algorithm", algorithm,
		"count", len(resp.Recommendations),
	)

	return resp, nil
}

// similarArtworks ranks the catalog against the reference artwork. When
// the reference id does not resolve, the trending list is returned
// instead.
func (s *Service) similarArtworks(ctx context.Context, referenceID string, limit int) ([]domain.RecommendedArtwork, error) {
	reference, err := s.artworkRepo.FindByID(ctx, referenceID)
	if err != nil {
		logger.Debug("similar reference not found, falling back to trending", "artwork_id", referenceID)
		return s.trending(ctx, limit)
	}

	artworks, err := s.artworkRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to find all artworks", err.Error())
		return nil, err
	}

	type scored struct {
		artwork domain.Artwork
		score   float64
	}

	candidates := make([]scored, 0, len(artworks))
	for _, a := range artworks {
		if a.ID == reference.ID {
			continue
		}
		candidates = append(candidates, scored{artwork: a, score: similarity(reference, a)})
	}

	// Stable sort keeps catalog order between equal scores, so equal
	// inputs always produce the same ranking.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	out := make([]domain.RecommendedArtwork, 0, len(candidates))
	for i, c := range candidates {
		out = append(out, domain.RecommendedArtwork{
			ArtworkID: c.artwork.ID,
			Score:     c.score,
			Reason:    fmt.Sprintf("Because you're viewing %s", reference.Title),
			Rank:      i + 1,
			Artwork:   summarize(c.artwork),
		})
	}

	return out, nil
}

// trending returns featured artworks in catalog order with a linearly
// decaying score.
func (s *Service) trending(ctx context.Context, limit int) ([]domain.RecommendedArtwork, error) {
	featured, err := s.artworkRepo.FindFeatured(ctx)
	if err != nil {
		logger.Error("failed to find featured artworks", err.Error())
		return nil, err
	}

	if len(featured) > limit {
		featured = featured[:limit]
	}

	out := make([]domain.RecommendedArtwork, 0, len(featured))
	for i, a := range featured {
		out = append(out, domain.RecommendedArtwork{
			ArtworkID: a.ID,
			Score:     trendingBase - float64(i)*trendingStep,
			Reason:    "Trending now",
			Rank:      i + 1,
			Artwork:   summarize(a),
		})
	}

	return out, nil
}
