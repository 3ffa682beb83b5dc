package domain

// Recommendation algorithm tags.
const (
	AlgorithmContentBased = "content_based"
	AlgorithmTrending     = "trending"
)

// Recommendation contexts. Anything other than artwork_detail (or an
// artwork_detail request without a resolvable artwork) is served by the
// trending branch.
const (
	ContextHomepage      = "homepage"
	ContextGallery       = "gallery"
	ContextArtworkDetail = "artwork_detail"
)

// ArtworkSummary is the display subset embedded in a recommendation.
type ArtworkSummary struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Artist   string  `json:"artist"`
	ArtistID string  `json:"artistId"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
	Featured bool    `json:"featured"`
}

// RecommendedArtwork is one ranked scorer result. Rank is 1-based and
// strictly increasing while Score is non-increasing.
type RecommendedArtwork struct {
	ArtworkID string         `json:"artworkId"`
	Score     float64        `json:"score"`
	Reason    string         `json:"reason"`
	Rank      int            `json:"rank"`
	Artwork   ArtworkSummary `json:"artwork"`
}

// RecommendationMetadata describes how a result set was produced.
type RecommendationMetadata struct {
	Algorithm    string  `json:"algorithm"`
	Confidence   float64 `json:"confidence"`
	GeneratedAt  int64   `json:"generatedAt"`
	ResponseTime int64   `json:"responseTime"`
}

type RecommendationResponse struct {
	Recommendations []RecommendedArtwork   `json:"recommendations"`
	Metadata        RecommendationMetadata `json:"metadata"`
}

// RecommendationCache holds per-context results with a shared expiry.
// Entries are replaced wholesale, never patched.
type RecommendationCache struct {
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId,omitempty"`

	Homepage        *RecommendationResponse            `json:"homepage,omitempty"`
	Gallery         *RecommendationResponse            `json:"gallery,omitempty"`
	SimilarArtworks map[string]*RecommendationResponse `json:"similarArtworks,omitempty"`

	CachedAt  int64 `json:"cachedAt"`
	ExpiresAt int64 `json:"expiresAt"`
}
